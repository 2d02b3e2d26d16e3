package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/MikeMC777/inventory-service/internal/clock"
	"github.com/MikeMC777/inventory-service/internal/config"
	"github.com/MikeMC777/inventory-service/internal/grpcx"
	"github.com/MikeMC777/inventory-service/internal/memstore"
	"github.com/MikeMC777/inventory-service/internal/order"
	"github.com/MikeMC777/inventory-service/internal/postgres"
	"github.com/MikeMC777/inventory-service/internal/product"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the HTTP API and the gRPC health endpoint",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "skip-migrate", Usage: "do not apply migrations on startup"},
		},
		Action: serve,
	}
}

func serve(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	products, orders, pinger, closeStore, err := openStore(ctx, cfg, c.Bool("skip-migrate"))
	if err != nil {
		return err
	}
	defer closeStore()

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           newRouter(products, orders),
		ReadHeaderTimeout: 5 * time.Second,
	}

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", cfg.GRPCAddr)
	}
	health := grpcx.NewHealthServer(pinger, 10*time.Second)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Infof("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http listen")
		}
		return nil
	})
	g.Go(func() error {
		return health.Serve(gctx, lis)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openStore wires the services to the configured backend.
func openStore(ctx context.Context, cfg config.Config, skipMigrate bool) (*product.Service, *order.Service, grpcx.Pinger, func(), error) {
	if cfg.Store == "memory" {
		log.Warn("using in-memory store, data is lost on exit")
		st := memstore.New(clock.Real())
		return product.NewService(st.Products()), order.NewService(st.Orders()), st, func() {}, nil
	}

	if !skipMigrate {
		if err := postgres.MigrateUp(cfg.PostgresDSN); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.DBMaxConns)
	if err != nil {
		return nil, nil, nil, nil, errors.Wrap(err, "db connect")
	}
	return product.NewService(product.NewPGRepo(pool)), order.NewService(order.NewPGRepo(pool)), pool, pool.Close, nil
}
