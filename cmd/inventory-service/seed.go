package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/MikeMC777/inventory-service/internal/config"
	"github.com/MikeMC777/inventory-service/internal/postgres"
	"github.com/MikeMC777/inventory-service/internal/product"
)

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "insert products from a JSON array file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "path to products.json"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			f, err := os.Open(c.String("file"))
			if err != nil {
				return errors.Wrap(err, "open seed file")
			}
			defer f.Close()

			pool, err := postgres.Connect(c.Context, cfg.PostgresDSN, cfg.DBMaxConns)
			if err != nil {
				return errors.Wrap(err, "db connect")
			}
			defer pool.Close()

			n, err := seedProducts(c.Context, product.NewService(product.NewPGRepo(pool)), f)
			log.WithField("inserted", n).Info("[seed] done")
			return err
		},
	}
}

// seedProducts inserts every product of the JSON array read from r and stops
// at the first failure. It returns how many were inserted.
func seedProducts(ctx context.Context, svc *product.Service, r io.Reader) (int, error) {
	var items []product.Product
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return 0, errors.Wrap(err, "decode seed file")
	}
	for i := range items {
		if err := svc.Create(ctx, &items[i]); err != nil {
			return i, errors.Wrapf(err, "product %d (sku %q)", i, items[i].SKU)
		}
		log.WithFields(log.Fields{"id": items[i].ID, "sku": items[i].SKU}).Debug("[seed] product inserted")
	}
	return len(items), nil
}
