package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "inventory-service",
		Usage: "products, stock levels and orders over HTTP",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.WithError(err).Fatal("inventory-service")
	}
}
