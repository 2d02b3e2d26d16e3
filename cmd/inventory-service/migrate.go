package main

import (
	"github.com/urfave/cli/v2"

	"github.com/MikeMC777/inventory-service/internal/config"
	"github.com/MikeMC777/inventory-service/internal/postgres"
)

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply or roll back the database schema",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}
					return postgres.MigrateUp(cfg.PostgresDSN)
				},
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}
					return postgres.MigrateDown(cfg.PostgresDSN, c.Int("steps"))
				},
			},
		},
	}
}
