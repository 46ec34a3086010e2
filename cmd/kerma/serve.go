package main

import (
	"github.com/common-nighthawk/go-figure"
	"github.com/fxnlabs/kermaview/internal/config"
	"github.com/fxnlabs/kermaview/internal/logger"
	"github.com/fxnlabs/kermaview/internal/server"
	"github.com/urfave/cli/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func serveCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the geometry model over HTTP",
		Action: func(c *cli.Context) error {
			log, err := logger.New((*cfg).Logger.Verbosity)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			figure.NewFigure("KermaView", "", true).Print()

			app := fx.New(
				fx.Supply(*cfg, log),
				fx.Provide((*cfg).CudaLimits, (*cfg).SelectionModel),
				fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
					return &fxevent.ZapLogger{Logger: log.Named("fx")}
				}),
				server.Module,
			)
			if err := app.Err(); err != nil {
				return err
			}
			app.Run()
			return nil
		},
	}
}
