package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fxnlabs/kermaview/internal/config"
	"github.com/fxnlabs/kermaview/internal/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	var cfg *config.Config
	var rootLogger *zap.Logger

	app := &cli.App{
		Name:  "kerma",
		Usage: "Inspect the execution geometry and memory of CUDA kernels",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yaml",
				Usage:   "Load configuration from `FILE`",
				EnvVars: []string{"KERMA_CONFIG"},
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = config.LoadConfig(c.String("config"))
			if errors.Is(err, fs.ErrNotExist) {
				cfg, err = config.Default(), nil
			}
			if err != nil {
				return err
			}
			zapLogger, err := logger.NewConsole(cfg.Logger.Verbosity)
			if err != nil {
				return err
			}
			rootLogger = zapLogger.Named("cli")
			rootLogger.Debug("configuration loaded", zap.String("path", c.String("config")))
			return nil
		},
		Commands: []*cli.Command{
			initCommand(),
			blockCommand(&cfg),
			threadCommand(&cfg),
			gridCommand(&cfg),
			kernelsCommand(&cfg),
			memoryCommand(&cfg),
			typeCommand(&cfg),
			serveCommand(&cfg),
		},
	}

	if err := app.Run(os.Args); err != nil {
		if rootLogger != nil {
			rootLogger.Fatal("failed to run app", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}
