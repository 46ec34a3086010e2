package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fxnlabs/kermaview/fixtures"
	"github.com/fxnlabs/kermaview/internal/config"
	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/kernel"
	"github.com/fxnlabs/kermaview/internal/memory"
	"github.com/urfave/cli/v2"
)

func initCommand() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write a default configuration file",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "force", Usage: "Overwrite an existing file"},
		},
		Action: func(c *cli.Context) error {
			path := c.String("config")
			if _, err := os.Stat(path); err == nil && !c.Bool("force") {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}
			if err := os.WriteFile(path, fixtures.ConfigTemplate, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Wrote %s\n", path)
			return nil
		},
	}
}

func dimFlags(prefix, what string) []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: prefix + "x", Value: 1, Usage: what + " size along x"},
		&cli.IntFlag{Name: prefix + "y", Value: 1, Usage: what + " size along y"},
	}
}

func blockFromFlags(cfg *config.Config, c *cli.Context, prefix string) (*cuda.Block, error) {
	limits, err := cfg.CudaLimits()
	if err != nil {
		return nil, err
	}
	dim, err := cuda.NewDim(c.Int(prefix+"x"), c.Int(prefix+"y"))
	if err != nil {
		return nil, err
	}
	return cuda.NewBlockWithLimits(limits, dim, nil)
}

func blockCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "block",
		Usage: "Show how a block is partitioned into warps",
		Flags: append(dimFlags("", "Block"),
			&cli.BoolFlag{Name: "map", Usage: "Print the warp of every thread"},
		),
		Action: func(c *cli.Context) error {
			b, err := blockFromFlags(*cfg, c, "")
			if err != nil {
				return err
			}
			return renderBlock(c.App.Writer, b, c.Bool("map"))
		},
	}
}

func threadCommand(cfg **config.Config) *cli.Command {
	flags := append(dimFlags("b", "Block"),
		&cli.IntFlag{Name: "x", Usage: "Thread index along x"},
		&cli.IntFlag{Name: "y", Usage: "Thread index along y"},
		&cli.IntSliceFlag{Name: "block-index", Usage: "Position of the block in the grid, e.g. 2,1"},
	)
	return &cli.Command{
		Name:  "thread",
		Usage: "Show the warp and lane of a thread",
		Flags: flags,
		Action: func(c *cli.Context) error {
			b, err := blockFromFlags(*cfg, c, "b")
			if err != nil {
				return err
			}
			if coords := c.IntSlice("block-index"); len(coords) > 0 {
				idx, err := cuda.NewIndex(coords...)
				if err != nil {
					return err
				}
				b.SetIndex(idx)
			}
			idx, err := cuda.NewIndex(c.Int("x"), c.Int("y"))
			if err != nil {
				return err
			}
			t, err := cuda.NewThread(b, idx)
			if err != nil {
				return err
			}
			renderThread(c.App.Writer, t)
			return nil
		},
	}
}

func gridCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "grid",
		Usage: "Show the totals of a launch configuration",
		Flags: append(dimFlags("g", "Grid"), dimFlags("b", "Block")...),
		Action: func(c *cli.Context) error {
			limits, err := (*cfg).CudaLimits()
			if err != nil {
				return err
			}
			gridDim, err := cuda.NewDim(c.Int("gx"), c.Int("gy"))
			if err != nil {
				return err
			}
			blockDim, err := cuda.NewDim(c.Int("bx"), c.Int("by"))
			if err != nil {
				return err
			}
			launch, err := kernel.NewLaunchConfig(limits, gridDim, blockDim)
			if err != nil {
				return err
			}
			return renderGrid(c.App.Writer, launch.Grid)
		},
	}
}

func kernelsCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "kernels",
		Usage: "List the kernels declared in the configuration",
		Action: func(c *cli.Context) error {
			s, err := (*cfg).SelectionModel()
			if err != nil {
				return err
			}
			return renderKernels(c.App.Writer, s)
		},
	}
}

var kernelFlag = &cli.StringFlag{Name: "kernel", Usage: "Kernel `NAME`, defaults to the first declared kernel"}

func selectedMemories(cfg *config.Config, c *cli.Context) ([]*memory.Memory, error) {
	s, err := cfg.SelectionModel()
	if err != nil {
		return nil, err
	}
	if name := c.String("kernel"); name != "" && !s.SelectKernelByName(name) {
		return nil, fmt.Errorf("unknown kernel %q", name)
	}
	if !s.HasSelection() {
		return nil, errors.New("no kernels declared")
	}
	return s.Selection().Memories, nil
}

func memoryCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "memory",
		Usage: "List the memories of a kernel",
		Flags: []cli.Flag{kernelFlag},
		Action: func(c *cli.Context) error {
			mems, err := selectedMemories(*cfg, c)
			if err != nil {
				return err
			}
			return renderMemories(c.App.Writer, mems)
		},
	}
}

func typeCommand(cfg **config.Config) *cli.Command {
	return &cli.Command{
		Name:  "type",
		Usage: "Pretty-print the types of the memories of a kernel",
		Flags: []cli.Flag{kernelFlag},
		Action: func(c *cli.Context) error {
			mems, err := selectedMemories(*cfg, c)
			if err != nil {
				return err
			}
			renderTypes(c.App.Writer, mems)
			return nil
		},
	}
}
