package cuda

import (
	"fmt"
	"math"

	"github.com/fxnlabs/kermaview/internal/metrics"
	"github.com/fxnlabs/kermaview/internal/modelerr"
)

// Grid is the launch configuration of a kernel: a Dim of blocks that all
// share one block description.
type Grid struct {
	dim   Dim
	block *Block
}

// NewGrid creates a grid of dim blocks shaped like block. The grid shape is
// validated against the limits of block.
func NewGrid(dim Dim, block *Block) (*Grid, error) {
	if block == nil {
		return nil, modelerr.InvalidArgument("grid requires a block description")
	}
	if !block.Limits().ValidGridDims(dim.X, dim.Y, dim.Z) {
		metrics.ValidationFailures.WithLabelValues("grid").Inc()
		return nil, modelerr.InvalidArgument("invalid grid dimensions: %s", dim)
	}
	if _, ok := product(dim.X, dim.Y, dim.Z, block.Size()); !ok {
		metrics.ValidationFailures.WithLabelValues("grid").Inc()
		return nil, modelerr.InvalidArgument("grid %s of blocks %s exceeds the countable number of threads", dim, block.Dim())
	}
	return &Grid{dim: dim, block: block}, nil
}

// product multiplies positive factors, reporting false on int overflow.
func product(factors ...int) (int, bool) {
	p := 1
	for _, f := range factors {
		if f > 0 && p > math.MaxInt/f {
			return 0, false
		}
		p *= f
	}
	return p, true
}

// Dim returns the shape of the grid in blocks.
func (g *Grid) Dim() Dim { return g.dim }

// BlockDim returns the shape shared by every block of the grid.
func (g *Grid) BlockDim() Dim { return g.block.Dim() }

// NumBlocks returns the number of blocks in the grid.
func (g *Grid) NumBlocks() int { return g.dim.Size() }

// NumThreads returns the number of threads launched by the grid.
func (g *Grid) NumThreads() int { return g.NumBlocks() * g.block.Size() }

// NumWarps returns the number of warps launched by the grid.
func (g *Grid) NumWarps() int { return g.NumBlocks() * g.block.NumWarps() }

// HasBlockIndex reports whether idx is a valid block position.
func (g *Grid) HasBlockIndex(idx Index) bool { return g.dim.Contains(idx) }

// Block returns the block at idx. Each call returns a fresh Block.
func (g *Grid) Block(idx Index) (*Block, error) {
	if !g.HasBlockIndex(idx) {
		return nil, modelerr.InvalidArgument("block index %s outside grid %s", idx, g.dim)
	}
	return NewBlockWithLimits(g.block.Limits(), g.block.Dim(), &idx)
}

func (g *Grid) String() string {
	return fmt.Sprintf("grid %s of blocks %s", g.dim, g.block.Dim())
}
