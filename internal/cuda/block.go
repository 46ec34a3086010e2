package cuda

import (
	"fmt"
	"sync"

	"github.com/fxnlabs/kermaview/internal/metrics"
	"github.com/fxnlabs/kermaview/internal/modelerr"
)

// Block is a CUDA thread block. It serves both as the description of the
// block shape used in a kernel launch and as a specific block of a grid.
// The two differ only in whether an index has been assigned.
//
// Warps are created lazily and cached for the lifetime of the block, so
// repeated calls to Warp return the same instance.
type Block struct {
	dim    Dim
	index  *Index
	limits Limits

	mu    sync.Mutex
	warps []*Warp
}

// NewBlock creates a block of the given shape validated against
// DefaultLimits. index may be nil. No checks are performed on the index;
// whether it is valid for the enclosing grid is up to the caller.
func NewBlock(dim Dim, index *Index) (*Block, error) {
	return NewBlockWithLimits(DefaultLimits, dim, index)
}

// NewBlockOfSize creates a 1D block of size threads.
func NewBlockOfSize(size int, index *Index) (*Block, error) {
	dim, err := NewDim(size)
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("block").Inc()
		return nil, err
	}
	return NewBlock(dim, index)
}

// NewBlockWithLimits creates a block validated against limits.
func NewBlockWithLimits(limits Limits, dim Dim, index *Index) (*Block, error) {
	if err := limits.Validate(); err != nil {
		metrics.ValidationFailures.WithLabelValues("block").Inc()
		return nil, err
	}
	if err := validateBlockDim(limits, dim); err != nil {
		metrics.ValidationFailures.WithLabelValues("block").Inc()
		return nil, err
	}
	b := &Block{
		dim:    dim,
		limits: limits,
		warps:  make([]*Warp, limits.NumWarps(dim.Size())),
	}
	if index != nil {
		idx := *index
		b.index = &idx
	}
	metrics.BlocksCreated.Inc()
	return b, nil
}

func validateBlockDim(limits Limits, dim Dim) error {
	if dim.Z > 1 {
		return modelerr.InvalidArgument("3D blocks are not supported: %s", dim)
	}
	if !limits.ValidBlockDims(dim.X, dim.Y, dim.Z) {
		return modelerr.InvalidArgument("invalid block dimensions: %s", dim)
	}
	return nil
}

// Dim returns the shape of the block.
func (b *Block) Dim() Dim { return b.dim }

// X returns the size of the x dimension.
func (b *Block) X() int { return b.dim.X }

// Y returns the size of the y dimension.
func (b *Block) Y() int { return b.dim.Y }

// Size returns the number of threads in the block.
func (b *Block) Size() int { return b.dim.Size() }

// Limits returns the limits the block was validated against.
func (b *Block) Limits() Limits { return b.limits }

// WarpSize returns the warp size used to partition the block.
func (b *Block) WarpSize() int { return b.limits.WarpSize }

// NumWarps returns ceil(Size / WarpSize).
func (b *Block) NumWarps() int { return len(b.warps) }

// HasIndex reports whether the block has been assigned a grid position.
func (b *Block) HasIndex() bool { return b.index != nil }

// Index returns the position of the block in its grid, if assigned.
func (b *Block) Index() (Index, bool) {
	if b.index == nil {
		return Index{}, false
	}
	return *b.index, true
}

// SetIndex assigns a grid position to the block. The index is not checked
// against any grid.
func (b *Block) SetIndex(idx Index) *Block {
	b.index = &idx
	return b
}

// HasThreadIndex reports whether idx is a valid thread index in the block.
func (b *Block) HasThreadIndex(idx Index) bool { return b.dim.Contains(idx) }

// HasWarpIndex reports whether i is a valid warp ordinal in the block.
func (b *Block) HasWarpIndex(i int) bool { return i >= 0 && i < b.NumWarps() }

// HasWarpWithInactiveLanes reports whether the last warp is partially
// filled, i.e. the block size is not a multiple of the warp size.
func (b *Block) HasWarpWithInactiveLanes() bool {
	return b.Size()%b.limits.WarpSize != 0
}

// Warp returns the i-th warp of the block, creating it on first access.
func (b *Block) Warp(i int) (*Warp, error) {
	if !b.HasWarpIndex(i) {
		return nil, modelerr.InvalidArgument("warp index %d out of range [0,%d)", i, b.NumWarps())
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.warps[i] == nil {
		b.warps[i] = &Warp{block: b, index: i}
		metrics.WarpsMaterialized.Inc()
	}
	return b.warps[i], nil
}

// Warps returns every warp of the block in order.
func (b *Block) Warps() []*Warp {
	out := make([]*Warp, b.NumWarps())
	for i := range out {
		// i is always in range
		out[i], _ = b.Warp(i)
	}
	return out
}

// Is1D reports whether at most one dimension has size > 1.
func (b *Block) Is1D() bool { return b.dim.Is1D() }

// Is2D reports whether exactly two dimensions have size > 1.
func (b *Block) Is2D() bool { return b.dim.Is2D() }

// Is3D is always false; 3D blocks are rejected at construction.
func (b *Block) Is3D() bool { return false }

// Equals reports whether b and o have the same shape. Grid positions are
// not compared; use Eql for that.
func (b *Block) Equals(o *Block) bool {
	return o != nil && b.dim.Equals(o.dim)
}

// Eql reports whether b and o have the same shape and refer to the same
// position in the grid. Both blocks must have an index assigned.
func (b *Block) Eql(o *Block) bool {
	if !b.Equals(o) || b.index == nil || o.index == nil {
		return false
	}
	return b.index.Equals(*o.index)
}

// ShortString returns the compact YxX rendering of the block.
func (b *Block) ShortString() string {
	return fmt.Sprintf("%dx%d", b.dim.Y, b.dim.X)
}

func (b *Block) String() string {
	return fmt.Sprintf("(%dx%d, #threads: %d, #warps: %d)", b.dim.Y, b.dim.X, b.Size(), b.NumWarps())
}
