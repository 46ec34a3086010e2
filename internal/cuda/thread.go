package cuda

import (
	"fmt"

	"github.com/fxnlabs/kermaview/internal/metrics"
	"github.com/fxnlabs/kermaview/internal/modelerr"
)

// Thread is a single thread of a block.
type Thread struct {
	block *Block
	index Index
}

// NewThread creates the thread at idx within block.
func NewThread(block *Block, idx Index) (*Thread, error) {
	if block == nil {
		return nil, modelerr.InvalidArgument("thread requires a block")
	}
	if !block.HasThreadIndex(idx) {
		metrics.ValidationFailures.WithLabelValues("thread").Inc()
		return nil, modelerr.InvalidArgument("invalid thread index %s for block %s", idx, block)
	}
	return &Thread{block: block, index: idx}, nil
}

// NewThreadLinear creates the thread at the row-major offset linear within
// block.
func NewThreadLinear(block *Block, linear int) (*Thread, error) {
	if block == nil {
		return nil, modelerr.InvalidArgument("thread requires a block")
	}
	idx, err := Delinearize(linear, block.Dim())
	if err != nil {
		metrics.ValidationFailures.WithLabelValues("thread").Inc()
		return nil, modelerr.InvalidArgument("invalid thread index %d for block %s", linear, block)
	}
	return &Thread{block: block, index: idx}, nil
}

// Block returns the block the thread belongs to.
func (t *Thread) Block() *Block { return t.block }

// Index returns the index of the thread within its block.
func (t *Thread) Index() Index { return t.index }

// X returns the x component of the thread index.
func (t *Thread) X() int { return t.index.X }

// Y returns the y component of the thread index.
func (t *Thread) Y() int { return t.index.Y }

// Linear returns the row-major offset of the thread within its block.
func (t *Thread) Linear() int {
	// the index was validated against the block at construction
	lin, _ := Linearize(t.index, t.block.Dim())
	return lin
}

// Lane returns the position of the thread within its warp.
func (t *Thread) Lane() int { return t.Linear() % t.block.WarpSize() }

// Warp returns the warp the thread belongs to. The warp is the block's
// cached instance.
func (t *Thread) Warp() *Warp {
	w, _ := t.block.Warp(t.Linear() / t.block.WarpSize())
	return w
}

// InUnusedLane reports whether the thread lies past the last usable lane of
// its warp, i.e. it is padding in a partially filled final warp.
func (t *Thread) InUnusedLane() bool {
	return t.Linear() > t.Warp().LastUsableThread()
}

// GlobalIndex returns the position of the thread within the whole grid. It
// is only known when the block has been assigned an index.
func (t *Thread) GlobalIndex() (Index, bool) {
	bidx, ok := t.block.Index()
	if !ok {
		return Index{}, false
	}
	d := t.block.Dim()
	return Index{
		X: bidx.X*d.X + t.index.X,
		Y: bidx.Y*d.Y + t.index.Y,
		Z: bidx.Z*d.Z + t.index.Z,
	}, true
}

// Equals reports whether t and o are the same thread of the same block.
// Blocks match if they are the same instance or Eql.
func (t *Thread) Equals(o *Thread) bool {
	if o == nil {
		return false
	}
	sameBlock := t.block == o.block || t.block.Eql(o.block)
	return sameBlock && t.index.Equals(o.index)
}

func (t *Thread) String() string {
	return fmt.Sprintf("thread %s of block %s", t.index, t.block.ShortString())
}
