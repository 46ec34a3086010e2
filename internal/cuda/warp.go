package cuda

import "fmt"

// Warp is a warp-size partition of a block's linear thread range. Warps are
// obtained from Block.Warp or Thread.Warp and always belong to exactly one
// block.
type Warp struct {
	block *Block
	index int
}

// Block returns the block the warp belongs to.
func (w *Warp) Block() *Block { return w.block }

// Index returns the ordinal of the warp within its block.
func (w *Warp) Index() int { return w.index }

// FirstThread returns the linear index of the warp's first lane.
func (w *Warp) FirstThread() int { return w.index * w.block.WarpSize() }

// LastThread returns the linear index of the warp's last lane, whether or
// not that lane is backed by a thread of the block.
func (w *Warp) LastThread() int { return w.FirstThread() + w.block.WarpSize() - 1 }

// LastUsableThread returns the linear index of the last lane backed by a
// thread of the block. It differs from LastThread only for a partially
// filled final warp.
func (w *Warp) LastUsableThread() int {
	return min(w.LastThread(), w.block.Size()-1)
}

// NumActiveLanes returns the number of lanes backed by a thread.
func (w *Warp) NumActiveLanes() int { return w.LastUsableThread() - w.FirstThread() + 1 }

// NumInactiveLanes returns the number of padding lanes.
func (w *Warp) NumInactiveLanes() int { return w.block.WarpSize() - w.NumActiveLanes() }

// HasInactiveLanes reports whether any lane of the warp is padding.
func (w *Warp) HasInactiveLanes() bool { return w.NumInactiveLanes() > 0 }

// Threads returns the threads in the active lanes of the warp.
func (w *Warp) Threads() []*Thread {
	out := make([]*Thread, 0, w.NumActiveLanes())
	for lin := w.FirstThread(); lin <= w.LastUsableThread(); lin++ {
		idx, _ := Delinearize(lin, w.block.dim)
		out = append(out, &Thread{block: w.block, index: idx})
	}
	return out
}

func (w *Warp) String() string {
	return fmt.Sprintf("warp %d [%d..%d], active lanes: %d", w.index, w.FirstThread(), w.LastUsableThread(), w.NumActiveLanes())
}
