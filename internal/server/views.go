package server

import (
	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/kernel"
	"github.com/fxnlabs/kermaview/internal/memory"
	"github.com/fxnlabs/kermaview/internal/types"
)

// WarpView is the JSON rendering of a warp.
type WarpView struct {
	Index            int `json:"index"`
	FirstThread      int `json:"firstThread"`
	LastThread       int `json:"lastThread"`
	LastUsableThread int `json:"lastUsableThread"`
	ActiveLanes      int `json:"activeLanes"`
	InactiveLanes    int `json:"inactiveLanes"`
}

// BlockView is the JSON rendering of a block and its warps.
type BlockView struct {
	Dim                      cuda.Dim    `json:"dim"`
	Index                    *cuda.Index `json:"index,omitempty"`
	Size                     int         `json:"size"`
	WarpSize                 int         `json:"warpSize"`
	NumWarps                 int         `json:"numWarps"`
	HasWarpWithInactiveLanes bool        `json:"hasWarpWithInactiveLanes"`
	Warps                    []WarpView  `json:"warps"`
}

// ThreadView is the JSON rendering of a thread.
type ThreadView struct {
	Index        cuda.Index  `json:"index"`
	GlobalIndex  *cuda.Index `json:"globalIndex,omitempty"`
	Linear       int         `json:"linear"`
	Warp         int         `json:"warp"`
	Lane         int         `json:"lane"`
	InUnusedLane bool        `json:"inUnusedLane"`
}

// MemoryView is the JSON rendering of a memory.
type MemoryView struct {
	Name         string      `json:"name"`
	Type         string      `json:"type"`
	Pretty       string      `json:"pretty"`
	AddressSpace string      `json:"addressSpace"`
	Dim          cuda.Dim    `json:"dim"`
	Dims         int         `json:"dims"`
	IsArray      bool        `json:"isArray"`
	IsMultiDim   bool        `json:"isMultiDimensionalArray"`
	Src          *memory.Src `json:"src,omitempty"`
}

// KernelView is the JSON rendering of a kernel and its launch geometry.
type KernelView struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Grid     cuda.Dim `json:"grid"`
	Block    cuda.Dim `json:"block"`
	Threads  int      `json:"threads"`
	Warps    int      `json:"warps"`
	Memories int      `json:"memories"`
	Selected bool     `json:"selected"`
}

// NewWarpView renders w.
func NewWarpView(w *cuda.Warp) WarpView {
	return WarpView{
		Index:            w.Index(),
		FirstThread:      w.FirstThread(),
		LastThread:       w.LastThread(),
		LastUsableThread: w.LastUsableThread(),
		ActiveLanes:      w.NumActiveLanes(),
		InactiveLanes:    w.NumInactiveLanes(),
	}
}

// NewBlockView renders b and all of its warps.
func NewBlockView(b *cuda.Block) BlockView {
	v := BlockView{
		Dim:                      b.Dim(),
		Size:                     b.Size(),
		WarpSize:                 b.WarpSize(),
		NumWarps:                 b.NumWarps(),
		HasWarpWithInactiveLanes: b.HasWarpWithInactiveLanes(),
	}
	if idx, ok := b.Index(); ok {
		v.Index = &idx
	}
	for _, w := range b.Warps() {
		v.Warps = append(v.Warps, NewWarpView(w))
	}
	return v
}

// NewThreadView renders t with its warp and lane.
func NewThreadView(t *cuda.Thread) ThreadView {
	v := ThreadView{
		Index:        t.Index(),
		Linear:       t.Linear(),
		Warp:         t.Warp().Index(),
		Lane:         t.Lane(),
		InUnusedLane: t.InUnusedLane(),
	}
	if g, ok := t.GlobalIndex(); ok {
		v.GlobalIndex = &g
	}
	return v
}

// NewMemoryView renders m.
func NewMemoryView(m *memory.Memory) MemoryView {
	return MemoryView{
		Name:         m.Name(),
		Type:         m.Type().String(),
		Pretty:       types.Pretty(m.Type()),
		AddressSpace: m.AddressSpace().String(),
		Dim:          m.Shape().Dim(),
		Dims:         m.Dims(),
		IsArray:      m.IsArray(),
		IsMultiDim:   m.IsMultiDimensionalArray(),
		Src:          m.Src(),
	}
}

// NewKernelView renders k. selected marks the current selection.
func NewKernelView(k *kernel.Kernel, selected bool) KernelView {
	return KernelView{
		ID:       k.ID,
		Name:     k.Name,
		Grid:     k.Launch.Grid.Dim(),
		Block:    k.Launch.Block.Dim(),
		Threads:  k.Launch.Grid.NumThreads(),
		Warps:    k.Launch.Grid.NumWarps(),
		Memories: len(k.Memories),
		Selected: selected,
	}
}
