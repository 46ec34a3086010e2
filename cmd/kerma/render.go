package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/kernel"
	"github.com/fxnlabs/kermaview/internal/memory"
	"github.com/fxnlabs/kermaview/internal/types"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"gonum.org/v1/gonum/mat"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
		Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.Off}},
	})))
}

func renderBlock(w io.Writer, b *cuda.Block, withMap bool) error {
	fmt.Fprintf(w, "Block %s\n", b)
	if b.HasWarpWithInactiveLanes() {
		fmt.Fprintln(w, "Last warp has inactive lanes")
	}

	table := newTable(w)
	table.Header([]string{"Warp", "First", "Last", "Last usable", "Active", "Inactive"})
	for _, warp := range b.Warps() {
		row := []string{
			strconv.Itoa(warp.Index()),
			strconv.Itoa(warp.FirstThread()),
			strconv.Itoa(warp.LastThread()),
			strconv.Itoa(warp.LastUsableThread()),
			strconv.Itoa(warp.NumActiveLanes()),
			strconv.Itoa(warp.NumInactiveLanes()),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	if withMap {
		fmt.Fprintln(w, "Warp map (rows: y, cols: x)")
		fmt.Fprintf(w, "%v\n", mat.Formatted(b.WarpMap(), mat.Squeeze()))
	}
	return nil
}

func renderThread(w io.Writer, t *cuda.Thread) {
	fmt.Fprintf(w, "Thread %s in block %s\n", t.Index(), t.Block().ShortString())
	if g, ok := t.GlobalIndex(); ok {
		fmt.Fprintf(w, "Global index: %s\n", g)
	}
	fmt.Fprintf(w, "Linear: %d\n", t.Linear())
	fmt.Fprintf(w, "Warp: %d, lane: %d\n", t.Warp().Index(), t.Lane())
	fmt.Fprintf(w, "Unused lane: %t\n", t.InUnusedLane())
}

func renderGrid(w io.Writer, g *cuda.Grid) error {
	table := newTable(w)
	table.Header([]string{"Grid", "Block", "Blocks", "Threads", "Warps"})
	if err := table.Append([]string{
		g.Dim().String(),
		g.BlockDim().String(),
		strconv.Itoa(g.NumBlocks()),
		strconv.Itoa(g.NumThreads()),
		strconv.Itoa(g.NumWarps()),
	}); err != nil {
		return err
	}
	return table.Render()
}

func renderKernels(w io.Writer, s *kernel.SelectionModel) error {
	table := newTable(w)
	table.Header([]string{"ID", "Kernel", "Grid", "Block", "Threads", "Warps", "Selected"})
	for _, k := range s.Options() {
		selected := ""
		if k.Equals(s.Selection()) {
			selected = "*"
		}
		if err := table.Append([]string{
			strconv.Itoa(k.ID),
			k.Name,
			k.Launch.Grid.Dim().String(),
			k.Launch.Block.Dim().String(),
			strconv.Itoa(k.Launch.Grid.NumThreads()),
			strconv.Itoa(k.Launch.Grid.NumWarps()),
			selected,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderMemories(w io.Writer, mems []*memory.Memory) error {
	table := newTable(w)
	table.Header([]string{"Name", "Space", "Type", "Dim", "Kind", "Bytes", "Declaration"})
	for _, m := range mems {
		kind := "scalar"
		switch {
		case m.IsMultiDimensionalArray():
			kind = fmt.Sprintf("%dD array", m.Dims())
		case m.IsArray():
			kind = "array"
		}
		decl := ""
		if m.HasSrc() {
			decl = m.Src().DeclContext
		}
		if err := table.Append([]string{
			m.Name(),
			m.AddressSpace().String(),
			m.Type().String(),
			m.Shape().Dim().String(),
			kind,
			strconv.Itoa(m.Shape().ByteSize()),
			decl,
		}); err != nil {
			return err
		}
	}
	return table.Render()
}

func renderTypes(w io.Writer, mems []*memory.Memory) {
	for _, m := range mems {
		t := m.Type()
		fmt.Fprintf(w, "%s:\n%s\n", m.Name(), types.Pretty(t))
		if aliases := m.Shape().ElementType().Aliases(); len(aliases) > 0 {
			fmt.Fprintf(w, "  aliases: %v\n", aliases)
		}
	}
}
