package main

import (
	"bytes"
	"testing"

	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/kernel"
	"github.com/fxnlabs/kermaview/internal/memory"
	"github.com/fxnlabs/kermaview/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBlock(t *testing.T) {
	t.Run("full warps", func(t *testing.T) {
		b, err := cuda.NewBlockOfSize(64, nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, renderBlock(&buf, b, false))
		out := buf.String()
		assert.Contains(t, out, "Block (1x64, #threads: 64, #warps: 2)")
		assert.NotContains(t, out, "inactive lanes")
		assert.NotContains(t, out, "Warp map")
	})

	t.Run("partial last warp", func(t *testing.T) {
		b, err := cuda.NewBlockOfSize(1000, nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, renderBlock(&buf, b, false))
		out := buf.String()
		assert.Contains(t, out, "#warps: 32")
		assert.Contains(t, out, "Last warp has inactive lanes")
		assert.Contains(t, out, "999")
	})

	t.Run("warp map", func(t *testing.T) {
		b, err := cuda.NewBlock(cuda.MustDim(32, 2), nil)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, renderBlock(&buf, b, true))
		assert.Contains(t, buf.String(), "Warp map (rows: y, cols: x)")
	})
}

func TestRenderThread(t *testing.T) {
	b, err := cuda.NewBlock(cuda.MustDim(32, 2), nil)
	require.NoError(t, err)
	b.SetIndex(cuda.MustIndex(1, 0))
	th, err := cuda.NewThread(b, cuda.MustIndex(3, 1))
	require.NoError(t, err)

	var buf bytes.Buffer
	renderThread(&buf, th)
	out := buf.String()
	assert.Contains(t, out, "in block 2x32")
	assert.Contains(t, out, "Global index:")
	assert.Contains(t, out, "Linear: 35")
	assert.Contains(t, out, "Warp: 1, lane: 3")
	assert.Contains(t, out, "Unused lane: false")
}

func TestRenderGrid(t *testing.T) {
	launch, err := kernel.NewLaunchConfig(cuda.DefaultLimits, cuda.MustDim(4), cuda.MustDim(1000))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderGrid(&buf, launch.Grid))
	out := buf.String()
	assert.Contains(t, out, "4000")
	assert.Contains(t, out, "128")
}

func TestRenderKernels(t *testing.T) {
	s, err := kernel.LoadSelectionModel([]kernel.Descriptor{
		{Name: "addKernel", Grid: []int{4}, Block: []int{1000}},
		{Name: "mulKernel", Grid: []int{2, 2}, Block: []int{16, 16}},
	}, cuda.DefaultLimits)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderKernels(&buf, s))
	out := buf.String()
	assert.Contains(t, out, "addKernel")
	assert.Contains(t, out, "mulKernel")
	assert.Contains(t, out, "16x16")
	assert.Contains(t, out, "*")
}

func TestRenderMemories(t *testing.T) {
	arr, err := types.NewArray(types.Int32, cuda.MustDim(32, 32))
	require.NoError(t, err)
	tileShape, err := memory.ShapeOf(arr)
	require.NoError(t, err)
	tile, err := memory.New("tile", tileShape, memory.Options{AddressSpace: &cuda.Shared})
	require.NoError(t, err)
	ptr, err := types.NewPtr(types.Float64, cuda.Global)
	require.NoError(t, err)
	ptrShape, err := memory.ShapeOf(ptr)
	require.NoError(t, err)
	a, err := memory.New("a", ptrShape, memory.Options{
		Src: &memory.Src{Name: "a", Type: "double*", DeclContext: "kernel.cu:3"},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderMemories(&buf, []*memory.Memory{tile, a}))
	out := buf.String()
	assert.Contains(t, out, "tile")
	assert.Contains(t, out, "2D array")
	assert.Contains(t, out, "4096")
	assert.Contains(t, out, "f64*")
	assert.Contains(t, out, "kernel.cu:3")
}

func TestRenderTypes(t *testing.T) {
	st, err := types.NewNamedStruct("pair", types.Int32, types.Float32)
	require.NoError(t, err)
	st.AddAlias("pair_t")
	shape, err := memory.ShapeOf(st)
	require.NoError(t, err)
	m, err := memory.New("p", shape, memory.Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	renderTypes(&buf, []*memory.Memory{m})
	out := buf.String()
	assert.Contains(t, out, "p:\npair {\n  i32,\n  f32\n}")
	assert.Contains(t, out, "aliases: [pair_t]")
}
