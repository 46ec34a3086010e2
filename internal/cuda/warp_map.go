package cuda

import "gonum.org/v1/gonum/mat"

// WarpMap returns a Y×X matrix whose entry (y, x) is the ordinal of the warp
// running thread (x, y). Renderers use it to color lanes by warp.
func (b *Block) WarpMap() *mat.Dense {
	m := mat.NewDense(b.dim.Y, b.dim.X, nil)
	ws := b.limits.WarpSize
	for y := 0; y < b.dim.Y; y++ {
		for x := 0; x < b.dim.X; x++ {
			m.Set(y, x, float64((x+y*b.dim.X)/ws))
		}
	}
	return m
}

// LaneMask returns a 1×WarpSize row vector for warp w holding 1 for every
// active lane and 0 for every padding lane.
func (w *Warp) LaneMask() *mat.VecDense {
	ws := w.block.WarpSize()
	v := mat.NewVecDense(ws, nil)
	for lane := 0; lane < w.NumActiveLanes(); lane++ {
		v.SetVec(lane, 1)
	}
	return v
}
