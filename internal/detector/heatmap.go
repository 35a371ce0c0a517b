package detector

// Heatmap is a 2-D f32 grid (width, height) holding either the per-pixel
// text score or the per-pixel link score emitted by the detector, at half
// (or whatever the model's stride implies) input resolution.
type Heatmap struct {
	Data   []float32
	Width  int
	Height int
}

func (h Heatmap) At(x, y int) float32 {
	return h.Data[y*h.Width+x]
}
