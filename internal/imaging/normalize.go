package imaging

// NormalizeToCHW converts an interleaved (HWC) raster image to a planar
// (CHW) float32 buffer via per-channel normalization:
//
//	value = (pixel/255 - mean[c]) / std[c]
//
// RGB channel order is enforced in the output regardless of the source
// image's Order: BGR/BGRA inputs are channel-swapped during normalization so
// channel 0 of the output is always red.
func NormalizeToCHW(img *RasterImage, mean, std [3]float64) []float32 {
	w, h := img.Width, img.Height
	out := make([]float32, 3*h*w)
	srcCh := img.Channels()

	r, g, b := channelIndices(img.Order)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * srcCh
			px := img.Data[off : off+srcCh]
			rv := float64(px[r])
			gv := float64(px[g])
			bv := float64(px[b])

			idx := y*w + x
			out[0*h*w+idx] = float32((rv/255 - mean[0]) / std[0])
			out[1*h*w+idx] = float32((gv/255 - mean[1]) / std[1])
			out[2*h*w+idx] = float32((bv/255 - mean[2]) / std[2])
		}
	}
	return out
}

// channelIndices returns the byte offsets of the R, G, B channels within a
// pixel for the given channel order.
func channelIndices(order ChannelOrder) (r, g, b int) {
	switch order {
	case BGR, BGRA:
		return 2, 1, 0
	default: // RGB, RGBA, Gray (gray is handled separately by callers)
		return 0, 1, 2
	}
}

// ToGray8 converts img to a single-channel byte raster using the integer
// grayscale formula gray = round(0.299*R + 0.587*G + 0.114*B). Images
// already single-channel are returned verbatim. BGR/BGRA inputs are
// channel-swapped before the weighted sum, matching the reference's
// channel-order-aware conversion.
func ToGray8(img *RasterImage) *RasterImage {
	if img.Order == Gray {
		return img
	}

	w, h := img.Width, img.Height
	ch := img.Channels()
	r, g, b := channelIndices(img.Order)
	out := make([]byte, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := (y*w + x) * ch
			px := img.Data[off : off+ch]
			v := 0.299*float64(px[r]) + 0.587*float64(px[g]) + 0.114*float64(px[b])
			out[y*w+x] = roundByte(v)
		}
	}

	return &RasterImage{Data: out, Width: w, Height: h, Order: Gray}
}

// NormalizeGrayToCHW normalizes a single-channel byte raster into a [1,H,W]
// float32 plane: value = (pixel/255 - mean) / std.
func NormalizeGrayToCHW(img *RasterImage, mean, std float64) []float32 {
	out := make([]float32, len(img.Data))
	for i, p := range img.Data {
		out[i] = float32((float64(p)/255 - mean) / std)
	}
	return out
}
