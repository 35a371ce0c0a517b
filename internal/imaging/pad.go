package imaging

// PadToStride pads img on the right and bottom with zero bytes so that both
// dimensions are multiples of align. Zero is the byte pad value; the
// subsequent mean/std normalization turns zeros into -mean/std, which the
// detector was trained to ignore as background.
func PadToStride(img *RasterImage, align int) *RasterImage {
	padW := nextMultiple(img.Width, align)
	padH := nextMultiple(img.Height, align)
	if padW == img.Width && padH == img.Height {
		return img
	}

	ch := img.Channels()
	out := make([]byte, padW*padH*ch)
	for y := 0; y < img.Height; y++ {
		srcOff := y * img.Width * ch
		dstOff := y * padW * ch
		copy(out[dstOff:dstOff+img.Width*ch], img.Data[srcOff:srcOff+img.Width*ch])
	}

	return &RasterImage{Data: out, Width: padW, Height: padH, Order: img.Order}
}

func nextMultiple(v, align int) int {
	if align <= 0 {
		return v
	}
	if v%align == 0 {
		return v
	}
	return v + (align - v%align)
}

// ReplicatePadWidth pads a CHW float32 buffer on the right so its width
// becomes targetWidth, filling each new column with the value at the last
// valid column (index width-1). For width >= targetWidth this is the
// identity (the buffer is returned unchanged).
func ReplicatePadWidth(data []float32, channels, height, width, targetWidth int) []float32 {
	if width >= targetWidth {
		return data
	}
	out := make([]float32, channels*height*targetWidth)
	for c := 0; c < channels; c++ {
		for y := 0; y < height; y++ {
			srcRowOff := c*height*width + y*width
			dstRowOff := c*height*targetWidth + y*targetWidth
			copy(out[dstRowOff:dstRowOff+width], data[srcRowOff:srcRowOff+width])
			last := data[srcRowOff+width-1]
			for x := width; x < targetWidth; x++ {
				out[dstRowOff+x] = last
			}
		}
	}
	return out
}

// RightPadWidth pads a CHW float32 buffer on the right to targetWidth with a
// constant fill value (typically the normalized mean, so padding becomes
// numeric zero post-normalization). Used by the 3-channel recognizer path.
func RightPadWidth(data []float32, channels, height, width, targetWidth int, fill float32) []float32 {
	if width >= targetWidth {
		return data
	}
	out := make([]float32, channels*height*targetWidth)
	for c := 0; c < channels; c++ {
		for y := 0; y < height; y++ {
			srcRowOff := c*height*width + y*width
			dstRowOff := c*height*targetWidth + y*targetWidth
			copy(out[dstRowOff:dstRowOff+width], data[srcRowOff:srcRowOff+width])
			for x := width; x < targetWidth; x++ {
				out[dstRowOff+x] = fill
			}
		}
	}
	return out
}
