package imaging

import "math"

// srcCoord maps a destination coordinate to a source coordinate using the
// half-pixel-center convention, then clamps to the valid source range.
func srcCoord(dst int, scale float64, dim int) float64 {
	sc := (float64(dst)+0.5)*scale - 0.5
	return clampFloat(sc, 0, float64(dim-1))
}

// ResizeBilinear resamples img to newW x newH using bilinear interpolation.
// Output channel values are rounded to the nearest byte.
func ResizeBilinear(img *RasterImage, newW, newH int) *RasterImage {
	ch := img.Channels()
	out := make([]byte, newW*newH*ch)
	scaleX := float64(img.Width) / float64(newW)
	scaleY := float64(img.Height) / float64(newH)

	for y := 0; y < newH; y++ {
		sy := srcCoord(y, scaleY, img.Height)
		y0 := int(math.Floor(sy))
		y1 := clampInt(y0+1, 0, img.Height-1)
		fy := sy - float64(y0)

		for x := 0; x < newW; x++ {
			sx := srcCoord(x, scaleX, img.Width)
			x0 := int(math.Floor(sx))
			x1 := clampInt(x0+1, 0, img.Width-1)
			fx := sx - float64(x0)

			p00 := img.At(x0, y0)
			p10 := img.At(x1, y0)
			p01 := img.At(x0, y1)
			p11 := img.At(x1, y1)

			dstOff := (y*newW + x) * ch
			for c := 0; c < ch; c++ {
				top := float64(p00[c])*(1-fx) + float64(p10[c])*fx
				bot := float64(p01[c])*(1-fx) + float64(p11[c])*fx
				v := top*(1-fy) + bot*fy
				out[dstOff+c] = roundByte(v)
			}
		}
	}

	return &RasterImage{Data: out, Width: newW, Height: newH, Order: img.Order}
}

// cubicWeight implements the Catmull-Rom kernel used by the bicubic resample.
func cubicWeight(t float64) float64 {
	t = math.Abs(t)
	if t <= 1 {
		return (1.5*t-2.5)*t*t + 1
	}
	if t < 2 {
		return ((-0.5*t+2.5)*t-4)*t + 2
	}
	return 0
}

// ResizeBicubic resamples img to newW x newH using a 4x4 Catmull-Rom kernel.
// Per-pixel weights are renormalized (divided by their sum) to prevent
// ringing/overshoot at the image borders.
func ResizeBicubic(img *RasterImage, newW, newH int) *RasterImage {
	ch := img.Channels()
	out := make([]byte, newW*newH*ch)
	scaleX := float64(img.Width) / float64(newW)
	scaleY := float64(img.Height) / float64(newH)

	for y := 0; y < newH; y++ {
		sy := srcCoord(y, scaleY, img.Height)
		y0 := int(math.Floor(sy))
		fy := sy - float64(y0)
		wy := [4]float64{
			cubicWeight(fy + 1),
			cubicWeight(fy),
			cubicWeight(fy - 1),
			cubicWeight(fy - 2),
		}

		for x := 0; x < newW; x++ {
			sx := srcCoord(x, scaleX, img.Width)
			x0 := int(math.Floor(sx))
			fx := sx - float64(x0)
			wx := [4]float64{
				cubicWeight(fx + 1),
				cubicWeight(fx),
				cubicWeight(fx - 1),
				cubicWeight(fx - 2),
			}

			dstOff := (y*newW + x) * ch
			for c := 0; c < ch; c++ {
				var sum, wsum float64
				for j := -1; j <= 2; j++ {
					py := clampInt(y0+j, 0, img.Height-1)
					for i := -1; i <= 2; i++ {
						px := clampInt(x0+i, 0, img.Width-1)
						w := wx[i+1] * wy[j+1]
						sum += w * float64(img.At(px, py)[c])
						wsum += w
					}
				}
				v := sum
				if wsum != 0 {
					v = sum / wsum
				}
				out[dstOff+c] = roundByte(v)
			}
		}
	}

	return &RasterImage{Data: out, Width: newW, Height: newH, Order: img.Order}
}

func roundByte(v float64) byte {
	v = clampFloat(math.Round(v), 0, 255)
	return byte(v)
}

// ResizeLongSide scales img so that max(W,H) == maxSide while preserving
// aspect ratio (dims floored, min 1). It does not pad — stride-alignment
// padding is a separate, explicit step. Returns the resized image and the
// scale factor applied to each axis (scaleX, scaleY), which differ only by
// rounding when W != H.
func ResizeLongSide(img *RasterImage, maxSide int) (resized *RasterImage, scaleX, scaleY float64) {
	longSide := img.Width
	if img.Height > longSide {
		longSide = img.Height
	}
	scale := float64(maxSide) / float64(longSide)

	newW := int(math.Floor(float64(img.Width) * scale))
	if newW < 1 {
		newW = 1
	}
	newH := int(math.Floor(float64(img.Height) * scale))
	if newH < 1 {
		newH = 1
	}

	resized = ResizeBilinear(img, newW, newH)
	scaleX = float64(newW) / float64(img.Width)
	scaleY = float64(newH) / float64(img.Height)
	return resized, scaleX, scaleY
}
