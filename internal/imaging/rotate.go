package imaging

import "fmt"

// Rotate90 rotates img by the given multiple of 90 degrees clockwise.
// Only 0, 90, 180, 270 are supported; other angles are out of scope for the
// rotation-search crop variants.
func Rotate90(img *RasterImage, degrees int) (*RasterImage, error) {
	ch := img.Channels()
	switch ((degrees % 360) + 360) % 360 {
	case 0:
		return img, nil
	case 90:
		out := make([]byte, len(img.Data))
		newW, newH := img.Height, img.Width
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				srcOff := (y*img.Width + x) * ch
				dstX := newW - 1 - y
				dstY := x
				dstOff := (dstY*newW + dstX) * ch
				copy(out[dstOff:dstOff+ch], img.Data[srcOff:srcOff+ch])
			}
		}
		return &RasterImage{Data: out, Width: newW, Height: newH, Order: img.Order}, nil
	case 180:
		out := make([]byte, len(img.Data))
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				srcOff := (y*img.Width + x) * ch
				dstX := img.Width - 1 - x
				dstY := img.Height - 1 - y
				dstOff := (dstY*img.Width + dstX) * ch
				copy(out[dstOff:dstOff+ch], img.Data[srcOff:srcOff+ch])
			}
		}
		return &RasterImage{Data: out, Width: img.Width, Height: img.Height, Order: img.Order}, nil
	case 270:
		out := make([]byte, len(img.Data))
		newW, newH := img.Height, img.Width
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				srcOff := (y*img.Width + x) * ch
				dstX := y
				dstY := newH - 1 - x
				dstOff := (dstY*newW + dstX) * ch
				copy(out[dstOff:dstOff+ch], img.Data[srcOff:srcOff+ch])
			}
		}
		return &RasterImage{Data: out, Width: newW, Height: newH, Order: img.Order}, nil
	default:
		return nil, fmt.Errorf("imaging: unsupported rotation %d degrees (only 0/90/180/270)", degrees)
	}
}
