// Package imageio decodes source bytes into the imaging.RasterImage format
// the detector and recognizer preprocessors consume: 8-bit sRGB, alpha
// stripped explicitly (never silently composited), with accurate
// channel-order metadata.
package imageio

import (
	"bytes"
	"fmt"
	stdimage "image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"

	"github.com/your-org/goocr/internal/imaging"
	"github.com/your-org/goocr/internal/ocrerr"
)

// Decode reads arbitrary encoded image bytes (JPEG/PNG/GIF, via the
// standard decoder registry) and returns an RGB RasterImage. Alpha
// channels, if present, are stripped by straight-dropping the channel — the
// source is never assumed pre-multiplied and never blended against a
// background color.
func Decode(data []byte) (*imaging.RasterImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image payload", ocrerr.ErrBadInput)
	}

	img, _, err := stdimage.Decode(bytes.NewReader(data))
	if err != nil {
		// A direct JPEG decode is tried as a fallback since some
		// truncated-registry builds only wire in image/jpeg explicitly.
		img, err = jpeg.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%w: decode image: %v", ocrerr.ErrBadInput, err)
		}
	}

	return toRaster(img)
}

// DecodeGrayscale is the single-channel counterpart of Decode, used where a
// caller already knows the model path never needs a color image (e.g.
// recognizer-only debugging tools).
func DecodeGrayscale(data []byte) (*imaging.RasterImage, error) {
	rgb, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return imaging.ToGray8(rgb), nil
}

func toRaster(img stdimage.Image) (*imaging.RasterImage, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("%w: image has zero dimension", ocrerr.ErrBadInput)
	}

	data := make([]byte, w*h*3)
	switch src := img.(type) {
	case *stdimage.RGBA:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				off := src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				pix := src.Pix[off : off+4 : off+4]
				idx := (y*w + x) * 3
				data[idx] = pix[0]
				data[idx+1] = pix[1]
				data[idx+2] = pix[2]
			}
		}
	case *stdimage.NRGBA:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				off := src.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
				pix := src.Pix[off : off+4 : off+4]
				idx := (y*w + x) * 3
				data[idx] = pix[0]
				data[idx+1] = pix[1]
				data[idx+2] = pix[2]
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
				idx := (y*w + x) * 3
				data[idx] = byte(r >> 8)
				data[idx+1] = byte(g >> 8)
				data[idx+2] = byte(b >> 8)
			}
		}
	}

	return imaging.NewRasterImage(data, w, h, imaging.RGB)
}
