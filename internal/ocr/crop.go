package ocr

import (
	"math"

	"github.com/your-org/goocr/internal/geometry"
	"github.com/your-org/goocr/internal/imaging"
)

// Crop is one cropped region ready for recognizer preprocessing, tagged
// with the source polygon and the rotation variant (0 if none) that
// produced it.
type Crop struct {
	Image    *imaging.RasterImage
	Source   geometry.Polygon
	Rotation int
}

// isAxisAligned reports whether p is (to floating tolerance) an
// axis-aligned rectangle, i.e. it came from the horizontal bucket.
func isAxisAligned(p geometry.Polygon) bool {
	const eps = 1e-6
	return math.Abs(p[0].Y-p[1].Y) < eps && math.Abs(p[2].Y-p[3].Y) < eps &&
		math.Abs(p[0].X-p[3].X) < eps && math.Abs(p[1].X-p[2].X) < eps
}

// BuildCrops implements spec §4.E: axis-aligned crop for horizontal
// polygons, perspective warp for free-form polygons, optionally duplicated
// once per entry in rotationInfo.
func BuildCrops(img *imaging.RasterImage, polys []geometry.Polygon, rotationInfo []int) []Crop {
	var crops []Crop
	for _, p := range polys {
		var base *imaging.RasterImage
		if isAxisAligned(p) {
			x0 := int(math.Round(p.MinX()))
			y0 := int(math.Round(p.MinY()))
			x1 := int(math.Round(p.MaxX()))
			y1 := int(math.Round(p.MaxY()))
			base = imaging.CropAxisAligned(img, x0, y0, x1, y1)
		} else {
			w := int(math.Round(math.Max(geometry.Dist(p[2], p[3]), geometry.Dist(p[1], p[0]))))
			h := int(math.Round(math.Max(geometry.Dist(p[1], p[2]), geometry.Dist(p[0], p[3]))))
			if w < 1 {
				w = 1
			}
			if h < 1 {
				h = 1
			}
			base = imaging.WarpPerspective(img, [4]geometry.Point{p[0], p[1], p[2], p[3]}, w, h)
		}

		crops = append(crops, Crop{Image: base, Source: p, Rotation: 0})

		for _, angle := range rotationInfo {
			rotated, err := imaging.Rotate90(base, angle)
			if err != nil {
				continue
			}
			crops = append(crops, Crop{Image: rotated, Source: p, Rotation: angle})
		}
	}
	return crops
}
