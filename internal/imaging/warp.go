package imaging

import "github.com/your-org/goocr/internal/geometry"

// homography holds the 8 free coefficients of a 3x3 projective transform
// with h[8] fixed at 1.
type homography [8]float64

// solveHomography solves for the 3x3 matrix mapping src[i] -> dst[i] for the
// 4 correspondences, via Gauss-Jordan elimination on the 8x9 augmented
// matrix built from the standard DLT constraint equations.
func solveHomography(src, dst [4]geometry.Point) homography {
	// Each correspondence (x,y) -> (u,v) contributes two rows:
	//   x*h0 + y*h1 + h2 - u*x*h6 - u*y*h7 = u
	//   x*h3 + y*h4 + h5 - v*x*h6 - v*y*h7 = v
	var a [8][9]float64
	for i := 0; i < 4; i++ {
		x, y := src[i].X, src[i].Y
		u, v := dst[i].X, dst[i].Y

		r0 := 2 * i
		a[r0] = [9]float64{x, y, 1, 0, 0, 0, -u * x, -u * y, u}

		r1 := 2*i + 1
		a[r1] = [9]float64{0, 0, 0, x, y, 1, -v * x, -v * y, v}
	}

	gaussJordan(&a)

	var h homography
	for i := 0; i < 8; i++ {
		h[i] = a[i][8]
	}
	return h
}

// gaussJordan reduces an 8x9 augmented matrix to reduced row-echelon form
// in place using partial pivoting.
func gaussJordan(a *[8][9]float64) {
	const n = 8
	for col := 0; col < n; col++ {
		pivot := col
		best := abs(a[col][col])
		for r := col + 1; r < n; r++ {
			if v := abs(a[r][col]); v > best {
				pivot = r
				best = v
			}
		}
		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
		}
		pv := a[col][col]
		if pv == 0 {
			continue
		}
		for c := col; c < n+1; c++ {
			a[col][c] /= pv
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			factor := a[r][col]
			if factor == 0 {
				continue
			}
			for c := col; c < n+1; c++ {
				a[r][c] -= factor * a[col][c]
			}
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// apply maps a source point through the homography to destination space.
func (h homography) apply(p geometry.Point) geometry.Point {
	denom := h[6]*p.X + h[7]*p.Y + 1
	if denom == 0 {
		denom = 1e-12
	}
	return geometry.Point{
		X: (h[0]*p.X + h[1]*p.Y + h[2]) / denom,
		Y: (h[3]*p.X + h[4]*p.Y + h[5]) / denom,
	}
}

// invertHomography returns the inverse homography by solving for the transform that
// maps the same correspondences in reverse.
func invertHomography(src, dst [4]geometry.Point) homography {
	return solveHomography(dst, src)
}

// WarpPerspective samples img through the quadrilateral src, producing a
// w x h output where src maps to (0,0)-(w-1,h-1). Sampling is
// nearest-neighbor at the back-projected source coordinate, clamped to
// image bounds.
func WarpPerspective(img *RasterImage, src [4]geometry.Point, w, h int) *RasterImage {
	dst := [4]geometry.Point{
		{0, 0}, {float64(w - 1), 0}, {float64(w - 1), float64(h - 1)}, {0, float64(h - 1)},
	}
	// Forward maps src->dst; for sampling we need dst->src (inverse warp).
	inv := invertHomography(src, dst)

	ch := img.Channels()
	out := make([]byte, w*h*ch)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sp := inv.apply(geometry.Point{X: float64(x), Y: float64(y)})
			sx := clampInt(int(sp.X+0.5), 0, img.Width-1)
			sy := clampInt(int(sp.Y+0.5), 0, img.Height-1)
			srcPx := img.At(sx, sy)
			dstOff := (y*w + x) * ch
			copy(out[dstOff:dstOff+ch], srcPx)
		}
	}

	return &RasterImage{Data: out, Width: w, Height: h, Order: img.Order}
}
