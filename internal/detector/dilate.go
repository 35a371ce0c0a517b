package detector

import "math"

// adaptiveDilationIter computes niter = trunc(sqrt(area*min(bw,bh)/(bw*bh))*2),
// the adaptive structuring-element sizing that makes thin components dilate
// less than blocky ones of the same area.
func adaptiveDilationIter(area, bw, bh int) int {
	if bw == 0 || bh == 0 {
		return 0
	}
	minDim := bw
	if bh < minDim {
		minDim = bh
	}
	v := math.Sqrt(float64(area) * float64(minDim) / float64(bw*bh))
	return int(v * 2) // trunc toward zero, matching Go's int() on positives
}

// dilateSegmap dilates a component's segmap (restricted to its bounding box
// plus a niter-pixel margin) with a square structuring element of side
// (1+niter), anchored at the OpenCV-style center (kernel/2, integer
// division). Returns the linear heatmap indices (y*width+x) of every
// foreground pixel after dilation.
func dilateSegmap(comp component, segmap map[int]bool, width, height, niter int) []int {
	if niter <= 0 {
		pts := make([]int, 0, len(segmap))
		for idx, v := range segmap {
			if v {
				pts = append(pts, idx)
			}
		}
		return pts
	}

	roiMinX := clampI(comp.minX-niter, 0, width-1)
	roiMaxX := clampI(comp.maxX+niter, 0, width-1)
	roiMinY := clampI(comp.minY-niter, 0, height-1)
	roiMaxY := clampI(comp.maxY+niter, 0, height-1)

	kernel := 1 + niter
	anchor := kernel / 2

	roiW := roiMaxX - roiMinX + 1
	roiH := roiMaxY - roiMinY + 1
	src := make([]bool, roiW*roiH)
	for idx := range segmap {
		if !segmap[idx] {
			continue
		}
		x := idx % width
		y := idx / width
		if x < roiMinX || x > roiMaxX || y < roiMinY || y > roiMaxY {
			continue
		}
		src[(y-roiMinY)*roiW+(x-roiMinX)] = true
	}

	dst := make([]bool, roiW*roiH)
	for y := 0; y < roiH; y++ {
		for x := 0; x < roiW; x++ {
			found := false
			for ky := -anchor; ky < kernel-anchor && !found; ky++ {
				ny := y + ky
				if ny < 0 || ny >= roiH {
					continue
				}
				for kx := -anchor; kx < kernel-anchor; kx++ {
					nx := x + kx
					if nx < 0 || nx >= roiW {
						continue
					}
					if src[ny*roiW+nx] {
						found = true
						break
					}
				}
			}
			dst[y*roiW+x] = found
		}
	}

	var out []int
	for y := 0; y < roiH; y++ {
		for x := 0; x < roiW; x++ {
			if dst[y*roiW+x] {
				out = append(out, (y+roiMinY)*width+(x+roiMinX))
			}
		}
	}
	return out
}

func clampI(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
