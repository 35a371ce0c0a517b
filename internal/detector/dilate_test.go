package detector

import "testing"

func TestAdaptiveDilationIterZeroDimYieldsZero(t *testing.T) {
	if got := adaptiveDilationIter(10, 0, 5); got != 0 {
		t.Fatalf("expected 0 for zero width, got %d", got)
	}
}

func TestAdaptiveDilationIterSquareComponent(t *testing.T) {
	// fully filled 10x10 box (area=100) -> sqrt(100*10/100)*2 = sqrt(10)*2 ~= 6.32, truncated to 6.
	got := adaptiveDilationIter(100, 10, 10)
	if got != 6 {
		t.Fatalf("expected niter 6, got %d", got)
	}
}

func TestAdaptiveDilationIterThinComponentDilatesLess(t *testing.T) {
	// A thin line (bw=20, bh=1) of the same bounding area as a blockier shape
	// should get a smaller niter since minDim is tiny.
	thin := adaptiveDilationIter(20, 20, 1)
	blocky := adaptiveDilationIter(20, 5, 4)
	if thin >= blocky {
		t.Fatalf("expected thin component niter (%d) < blocky component niter (%d)", thin, blocky)
	}
}

func TestClampI(t *testing.T) {
	if clampI(-5, 0, 10) != 0 {
		t.Fatalf("expected clamp to lower bound")
	}
	if clampI(15, 0, 10) != 10 {
		t.Fatalf("expected clamp to upper bound")
	}
	if clampI(5, 0, 10) != 5 {
		t.Fatalf("expected value within bounds unchanged")
	}
}

func TestDilateSegmapZeroIterReturnsSourcePixels(t *testing.T) {
	comp := component{minX: 0, maxX: 1, minY: 0, maxY: 1}
	segmap := map[int]bool{0: true, 1: false, 2: true}
	pts := dilateSegmap(comp, segmap, 4, 4, 0)
	if len(pts) != 2 {
		t.Fatalf("expected 2 true pixels passed through unchanged, got %d", len(pts))
	}
}

func TestDilateSegmapExpandsSinglePixel(t *testing.T) {
	comp := component{minX: 2, maxX: 2, minY: 2, maxY: 2}
	segmap := map[int]bool{2*4 + 2: true} // width=4, pixel at (2,2)
	pts := dilateSegmap(comp, segmap, 4, 4, 1)
	if len(pts) <= 1 {
		t.Fatalf("expected dilation to grow beyond the single source pixel, got %d", len(pts))
	}
}
