package imaging

import (
	"testing"

	"github.com/your-org/goocr/internal/geometry"
)

func TestCropAxisAlignedDims(t *testing.T) {
	img := solidImage(20, 20, RGB, 1)
	out := CropAxisAligned(img, 5, 5, 15, 10)
	if out.Width != 10 || out.Height != 5 {
		t.Fatalf("expected 10x5 crop, got %dx%d", out.Width, out.Height)
	}
}

func TestCropAxisAlignedClampsToBounds(t *testing.T) {
	img := solidImage(10, 10, RGB, 1)
	out := CropAxisAligned(img, -5, -5, 20, 20)
	if out.Width != 10 || out.Height != 10 {
		t.Fatalf("expected crop clamped to image bounds, got %dx%d", out.Width, out.Height)
	}
}

func TestCropAxisAlignedEmptyWhenInverted(t *testing.T) {
	img := solidImage(10, 10, RGB, 1)
	out := CropAxisAligned(img, 8, 8, 2, 2)
	if out.Width != 0 || out.Height != 0 {
		t.Fatalf("expected empty crop for inverted bounds, got %dx%d", out.Width, out.Height)
	}
}

func TestWarpPerspectiveOutputDims(t *testing.T) {
	img := solidImage(10, 10, RGB, 5)
	box := [4]geometry.Point{{1, 1}, {8, 1}, {8, 8}, {1, 8}}
	out := WarpPerspective(img, box, 6, 6)
	if out.Width != 6 || out.Height != 6 {
		t.Fatalf("expected 6x6 output, got %dx%d", out.Width, out.Height)
	}
}

func TestWarpPerspectiveSolidColorPreserved(t *testing.T) {
	img := solidImage(10, 10, RGB, 200)
	box := [4]geometry.Point{{1, 1}, {8, 1}, {8, 8}, {1, 8}}
	out := WarpPerspective(img, box, 6, 6)
	for _, v := range out.Data {
		if v != 200 {
			t.Fatalf("expected solid-color warp to preserve color, got %d", v)
		}
	}
}

func TestRotate90Identity(t *testing.T) {
	img := solidImage(4, 2, RGB, 9)
	out, err := Rotate90(img, 0)
	if err != nil {
		t.Fatal(err)
	}
	if out != img {
		t.Fatalf("expected identity pointer for 0 degrees")
	}
}

func TestRotate90SwapsDimensions(t *testing.T) {
	img := solidImage(4, 2, Gray, 0)
	out, err := Rotate90(img, 90)
	if err != nil {
		t.Fatal(err)
	}
	if out.Width != 2 || out.Height != 4 {
		t.Fatalf("expected dims swapped to 2x4, got %dx%d", out.Width, out.Height)
	}
}

func TestRotate90PreservesDimensionsAt180(t *testing.T) {
	img := solidImage(4, 2, Gray, 0)
	out, err := Rotate90(img, 180)
	if err != nil {
		t.Fatal(err)
	}
	if out.Width != 4 || out.Height != 2 {
		t.Fatalf("expected dims unchanged at 180, got %dx%d", out.Width, out.Height)
	}
}

func TestRotate90RoundTrip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	img, err := NewRasterImage(data, 3, 2, Gray)
	if err != nil {
		t.Fatal(err)
	}
	r90, err := Rotate90(img, 90)
	if err != nil {
		t.Fatal(err)
	}
	r360, err := Rotate90(r90, 270)
	if err != nil {
		t.Fatal(err)
	}
	if r360.Width != img.Width || r360.Height != img.Height {
		t.Fatalf("expected round trip to restore dims, got %dx%d", r360.Width, r360.Height)
	}
	for i := range data {
		if r360.Data[i] != data[i] {
			t.Fatalf("round trip mismatch at %d: got %d want %d", i, r360.Data[i], data[i])
		}
	}
}

func TestRotate90RejectsUnsupportedAngle(t *testing.T) {
	img := solidImage(2, 2, Gray, 0)
	if _, err := Rotate90(img, 45); err == nil {
		t.Fatal("expected error for unsupported rotation angle")
	}
}
