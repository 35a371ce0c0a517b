package imaging

import (
	"math"
	"testing"
)

func solidImage(w, h int, order ChannelOrder, fill byte) *RasterImage {
	data := make([]byte, w*h*order.Channels())
	for i := range data {
		data[i] = fill
	}
	img, err := NewRasterImage(data, w, h, order)
	if err != nil {
		panic(err)
	}
	return img
}

func TestNewRasterImageValidatesLength(t *testing.T) {
	if _, err := NewRasterImage(make([]byte, 10), 4, 4, RGB); err == nil {
		t.Fatal("expected error for mismatched buffer length")
	}
	if _, err := NewRasterImage(make([]byte, 4*4*3), 4, 4, RGB); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestResizeBilinearSolidColorPreserved(t *testing.T) {
	img := solidImage(200, 100, RGB, 128)
	out := ResizeBilinear(img, 50, 25)
	if out.Width != 50 || out.Height != 25 {
		t.Fatalf("unexpected output dims: %dx%d", out.Width, out.Height)
	}
	for _, v := range out.Data {
		if v != 128 {
			t.Fatalf("expected solid color to be preserved under resize, got %d", v)
		}
	}
}

func TestResizeLongSideAspectRatio(t *testing.T) {
	img := solidImage(200, 100, RGB, 0)
	resized, scaleX, scaleY := ResizeLongSide(img, 100)
	if resized.Width != 100 {
		t.Fatalf("expected long side 100, got width %d", resized.Width)
	}
	if resized.Height != 50 {
		t.Fatalf("expected proportional height 50, got %d", resized.Height)
	}
	if scaleX <= 0 || scaleY <= 0 {
		t.Fatalf("expected positive scale factors, got %v %v", scaleX, scaleY)
	}
}

func TestResizeLongSideMinimumOneDimension(t *testing.T) {
	img := solidImage(1000, 10, RGB, 0)
	resized, _, _ := ResizeLongSide(img, 5)
	if resized.Height < 1 {
		t.Fatalf("expected dims floored to at least 1, got height %d", resized.Height)
	}
}

func TestPadToStrideIdempotentWhenAlreadyAligned(t *testing.T) {
	img := solidImage(64, 32, RGB, 7)
	out := PadToStride(img, 32)
	if out != img {
		t.Fatalf("expected identity when already stride-aligned")
	}
}

func TestPadToStridePadsRightAndBottom(t *testing.T) {
	img := solidImage(10, 10, RGB, 9)
	out := PadToStride(img, 32)
	if out.Width != 32 || out.Height != 32 {
		t.Fatalf("expected padded to 32x32, got %dx%d", out.Width, out.Height)
	}
	// Original top-left region preserved.
	if out.At(0, 0)[0] != 9 {
		t.Fatalf("expected original pixel preserved at origin")
	}
	// Padded region is zero.
	if out.At(31, 31)[0] != 0 {
		t.Fatalf("expected zero padding in the new region")
	}
}

func TestReplicatePadWidthIdentityWhenWideEnough(t *testing.T) {
	data := []float32{1, 2, 3}
	out := ReplicatePadWidth(data, 1, 1, 3, 2)
	if len(out) != 3 || out[0] != 1 || out[1] != 2 || out[2] != 3 {
		t.Fatalf("expected identity for width >= targetWidth, got %v", out)
	}
}

func TestReplicatePadWidthReplicatesLastColumn(t *testing.T) {
	// 1 channel, 1 row, width 2 -> target 5: last column value replicated.
	data := []float32{1, 2}
	out := ReplicatePadWidth(data, 1, 1, 2, 5)
	want := []float32{1, 2, 2, 2, 2}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("replicate-pad mismatch at %d: got %v want %v", i, out, want)
		}
	}
}

func TestRightPadWidthUsesFillValue(t *testing.T) {
	data := []float32{1, 2}
	out := RightPadWidth(data, 1, 1, 2, 4, -1)
	want := []float32{1, 2, -1, -1}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("right-pad mismatch at %d: got %v want %v", i, out, want)
		}
	}
}

func TestNormalizeToCHWRGBChannelOrder(t *testing.T) {
	img := solidImage(2, 2, RGB, 255)
	out := NormalizeToCHW(img, [3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	// All channels should normalize to 1.0 since pixel/255 = 1, mean=0, std=1.
	for _, v := range out {
		if math.Abs(float64(v)-1.0) > 1e-6 {
			t.Fatalf("expected normalized value 1.0, got %v", v)
		}
	}
}

func TestNormalizeToCHWBGRSwapsChannels(t *testing.T) {
	// BGR image with B=255, G=0, R=0 in byte order.
	data := []byte{255, 0, 0}
	img, err := NewRasterImage(data, 1, 1, BGR)
	if err != nil {
		t.Fatal(err)
	}
	out := NormalizeToCHW(img, [3]float64{0, 0, 0}, [3]float64{1, 1, 1})
	// Output channel 0 is always R, which for this pixel is stored at byte index 2 (value 0).
	if out[0] != 0 {
		t.Fatalf("expected R channel 0 after BGR swap, got %v", out[0])
	}
	if out[2] != 1 {
		t.Fatalf("expected B channel normalized to 1, got %v", out[2])
	}
}

func TestToGray8PassthroughWhenAlreadyGray(t *testing.T) {
	img := solidImage(4, 4, Gray, 42)
	out := ToGray8(img)
	if out != img {
		t.Fatalf("expected identity for already-gray image")
	}
}

func TestToGray8IntegerFormula(t *testing.T) {
	data := []byte{255, 255, 255} // white
	img, err := NewRasterImage(data, 1, 1, RGB)
	if err != nil {
		t.Fatal(err)
	}
	out := ToGray8(img)
	if out.Data[0] != 255 {
		t.Fatalf("expected white -> 255, got %d", out.Data[0])
	}
}

func TestNormalizeGrayToCHW(t *testing.T) {
	img := solidImage(2, 1, Gray, 128)
	out := NormalizeGrayToCHW(img, 0.5, 0.5)
	want := float32((128.0/255 - 0.5) / 0.5)
	for _, v := range out {
		if math.Abs(float64(v-want)) > 1e-6 {
			t.Fatalf("expected %v, got %v", want, v)
		}
	}
}
