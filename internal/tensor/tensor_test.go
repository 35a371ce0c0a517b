package tensor

import "testing"

func TestNewF32ValidatesShapeProduct(t *testing.T) {
	if _, err := NewF32([]int{2, 3}, make([]float32, 5)); err == nil {
		t.Fatal("expected error for mismatched shape/data length")
	}
	tn, err := NewF32([]int{2, 3}, make([]float32, 6))
	if err != nil {
		t.Fatal(err)
	}
	if tn.DType != F32 || tn.Len() != 6 {
		t.Fatalf("unexpected tensor: %+v", tn)
	}
}

func TestNewI32ValidatesShapeProduct(t *testing.T) {
	if _, err := NewI32([]int{4}, make([]int32, 3)); err == nil {
		t.Fatal("expected error for mismatched shape/data length")
	}
	tn, err := NewI32([]int{4}, make([]int32, 4))
	if err != nil {
		t.Fatal(err)
	}
	if tn.DType != I32 {
		t.Fatalf("expected I32 dtype, got %v", tn.DType)
	}
}

func TestNewU8ValidatesShapeProduct(t *testing.T) {
	tn, err := NewU8([]int{1, 2, 2}, make([]byte, 4))
	if err != nil {
		t.Fatal(err)
	}
	if tn.Len() != 4 {
		t.Fatalf("expected length 4, got %d", tn.Len())
	}
}

func TestDTypeString(t *testing.T) {
	cases := map[DType]string{F32: "f32", I32: "i32", U8: "u8", DType(99): "unknown"}
	for dt, want := range cases {
		if got := dt.String(); got != want {
			t.Fatalf("DType(%d).String() = %q, want %q", dt, got, want)
		}
	}
}
