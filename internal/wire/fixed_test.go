package wire

import (
	"bytes"
	"math"
	"testing"
)

func TestPutUint16(t *testing.T) {
	tests := []struct {
		name     string
		value    uint16
		expected []byte
	}{
		{"zero", 0, []byte{0x00, 0x00}},
		{"one", 1, []byte{0x00, 0x01}},
		{"0x0102", 0x0102, []byte{0x01, 0x02}},
		{"max", 0xffff, []byte{0xff, 0xff}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, Fixed16Size)
			PutUint16(buf, tc.value)
			if !bytes.Equal(buf, tc.expected) {
				t.Errorf("PutUint16(%#x) = % x, want % x", tc.value, buf, tc.expected)
			}
			if got := Uint16(buf); got != tc.value {
				t.Errorf("Uint16(% x) = %#x, want %#x", buf, got, tc.value)
			}
		})
	}
}

func TestPutUint32(t *testing.T) {
	buf := make([]byte, Fixed32Size)
	PutUint32(buf, 0xdeadbeef)
	if !bytes.Equal(buf, []byte{0xde, 0xad, 0xbe, 0xef}) {
		t.Errorf("PutUint32(0xdeadbeef) = % x", buf)
	}
	if got := Uint32(buf); got != 0xdeadbeef {
		t.Errorf("Uint32 = %#x", got)
	}
}

func TestPutUint64(t *testing.T) {
	buf := make([]byte, Fixed64Size)
	PutUint64(buf, 0x0102030405060708)
	if !bytes.Equal(buf, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}) {
		t.Errorf("PutUint64 = % x", buf)
	}
	if got := Uint64(buf); got != 0x0102030405060708 {
		t.Errorf("Uint64 = %#x", got)
	}
}

func TestFloatRoundTrip(t *testing.T) {
	floats32 := []float32{0, 1, -1, 3.14159, math.MaxFloat32, math.SmallestNonzeroFloat32,
		float32(math.Inf(1)), float32(math.Inf(-1))}
	buf := make([]byte, Float32Size)
	for _, v := range floats32 {
		PutFloat32(buf, v)
		if got := Float32(buf); got != v {
			t.Errorf("Float32 round trip: %v -> %v", v, got)
		}
	}

	floats64 := []float64{0, 1, -1, 2.718281828459045, math.MaxFloat64,
		math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1)}
	buf = make([]byte, Float64Size)
	for _, v := range floats64 {
		PutFloat64(buf, v)
		if got := Float64(buf); got != v {
			t.Errorf("Float64 round trip: %v -> %v", v, got)
		}
	}
}

// Float bit patterns must be preserved exactly, NaN payloads included.
func TestFloatBitsPreserved(t *testing.T) {
	nanBits := uint64(0x7ff8000000001234)
	buf := make([]byte, Float64Size)
	PutFloat64(buf, math.Float64frombits(nanBits))
	if got := math.Float64bits(Float64(buf)); got != nanBits {
		t.Errorf("NaN payload not preserved: got %#x, want %#x", got, nanBits)
	}

	negZero := math.Copysign(0, -1)
	PutFloat64(buf, negZero)
	if got := math.Float64bits(Float64(buf)); got != math.Float64bits(negZero) {
		t.Errorf("negative zero not preserved: got %#x", got)
	}
}

func TestFloat32WireForm(t *testing.T) {
	// 1.0f is 0x3F800000 in IEEE-754 binary32.
	buf := make([]byte, Float32Size)
	PutFloat32(buf, 1.0)
	if !bytes.Equal(buf, []byte{0x3f, 0x80, 0x00, 0x00}) {
		t.Errorf("PutFloat32(1.0) = % x", buf)
	}
}
