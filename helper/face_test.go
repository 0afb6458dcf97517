package helper

import (
	"math"
	"testing"
)

func TestEuclideanDistance(t *testing.T) {
	a := []float64{0, 0, 0}
	b := []float64{1, 2, 2}

	if d := EuclideanDistance(a, b); d != 3 {
		t.Errorf("distance = %v, want 3", d)
	}
	if d := EuclideanDistance(a, a); d != 0 {
		t.Errorf("self distance = %v, want 0", d)
	}
}

func TestEuclideanDistanceLengthMismatch(t *testing.T) {
	d := EuclideanDistance([]float64{1, 2}, []float64{1, 2, 3})
	if !math.IsInf(d, 1) {
		t.Errorf("mismatched lengths should give +Inf, got %v", d)
	}
}

func TestMatchFaceExact(t *testing.T) {
	candidates := []FaceCandidate{
		{StaffId: 1, Descriptor: []float64{0.1, 0.2, 0.3}},
		{StaffId: 2, Descriptor: []float64{0.9, 0.8, 0.7}},
	}

	staffId, distance, ok := MatchFace([]float64{0.1, 0.2, 0.3}, candidates)
	if !ok {
		t.Fatal("expected a match")
	}
	if staffId != 1 {
		t.Errorf("staffId = %d, want 1", staffId)
	}
	if distance != 0 {
		t.Errorf("distance = %v, want 0", distance)
	}
}

func TestMatchFacePicksNearest(t *testing.T) {
	candidates := []FaceCandidate{
		{StaffId: 1, Descriptor: []float64{0.5, 0.5}},
		{StaffId: 2, Descriptor: []float64{0.52, 0.5}},
		{StaffId: 3, Descriptor: []float64{0.9, 0.9}},
	}

	staffId, _, ok := MatchFace([]float64{0.53, 0.5}, candidates)
	if !ok {
		t.Fatal("expected a match")
	}
	if staffId != 2 {
		t.Errorf("staffId = %d, want 2", staffId)
	}
}

func TestMatchFaceThreshold(t *testing.T) {
	candidates := []FaceCandidate{
		{StaffId: 1, Descriptor: []float64{0, 0}},
	}

	_, _, ok := MatchFace([]float64{1, 1}, candidates)
	if ok {
		t.Error("distance above threshold should not match")
	}
}

func TestMatchFaceNoCandidates(t *testing.T) {
	_, _, ok := MatchFace([]float64{0.1, 0.2}, nil)
	if ok {
		t.Error("no candidates should not match")
	}
}

func TestDescriptorRoundTrip(t *testing.T) {
	original := []float64{0.12, -0.5, 1.25, 0}

	encoded, err := EncodeDescriptor(original)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	decoded, err := DecodeDescriptor(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("length = %d, want %d", len(decoded), len(original))
	}
	for i := range original {
		if decoded[i] != original[i] {
			t.Errorf("decoded[%d] = %v, want %v", i, decoded[i], original[i])
		}
	}
}

func TestDecodeDescriptorInvalid(t *testing.T) {
	if _, err := DecodeDescriptor("not json"); err == nil {
		t.Error("expected error for invalid payload")
	}
}
