package helper

import (
	"encoding/json"
	"math"
)

// Face descriptors below this Euclidean distance count as the same person.
const FaceMatchThreshold = 0.5

func EncodeDescriptor(descriptor []float64) (string, error) {
	b, err := json.Marshal(descriptor)
	return string(b), err
}

func DecodeDescriptor(raw string) ([]float64, error) {
	var descriptor []float64
	err := json.Unmarshal([]byte(raw), &descriptor)
	return descriptor, err
}

func EuclideanDistance(a, b []float64) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

type FaceCandidate struct {
	StaffId    uint
	Descriptor []float64
}

// MatchFace scans candidates for the nearest descriptor under the
// threshold. Linear scan; staff lists are small.
func MatchFace(target []float64, candidates []FaceCandidate) (uint, float64, bool) {
	bestId := uint(0)
	bestDistance := math.Inf(1)
	for _, candidate := range candidates {
		d := EuclideanDistance(target, candidate.Descriptor)
		if d < bestDistance {
			bestDistance = d
			bestId = candidate.StaffId
		}
	}
	if bestDistance > FaceMatchThreshold {
		return 0, bestDistance, false
	}
	return bestId, bestDistance, true
}
