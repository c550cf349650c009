package similarity

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Cosine returns the cosine similarity of two equal-length vectors, or 0
// when either vector has zero magnitude.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	normA := math.Sqrt(floats.Dot(a, a))
	normB := math.Sqrt(floats.Dot(b, b))
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}

// normalize scales vec to unit length in place. A zero vector is left as is.
func normalize(vec []float64) {
	norm := math.Sqrt(floats.Dot(vec, vec))
	if norm == 0 {
		return
	}
	floats.Scale(1/norm, vec)
}
