package index

import "math"

// Vector is a sparse numeric vector: parallel slices of feature indices and
// weights, with indices sorted ascending. The zero value is the empty vector.
type Vector struct {
	Indices []int
	Values  []float64
}

// Len returns the number of non-zero entries.
func (v Vector) Len() int { return len(v.Indices) }

// Dot computes the dot product of two sparse vectors by merging their
// sorted index lists.
func (v Vector) Dot(other Vector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(other.Indices) {
		switch {
		case v.Indices[i] < other.Indices[j]:
			i++
		case v.Indices[i] > other.Indices[j]:
			j++
		default:
			sum += v.Values[i] * other.Values[j]
			i++
			j++
		}
	}
	return sum
}

// Norm returns the Euclidean (L2) norm.
func (v Vector) Norm() float64 {
	var sum float64
	for _, w := range v.Values {
		sum += w * w
	}
	return math.Sqrt(sum)
}

// normalize scales the vector to unit length in place.
// A zero vector is left unchanged.
func (v Vector) normalize() {
	norm := v.Norm()
	if norm == 0 {
		return
	}
	for i := range v.Values {
		v.Values[i] /= norm
	}
}
