package tfidf

import "math"

// Vector is a sparse term vector mapping words to weights.
type Vector map[string]float64

// Norm returns the Euclidean norm of the vector.
func (v Vector) Norm() float64 {
	var sumOfSquares float64
	for _, w := range v {
		sumOfSquares += w * w
	}

	return math.Sqrt(sumOfSquares)
}

// Dot returns the dot product of v and other. Words missing from either
// vector contribute nothing.
func (v Vector) Dot(other Vector) float64 {
	// Iterate the smaller of the two vectors.
	if len(other) < len(v) {
		v, other = other, v
	}

	var dot float64
	for word, w := range v {
		dot += w * other[word]
	}

	return dot
}

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	vCopy := make(Vector, len(v))
	for word, w := range v {
		vCopy[word] = w
	}

	return vCopy
}

// TermFrequencies maps every distinct word of the sequence to the number of
// its occurrences divided by the sequence length. An empty sequence yields
// an empty vector.
func TermFrequencies(words []string) Vector {
	if len(words) == 0 {
		return Vector{}
	}

	counts := make(map[string]int, len(words))
	for _, word := range words {
		counts[word]++
	}

	total := float64(len(words))
	tf := make(Vector, len(counts))
	for word, count := range counts {
		tf[word] = float64(count) / total
	}

	return tf
}
