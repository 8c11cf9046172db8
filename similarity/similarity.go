// Package similarity implements set-overlap measures between hyperedges:
// intersection size, Jaccard similarity and Jaccard distance.
//
// Hyperedges are treated as sets: repeated node identifiers count once.
// Sets are held in 64-bit roaring bitmaps; node identifiers are mapped with a
// plain uint64 conversion, which is injective, so negative identifiers still
// compare correctly.
//
// Jaccard of two empty sets is 0/0 and is reported as NaN.
package similarity

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Of builds the set of nodes as a roaring bitmap.
func Of(nodes []int) *roaring64.Bitmap {
	bm := roaring64.New()
	for _, n := range nodes {
		bm.Add(uint64(n))
	}

	return bm
}

// Intersection returns |a ∩ b|.
func Intersection(a, b []int) int {
	return IntersectionOf(Of(a), Of(b))
}

// JaccardSimilarity returns |a ∩ b| / |a ∪ b|.
func JaccardSimilarity(a, b []int) float64 {
	return JaccardSimilarityOf(Of(a), Of(b))
}

// JaccardDistance returns 1 - JaccardSimilarity(a, b).
func JaccardDistance(a, b []int) float64 {
	return 1 - JaccardSimilarity(a, b)
}

// IntersectionOf is Intersection over prebuilt sets.
func IntersectionOf(a, b *roaring64.Bitmap) int {
	return int(a.AndCardinality(b))
}

// JaccardSimilarityOf is JaccardSimilarity over prebuilt sets.
func JaccardSimilarityOf(a, b *roaring64.Bitmap) float64 {
	inter := a.AndCardinality(b)
	union := a.GetCardinality() + b.GetCardinality() - inter
	if union == 0 {
		return math.NaN()
	}

	return float64(inter) / float64(union)
}
