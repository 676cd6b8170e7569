package algorithms

import (
	"github.com/RoaringBitmap/roaring"
)

// StrengthOfConnection is the Jaccard similarity |A∩B| / |A∪B| of two
// friendship adjacency rows, counted over positions [0, n).
//
// Users that do not list each other (rowA lacks posB and rowB lacks posA)
// score 0 without any overlap being computed. That check comes first and is
// what keeps the union from ever being empty at the division.
func StrengthOfConnection(rowA, rowB *roaring.Bitmap, posA, posB, n int) float64 {
	return strengthWithin(rowA, rowB, posA, posB, positionRange(n))
}

// positionRange returns the bitmap of positions [0, n).
func positionRange(n int) *roaring.Bitmap {
	within := roaring.New()
	if n > 0 {
		within.AddRange(0, uint64(n))
	}
	return within
}

func strengthWithin(rowA, rowB *roaring.Bitmap, posA, posB int, within *roaring.Bitmap) float64 {
	if !rowA.Contains(uint32(posB)) && !rowB.Contains(uint32(posA)) {
		return 0.0
	}

	intersection := roaring.And(rowA, rowB).AndCardinality(within)
	union := roaring.Or(rowA, rowB).AndCardinality(within)
	if union == 0 {
		// Only reachable when a listed position lies outside [0, n).
		return 0.0
	}
	return float64(intersection) / float64(union)
}
