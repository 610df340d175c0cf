package rle

// scan locates the run containing logical index (index), returning the run's
// position in runs and the intra-run offset at which the index falls. It is
// a single left-to-right accumulating walk, O(len(runs)).
//
// For index == total length of runs, the returned run position is
// len(runs) (one past the last run) and the offset is 0 — the sentinel used
// by Replace to denote "append at the end".
func scan[T comparable, S Unsigned](runs []Run[T, S], index S) (run int, offset S) {
	var total S
	for i, r := range runs {
		newTotal := total + r.Length
		if newTotal > index {
			return i, index - total
		}
		total = newTotal
	}
	return len(runs), 0
}
