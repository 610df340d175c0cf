package rle

import (
	"fmt"
	"strings"
)

// Rle is a run-length-encoded sequence container. It stores a logical
// sequence of values of type T as an ordered list of Run[T, S], collapsing
// adjacent equal values, while presenting the shape of a flat sequence of
// length Size(). The zero value is a valid, empty container.
type Rle[T comparable, S Unsigned] struct {
	store       runStore[T, S]
	totalLength S
}

// New returns an empty container.
func New[T comparable, S Unsigned]() Rle[T, S] {
	return Rle[T, S]{}
}

// NewWithCapacityHint returns an empty container whose run store reserves
// capacityHint slots up front — the idiomatic-Go stand-in for the original's
// inline-capacity small_vector (see DESIGN.md).
func NewWithCapacityHint[T comparable, S Unsigned](capacityHint int) Rle[T, S] {
	return Rle[T, S]{store: newRunStore[T, S](capacityHint)}
}

// NewFilled returns a container of the given length, every element equal to
// value, as a single run. A length of 0 produces an empty container.
func NewFilled[T comparable, S Unsigned](length S, value T) Rle[T, S] {
	r := Rle[T, S]{}
	if length > 0 {
		r.store.runs = append(r.store.runs, Run[T, S]{Value: value, Length: length})
		r.totalLength = length
	}
	return r
}

// NewFromRuns returns a container initialized from an explicit, caller-owned
// list of runs. The runs are copied; total length is recomputed from them.
// The caller is responsible for the runs already being in canonical form —
// this constructor does not validate or compact them, the same way the
// original implementation's equivalent constructor trusts its caller.
func NewFromRuns[T comparable, S Unsigned](runs []Run[T, S]) Rle[T, S] {
	cp := append([]Run[T, S](nil), runs...)
	var total S
	for _, run := range cp {
		total += run.Length
	}
	return Rle[T, S]{store: runStore[T, S]{runs: cp}, totalLength: total}
}

// Size returns the total logical length of the sequence.
func (r *Rle[T, S]) Size() S {
	return r.totalLength
}

// Empty reports whether the sequence has zero length.
func (r *Rle[T, S]) Empty() bool {
	return r.totalLength == 0
}

// Runs exposes the container's run list directly. Callers must treat the
// returned slice as read-only: mutating it bypasses the canonical-form
// invariants this package maintains.
func (r *Rle[T, S]) Runs() []Run[T, S] {
	return r.store.runs
}

// At returns the value at logical index i, or ErrOutOfRange if i is at or
// past Size().
func (r *Rle[T, S]) At(i S) (T, error) {
	var zero T
	if i >= r.totalLength {
		return zero, fmt.Errorf("rle: at(%v): %w", i, ErrOutOfRange)
	}
	run, _ := scan(r.store.runs, i)
	return r.store.runs[run].Value, nil
}

// Slice returns an independent container covering the half-open logical
// range [start, end). end is clamped to Size(); if start >= end (after
// clamping) the result is empty.
func (r *Rle[T, S]) Slice(start, end S) Rle[T, S] {
	if end > r.totalLength {
		end = r.totalLength
	}
	if start >= end {
		return Rle[T, S]{}
	}

	beginRun, startOffset := scan(r.store.runs, start)
	endRun, endOffset := scan(r.store.runs, end-1)

	sliced := append([]Run[T, S](nil), r.store.runs[beginRun:endRun+1]...)
	sliced[len(sliced)-1].Length = endOffset + 1
	sliced[0].Length -= startOffset

	return Rle[T, S]{store: runStore[T, S]{runs: sliced}, totalLength: end - start}
}

// Equal reports whether two containers have the same size and the same
// sequence of runs.
func (r *Rle[T, S]) Equal(other *Rle[T, S]) bool {
	if r.totalLength != other.totalLength {
		return false
	}
	if len(r.store.runs) != len(other.store.runs) {
		return false
	}
	for i := range r.store.runs {
		if !r.store.runs[i].Equal(other.store.runs[i]) {
			return false
		}
	}
	return true
}

// String renders a debug form: runs separated by '|', repeated values
// within a run separated by spaces. Intended for tests and diagnostics, not
// for production serialization (there is none — see spec Non-goals).
func (r *Rle[T, S]) String() string {
	var sb strings.Builder
	for i, run := range r.store.runs {
		if i > 0 {
			sb.WriteByte('|')
		}
		for j := S(0); j < run.Length; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%v", run.Value)
		}
	}
	return sb.String()
}

// Begin returns an iterator at the first logical element.
func (r *Rle[T, S]) Begin() Iterator[T, S] {
	return newBeginIterator(r.store.runs)
}

// End returns the past-the-end iterator.
func (r *Rle[T, S]) End() Iterator[T, S] {
	return newEndIterator(r.store.runs)
}

// RBegin returns a reverse iterator at the last logical element.
func (r *Rle[T, S]) RBegin() ReverseIterator[T, S] {
	return newReverseIterator(r.End())
}

// REnd returns the reverse past-the-end iterator.
func (r *Rle[T, S]) REnd() ReverseIterator[T, S] {
	return newReverseIterator(r.Begin())
}

// clampAndCheck clamps end to the container's size and validates that start
// does not exceed it.
func (r *Rle[T, S]) clampAndCheck(start, end S) (S, error) {
	if end > r.totalLength {
		end = r.totalLength
	}
	if start > end {
		return end, fmt.Errorf("rle: replace(%v, %v): %w", start, end, ErrOutOfRange)
	}
	return end, nil
}

// Replace replaces the logical range [start, end) with the concatenation of
// newRuns, each run's own length preserved. This may change Size() by
// sum(newRuns[i].Length) - (end - start). end is clamped to Size(); it is an
// error for start to exceed the clamped end.
func (r *Rle[T, S]) Replace(start, end S, newRuns []Run[T, S]) error {
	end, err := r.clampAndCheck(start, end)
	if err != nil {
		return err
	}

	filtered := make([]Run[T, S], 0, len(newRuns))
	for _, run := range newRuns {
		if run.Length > 0 {
			filtered = append(filtered, run)
		}
	}

	r.replace(start, end, filtered)
	return nil
}

// ReplaceRun replaces [start, end) with a single run, preserving the run's
// own length.
func (r *Rle[T, S]) ReplaceRun(start, end S, run Run[T, S]) error {
	return r.Replace(start, end, []Run[T, S]{run})
}

// ReplaceValue replaces [start, end) with a single run of value, sized to
// exactly fill the (clamped) range.
func (r *Rle[T, S]) ReplaceValue(start, end S, value T) error {
	end, err := r.clampAndCheck(start, end)
	if err != nil {
		return err
	}
	return r.Replace(start, end, []Run[T, S]{{Value: value, Length: end - start}})
}

// replace implements spec.md section 4.5 against already-clamped,
// already-validated indices and an already-filtered (no zero-length runs)
// newRuns slice.
func (r *Rle[T, S]) replace(startIndex, endIndex S, newRuns []Run[T, S]) {
	begin, beginPos := scan(r.store.runs, startIndex)
	end, endPos := scan(r.store.runs, endIndex)

	if len(newRuns) == 0 {
		removed := endIndex - startIndex

		if startIndex != 0 && endIndex != r.totalLength {
			previous := begin
			if beginPos == 0 {
				previous = begin - 1
			}
			if r.store.runs[previous].Value == r.store.runs[end].Value {
				var previousContribution S
				if beginPos != 0 {
					previousContribution = beginPos
				} else {
					previousContribution = r.store.runs[previous].Length
				}
				r.store.runs[end].Length -= endPos - previousContribution
				beginPos = 0
				endPos = 0
				begin = previous
			}
		}

		if beginPos != 0 {
			r.store.runs[begin].Length = beginPos
			begin++
		}
		if endPos != 0 {
			r.store.runs[end].Length -= endPos
		}

		r.store.erase(begin, end)
		r.totalLength -= removed
		return
	}

	var beginAdditionalLength, endAdditionalLength S

	if startIndex != 0 {
		previous := begin
		if beginPos == 0 {
			previous = begin - 1
		}
		if r.store.runs[previous].Value == newRuns[0].Value {
			if beginPos != 0 {
				beginAdditionalLength = beginPos
			} else {
				beginAdditionalLength = r.store.runs[previous].Length
			}
			beginPos = 0
			begin = previous
		}
	}
	if endIndex != r.totalLength {
		if r.store.runs[end].Value == newRuns[len(newRuns)-1].Value {
			endAdditionalLength = r.store.runs[end].Length - endPos
			endPos = 0
			end++
		}
	}

	var trailer *Run[T, S]
	if begin == end && beginPos != 0 {
		trailer = &Run[T, S]{Value: r.store.runs[begin].Value, Length: r.store.runs[begin].Length - endPos}
		endPos = 0
	}

	if beginPos != 0 {
		r.store.runs[begin].Length = beginPos
		begin++
	}
	if endPos != 0 {
		r.store.runs[end].Length -= endPos
	}

	availableSpace := 0
	if begin < end {
		availableSpace = end - begin
	}
	requiredSpace := len(newRuns)
	if trailer != nil {
		requiredSpace++
	}

	beginIndex := begin

	copyCount := availableSpace
	if len(newRuns) < copyCount {
		copyCount = len(newRuns)
	}
	copy(r.store.runs[begin:begin+copyCount], newRuns[:copyCount])
	begin += copyCount
	remaining := newRuns[copyCount:]

	switch {
	case availableSpace >= requiredSpace:
		r.store.erase(begin, end)
	case trailer != nil:
		r.store.insertEmpty(begin, requiredSpace-availableSpace)
		copy(r.store.runs[beginIndex:beginIndex+len(remaining)], remaining)
		r.store.runs[beginIndex+requiredSpace-1] = *trailer
	default:
		r.store.insertRuns(begin, remaining)
	}

	if beginAdditionalLength != 0 {
		r.store.runs[beginIndex].Length += beginAdditionalLength
	}
	if endAdditionalLength != 0 {
		r.store.runs[beginIndex+requiredSpace-1].Length += endAdditionalLength
	}

	r.totalLength -= endIndex - startIndex
	for _, run := range newRuns {
		r.totalLength += run.Length
	}
}

// ReplaceValues reassigns every run's value from old to new in place,
// without changing run lengths or positions, then compacts any runs that
// are now adjacent and equal.
func (r *Rle[T, S]) ReplaceValues(old, new T) {
	for i := range r.store.runs {
		if r.store.runs[i].Value == old {
			r.store.runs[i].Value = new
		}
	}
	r.compact()
}

// compact sweeps the run store once, merging adjacent runs with equal
// values.
func (r *Rle[T, S]) compact() {
	runs := r.store.runs
	if len(runs) == 0 {
		return
	}

	write := 0
	for read := 1; read < len(runs); read++ {
		if runs[write].Value == runs[read].Value {
			runs[write].Length += runs[read].Length
		} else {
			write++
			runs[write] = runs[read]
		}
	}
	r.store.runs = runs[:write+1]
}

// ResizeTrailingExtent grows or shrinks the sequence from its trailing
// edge. Growing an empty container fails with ErrInvalid: there is no
// value to extend with.
func (r *Rle[T, S]) ResizeTrailingExtent(newSize S) error {
	switch {
	case newSize == 0:
		r.store.clear()
	case newSize < r.totalLength:
		run, offset := scan(r.store.runs, newSize-1)
		r.store.runs[run].Length = offset + 1
		r.store.erase(run+1, len(r.store.runs))
	case newSize > r.totalLength:
		if len(r.store.runs) == 0 {
			return fmt.Errorf("rle: resize_trailing_extent(%v): %w", newSize, ErrInvalid)
		}
		last := len(r.store.runs) - 1
		r.store.runs[last].Length += newSize - r.totalLength
	}

	r.totalLength = newSize
	return nil
}
