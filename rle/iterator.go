package rle

// Iterator is a bidirectional, random-access cursor over the logical
// sequence exposed by an Rle: a run position plus a 1-based usage within
// that run. The zero value is not meaningful; obtain one via Rle.Begin or
// Rle.End.
//
// An Iterator holds the run slice it was created from by value (a slice
// header, not a copy of the backing array). Any mutating Rle operation
// (Replace, ReplaceValues, ResizeTrailingExtent) may write into that
// backing array in place or replace it with a new one, so an Iterator
// obtained before such a call may see the pre-mutation runs, the updated
// runs, or a mix of both: it is logically stale and must not be mixed with
// iterators from after the mutation. Re-derive iterators after any
// mutation.
type Iterator[T comparable, S Unsigned] struct {
	runs  []Run[T, S]
	run   int
	usage S
}

func newBeginIterator[T comparable, S Unsigned](runs []Run[T, S]) Iterator[T, S] {
	return Iterator[T, S]{runs: runs, run: 0, usage: 1}
}

func newEndIterator[T comparable, S Unsigned](runs []Run[T, S]) Iterator[T, S] {
	return Iterator[T, S]{runs: runs, run: len(runs), usage: 1}
}

// Value returns the value at the iterator's current position. It panics if
// the iterator is past-the-end, the same as dereferencing an end iterator
// is undefined behavior in the original implementation.
func (it Iterator[T, S]) Value() T {
	return it.runs[it.run].Value
}

// advance implements operator+= from spec.md section 4.8.
func (it *Iterator[T, S]) advance(move int64) {
	if move >= 0 {
		for move > 0 {
			space := int64(it.runs[it.run].Length) - int64(it.usage)
			if space >= move {
				it.usage += S(move)
				move = 0
			} else {
				move -= space + 1
				it.run++
				it.usage = 1
			}
		}
	} else {
		move = -move
		for move > 0 {
			space := int64(it.usage) - 1
			if space >= move {
				it.usage -= S(move)
				move = 0
			} else {
				move -= int64(it.usage)
				it.run--
				it.usage = it.runs[it.run].Length
			}
		}
	}
}

// Next advances the iterator by one position.
func (it *Iterator[T, S]) Next() {
	it.advance(1)
}

// Prev retreats the iterator by one position.
func (it *Iterator[T, S]) Prev() {
	it.advance(-1)
}

// Plus returns a copy of the iterator advanced by offset (which may be
// negative).
func (it Iterator[T, S]) Plus(offset int64) Iterator[T, S] {
	it.advance(offset)
	return it
}

// Minus returns a copy of the iterator retreated by offset.
func (it Iterator[T, S]) Minus(offset int64) Iterator[T, S] {
	it.advance(-offset)
	return it
}

// At returns the value offset positions away from the iterator, without
// mutating it. Equivalent to it.Plus(offset).Value().
func (it Iterator[T, S]) At(offset int64) T {
	return it.Plus(offset).Value()
}

// Sub returns the signed logical distance from other to it (it - other),
// aligning the two cursors one run at a time. Both iterators must derive
// from the same Rle.
func (it Iterator[T, S]) Sub(other Iterator[T, S]) int64 {
	var accumulation int64
	tmp := other

	for it.run > tmp.run {
		accumulation += int64(tmp.runs[tmp.run].Length) - int64(tmp.usage) + 1
		tmp.run++
		tmp.usage = 1
	}
	for it.run < tmp.run {
		accumulation -= int64(tmp.usage)
		tmp.run--
		tmp.usage = tmp.runs[tmp.run].Length
	}

	accumulation += int64(it.usage) - int64(tmp.usage)
	return accumulation
}

// Equal reports whether two iterators point at the same position.
func (it Iterator[T, S]) Equal(other Iterator[T, S]) bool {
	return it.run == other.run && it.usage == other.usage
}

// Less reports whether it precedes other in logical order.
func (it Iterator[T, S]) Less(other Iterator[T, S]) bool {
	return it.run < other.run || (it.run == other.run && it.usage < other.usage)
}

// ReverseIterator adapts Iterator the way std::reverse_iterator adapts a
// bidirectional iterator: ReverseIterator's Value is the element one
// position before the wrapped forward position, and Next/Prev invert
// direction.
type ReverseIterator[T comparable, S Unsigned] struct {
	it Iterator[T, S]
}

func newReverseIterator[T comparable, S Unsigned](it Iterator[T, S]) ReverseIterator[T, S] {
	return ReverseIterator[T, S]{it: it}
}

// Value returns the value at the reverse iterator's current position.
func (r ReverseIterator[T, S]) Value() T {
	return r.it.Minus(1).Value()
}

// Next advances the reverse iterator by one position (backwards in logical
// order).
func (r *ReverseIterator[T, S]) Next() {
	r.it.advance(-1)
}

// Prev retreats the reverse iterator by one position (forwards in logical
// order).
func (r *ReverseIterator[T, S]) Prev() {
	r.it.advance(1)
}

// Plus returns a copy advanced by offset.
func (r ReverseIterator[T, S]) Plus(offset int64) ReverseIterator[T, S] {
	return ReverseIterator[T, S]{it: r.it.Minus(offset)}
}

// Minus returns a copy retreated by offset.
func (r ReverseIterator[T, S]) Minus(offset int64) ReverseIterator[T, S] {
	return ReverseIterator[T, S]{it: r.it.Plus(offset)}
}

// Sub returns the signed logical distance from other to r.
func (r ReverseIterator[T, S]) Sub(other ReverseIterator[T, S]) int64 {
	return other.it.Sub(r.it)
}

// Equal reports whether two reverse iterators point at the same position.
func (r ReverseIterator[T, S]) Equal(other ReverseIterator[T, S]) bool {
	return r.it.Equal(other.it)
}
