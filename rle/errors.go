package rle

import "errors"

// ErrOutOfRange is returned by At when the index is at or past the total
// length, and by Replace when start exceeds the (clamped) end.
var ErrOutOfRange = errors.New("rle: index out of range")

// ErrInvalid is returned by ResizeTrailingExtent when asked to extend an
// empty container: there is no run to pick an extension value from.
var ErrInvalid = errors.New("rle: invalid operation")
