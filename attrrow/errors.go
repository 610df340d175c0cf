package attrrow

import "errors"

// ErrColumnOutOfRange is returned by At when the column is at or past the
// row's width.
var ErrColumnOutOfRange = errors.New("attrrow: column out of range")

// ErrInvalidResize is returned by Resize when asked to widen a zero-width
// row: there is no attribute to extend with.
var ErrInvalidResize = errors.New("attrrow: cannot widen an empty row")

// ErrInvalidPalette is returned by LoadPalette when the source document is
// not valid JSON.
var ErrInvalidPalette = errors.New("attrrow: invalid palette document")
