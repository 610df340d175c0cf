// Package rle implements a generic run-length-encoded sequence container.
//
// An Rle[T, S] stores a logical sequence of values of type T as a compact
// ordered list of runs, each run a (value, length) pair with length > 0. It
// presents the external shape of a flat, random-access sequence of length
// N = sum(length_i) while internally collapsing adjacent equal values. The
// canonical form never has two adjacent runs sharing a value, and never has
// a zero-length run.
//
// The package is generic over the stored value type T (comparable, cheap to
// copy) and the run-length integer type S (any unsigned integer), so callers
// choose the width that fits their domain — see the attrrow package for an
// instantiation with T = TextAttribute and S = uint32.
package rle
