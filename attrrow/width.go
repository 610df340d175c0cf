package attrrow

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/width"

	"github.com/dshills/rowrle/rle"
)

// RuneColumns returns the display width, in terminal columns, of a single
// rune: 2 for East Asian wide/fullwidth characters, 1 otherwise. It is the
// per-rune lookup NewRunFromString sums; StringColumns does not call it.
// It replaces the teacher's hand-rolled isWideRune range table (whose own
// comment admits it should be a proper Unicode width library) with
// golang.org/x/text/width's lookup table.
func RuneColumns(r rune) uint32 {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	default:
		return 1
	}
}

// StringColumns returns the display width of s in terminal columns,
// grapheme-cluster aware: a single logical column in an attribute row can
// be produced by a multi-rune grapheme cluster (combining marks, ZWJ
// emoji sequences), which a per-rune width sum would overcount.
func StringColumns(s string) uint32 {
	return uint32(uniseg.StringWidth(s))
}

// NewRunFromString sizes a run of attr to exactly fill the columns needed
// to render s, using the single-rune fast path rather than full grapheme
// segmentation — appropriate for plain ASCII/Latin text where no rune
// combines with its neighbor into a single cluster.
func NewRunFromString(s string, attr TextAttribute) rle.Run[TextAttribute, uint32] {
	var cols uint32
	for _, r := range s {
		cols += RuneColumns(r)
	}
	return rle.NewRun(attr, cols)
}
