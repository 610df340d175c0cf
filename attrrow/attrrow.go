package attrrow

import (
	"fmt"

	"github.com/dshills/rowrle/rle"
)

// AttrRow is the external collaborator described in spec.md section 4.9: a
// thin shell around rle.Rle[TextAttribute, uint32] holding one screen
// row's worth of text attributes, column-indexed. It instantiates the
// container with an inline-capacity hint of 1, matching the original
// ATTR_ROW's til::small_rle<TextAttribute, UINT, 1> — most rows are a
// single uniform run.
type AttrRow struct {
	data rle.Rle[TextAttribute, uint32]
}

// New returns a row of the given width, every column set to attr.
func New(width uint32, attr TextAttribute) *AttrRow {
	row := &AttrRow{data: rle.NewWithCapacityHint[TextAttribute, uint32](1)}
	if width > 0 {
		// The store starts empty, so this is a pure insertion at the
		// front — Replace(0, 0, ...) with begin == end == 0.
		_ = row.data.Replace(0, 0, []rle.Run[TextAttribute, uint32]{rle.NewRun(attr, width)})
	}
	return row
}

// Width returns the row's column count.
func (a *AttrRow) Width() uint32 {
	return a.data.Size()
}

// At returns the attribute at the given column, or ErrColumnOutOfRange if
// col is at or past Width().
func (a *AttrRow) At(col uint32) (TextAttribute, error) {
	attr, err := a.data.At(col)
	if err != nil {
		return TextAttribute{}, fmt.Errorf("attrrow: at(%d): %w", col, ErrColumnOutOfRange)
	}
	return attr, nil
}

// SetAttrToEnd sets a single attribute from start through the end of the
// row. If start is already at or past the row's width, this is a no-op —
// the same short-circuit ATTR_ROW::SetAttrToEnd applies before ever
// calling Replace, avoiding the (harmless but wasteful) zero-length
// insertion spec.md section 4.5's tie-breaks describe.
func (a *AttrRow) SetAttrToEnd(start uint32, attr TextAttribute) error {
	width := a.data.Size()
	if start >= width {
		return nil
	}
	return a.data.ReplaceValue(start, width, attr)
}

// Write sets attr across the half-open column range [start, end).
func (a *AttrRow) Write(start, end uint32, attr TextAttribute) error {
	return a.data.ReplaceValue(start, end, attr)
}

// ReplaceValues globally remaps every occurrence of old to new, compacting
// any runs that become adjacent and equal.
func (a *AttrRow) ReplaceValues(old, new TextAttribute) {
	a.data.ReplaceValues(old, new)
}

// Resize grows or shrinks the row to newWidth, extending with the last
// column's attribute when growing. Growing a zero-width row fails with
// ErrInvalidResize: there is no attribute to extend with.
func (a *AttrRow) Resize(newWidth uint32) error {
	if err := a.data.ResizeTrailingExtent(newWidth); err != nil {
		return fmt.Errorf("attrrow: resize(%d): %w", newWidth, ErrInvalidResize)
	}
	return nil
}

// Hyperlinks returns the distinct, non-zero hyperlink ids carried by this
// row's runs, in first-occurrence order. Grounded on ATTR_ROW::GetHyperlinks
// in original_source/, which scans runs for hyperlink ids; a hyperlink id
// can legitimately repeat across non-adjacent runs, so this dedups rather
// than returning one entry per run.
func (a *AttrRow) Hyperlinks() []uint32 {
	var ids []uint32
	seen := make(map[uint32]bool)
	for _, run := range a.data.Runs() {
		id := run.Value.HyperlinkID
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// Runs exposes the row's underlying runs, read-only.
func (a *AttrRow) Runs() []rle.Run[TextAttribute, uint32] {
	return a.data.Runs()
}

// String renders the row's debug form (spec.md section 6): runs separated
// by '|', repeated values within a run separated by spaces. Diagnostic
// use only, the same as til::rle::to_string() in the original.
func (a *AttrRow) String() string {
	return a.data.String()
}
