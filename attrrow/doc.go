// Package attrrow is the terminal-facing collaborator described in
// spec.md section 4.9: a thin shell around rle.Rle[TextAttribute, uint32]
// that exposes column-indexed reads and range writes over a single screen
// row's text attributes.
//
// AttrRow owns no rendering, buffer, or I/O concerns — it hands back
// values (a TextAttribute, a tcell.Style, a hyperlink id list) for a
// caller elsewhere in the stack to act on. All algorithmic weight lives in
// the rle package; this package only adapts that container to the
// text-attribute domain.
package attrrow
