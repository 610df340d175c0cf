package attrrow

import "testing"

func plainAttr(fg Color) TextAttribute {
	return TextAttribute{Foreground: fg, Background: ColorDefault}
}

func TestNewRowBasics(t *testing.T) {
	red := plainAttr(ColorFromRGB(255, 0, 0))
	row := New(5, red)

	if got := row.Width(); got != 5 {
		t.Fatalf("Width() = %d, want 5", got)
	}
	for col := uint32(0); col < 5; col++ {
		attr, err := row.At(col)
		if err != nil {
			t.Fatalf("At(%d): %v", col, err)
		}
		if !attr.Foreground.Equals(red.Foreground) {
			t.Fatalf("At(%d).Foreground = %v, want %v", col, attr.Foreground, red.Foreground)
		}
	}
	if _, err := row.At(5); err == nil {
		t.Fatal("At(5) on a 5-wide row: want ErrColumnOutOfRange, got nil")
	}
}

func TestNewZeroWidthRow(t *testing.T) {
	row := New(0, DefaultTextAttribute())
	if row.Width() != 0 {
		t.Fatalf("Width() = %d, want 0", row.Width())
	}
	if _, err := row.At(0); err == nil {
		t.Fatal("At(0) on an empty row: want ErrColumnOutOfRange, got nil")
	}
}

func TestWrite(t *testing.T) {
	row := New(10, plainAttr(ColorFromRGB(1, 1, 1)))
	blue := plainAttr(ColorFromRGB(0, 0, 255))

	if err := row.Write(3, 6, blue); err != nil {
		t.Fatalf("Write: %v", err)
	}

	for col := uint32(3); col < 6; col++ {
		attr, _ := row.At(col)
		if !attr.Foreground.Equals(blue.Foreground) {
			t.Fatalf("At(%d) after Write(3,6,blue) = %v, want blue", col, attr.Foreground)
		}
	}
	attr, _ := row.At(0)
	if attr.Foreground.Equals(blue.Foreground) {
		t.Fatal("column 0 should not have been touched by Write(3,6,...)")
	}
}

func TestSetAttrToEnd(t *testing.T) {
	row := New(5, plainAttr(ColorFromRGB(1, 1, 1)))
	green := plainAttr(ColorFromRGB(0, 255, 0))

	if err := row.SetAttrToEnd(2, green); err != nil {
		t.Fatalf("SetAttrToEnd: %v", err)
	}
	for col := uint32(2); col < 5; col++ {
		attr, _ := row.At(col)
		if !attr.Foreground.Equals(green.Foreground) {
			t.Fatalf("At(%d) = %v, want green", col, attr.Foreground)
		}
	}
}

func TestSetAttrToEndShortCircuitsPastWidth(t *testing.T) {
	row := New(5, plainAttr(ColorFromRGB(1, 1, 1)))
	before := row.String()

	if err := row.SetAttrToEnd(5, plainAttr(ColorFromRGB(0, 255, 0))); err != nil {
		t.Fatalf("SetAttrToEnd at width: %v", err)
	}
	if row.String() != before {
		t.Fatalf("SetAttrToEnd(5, ...) on a 5-wide row mutated the row: %q -> %q", before, row.String())
	}

	if err := row.SetAttrToEnd(100, plainAttr(ColorFromRGB(0, 255, 0))); err != nil {
		t.Fatalf("SetAttrToEnd past width: %v", err)
	}
	if row.String() != before {
		t.Fatal("SetAttrToEnd past width mutated the row")
	}
}

func TestReplaceValues(t *testing.T) {
	a := plainAttr(ColorFromRGB(1, 0, 0))
	b := plainAttr(ColorFromRGB(0, 1, 0))

	row := New(10, a)
	if err := row.Write(4, 6, b); err != nil {
		t.Fatalf("Write: %v", err)
	}
	row.ReplaceValues(b, a)

	for col := uint32(0); col < 10; col++ {
		attr, _ := row.At(col)
		if !attr.Foreground.Equals(a.Foreground) {
			t.Fatalf("At(%d) after ReplaceValues(b, a) = %v, want a", col, attr.Foreground)
		}
	}
}

func TestResize(t *testing.T) {
	row := New(3, plainAttr(ColorFromRGB(9, 9, 9)))

	if err := row.Resize(6); err != nil {
		t.Fatalf("grow: %v", err)
	}
	if row.Width() != 6 {
		t.Fatalf("Width() after grow = %d, want 6", row.Width())
	}

	if err := row.Resize(2); err != nil {
		t.Fatalf("shrink: %v", err)
	}
	if row.Width() != 2 {
		t.Fatalf("Width() after shrink = %d, want 2", row.Width())
	}
}

func TestResizeEmptyRowFails(t *testing.T) {
	row := New(0, DefaultTextAttribute())
	if err := row.Resize(4); err == nil {
		t.Fatal("Resize on an empty row: want ErrInvalidResize, got nil")
	}
}

func TestHyperlinksDedupsAcrossNonAdjacentRuns(t *testing.T) {
	plain := DefaultTextAttribute()
	link1 := plain.WithHyperlink(1)
	link2 := plain.WithHyperlink(2)

	row := New(10, plain)
	if err := row.Write(0, 2, link1); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := row.Write(2, 4, link2); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := row.Write(4, 6, plain); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := row.Write(6, 8, link1); err != nil {
		t.Fatalf("Write: %v", err)
	}

	links := row.Hyperlinks()
	if len(links) != 2 {
		t.Fatalf("Hyperlinks() = %v, want 2 distinct ids", links)
	}
	if links[0] != 1 || links[1] != 2 {
		t.Fatalf("Hyperlinks() = %v, want [1 2] in first-occurrence order", links)
	}
}

func TestHyperlinksEmptyWhenNoneSet(t *testing.T) {
	row := New(5, DefaultTextAttribute())
	if links := row.Hyperlinks(); len(links) != 0 {
		t.Fatalf("Hyperlinks() = %v, want empty", links)
	}
}
