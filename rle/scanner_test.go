package rle

import "testing"

func TestScan(t *testing.T) {
	runs := []Run[rune, uint32]{
		NewRun[rune, uint32]('a', 3),
		NewRun[rune, uint32]('b', 2),
		NewRun[rune, uint32]('c', 4),
	}

	cases := []struct {
		index      uint32
		wantRun    int
		wantOffset uint32
	}{
		{0, 0, 0},
		{2, 0, 2},
		{3, 1, 0},
		{4, 1, 1},
		{5, 2, 0},
		{8, 2, 3},
		{9, 3, 0}, // one past the end: sentinel
	}

	for _, c := range cases {
		run, offset := scan(runs, c.index)
		if run != c.wantRun || offset != c.wantOffset {
			t.Errorf("scan(%d) = (%d, %d), want (%d, %d)", c.index, run, offset, c.wantRun, c.wantOffset)
		}
	}
}

func TestScanEmpty(t *testing.T) {
	run, offset := scan[rune, uint32](nil, 0)
	if run != 0 || offset != 0 {
		t.Fatalf("scan(nil, 0) = (%d, %d), want (0, 0)", run, offset)
	}
}
