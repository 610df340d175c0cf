package attrrow

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"FF8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false},
		{"#000", 0, 0, 0, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := ColorFromHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ColorFromHex(%q): want error, got nil", tt.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("ColorFromHex(%q): unexpected error: %v", tt.hex, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("ColorFromHex(%q) = (%d,%d,%d), want (%d,%d,%d)", tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
		}
	}
}

func TestColorEquals(t *testing.T) {
	a := ColorFromRGB(10, 20, 30)
	b := ColorFromRGB(10, 20, 30)
	c := ColorFromRGB(10, 20, 31)

	if !a.Equals(b) {
		t.Fatal("identical RGB colors should be equal")
	}
	if a.Equals(c) {
		t.Fatal("differing RGB colors should not be equal")
	}
	if !ColorDefault.Equals(Color{Default: true}) {
		t.Fatal("two default colors should be equal regardless of other fields")
	}
}

func TestColorBlendTrueColor(t *testing.T) {
	red := ColorFromRGB(255, 0, 0)
	cyan := ColorFromRGB(0, 255, 255)

	if got := red.Blend(cyan, 0); !got.Equals(red) {
		t.Fatalf("Blend(amount=0) = %v, want %v", got, red)
	}
	blended := red.Blend(cyan, 0.5)
	if blended.Indexed || blended.Default {
		t.Fatal("blending two true colors should produce a true color")
	}
}

func TestColorBlendIndexedFallsBackToCutover(t *testing.T) {
	a := ColorFromIndex(1)
	b := ColorFromIndex(2)

	if got := a.Blend(b, 0.25); !got.Equals(a) {
		t.Fatalf("Blend(0.25) on indexed colors = %v, want %v", got, a)
	}
	if got := a.Blend(b, 0.75); !got.Equals(b) {
		t.Fatalf("Blend(0.75) on indexed colors = %v, want %v", got, b)
	}
}

func TestColorToHex(t *testing.T) {
	c := ColorFromRGB(0xAB, 0xCD, 0xEF)
	if got, want := c.ToHex(), "#ABCDEF"; got != want {
		t.Fatalf("ToHex() = %q, want %q", got, want)
	}
	if got := ColorFromIndex(5).ToHex(); got != "" {
		t.Fatalf("ToHex() on indexed color = %q, want empty", got)
	}
}
