package styles

import (
	"bytes"
	"strings"
	"testing"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		wantOK bool
	}{
		{"simple", NameSimple, true},
		{"", NameSimple, true},
		{" Outline ", NameOutline, true},
		{"handdrawn", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Lookup(tt.name)
			if ok != tt.wantOK {
				t.Fatalf("Lookup(%q) ok = %v, want %v", tt.name, ok, tt.wantOK)
			}
			if ok && s.Name() != tt.want {
				t.Errorf("Lookup(%q).Name() = %q, want %q", tt.name, s.Name(), tt.want)
			}
		})
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b uint8
		ok      bool
	}{
		{"#ff8000", 255, 128, 0, true},
		{"#FFF", 255, 255, 255, true},
		{"4e79a7", 0x4e, 0x79, 0xa7, true},
		{"#12345", 0, 0, 0, false},
		{"#zzzzzz", 0, 0, 0, false},
		{"", 0, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			r, g, b, ok := ParseHex(tt.in)
			if ok != tt.ok || r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("ParseHex(%q) = (%d, %d, %d, %v), want (%d, %d, %d, %v)",
					tt.in, r, g, b, ok, tt.r, tt.g, tt.b, tt.ok)
			}
		})
	}
}

func TestPaletteColorWraps(t *testing.T) {
	if got, want := PaletteColor(len(Palette)), Palette[0]; got != want {
		t.Errorf("PaletteColor(len) = %q, want %q", got, want)
	}
	if got := PaletteColor(-1); got != Palette[1] {
		t.Errorf("PaletteColor(-1) = %q, want %q", got, Palette[1])
	}
}

func TestTextColor(t *testing.T) {
	if got := TextColor("#ffffff"); got != "#1a1a1a" {
		t.Errorf("TextColor(white) = %q, want dark", got)
	}
	if got := TextColor("#000080"); got != "#ffffff" {
		t.Errorf("TextColor(navy) = %q, want white", got)
	}
}

func TestTruncateLabel(t *testing.T) {
	short := Block{Label: "go", W: 200, H: 40}
	if got := TruncateLabel(short); got != "go" {
		t.Errorf("TruncateLabel(short) = %q, want %q", got, "go")
	}

	long := Block{Label: strings.Repeat("x", 80), W: 40, H: 40}
	got := TruncateLabel(long)
	if !strings.HasSuffix(got, "..") || len(got) >= len(long.Label) {
		t.Errorf("TruncateLabel(long) = %q, want a shortened label", got)
	}
}

func TestHasRoomForLabel(t *testing.T) {
	tests := []struct {
		name string
		b    Block
		want bool
	}{
		{"roomy", Block{Label: "a", W: 100, H: 50}, true},
		{"narrow", Block{Label: "a", W: 10, H: 50}, false},
		{"flat", Block{Label: "a", W: 100, H: 5}, false},
		{"unlabeled", Block{W: 100, H: 50}, false},
		{"group", Block{Label: "g", W: 100, H: 16, Group: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasRoomForLabel(tt.b); got != tt.want {
				t.Errorf("HasRoomForLabel() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderBlock(t *testing.T) {
	b := Block{ID: "a&b", Label: "A", X: 1, Y: 2, W: 30, H: 40, Fill: "#4e79a7"}

	var buf bytes.Buffer
	Simple{}.RenderBlock(&buf, b)
	out := buf.String()
	for _, want := range []string{`id="block-a&amp;b"`, `fill="#4e79a7"`, `width="30.00"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Simple.RenderBlock() missing %s in %s", want, out)
		}
	}

	buf.Reset()
	Outline{}.RenderBlock(&buf, b)
	if out := buf.String(); !strings.Contains(out, `fill="none"`) || !strings.Contains(out, `stroke="#4e79a7"`) {
		t.Errorf("Outline.RenderBlock() = %s, want stroke-only rect", out)
	}
}

func TestRenderTextSkipsTinyBlocks(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderText(&buf, Block{ID: "a", Label: "A", W: 5, H: 5})
	if buf.Len() != 0 {
		t.Errorf("RenderText() wrote %q for a tiny block", buf.String())
	}
}
