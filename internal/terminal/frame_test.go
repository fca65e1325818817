package terminal

import (
	"strings"
	"testing"
)

func TestClip(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 3, "hel"},
		{"hello", 0, ""},
		{"日本語", 4, "日本"},
		{"日本語", 5, "日本"},
		{"a日b", 2, "a"},
		// e + combining acute stays one cluster.
		{"e\u0301x", 1, "e\u0301"},
	}
	for _, tc := range tests {
		if got := Clip(tc.in, tc.width); got != tc.want {
			t.Errorf("Clip(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestFrameMoveTo(t *testing.T) {
	var f Frame
	f.MoveTo(0, 0)
	f.MoveTo(4, 9)
	if got := f.String(); got != "\x1b[1;1H\x1b[5;10H" {
		t.Errorf("frame = %q", got)
	}
}

func TestFrameBox(t *testing.T) {
	var f Frame
	f.Box(1, 0, 3, 4)
	out := f.String()
	for _, want := range []string{"┌──┐", "└──┘", "\x1b[3;1H│", "\x1b[3;4H│"} {
		if !strings.Contains(out, want) {
			t.Errorf("box missing %q in %q", want, out)
		}
	}

	f.Reset()
	f.Box(0, 0, 1, 10)
	if f.String() != "" {
		t.Errorf("degenerate box should draw nothing, got %q", f.String())
	}
}

func TestFrameBeginEnd(t *testing.T) {
	var f Frame
	f.Begin()
	f.Text(0, 0, "hi", 10)
	f.End(0, 2)
	out := f.String()
	if !strings.HasPrefix(out, "\x1b[?25l") {
		t.Errorf("frame should hide cursor first: %q", out)
	}
	if !strings.HasSuffix(out, "\x1b[1;3H\x1b[?25h") {
		t.Errorf("frame should end by placing and showing cursor: %q", out)
	}
}
