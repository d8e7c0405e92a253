package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/corvid-engine/corvid/core"
)

func TestBoardWritesSVGMarkup(t *testing.T) {
	pos := core.StartPosition()
	var buf bytes.Buffer
	Board(&buf, &pos)

	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatalf("expected SVG markup to contain an <svg> tag, got %q", out)
	}
	if !strings.Contains(out, "</svg>") {
		t.Fatalf("expected SVG markup to be closed, got %q", out)
	}
}

func TestBoardRendersEmptyPosition(t *testing.T) {
	var pos core.Position
	for i := range pos.Mailbox {
		pos.Mailbox[i] = core.NoPiece
	}
	var buf bytes.Buffer
	Board(&buf, &pos)
	if buf.Len() == 0 {
		t.Fatalf("expected non-empty SVG output for an empty board")
	}
}
