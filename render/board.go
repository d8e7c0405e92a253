// Package render draws a core.Position as an SVG diagram, using
// github.com/ajstarks/svgo, a dependency that the sibling example repo in
// this corpus (0x5844-chess) carries without ever exercising it.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/corvid-engine/corvid/core"
)

const (
	squareSize = 64
	boardSize  = squareSize * 8
)

var (
	lightSquareFill = "fill:#eeeed2"
	darkSquareFill  = "fill:#769656"
	pieceStyle      = "font-family:serif;font-size:48px;text-anchor:middle;dominant-baseline:central"
)

// Board writes pos as an 8x8 SVG diagram to w, files a-h left to right and
// ranks 8-1 top to bottom, matching the way Position.String renders FEN.
func Board(w io.Writer, pos *core.Position) {
	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)
	defer canvas.End()

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			x, y := file*squareSize, rank*squareSize
			style := lightSquareFill
			if (rank+file)%2 == 1 {
				style = darkSquareFill
			}
			canvas.Rect(x, y, squareSize, squareSize, style)

			sq := core.Square(rank*8 + file)
			cp := pos.PieceAt(sq)
			if cp == core.NoPiece {
				continue
			}
			cx, cy := x+squareSize/2, y+squareSize/2+16
			canvas.Text(cx, cy, string(pieceGlyph(cp)), pieceStyle+";fill:"+pieceColor(cp))
		}
	}
}

// pieceGlyph maps a colored piece to its Unicode chess symbol, always the
// solid black-style glyph -- color is conveyed by fill, not by glyph
// choice, so black and white pieces of the same kind share a symbol.
func pieceGlyph(cp core.ColoredPiece) rune {
	switch cp.Kind() {
	case core.Pawn:
		return '♟'
	case core.Knight:
		return '♞'
	case core.Bishop:
		return '♝'
	case core.Rook:
		return '♜'
	case core.Queen:
		return '♛'
	case core.King:
		return '♚'
	default:
		return '?'
	}
}

func pieceColor(cp core.ColoredPiece) string {
	if cp.Side() == core.White {
		return "#ffffff"
	}
	return "#202020"
}
