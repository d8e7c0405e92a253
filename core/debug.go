package core

import "fmt"

// PrintBoard prints an ASCII diagram of pos to stdout, ranks 8-1 down the
// side and files a-h along the bottom, followed by its FEN, mirroring the teacher's board-printing
// style used during development and debugging.
func PrintBoard(pos *Position) {
	for rank := 0; rank < 8; rank++ {
		fmt.Printf("%d  ", 8-rank)
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			cp := pos.PieceAt(sq)
			if cp == NoPiece {
				fmt.Print(". ")
				continue
			}
			fmt.Printf("%c ", cp.Letter())
		}
		fmt.Println()
	}
	fmt.Println("   a b c d e f g h")
	fmt.Printf("FEN: %s\n", pos.String())
}

// Print2dBitboard prints b as an 8x8 grid of 1s and 0s, rank 8 first, for
// inspecting individual attack or occupancy tables.
func Print2dBitboard(b Bitboard) {
	for rank := 0; rank < 8; rank++ {
		fmt.Printf("%d  ", 8-rank)
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			if b.Has(sq) {
				fmt.Print("1 ")
			} else {
				fmt.Print("0 ")
			}
		}
		fmt.Println()
	}
	fmt.Println("   a b c d e f g h")
}
