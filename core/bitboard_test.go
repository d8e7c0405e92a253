package core

import "testing"

func TestBitboardSetClearHas(t *testing.T) {
	var bb Bitboard
	bb = bb.Set(E4)
	if !bb.Has(E4) {
		t.Fatalf("expected E4 set")
	}
	bb = bb.Clear(E4)
	if bb.Has(E4) {
		t.Fatalf("expected E4 cleared")
	}
}

func TestBitboardCount(t *testing.T) {
	bb := Bitboard(0).Set(A8).Set(H1).Set(E4)
	if got := bb.Count(); got != 3 {
		t.Fatalf("count: got %d want 3", got)
	}
}

func TestBitboardLSBAndPopLSB(t *testing.T) {
	bb := Bitboard(0).Set(D4).Set(A8)
	if got := bb.LSB(); got != A8 {
		t.Fatalf("LSB: got %s want %s", got, A8)
	}
	sq := bb.PopLSB()
	if sq != A8 {
		t.Fatalf("PopLSB: got %s want %s", sq, A8)
	}
	if bb.Has(A8) {
		t.Fatalf("PopLSB should have cleared A8")
	}
	if !bb.Has(D4) {
		t.Fatalf("PopLSB should not touch D4")
	}
}

func TestBitboardEmpty(t *testing.T) {
	if !EmptyBoard.Empty() {
		t.Fatalf("EmptyBoard should be empty")
	}
	if FullBoard.Empty() {
		t.Fatalf("FullBoard should not be empty")
	}
}

func TestFileMasksExcludeTheirFile(t *testing.T) {
	if NotFileA&FileA != 0 {
		t.Fatalf("NotFileA should have no bits in common with FileA")
	}
	if NotFileH&FileH != 0 {
		t.Fatalf("NotFileH should have no bits in common with FileH")
	}
	if NotFileAB&(FileA|FileA<<1) != 0 {
		t.Fatalf("NotFileAB should have no bits in common with files a and b")
	}
}
