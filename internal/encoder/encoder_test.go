package encoder

import (
	"testing"

	"github.com/g3ner1c/tetris/internal/board"
	"github.com/g3ner1c/tetris/internal/piece"
)

func sampleBoard() *board.Board {
	b := board.Zeros(40, 10)
	for c := 0; c < 10; c++ {
		b.Set(39, c, piece.CellGarbage)
	}
	b.Set(38, 0, int8(piece.KindI))
	b.Set(38, 1, int8(piece.KindI))
	b.Set(35, 4, int8(piece.KindT))
	return b
}

func TestRoundTrip(t *testing.T) {
	in := sampleBoard()
	p := &piece.Piece{Kind: piece.KindT, X: 18, Y: 3, R: 2}

	data, err := Encode(in, p)
	if err != nil {
		t.Fatal(err)
	}
	out, gotPiece, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(in) {
		t.Error("board did not survive the round trip")
	}
	if gotPiece == nil {
		t.Fatal("piece was dropped")
	}
	if gotPiece.Kind != p.Kind || gotPiece.X != p.X || gotPiece.Y != p.Y || gotPiece.R != p.R {
		t.Errorf("piece decoded as %+v, want %+v", gotPiece, p)
	}
	if len(gotPiece.Minos) != 4 {
		t.Errorf("decoded piece has %d minos, want 4", len(gotPiece.Minos))
	}
}

func TestRoundTripWithoutPiece(t *testing.T) {
	in := sampleBoard()
	data, err := Encode(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	out, p, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Errorf("decoded a piece that was never encoded: %+v", p)
	}
	if !out.Equal(in) {
		t.Error("board did not survive the round trip")
	}
}

func TestEmptyRowsAreTrimmed(t *testing.T) {
	data, err := Encode(sampleBoard(), nil)
	if err != nil {
		t.Fatal(err)
	}
	// Header plus the 5 occupied bottom rows at 2 cells per byte.
	if want := 7 + 5*10/2; len(data) != want {
		t.Errorf("encoded %d bytes, want %d", len(data), want)
	}
}

func TestEmptyBoard(t *testing.T) {
	in := board.Zeros(8, 4)
	data, err := Encode(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(in) {
		t.Error("empty board did not survive the round trip")
	}
}

func TestOddCellCount(t *testing.T) {
	in := board.Zeros(5, 3)
	in.Set(4, 1, int8(piece.KindZ))
	in.Set(0, 0, int8(piece.KindL))
	data, err := Encode(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(in) {
		t.Error("odd-sized board did not survive the round trip")
	}
}

func TestSingleColumnOddRows(t *testing.T) {
	// A full-height one-column board with an odd row count ends in a
	// padding nibble that still fills whole rows; Decode must recognize
	// it as padding rather than an extra row.
	in := board.Zeros(5, 1)
	in.Set(0, 0, int8(piece.KindJ))
	in.Set(4, 0, int8(piece.KindS))
	data, err := Encode(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(in) {
		t.Error("one-column board did not survive the round trip")
	}
}

func TestStringRoundTrip(t *testing.T) {
	in := sampleBoard()
	s, err := EncodeString(in, nil)
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(in) {
		t.Error("board did not survive the string round trip")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, _, err := Decode([]byte{1, 2}); err == nil {
		t.Error("short input decoded without error")
	}
	if _, _, err := DecodeString("not base64!!"); err == nil {
		t.Error("invalid base64 decoded without error")
	}
}

func TestOversizedBoardRejected(t *testing.T) {
	if _, err := Encode(board.Zeros(300, 10), nil); err == nil {
		t.Error("a 300-row board should not encode")
	}
}
