// Package encoder serializes a board and an optional active piece into a
// compact binary form, for sharing positions and persisting games. Empty
// leading rows are trimmed and cells are packed two per byte.
package encoder

import (
	"encoding/base64"
	"fmt"

	"github.com/g3ner1c/tetris/internal/board"
	"github.com/g3ner1c/tetris/internal/engine/rotation"
	"github.com/g3ner1c/tetris/internal/piece"
)

// Flags is the bit set in the first header byte.
type Flags byte

const (
	// FlagHasPiece marks that the piece header fields are meaningful.
	FlagHasPiece Flags = 1 << 0
)

// maxDim bounds board dimensions, which the header stores as one byte
// each.
const maxDim = 255

// Encode packs the board and piece into bytes. The layout is a 7-byte
// header (flags, rows, cols, piece kind, x, y, r; the piece fields are
// zero without FlagHasPiece) followed by the cell rows from the first
// occupied one, two 4-bit cells per byte.
func Encode(b *board.Board, p *piece.Piece) ([]byte, error) {
	rows, cols := b.Rows(), b.Cols()
	if rows > maxDim || cols > maxDim {
		return nil, fmt.Errorf("encoder: board %dx%d exceeds the %d dimension limit", rows, cols, maxDim)
	}

	var flags Flags
	header := make([]byte, 7)
	header[1] = byte(rows)
	header[2] = byte(cols)
	if p != nil {
		flags |= FlagHasPiece
		header[3] = byte(p.Kind)
		header[4] = byte(int8(p.X))
		header[5] = byte(int8(p.Y))
		header[6] = byte(p.R)
	}
	header[0] = byte(flags)

	first := rows
	for r := 0; r < rows; r++ {
		if !b.RowEmpty(r) {
			first = r
			break
		}
	}
	// Keep the cell count even so rows pack cleanly into half bytes.
	if (rows-first)*cols%2 != 0 && first > 0 {
		first--
	}

	out := append([]byte(nil), header...)
	var carry int8
	half := false
	for r := first; r < rows; r++ {
		for _, cell := range b.Row(r) {
			if !half {
				carry = cell
				half = true
				continue
			}
			out = append(out, byte(carry)<<4|byte(cell))
			half = false
		}
	}
	if half {
		out = append(out, byte(carry)<<4)
	}
	return out, nil
}

// Decode unpacks bytes produced by Encode. The board is restored to its
// full size with the trimmed empty rows prepended; the piece is nil when
// none was encoded.
func Decode(data []byte) (*board.Board, *piece.Piece, error) {
	if len(data) < 7 {
		return nil, nil, fmt.Errorf("encoder: %d bytes is shorter than the header", len(data))
	}
	flags := Flags(data[0])
	rows := int(data[1])
	cols := int(data[2])
	if rows == 0 || cols == 0 {
		return nil, nil, fmt.Errorf("encoder: zero board dimension")
	}

	cells := make([]int8, 0, 2*len(data[7:]))
	for _, by := range data[7:] {
		cells = append(cells, int8(by>>4), int8(by&0x0f))
	}
	// A lone padding nibble from an odd cell count: it either breaks the
	// row multiple, or on a one-column board overfills it by one row.
	if len(cells)%cols == 1 || (cols == 1 && len(cells) == rows+1) {
		if cells[len(cells)-1] == 0 {
			cells = cells[:len(cells)-1]
		}
	}
	if len(cells)%cols != 0 {
		return nil, nil, fmt.Errorf("encoder: %d cells do not fill %d-wide rows", len(cells), cols)
	}
	packed := len(cells) / cols
	if packed > rows {
		return nil, nil, fmt.Errorf("encoder: %d rows encoded for a %d-row board", packed, rows)
	}

	b := board.Zeros(rows, cols)
	for r := 0; r < packed; r++ {
		copy(b.Row(rows-packed+r), cells[r*cols:(r+1)*cols])
	}

	if flags&FlagHasPiece == 0 {
		return b, nil, nil
	}
	kind := piece.Kind(data[3])
	if !kind.Valid() {
		return nil, nil, fmt.Errorf("encoder: invalid piece kind %d", data[3])
	}
	r := int(data[6]) % 4
	p := &piece.Piece{
		Kind:  kind,
		X:     int(int8(data[4])),
		Y:     int(int8(data[5])),
		R:     r,
		Minos: append([]piece.Offset(nil), rotation.Shape(kind, r)...),
	}
	return b, p, nil
}

// EncodeString is Encode in base64 form, for text transports.
func EncodeString(b *board.Board, p *piece.Piece) (string, error) {
	raw, err := Encode(b, p)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeString is Decode for base64 input.
func DecodeString(s string) (*board.Board, *piece.Piece, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, nil, fmt.Errorf("encoder: %w", err)
	}
	return Decode(raw)
}
