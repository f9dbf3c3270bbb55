// Package board implements the playfield grid: a flat int8 buffer with
// row-range views that share storage instead of copying. Mutating through
// a view mutates the owner; Copy is the only way to get detached storage.
package board

import "fmt"

// Board is a 2D grid of mino codes. Row 0 is the top. A Board obtained
// from View aliases its parent's backing buffer.
type Board struct {
	data []int8
	rows int
	cols int
}

// Zeros returns a new zero-filled board with its own storage.
func Zeros(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("board: invalid shape %dx%d", rows, cols))
	}
	return &Board{
		data: make([]int8, rows*cols),
		rows: rows,
		cols: cols,
	}
}

// FromRows builds a board from explicit row data, copying it. Ragged or
// empty input is a configuration error.
func FromRows(rows [][]int8) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("board: empty shape")
	}
	cols := len(rows[0])
	b := Zeros(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("board: ragged row %d: got %d cells, want %d", i, len(row), cols)
		}
		copy(b.data[i*cols:(i+1)*cols], row)
	}
	return b, nil
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// index normalizes negative indices (counting from the end, like a slice
// of rows would in the original) and panics on out-of-range access.
func (b *Board) index(r, c int) int {
	if r < 0 {
		r += b.rows
	}
	if c < 0 {
		c += b.cols
	}
	if r < 0 || r >= b.rows || c < 0 || c >= b.cols {
		panic(fmt.Sprintf("board: index (%d, %d) out of range %dx%d", r, c, b.rows, b.cols))
	}
	return r*b.cols + c
}

// Get returns the cell at (row, col). Negative indices wrap around once;
// anything still out of range panics.
func (b *Board) Get(r, c int) int8 {
	return b.data[b.index(r, c)]
}

// Set writes the cell at (row, col), with the same index rules as Get.
func (b *Board) Set(r, c int, v int8) {
	b.data[b.index(r, c)] = v
}

// InBounds reports whether (row, col) addresses a cell without wrapping.
func (b *Board) InBounds(r, c int) bool {
	return r >= 0 && r < b.rows && c >= 0 && c < b.cols
}

// View returns a board over rows [from, to) sharing this board's storage.
// Writes through the view are visible in the parent and vice versa.
func (b *Board) View(from, to int) (*Board, error) {
	if from < 0 || to > b.rows || from >= to {
		return nil, fmt.Errorf("board: view [%d, %d) out of range for %d rows", from, to, b.rows)
	}
	return &Board{
		data: b.data[from*b.cols : to*b.cols],
		rows: to - from,
		cols: b.cols,
	}, nil
}

// Row returns row r as a slice into the backing buffer (a borrow, not a
// copy).
func (b *Board) Row(r int) []int8 {
	if r < 0 {
		r += b.rows
	}
	if r < 0 || r >= b.rows {
		panic(fmt.Sprintf("board: row %d out of range %d", r, b.rows))
	}
	return b.data[r*b.cols : (r+1)*b.cols]
}

// Copy returns a deep clone with detached storage. Required before
// exposing boards with transient render overlays.
func (b *Board) Copy() *Board {
	dup := &Board{
		data: make([]int8, len(b.data)),
		rows: b.rows,
		cols: b.cols,
	}
	copy(dup.data, b.data)
	return dup
}

// Fill sets every cell to v. Fill(0) is the reset operation.
func (b *Board) Fill(v int8) {
	for i := range b.data {
		b.data[i] = v
	}
}

// RowFull reports whether every cell in row r is occupied.
func (b *Board) RowFull(r int) bool {
	for _, v := range b.Row(r) {
		if v == 0 {
			return false
		}
	}
	return true
}

// RowEmpty reports whether every cell in row r is empty.
func (b *Board) RowEmpty(r int) bool {
	for _, v := range b.Row(r) {
		if v != 0 {
			return false
		}
	}
	return true
}

// ClearRow removes row i: rows [0, i) shift down into [1, i] and row 0 is
// zeroed, so clears propagate from the top and the buffer region above
// stays coherent.
func (b *Board) ClearRow(i int) {
	if i < 0 || i >= b.rows {
		panic(fmt.Sprintf("board: clear row %d out of range %d", i, b.rows))
	}
	copy(b.data[b.cols:(i+1)*b.cols], b.data[:i*b.cols])
	for c := 0; c < b.cols; c++ {
		b.data[c] = 0
	}
}

// Equal reports whether two boards have the same shape and contents.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for i, v := range b.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}
