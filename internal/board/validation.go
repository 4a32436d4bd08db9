package board

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedSize = errors.New("unsupported board size")
	ErrInvalidPosition = errors.New("position out of bounds")
	ErrInvalidValue    = errors.New("value out of range for board size")
	ErrIllegalMove     = errors.New("move violates puzzle constraints")
)

// IsValid reports whether the board satisfies all puzzle constraints.
// Blank cells are ignored for validation.
func (b *Board) IsValid() bool {
	rowCheck := make([]uint, b.size)
	colCheck := make([]uint, b.size)
	boxCheck := make([]uint, b.size)

	for pos := 0; pos < b.Cells(); pos++ {
		val := b.cells[pos]
		if val == Blank {
			continue
		}

		row, col, box := pos/b.size, pos%b.size, b.box(pos)
		mask := uint(1) << (val - 1)

		// Check for duplicates in row, column, or box
		if rowCheck[row]&mask != 0 ||
			colCheck[col]&mask != 0 ||
			boxCheck[box]&mask != 0 {
			return false
		}

		rowCheck[row] |= mask
		colCheck[col] |= mask
		boxCheck[box] |= mask
	}

	return true
}

// IsComplete reports whether the board is fully filled and satisfies
// all puzzle constraints.
func (b *Board) IsComplete() bool {
	return b.emptyCount == 0 && b.IsValid()
}

// isValidPosition reports whether a given position is in bounds.
func (b *Board) isValidPosition(pos int) bool {
	return pos >= 0 && pos < b.Cells()
}

// validatePosition checks if a position is within board bounds.
func (b *Board) validatePosition(pos int) error {
	if !b.isValidPosition(pos) {
		return fmt.Errorf("%w: position %d must be in range [0, %d)", ErrInvalidPosition, pos, b.Cells())
	}
	return nil
}

// validateValue checks if a value is valid for the board size.
func (b *Board) validateValue(val Cell) error {
	if val != Blank && int(val) > b.size {
		return fmt.Errorf("%w: got %d, board size %d", ErrInvalidValue, val, b.size)
	}
	return nil
}
