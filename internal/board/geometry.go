package board

import "fmt"

// Shape describes the rectangular box tiling of a board.
// Boxes are BoxRows cells tall and BoxCols cells wide, and
// BoxRows * BoxCols always equals the board size, so boxes tile
// the grid exactly.
type Shape struct {
	BoxRows int
	BoxCols int
}

// shapes enumerates the supported sizes and their box tilings.
// These are the only decompositions the engine defines; arbitrary
// sizes are rejected at the boundary rather than derived at runtime.
var shapes = map[int]Shape{
	4: {BoxRows: 2, BoxCols: 2},
	6: {BoxRows: 2, BoxCols: 3},
	9: {BoxRows: 3, BoxCols: 3},
}

// ShapeOf returns the box tiling for a supported board size.
func ShapeOf(size int) (Shape, error) {
	s, ok := shapes[size]
	if !ok {
		return Shape{}, fmt.Errorf("%w: %d (supported sizes: 4, 6, 9)", ErrUnsupportedSize, size)
	}
	return s, nil
}

// SupportedSize reports whether the given size has a defined box tiling.
func SupportedSize(size int) bool {
	_, ok := shapes[size]
	return ok
}
