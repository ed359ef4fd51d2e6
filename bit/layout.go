package bit

import "slices"

// Layout is the addressing strategy of a container: it maps a coordinate
// tuple onto the linear bit index used by the shared storage.
type Layout interface {
	// Rank is the number of coordinates that address one bit.
	Rank() int

	// Shape returns the extent per coordinate.
	Shape() []int

	// Size returns the total number of bits.
	Size() int

	// Offset maps coords to a linear index.
	// A wrong coordinate count fails with ErrIllegalArgument, a coordinate
	// outside the extent with an *IndexError.
	Offset(coords ...int) (int, error)
}

// linear addresses a vector: one coordinate, identity mapping.
type linear struct {
	n int
}

func (l linear) Rank() int    { return 1 }
func (l linear) Shape() []int { return []int{l.n} }
func (l linear) Size() int    { return l.n }

func (l linear) Offset(coords ...int) (int, error) {
	if len(coords) != 1 {
		return 0, illegalf("vector index takes 1 coordinate, got %d", len(coords))
	}
	i := coords[0]
	if i < 0 || i >= l.n {
		return 0, &IndexError{Coords: []int{i}, Shape: l.Shape()}
	}
	return i, nil
}

// rowMajor addresses a matrix by (column, row); index = row*cols + column.
type rowMajor struct {
	cols, rows int
}

func (l rowMajor) Rank() int    { return 2 }
func (l rowMajor) Shape() []int { return []int{l.cols, l.rows} }
func (l rowMajor) Size() int    { return l.cols * l.rows }

func (l rowMajor) Offset(coords ...int) (int, error) {
	if len(coords) != 2 {
		return 0, illegalf("matrix index takes 2 coordinates (column, row), got %d", len(coords))
	}
	c, r := coords[0], coords[1]
	if c < 0 || c >= l.cols || r < 0 || r >= l.rows {
		return 0, &IndexError{Coords: []int{c, r}, Shape: l.Shape()}
	}
	return r*l.cols + c, nil
}

// sameLayout reports whether two layouts address identical shapes.
func sameLayout(a, b Layout) bool {
	return a.Rank() == b.Rank() && slices.Equal(a.Shape(), b.Shape())
}
