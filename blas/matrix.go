package blas

// Matrix is a two-dimensional mutable array of float64 values.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at row i, column j.
	// Returns ErrOutOfRange if the indices are invalid.
	At(i, j int) (float64, error)

	// Set assigns v at row i, column j.
	// Returns ErrOutOfRange if the indices are invalid.
	Set(i, j int, v float64) error

	// NonZeros returns the number of non-zero entries.
	NonZeros() int

	// ToArray materializes the matrix as rows of values.
	ToArray() [][]float64

	// Format reports the storage strategy.
	Format() Format

	// Clone returns an independent deep copy.
	Clone() Matrix
}

// Vector is a one-dimensional mutable array of float64 values.
type Vector interface {
	// Len returns the number of entries.
	Len() int

	// At retrieves entry i. Returns ErrOutOfRange if i is invalid.
	At(i int) (float64, error)

	// Set assigns v at entry i. Returns ErrOutOfRange if i is invalid.
	Set(i int, v float64) error

	// NonZeros returns the number of non-zero entries.
	NonZeros() int

	// ToArray materializes the vector.
	ToArray() []float64

	// Format reports the storage strategy.
	Format() Format

	// Clone returns an independent deep copy.
	Clone() Vector
}

var (
	_ Matrix = (*Dense)(nil)
	_ Matrix = (*Sparse)(nil)
	_ Vector = (*DenseVector)(nil)
	_ Vector = (*SparseVector)(nil)
)
