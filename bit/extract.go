package bit

// Range returns a new vector holding the linear bits [start, end) of c.
// Matrices are read in row-major order.
//
// The result never shares storage with c, including a request that spans
// the whole container.
func Range(c Container, start, end int) (*Vector, error) {
	if start > end {
		return nil, illegalf("range start %d exceeds end %d", start, end)
	}
	if start < 0 || end > c.Size() {
		return nil, &IndexError{Coords: []int{start, end}, Shape: []int{c.Size()}}
	}
	return newVector(c.storage().Slice(start, end)), nil
}

// Copy returns an independent duplicate of c.
func Copy(c Container) Container {
	return c.Clone()
}
