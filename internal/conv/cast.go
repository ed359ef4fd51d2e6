package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// CellCount returns rows*cols, failing if the product does not fit the
// 32-bit index space used by roaring-backed storage.
func CellCount(rows, cols int) (uint32, error) {
	if rows < 0 || cols < 0 {
		return 0, fmt.Errorf("invalid shape: %dx%d", rows, cols)
	}
	if cols != 0 && uint64(rows) > math.MaxUint32/uint64(cols) {
		return 0, fmt.Errorf("integer overflow: %dx%d cells exceed uint32", rows, cols)
	}
	return uint32(rows * cols), nil
}

// FloatToInt converts an integral float64 to int.
// Non-integral, NaN and out-of-range values fail.
func FloatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("cannot convert %v to int", f)
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("cannot convert %v to int (not integral)", f)
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("integer overflow: %v cannot be converted to int", f)
	}
	return int(f), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
