package bit

import "fmt"

// Threshold is the cutoff for numeric coercion: v maps to true iff v > Threshold.
const Threshold = 0.5

// Coerce converts a value to a bit. Booleans pass through; any Go integer
// or float maps to true iff it is strictly greater than Threshold. Other
// types fail with ErrTypeCoercion.
func Coerce(value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case float64:
		return v > Threshold, nil
	case float32:
		return float64(v) > Threshold, nil
	case int:
		return float64(v) > Threshold, nil
	case int8:
		return float64(v) > Threshold, nil
	case int16:
		return float64(v) > Threshold, nil
	case int32:
		return float64(v) > Threshold, nil
	case int64:
		return float64(v) > Threshold, nil
	case uint:
		return v > 0, nil
	case uint8:
		return v > 0, nil
	case uint16:
		return v > 0, nil
	case uint32:
		return v > 0, nil
	case uint64:
		return v > 0, nil
	default:
		return false, fmt.Errorf("%w: %T", ErrTypeCoercion, value)
	}
}

// Assign sets every index to v, in order.
//
// The first failing index stops the loop; indices before it keep the new
// value.
func Assign(c Container, v bool, indices ...Index) error {
	for _, idx := range indices {
		if err := c.Set(v, idx...); err != nil {
			return err
		}
	}
	return nil
}

// Clear is Assign(c, false, indices...).
func Clear(c Container, indices ...Index) error {
	return Assign(c, false, indices...)
}
