package bit

// Size returns the total bit count of c.
func Size(c Container) int { return c.Size() }

// TrueCount returns the number of set bits in c.
func TrueCount(c Container) int { return c.TrueCount() }

// FalseCount returns the number of cleared bits in c.
func FalseCount(c Container) int { return c.FalseCount() }

// BoolValue returns the bit addressed by coords.
func BoolValue(c Container, coords ...int) (bool, error) {
	return c.Get(coords...)
}

// NumericValue returns 1.0 if the bit addressed by coords is set, else 0.0.
func NumericValue(c Container, coords ...int) (float64, error) {
	v, err := c.Get(coords...)
	if err != nil {
		return 0, err
	}
	return b2f(v), nil
}

func b2f(v bool) float64 {
	if v {
		return 1
	}
	return 0
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}
