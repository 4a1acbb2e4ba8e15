// Package value coerces decoded config values to the types settings need.
// TOML decodes integers as int64 and floats as float64; values set in
// process keep their Go type. Each helper accepts both.
package value

import "math"

// String returns v as a string.
func String(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Int64 returns v as an int64. Floats convert only when integral.
func Int64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// Int returns v as an int.
func Int(v any) (int, bool) {
	n, ok := Int64(v)
	if !ok || n > math.MaxInt || n < math.MinInt {
		return 0, false
	}
	return int(n), true
}

// Float returns v as a float64. An integral TOML value such as 1 decodes
// as int64 and is accepted.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

// Bool returns v as a bool.
func Bool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}
