package signature

import "math"

// integer holds any Go integer without loss: sign and magnitude
type integer struct {
	neg bool
	abs uint64
}

// integerOf accepts only integer-typed values; floats are not integers
// even when they have no fractional part.
func integerOf(v interface{}) (integer, bool) {
	switch n := v.(type) {
	case int:
		return signed(int64(n)), true
	case int8:
		return signed(int64(n)), true
	case int16:
		return signed(int64(n)), true
	case int32:
		return signed(int64(n)), true
	case int64:
		return signed(n), true
	case uint:
		return integer{abs: uint64(n)}, true
	case uint8:
		return integer{abs: uint64(n)}, true
	case uint16:
		return integer{abs: uint64(n)}, true
	case uint32:
		return integer{abs: uint64(n)}, true
	case uint64:
		return integer{abs: n}, true
	}
	return integer{}, false
}

func signed(n int64) integer {
	if n < 0 {
		return integer{neg: true, abs: uint64(-(n + 1)) + 1}
	}
	return integer{abs: uint64(n)}
}

func (n integer) unsigned(bits uint) (uint64, bool) {
	if n.neg || n.abs > math.MaxUint64>>(64-bits) {
		return 0, false
	}
	return n.abs, true
}

func (n integer) signed(bits uint) (int64, bool) {
	limit := uint64(1) << (bits - 1)
	if n.neg {
		if n.abs > limit {
			return 0, false
		}
		return int64(-n.abs), true
	}
	if n.abs >= limit {
		return 0, false
	}
	return int64(n.abs), true
}

// floatOf accepts every number
func floatOf(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	}
	i, ok := integerOf(v)
	if !ok {
		return 0, false
	}
	if i.neg {
		return -float64(i.abs), true
	}
	return float64(i.abs), true
}
