package sanitizer

// Numeric represents numeric types that support basic arithmetic operations.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ClampMax caps value at hi.
func ClampMax[T Numeric](value T, hi T) T {
	if value > hi {
		return hi
	}
	return value
}
