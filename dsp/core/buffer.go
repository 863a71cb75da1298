package core

// Sample is the set of floating point types used for audio buffers.
type Sample interface {
	~float32 | ~float64
}

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[T Sample](buf []T, n int) []T {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]T, n)
}

// Zero sets all values in buf to 0.
func Zero[T Sample](buf []T) {
	for i := range buf {
		buf[i] = 0
	}
}

// InRange reports whether [offset, offset+count) lies inside a buffer of length n.
func InRange(n, offset, count int) bool {
	if offset < 0 || count < 0 {
		return false
	}
	return offset <= n && count <= n-offset
}
