package mines

func iif[T any](c bool, t T, f T) T {
	if c {
		return t
	} else {
		return f
	}
}

func repeat[T any](v T, n int) []T {
	if n == 0 {
		return nil
	}
	s := make([]T, n)
	for i := range s {
		s[i] = v
	}
	return s
}

// clamp saturates v into [lo, hi].
func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
