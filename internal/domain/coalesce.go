package domain

// valueOr returns the first non-nil pointer's value, or fallback.
func valueOr[T any](fallback T, ptrs ...*T) T {
	for _, p := range ptrs {
		if p != nil {
			return *p
		}
	}
	return fallback
}

func IntFromPtrWithDefault(fallback int, ptrs ...*int) int {
	return valueOr(fallback, ptrs...)
}

func Float64FromPtrWithDefault(fallback float64, ptrs ...*float64) float64 {
	return valueOr(fallback, ptrs...)
}

// Float64Ptr and IntPtr build the optional catalog fields.
func Float64Ptr(v float64) *float64 { return &v }

func IntPtr(v int) *int { return &v }
