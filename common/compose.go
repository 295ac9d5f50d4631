package common

// Patch is a partial record for T. Implementations enumerate their fields
// explicitly and leave absent fields untouched.
type Patch[T any] interface {
	ApplyTo(dst *T)
}

// Compose copies defaults and applies each patch in order. Later patches win
// per field. A nil patch is a no-op.
func Compose[T any](defaults T, patches ...Patch[T]) T {
	out := defaults
	for _, p := range patches {
		if p == nil {
			continue
		}
		p.ApplyTo(&out)
	}
	return out
}

// Override replaces *dst with *v when v is set.
func Override[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Scale applies a multiplicative modifier. A zero base is replaced by the
// factor instead of being multiplied.
func Scale(dst *float64, factor *float64) {
	if factor == nil {
		return
	}
	if *dst == 0 {
		*dst = *factor
		return
	}
	*dst *= *factor
}

func Ptr[T any](v T) *T {
	return &v
}
