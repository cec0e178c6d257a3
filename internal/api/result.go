package api

// Result holds the outcome of one call when several calls are joined and
// partial failure is acceptable.
type Result[T any] struct {
	Data T
	Err  error
}

// OK reports whether the call succeeded.
func (r Result[T]) OK() bool { return r.Err == nil }

// Capture wraps a facade return pair. Data stays zero when err is set.
func Capture[T any](data T, err error) Result[T] {
	if err != nil {
		return Result[T]{Err: err}
	}
	return Result[T]{Data: data}
}
