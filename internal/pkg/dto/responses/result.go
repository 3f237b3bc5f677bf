package responses

// Result is the only shape the backend client hands back. Error is the
// server-supplied text and may be empty, in which case callers show their own
// fallback.
type Result[T any] struct {
	OK    bool
	Value T
	Error string
}

func Ok[T any](value T) Result[T] {
	return Result[T]{OK: true, Value: value}
}

func Fail[T any](message string) Result[T] {
	return Result[T]{OK: false, Error: message}
}
