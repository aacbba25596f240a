// Package fallback resolves a value from an ordered list of fallible
// providers: each is tried in sequence and the first success wins.
package fallback

// Provider is a single fallible source of a value.
type Provider[T any] func() (T, error)

// First tries providers in order and returns the first value produced
// without error. If every provider fails, it returns the zero value and
// the last error seen.
func First[T any](providers ...Provider[T]) (T, error) {
	var zero T
	var lastErr error
	for _, p := range providers {
		v, err := p()
		if err == nil {
			return v, nil
		}
		lastErr = err
	}
	return zero, lastErr
}
