// Package option provides the generic functional option type shared by the
// option set and the printers.
package option

// Option represents a functional option that configures a value of type T.
type Option[T any] func(*T)

// Apply runs every non-nil option against target, in order.
func Apply[T any](target *T, opts ...Option[T]) {
	for _, opt := range opts {
		if opt != nil {
			opt(target)
		}
	}
}
