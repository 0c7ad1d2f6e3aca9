// Package option provides the generic functional options used by the
// resolver, pinger, prober and printer constructors.
package option

// Option configures a value of type T.
type Option[T any] func(*T)

// Apply runs opts against t in order. Nil options are skipped.
func Apply[T any](t *T, opts ...Option[T]) {
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
}
