package shared

// Pagination defaults for the books listing.
const (
	DefaultOffset = 0
	DefaultLimit  = 10
	MaxLimit      = 100
)

// Optional is a three-state field for partial updates: absent from the
// input, explicitly null, or set to a value. Plain pointers collapse
// "clear this field" into "no change", which edit mutations must not do.
type Optional[T any] struct {
	set   bool
	null  bool
	value T
}

// Some returns a present, non-null Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{set: true, value: v}
}

// Null returns a present but explicitly null Optional.
func Null[T any]() Optional[T] {
	return Optional[T]{set: true, null: true}
}

// IsSet reports whether the field appeared in the input at all.
func (o Optional[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was present with an explicit null.
func (o Optional[T]) IsNull() bool { return o.set && o.null }

// Get returns the value and whether it is present and non-null.
func (o Optional[T]) Get() (T, bool) {
	if !o.set || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// Ptr returns the value as a pointer, nil when absent or null.
func (o Optional[T]) Ptr() *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}
