package std

// Equatable is implemented by types with their own notion of equality.
// Equal prefers it over reflection.
type Equatable[T any] interface {
	Equal(other T) bool
}
