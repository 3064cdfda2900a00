package domain

// Page is the result shape of a paged read. It is rebuilt on every fetch and
// never mutated in place.
type Page[T any] struct {
	Content       []T
	PageNumber    int
	PageSize      int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
}
