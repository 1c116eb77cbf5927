package rop

// Reader is the non-panicking view of a Result.
type Reader[T, E any] interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// Value returns the success value, if any
	Value() (T, bool)
	// Failure returns the failure value, if any
	Failure() (E, bool)
}

var _ Reader[any, any] = Result[any, any]{}
