package fallible

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful value, false when absent
	Value() (T, bool)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// DomainCoder is implemented by errors addressable by a (domain, code) pair.
type DomainCoder interface {
	error
	Domain() string
	Code() int
}
