package fallible

import (
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	hasValue  bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	if IsNil(err) {
		err = NewFault(Domain, CodeAbsentValue, "failure without error")
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// From normalizes the native (value, error) call shape.
func From[T any](v T, err error) Result[T] {
	if !IsNil(err) {
		return Fail[T](err)
	}
	return Success(v)
}

// FromPtr normalizes the "nil return means failure" call shape.
func FromPtr[T any](p *T, err error) Result[*T] {
	if !IsNil(err) {
		return Fail[*T](err)
	}
	if p == nil {
		return Fail[*T](NewFault(Domain, CodeAbsentValue, "nil result"))
	}
	return Success(p)
}

// FromOK normalizes the "boolean false means failure" call shape.
func FromOK[T any](v T, ok bool) Result[T] {
	if !ok {
		return Fail[T](NewFault(Domain, CodeRefused, "operation refused"))
	}
	return Success(v)
}

// FailFrom converts a failed Result to another value type,
// keeping its error, id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		hasValue:  false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Value() (T, bool) {
	return r.value, r.hasValue
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) HasValue() bool {
	return r.hasValue
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
