package step

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/errset"
)

// Then applies f to the success value, switching to a Result of another
// type. A failure propagates without invoking f.
func Then[In, Out any](input fallible.Result[In],
	onSuccess func(v In) fallible.Result[Out]) fallible.Result[Out] {

	if input.IsSuccess() {
		v, _ := input.Value()
		return onSuccess(v)
	}
	return fallible.FailFrom[In, Out](input)
}

// Map transforms the success value with a function that cannot fail.
func Map[In, Out any](input fallible.Result[In],
	onSuccess func(v In) Out) fallible.Result[Out] {

	return Then(input, func(v In) fallible.Result[Out] {
		return fallible.Success(onSuccess(v))
	})
}

// Try applies a native (value, error) call to the success value and
// normalizes its outcome.
func Try[In, Out any](input fallible.Result[In],
	onTryExecute func(v In) (Out, error)) fallible.Result[Out] {

	return Then(input, func(v In) fallible.Result[Out] {
		return fallible.From(onTryExecute(v))
	})
}

// Tee runs a side effect on the success value, leaving the result as-is.
func Tee[T any](input fallible.Result[T], onSuccess func(v T)) fallible.Result[T] {
	if input.IsSuccess() {
		v, _ := input.Value()
		onSuccess(v)
	}
	return input
}

// Recover applies f to the failure error, possibly recovering to success.
// A success passes through without invoking f.
func Recover[T any](input fallible.Result[T],
	onFailure func(err error) fallible.Result[T]) fallible.Result[T] {

	if input.IsFailure() {
		return onFailure(input.Err())
	}
	return input
}

// RecoverWhen is Recover gated by set membership; a non-matching failure
// passes through untouched.
func RecoverWhen[T any](input fallible.Result[T], match errset.Set,
	onFailure func(err error) fallible.Result[T]) fallible.Result[T] {

	if input.IsFailure() && match.Contains(input.Err()) {
		return onFailure(input.Err())
	}
	return input
}

// MapFailure transforms the failure error with a function that cannot
// fail; the result stays a failure.
func MapFailure[T any](input fallible.Result[T],
	onFailure func(err error) error) fallible.Result[T] {

	return Recover(input, func(err error) fallible.Result[T] {
		return fallible.Fail[T](onFailure(err))
	})
}

// MapFailureWhen is MapFailure gated by set membership.
func MapFailureWhen[T any](input fallible.Result[T], match errset.Set,
	onFailure func(err error) error) fallible.Result[T] {

	return RecoverWhen(input, match, func(err error) fallible.Result[T] {
		return fallible.Fail[T](onFailure(err))
	})
}

// Correct turns a failure into a success with a function that cannot fail.
func Correct[T any](input fallible.Result[T],
	onFailure func(err error) T) fallible.Result[T] {

	return Recover(input, func(err error) fallible.Result[T] {
		return fallible.Success(onFailure(err))
	})
}

// CorrectWhen is Correct gated by set membership.
func CorrectWhen[T any](input fallible.Result[T], match errset.Set,
	onFailure func(err error) T) fallible.Result[T] {

	return RecoverWhen(input, match, func(err error) fallible.Result[T] {
		return fallible.Success(onFailure(err))
	})
}

// TeeFailure runs a side effect on the failure error, leaving the result
// as-is.
func TeeFailure[T any](input fallible.Result[T], onFailure func(err error)) fallible.Result[T] {
	if input.IsFailure() {
		onFailure(input.Err())
	}
	return input
}

// TeeFailureWhen is TeeFailure gated by set membership.
func TeeFailureWhen[T any](input fallible.Result[T], match errset.Set,
	onFailure func(err error)) fallible.Result[T] {

	if input.IsFailure() && match.Contains(input.Err()) {
		onFailure(input.Err())
	}
	return input
}

// Flatten collapses one level of Result nesting.
func Flatten[T any](input fallible.Result[fallible.Result[T]]) fallible.Result[T] {
	return Then(input, func(inner fallible.Result[T]) fallible.Result[T] {
		return inner
	})
}

// Finally collapses a Result to a plain value via one of two handlers.
func Finally[In, Out any](input fallible.Result[In],
	onSuccess func(v In) Out,
	onFailure func(err error) Out) Out {

	if input.IsSuccess() {
		v, _ := input.Value()
		return onSuccess(v)
	}
	return onFailure(input.Err())
}
