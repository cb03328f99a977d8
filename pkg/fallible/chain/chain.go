package chain

import (
	"github.com/ib-77/fallible/pkg/fallible"
	"github.com/ib-77/fallible/pkg/fallible/errset"
	"github.com/ib-77/fallible/pkg/fallible/step"
)

// Chain wraps a fallible.Result to enable fluent chaining
type Chain[T any] struct {
	res fallible.Result[T]
}

// Start creates a new chain from a fallible.Result
func Start[T any](result fallible.Result[T]) Chain[T] {
	return Chain[T]{res: result}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) Chain[T] {
	return Start(fallible.Success(value))
}

// Result returns the underlying fallible.Result
func (c Chain[T]) Result() fallible.Result[T] {
	return c.res
}

// Then composes functions that already return fallible.Result[T]
func (c Chain[T]) Then(onSuccess func(v T) fallible.Result[T]) Chain[T] {
	return Chain[T]{res: step.Then(c.res, onSuccess)}
}

// ThenTry composes functions that return (T, error)
func (c Chain[T]) ThenTry(try func(v T) (T, error)) Chain[T] {
	return Chain[T]{res: step.Try(c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(v T) T) Chain[T] {
	return Chain[T]{res: step.Map(c.res, onSuccess)}
}

// Ensure performs a side effect on success without changing the result
func (c Chain[T]) Ensure(onSuccess func(v T)) Chain[T] {
	return Chain[T]{res: step.Tee(c.res, onSuccess)}
}

// EnsureFailure performs a side effect on failure without changing the result
func (c Chain[T]) EnsureFailure(onFailure func(err error)) Chain[T] {
	return Chain[T]{res: step.TeeFailure(c.res, onFailure)}
}

// EnsureFailureWhen performs a side effect only on failures matching the set
func (c Chain[T]) EnsureFailureWhen(match errset.Set, onFailure func(err error)) Chain[T] {
	return Chain[T]{res: step.TeeFailureWhen(c.res, match, onFailure)}
}

// Recover intercepts a failure, possibly returning the chain to success
func (c Chain[T]) Recover(onFailure func(err error) fallible.Result[T]) Chain[T] {
	return Chain[T]{res: step.Recover(c.res, onFailure)}
}

// RecoverWhen intercepts only failures matching the set
func (c Chain[T]) RecoverWhen(match errset.Set, onFailure func(err error) fallible.Result[T]) Chain[T] {
	return Chain[T]{res: step.RecoverWhen(c.res, match, onFailure)}
}

// MapFailure transforms the failure error, staying on the failure track
func (c Chain[T]) MapFailure(onFailure func(err error) error) Chain[T] {
	return Chain[T]{res: step.MapFailure(c.res, onFailure)}
}

// MapFailureWhen transforms only failures matching the set
func (c Chain[T]) MapFailureWhen(match errset.Set, onFailure func(err error) error) Chain[T] {
	return Chain[T]{res: step.MapFailureWhen(c.res, match, onFailure)}
}

// Correct unconditionally turns a failure into a success value
func (c Chain[T]) Correct(onFailure func(err error) T) Chain[T] {
	return Chain[T]{res: step.Correct(c.res, onFailure)}
}

// CorrectWhen corrects only failures matching the set
func (c Chain[T]) CorrectWhen(match errset.Set, onFailure func(err error) T) Chain[T] {
	return Chain[T]{res: step.CorrectWhen(c.res, match, onFailure)}
}

// Then chains a function that returns fallible.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(v T) fallible.Result[U]) Chain[U] {
	return Chain[U]{res: step.Then(c.res, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], try func(v T) (U, error)) Chain[U] {
	return Chain[U]{res: step.Try(c.res, try)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(v T) U) Chain[U] {
	return Chain[U]{res: step.Map(c.res, onSuccess)}
}

// Flatten collapses a chain whose value is itself a Result
func Flatten[T any](c Chain[fallible.Result[T]]) Chain[T] {
	return Chain[T]{res: step.Flatten(c.res)}
}

// Finally collapses the chain into a final value using step.Finally
func Finally[T, U any](c Chain[T], onSuccess func(v T) U, onFailure func(err error) U) U {
	return step.Finally(c.res, onSuccess, onFailure)
}
