package batch

import (
	"github.com/ib-77/fallible/pkg/fallible"
)

// Classify partitions results into success values and failure errors,
// preserving original relative order within each partition.
func Classify[T any](results []fallible.Result[T]) (values []T, errs []error) {
	for _, r := range results {
		if r.IsSuccess() {
			v, _ := r.Value()
			values = append(values, v)
		} else {
			errs = append(errs, r.Err())
		}
	}
	return values, errs
}

// AllSucceeded combines results into one, succeeding only when every input
// succeeded. One failure is reported verbatim; several are wrapped in a
// MultipleErrors aggregate over the flattened error list. No inputs counts
// as NoneSuccessful.
func AllSucceeded[T any](results []fallible.Result[T]) fallible.Result[[]T] {
	if len(results) == 0 {
		return fallible.Fail[[]T](noneSuccessful(nil))
	}

	values, errs := Classify(results)

	switch len(errs) {
	case 0:
		return fallible.Success(values)
	case 1:
		return fallible.Fail[[]T](errs[0])
	default:
		return fallible.Fail[[]T](fallible.AggregateFault(
			fallible.Domain, fallible.CodeMultipleErrors,
			"multiple errors", fallible.FlattenErrors(errs)))
	}
}

// AnySucceeded combines results into one, succeeding with the success
// values when at least one input succeeded; otherwise it fails with a
// NoneSuccessful aggregate over the flattened failures.
func AnySucceeded[T any](results []fallible.Result[T]) fallible.Result[[]T] {
	values, errs := Classify(results)

	if len(values) > 0 {
		return fallible.Success(values)
	}
	return fallible.Fail[[]T](noneSuccessful(errs))
}

// FilterFailures returns just the success values, discarding failures.
func FilterFailures[T any](results []fallible.Result[T]) []T {
	values, _ := Classify(results)
	return values
}

func noneSuccessful(errs []error) *fallible.Fault {
	return fallible.AggregateFault(
		fallible.Domain, fallible.CodeNoneSuccessful,
		"none successful", fallible.FlattenErrors(errs))
}
