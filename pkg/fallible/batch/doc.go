// Package batch combines many Result values into one.
//
// Key operations:
// - Classify: order-preserving partition into values and errors
// - AllSucceeded: success only when every input succeeded
// - AnySucceeded: success when at least one input succeeded
// - FilterFailures: keep the success values, drop the rest
//
// Aggregate outcomes use the library fault domain: NoneSuccessful when no
// input succeeded, MultipleErrors when several failed. Nested aggregates
// are flattened one level before wrapping, so aggregates never nest.
package batch
