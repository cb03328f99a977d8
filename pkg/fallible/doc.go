// Package fallible provides a tagged success-or-failure value, Result[T],
// together with the structured Fault error it pairs with.
//
// A Result holds exactly one of a value or an error and never changes after
// construction. Failures are ordinary inspectable values; nothing in this
// package panics or terminates.
//
// Key operations:
// - Success/Fail: construct Result[T]
// - From/FromPtr/FromOK: normalize native fallible-call shapes
// - FailFrom: move a failure across value types, keeping identity
// - Fault: (domain, code) error with optional nested detail
// - Errors/FlattenErrors: unpack multi-error aggregates
//
// Combinators over Result live in the step subpackage, (domain, code)
// matching in errset, aggregation of many results in batch, and a fluent
// wrapper in chain.
package fallible
