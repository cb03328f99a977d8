// Package chain provides a fluent wrapper around Result[T]
// for building synchronous pipelines from step primitives.
//
// It composes functions like Then, Map, Recover, Correct, and Finally
// behind a convenient Chain[T] type. This enables ergonomic pipelines
// without dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result via a function
// - ThenTry: call a function (T, error) and convert error to failure
// - Map: transform the successful value
// - Ensure/EnsureFailure: run side effects without changing the result
// - Recover/MapFailure/Correct (+ ...When): intercept failures
// - Finally: collapse the chain into a final value via handlers
//
// Methods keep the value type; the package-level Then, ThenTry, Map and
// Finally move across value types, since Go methods cannot introduce
// type parameters.
package chain
