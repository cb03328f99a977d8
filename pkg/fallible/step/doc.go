// Package step contains single-value, synchronous combinators over
// Result[T]. These functions form the building blocks for error-aware
// pipelines; each is a single application, never a retry or reorder.
//
// Highlights:
// - Then: monadic bind, moving from Result[In] to Result[Out]
// - Map/Try: transform the success value (pure, or via a (value, error) call)
// - Tee/TeeFailure: side-effect helpers, value untouched
// - Recover/MapFailure/Correct: intercept failures
// - ...When variants: intercept only failures matching an errset.Set;
//   non-matching failures pass through identical
// - Flatten: collapse Result[Result[T]] one level
// - Finally: reduce to a concrete value via success/failure handlers
// - Pipe/Compose: left-to-right application and deferred pipelines
package step
