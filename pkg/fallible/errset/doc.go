// Package errset represents arbitrary, possibly sparse sets of
// (domain, code) error pairs and tests errors against them.
//
// Key operations:
// - Of/OfCodes/OfError/OfErrors: construct a Set
// - Contains/Matches: test one error against the set
// - Insert/InsertError/Merge: in-place growth
// - Union/Intersect/Diff/ExclusiveOr: pure set algebra
// - Equal/SubsetOf/SupersetOf: relations via symmetric difference
//
// The selective combinators in package step take a Set to decide which
// failures a handler may touch; non-matching failures pass through
// untouched.
package errset
