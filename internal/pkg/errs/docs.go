// Package errs provides the standardized error types used across the ordering
// domain. Each error kind follows the same pattern: a sentinel for
// classification with errors.Is, a struct carrying the structured parameters
// (parameter name, offending value, bounds, identifier), constructors with and
// without an underlying cause, and Error/Unwrap methods.
//
// Domain packages build their own structured errors on top of these kinds:
// value-object constructors return ValueIsRequiredError or
// ValueIsInvalidError, lookups return ObjectNotFoundError, and so on. Keeping
// the taxonomy in one place lets the application layer classify any domain
// failure without knowing the concrete type that produced it.
package errs
