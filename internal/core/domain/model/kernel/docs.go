// Package kernel contains the shared value objects of the ordering domain:
// identifiers, money, quantity, postal address and the person-detail values
// used by billing and shipping information.
//
// Every type here is an immutable value object constructed through a New*
// function. Construction validates all invariants once; transforms return new
// instances and never mutate. Zero values are invalid and rejected by each
// type's Validate method via the constructor-guard pattern.
package kernel
