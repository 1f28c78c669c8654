// Package kernel provides core domain primitives shared by every aggregate
// in the marketplace domain model.
//
// The package currently includes:
//   - UUID: a value object for unique identifiers with validation and
//     comparison capabilities
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel
