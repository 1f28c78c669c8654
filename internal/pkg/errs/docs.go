// Package errs provides standardized error types for the marketplace application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines two families of errors:
//
// Input errors, raised while validating raw user input before it touches state:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or not allowed
//   - ValueIsOutOfRangeError: a numeric value falls outside its bounds
//   - ObjectNotFoundError: an entity cannot be located
//
// Transition errors, raised while applying a state change to an entity:
//   - InvalidStateError: the entity's current state does not permit the transition
//   - ForbiddenError: the acting party lacks ownership or role
//   - ConflictError: a concurrent claim on the same resource was lost
//   - NoChangeError: the operation would not alter any state
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidState)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Errors never carry partial mutations with them: a failed transition leaves
// the entity exactly as it was before the attempt.
package errs
