// Package guard provides a small defensive-construction helper shared by
// commands, queries, and domain objects.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects, commands, and queries are only
// created through their designated constructor functions. A zero-value struct
// fails validation, which prevents unvalidated objects from reaching handlers.
//
// Embed the guard as a private field and set it in the constructor:
//
//	type RejectReason struct {
//	    text  string
//	    guard ConstructorGuard
//	}
//
//	func NewRejectReason(text string) (RejectReason, error) {
//	    if text == "" {
//	        return RejectReason{}, errors.New("text is required")
//	    }
//	    return RejectReason{text: text, guard: NewConstructorGuard()}, nil
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly
// constructed. Call it in the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil when it was; otherwise returns validationError,
// or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
