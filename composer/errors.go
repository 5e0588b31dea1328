package composer

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoAmbientContext is returned by Recall when no explicit context was given
// and the surrounding call environment does not carry an ambient one. This is
// a configuration fault of the caller's environment, not of the registry.
var ErrNoAmbientContext = errors.New("no ambient context available")

// UndefinedBuilderError is returned when Recall is asked for a name that has
// no registered builder.
type UndefinedBuilderError struct {
	Name string
}

// Error implements the error interface for UndefinedBuilderError.
func (e *UndefinedBuilderError) Error() string {
	return fmt.Sprintf("no builder defined for name %q", e.Name)
}

// TypeMismatchError is returned by Get when a key resolves to a value whose
// declared runtime type is not assignable to the requested type.
type TypeMismatchError struct {
	Key      string
	Expected reflect.Type
	Actual   reflect.Type
}

// Error implements the error interface for TypeMismatchError.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("context key %q holds %s, not the requested %s", e.Key, e.Actual, e.Expected)
}

// TransactionError is returned when batch operations are used out of order,
// such as ending a batch that was never begun.
type TransactionError struct {
	Message string
}

// Error implements the error interface for TransactionError.
func (e *TransactionError) Error() string {
	return e.Message
}
