package broker

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidArgument is returned when a caller hands the broker something
	// it cannot work with, like a nil handler.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrHandlerFailure matches every error produced by a failing handler.
	ErrHandlerFailure = errors.New("handler failure")
)

// HandlerError records a single handler failure during Publish.
type HandlerError struct {
	SubscriptionID string
	Handler        string
	MessageType    reflect.Type
	Err            error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %s (subscription %s) failed for %s: %v", e.Handler, e.SubscriptionID, e.MessageType, e.Err)
}

func (e *HandlerError) Unwrap() []error {
	return []error{ErrHandlerFailure, e.Err}
}

// PanicError wraps a value recovered from a panicking handler.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the recovered value when it was an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
