package fnwrap

import (
	"errors"
	"fmt"
)

var (
	ErrConsumed    = errors.New("fnwrap: callable already consumed")
	ErrPoisoned    = errors.New("fnwrap: guard poisoned by a panicking callable")
	ErrAliased     = errors.New("fnwrap: mutable inputs refer to the same location")
	ErrNilCallable = errors.New("fnwrap: nil callable")
)

// ConsumedError is raised when a call-once wrapper is invoked or composed
// after its callable was already used or moved into another wrapper.
type ConsumedError struct {
	Kind string
	Name string
}

func (e *ConsumedError) Error() string {
	return fmt.Sprintf("%s(%s): callable already consumed", e.Kind, e.Name)
}

func (e *ConsumedError) Unwrap() error {
	return ErrConsumed
}

// PoisonedError is raised by a Sync wrapper whose callable panicked while
// holding the lock. Value is what the callable panicked with.
type PoisonedError struct {
	Kind  string
	Name  string
	Value any
}

func (e *PoisonedError) Error() string {
	return fmt.Sprintf("%s(%s): poisoned by panic: %v", e.Kind, e.Name, e.Value)
}

func (e *PoisonedError) Unwrap() []error {
	errs := []error{ErrPoisoned}
	if err, ok := e.Value.(error); ok {
		errs = append(errs, err)
	}
	return errs
}

// AliasError is raised when a two-input mutator receives the same location
// for both inputs.
type AliasError struct {
	Kind string
	Name string
}

func (e *AliasError) Error() string {
	return fmt.Sprintf("%s(%s): both inputs point to the same location", e.Kind, e.Name)
}

func (e *AliasError) Unwrap() error {
	return ErrAliased
}

// AsPanic recovers a value raised by this package and returns it as an error.
// Anything else is re-panicked unchanged.
//
//	defer func() { err = fnwrap.AsPanic(recover(), err) }()
func AsPanic(r any, err error) error {
	if r == nil {
		return err
	}
	switch e := r.(type) {
	case *ConsumedError:
		return e
	case *PoisonedError:
		return e
	case *AliasError:
		return e
	}
	panic(r)
}
