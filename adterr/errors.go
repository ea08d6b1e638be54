package adterr

import (
	"fmt"
	"strings"
)

// ErrorType defines the category of a fault.
type ErrorType string

const (
	TypeUninitialized ErrorType = "UninitializedError"
	TypeContract      ErrorType = "ContractError"
	TypeInvalidCast   ErrorType = "InvalidCastError"
	TypeNoValue       ErrorType = "NoValueError"
)

// AdtError is the interface for all faults raised by misuse of the data types.
// Faults are delivered with panic and are never recovered by this module.
type AdtError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for faults.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// UninitializedError is raised when a zero-value Either is interrogated.
type UninitializedError struct {
	BaseError
	TypeName string
}

// ContractError is raised when a caller breaks an API precondition, e.g. asks an
// Either for a type it cannot hold or builds a failure without a message.
type ContractError struct {
	BaseError
}

// InvalidCastError is raised when a cast requests the side that is not held.
type InvalidCastError struct {
	BaseError
	Requested string
	Held      string
}

// NoValueError is raised when the value of an empty Optional is requested.
type NoValueError struct {
	BaseError
	TypeName string
}

// NewUninitializedError creates a new UninitializedError.
func NewUninitializedError(typeName string) *UninitializedError {
	return &UninitializedError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("%s in invalid state (possibly uninitialized)", typeName),
			ErrType: TypeUninitialized,
		},
		TypeName: typeName,
	}
}

// NewContractError creates a new ContractError.
func NewContractError(msg string) *ContractError {
	return &ContractError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeContract,
		},
	}
}

// NewUnknownTypeError creates a ContractError for a type argument that is not
// one of the possible types of owner.
func NewUnknownTypeError(requested, owner string) *ContractError {
	return NewContractError(fmt.Sprintf("%s is not one of the possible types of %s", requested, owner))
}

// NewInvalidCastError creates a new InvalidCastError.
func NewInvalidCastError(requested, held string) *InvalidCastError {
	return &InvalidCastError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("cannot cast %s to %s", held, requested),
			ErrType: TypeInvalidCast,
		},
		Requested: requested,
		Held:      held,
	}
}

// NewNoValueError creates a new NoValueError.
func NewNoValueError(typeName string) *NoValueError {
	return &NoValueError{
		BaseError: BaseError{
			Msg:     fmt.Sprintf("%s.Get on None", typeName),
			ErrType: TypeNoValue,
		},
		TypeName: typeName,
	}
}

// IsBlank reports whether msg has no visible characters.
func IsBlank(msg string) bool {
	return strings.TrimSpace(msg) == ""
}
