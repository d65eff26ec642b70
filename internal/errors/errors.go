// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInvalidCatalog indicates malformed or incomplete region pricing data
	TypeInvalidCatalog Type = "INVALID_CATALOG"

	// TypeFetchFailure indicates a catalog retrieval error
	TypeFetchFailure Type = "FETCH_FAILURE"

	// TypeUnknownInstance indicates an instance type absent from the catalog
	TypeUnknownInstance Type = "UNKNOWN_INSTANCE"

	// TypeInvalidQuantity indicates an out-of-bounds instance quantity
	TypeInvalidQuantity Type = "INVALID_QUANTITY"

	// TypeInvalidStorage indicates an out-of-bounds storage capacity
	TypeInvalidStorage Type = "INVALID_STORAGE"

	// TypeInvalidBandwidth indicates an out-of-bounds bandwidth volume
	TypeInvalidBandwidth Type = "INVALID_BANDWIDTH"

	// TypeMissingStoragePricing indicates the catalog has no storage rate
	TypeMissingStoragePricing Type = "MISSING_STORAGE_PRICING"

	// TypeIndexOutOfRange indicates an invalid quote line index
	TypeIndexOutOfRange Type = "INDEX_OUT_OF_RANGE"

	// TypeEmptyQuote indicates an export was requested for an empty quote
	TypeEmptyQuote Type = "EMPTY_QUOTE"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(errType Type, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// InvalidCatalog creates an invalid catalog error
func InvalidCatalog(message string) *Error {
	return New(TypeInvalidCatalog, message)
}

// FetchFailure creates a fetch failure error
func FetchFailure(message string, cause error) *Error {
	return Wrap(TypeFetchFailure, message, cause)
}

// UnknownInstance creates an unknown instance error
func UnknownInstance(instanceType string) *Error {
	return Newf(TypeUnknownInstance, "instance type not in catalog: %s", instanceType)
}

// InvalidQuantity creates an invalid quantity error
func InvalidQuantity(message string) *Error {
	return New(TypeInvalidQuantity, message)
}

// InvalidStorage creates an invalid storage error
func InvalidStorage(message string) *Error {
	return New(TypeInvalidStorage, message)
}

// InvalidBandwidth creates an invalid bandwidth error
func InvalidBandwidth(message string) *Error {
	return New(TypeInvalidBandwidth, message)
}

// MissingStoragePricing creates a missing storage pricing error
func MissingStoragePricing(entity string) *Error {
	return Newf(TypeMissingStoragePricing, "no storage pricing available for region %s", entity)
}

// IndexOutOfRange creates an index out of range error
func IndexOutOfRange(index, length int) *Error {
	return Newf(TypeIndexOutOfRange, "quote line %d out of range (quote has %d lines)", index, length)
}

// EmptyQuote creates an empty quote error
func EmptyQuote() *Error {
	return New(TypeEmptyQuote, "the quote has no line items")
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
