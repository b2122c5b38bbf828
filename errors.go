package tempo

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes kernel errors.
type ErrorCode string

const (
	// ErrCodeParse indicates malformed or impossible date text.
	ErrCodeParse ErrorCode = "PARSE_ERROR"

	// ErrCodeInvalidEnumValue indicates an unrecognized timescale or date
	// system code, typically from a foreign-call boundary.
	ErrCodeInvalidEnumValue ErrorCode = "INVALID_ENUM_VALUE"

	// ErrCodeUnsupportedScale indicates an operation that is not defined
	// for the requested timescale.
	ErrCodeUnsupportedScale ErrorCode = "UNSUPPORTED_SCALE"

	// ErrCodeValueOutOfRange indicates a constructor argument or result
	// outside the representable range.
	ErrCodeValueOutOfRange ErrorCode = "VALUE_OUT_OF_RANGE"
)

// Error is the error type returned by every constructor and accessor in
// this package. These are pure computations: nothing is retried, and on
// error no partial value is produced.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Input is the offending input rendered as text, when available.
	Input string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("%s: %s (input=%q)", e.Code, e.Message, e.Input)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func codeIs(err error, code ErrorCode) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Code == code
	}
	return false
}

// IsParseError reports whether err is a malformed date-text error.
// Uses errors.As to handle wrapped errors.
func IsParseError(err error) bool { return codeIs(err, ErrCodeParse) }

// IsInvalidEnumValue reports whether err is an unrecognized enum-code error.
func IsInvalidEnumValue(err error) bool { return codeIs(err, ErrCodeInvalidEnumValue) }

// IsUnsupportedScale reports whether err is an unsupported-timescale error.
func IsUnsupportedScale(err error) bool { return codeIs(err, ErrCodeUnsupportedScale) }

// IsValueOutOfRange reports whether err is an out-of-range error.
func IsValueOutOfRange(err error) bool { return codeIs(err, ErrCodeValueOutOfRange) }

func newParseError(input, message string) *Error {
	return &Error{Code: ErrCodeParse, Message: message, Input: input}
}

func newInvalidEnumError(kind string, v any) *Error {
	return &Error{
		Code:    ErrCodeInvalidEnumValue,
		Message: "unrecognized " + kind + " value",
		Input:   fmt.Sprintf("%v", v),
	}
}

func newUnsupportedScaleError(op string, s Timescale) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedScale,
		Message: op + " does not support the " + s.String() + " timescale",
	}
}

func newRangeError(message string) *Error {
	return &Error{Code: ErrCodeValueOutOfRange, Message: message}
}
