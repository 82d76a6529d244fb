package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidLength is returned when a fixed size value, for example a
	// key hash, is created from input of a wrong length.
	ErrInvalidLength = Register(2, "invalid length")

	// ErrThresholdExceedsChildren is returned when an at-least script
	// requires more satisfied children than it has.
	ErrThresholdExceedsChildren = Register(3, "threshold exceeds number of scripts")

	// ErrNegativeThreshold is returned when an at-least script is created
	// with a threshold lower than zero.
	ErrNegativeThreshold = Register(4, "negative threshold")

	// ErrUnknownTag is returned when a binary script carries a tag that the
	// decoder does not know how to handle.
	ErrUnknownTag = Register(5, "unknown tag")

	// ErrMalformed is returned when the binary representation cannot be
	// parsed by the primitive codec, ie. a tuple, list, integer or byte
	// string is broken or of an unexpected shape.
	ErrMalformed = Register(6, "malformed encoding")

	// ErrMissingType is returned when a JSON script has no type field.
	ErrMissingType = Register(7, "missing type")

	// ErrUnrecognizedType is returned when a JSON script declares a type
	// that the decoder does not know how to handle.
	ErrUnrecognizedType = Register(8, "unrecognized type")

	// ErrMissingKeyHash is returned when a JSON signature script has no
	// key hash.
	ErrMissingKeyHash = Register(9, "missing key hash")

	// ErrMissingScripts is returned when a JSON all, any or at-least
	// script has no scripts list.
	ErrMissingScripts = Register(10, "missing scripts")

	// ErrInvalidRequired is returned when a JSON at-least script required
	// field is absent or is not a non-negative integer.
	ErrInvalidRequired = Register(11, "invalid required")

	// ErrDepthExceeded is returned when the input nests deeper than the
	// configured limit allows.
	ErrDepthExceeded = Register(12, "maximum depth exceeded")

	// ErrTooLarge is returned when the input is bigger than the configured
	// limit allows.
	ErrTooLarge = Register(13, "input too large")

	// ErrInvalidInput stands for general input problems indication.
	ErrInvalidInput = Register(14, "invalid input")

	// ErrUnauthorized is used whenever a signature cannot be verified.
	ErrUnauthorized = Register(15, "unauthorized")

	// ErrNotFound is used when a requested value does not exist.
	ErrNotFound = Register(16, "not found")

	// ErrPanic is only set when we recover from a panic, so we know to
	// redact potentially sensitive system info.
	ErrPanic = Register(111222, "panic")
)

// Register returns an error instance that should be used as the base for
// creating error instances during runtime.
//
// Popular root errors are declared in this package, but extensions may want to
// declare custom codes. This function ensures that no error code is used
// twice. Attempt to reuse an error code results in panic.
//
// Use this function only during a program startup phase.
func Register(code uint32, description string) *Error {
	if e, ok := usedCodes[code]; ok {
		panic(fmt.Sprintf("error with code %d is already registered: %q", code, e.desc))
	}
	err := &Error{
		code: code,
		desc: description,
	}
	usedCodes[err.code] = err
	return err
}

// usedCodes is keeping track of used codes to ensure their uniqueness. No two
// error instances should share the same error code.
var usedCodes = map[uint32]*Error{
	1: nil, // Error code 1 is restricted for errors that are not registered.
}

// Error represents a root error.
//
// Each error instance created during the runtime should wrap one of the
// declared root errors. This allows error tests with the Is method and
// exposing a stable code to the client.
//
// If an extension has to declare a custom root error, always use Register
// function to ensure error code uniqueness.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string {
	return e.desc
}

// Code returns the unique code this root error was registered with.
func (e Error) Code() uint32 {
	return e.code
}

// New returns a new error. Returned instance is having the root cause set to
// this error. Below two lines are equal
//
//	e.New("my description")
//	Wrap(e, "my description")
func (e *Error) New(description string) error {
	return Wrap(e, description)
}

// Newf is basically New with formatting capabilities
func (e *Error) Newf(description string, args ...interface{}) error {
	return e.New(fmt.Sprintf(description, args...))
}

// Is check if given error instance is of a given kind/type. This involves
// unwrapping given error using the Cause method if available.
func (kind *Error) Is(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if kind == nil {
		return isNilErr(err)
	}

	for {
		if err == kind {
			return true
		}

		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return false
		}
	}
}

// Code returns the code of the root error that given error wraps, or 1 if the
// error was not created from a registered root error. Zero is returned for a
// nil error.
func Code(err error) uint32 {
	if isNilErr(err) {
		return 0
	}
	for {
		if e, ok := err.(*Error); ok {
			return e.code
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return 1
		}
	}
}

// Wrap extends given error with an additional information.
//
// If err is nil, this returns nil, avoiding the need for an if statement when
// wrapping a error returned at the end of a function
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}

	// If this error does not carry the stacktrace information yet, attach
	// one. This should be done only once per error at the lowest frame
	// possible (most inner wrap).
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}

	return &wrappedError{
		parent: err,
		msg:    description,
	}
}

// Wrapf extends given error with an additional information.
//
// This function works like Wrap function with additional funtionality of
// formatting the input as specified.
func Wrapf(err error, format string, args ...interface{}) error {
	desc := fmt.Sprintf(format, args...)
	return Wrap(err, desc)
}

type wrappedError struct {
	// This error layer description.
	msg string
	// The underlying error that triggered this one.
	parent error
}

func (e *wrappedError) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.parent.Error())
}

func (e *wrappedError) Cause() error {
	return e.parent
}

// Recover captures a panic and stop its propagation. If panic happens it is
// transformed into a ErrPanic instance and assigned to given error. Call this
// function using defer in order to work as expected.
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

// causer is an interface implemented by an error that supports wrapping. Use
// it to test if an error wraps another error instance.
type causer interface {
	Cause() error
}

func isNilErr(err error) bool {
	// Reflect usage is necessary to correctly compare with
	// a nil implementation of an error.
	if err == nil {
		return true
	}
	if reflect.ValueOf(err).Kind() == reflect.Struct {
		return false
	}
	return reflect.ValueOf(err).IsNil()
}
