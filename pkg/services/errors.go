package services

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a transform failure.
type ErrorKind int

const (
	// GenericFailure covers everything that is not one of the kinds below,
	// such as a record missing a required key or a failed write.
	GenericFailure ErrorKind = iota
	// SourceNotFound means the input path does not resolve to a file.
	SourceNotFound
	// MalformedInput means the input is not a valid JSON array.
	MalformedInput
)

func (k ErrorKind) String() string {
	switch k {
	case SourceNotFound:
		return "source_not_found"
	case MalformedInput:
		return "malformed_input"
	default:
		return "generic_failure"
	}
}

var (
	// ErrSourceNotFound matches a TransformError of kind SourceNotFound.
	ErrSourceNotFound = errors.New("source file not found")
	// ErrMalformedInput matches a TransformError of kind MalformedInput.
	ErrMalformedInput = errors.New("malformed JSON input")
	// ErrUnsupportedFormat is returned for an unknown output encoding.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// TransformError is the single error type returned by Transform.
type TransformError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *TransformError) Error() string {
	switch {
	case e.Kind == SourceNotFound:
		return fmt.Sprintf("file %s does not exist", e.Path)
	case e.Kind == MalformedInput && e.Err == nil:
		return fmt.Sprintf("file %s is not valid JSON", e.Path)
	case e.Kind == MalformedInput:
		return fmt.Sprintf("file %s is not valid JSON: %v", e.Path, e.Err)
	case e.Err == nil:
		return e.Kind.String()
	default:
		return e.Err.Error()
	}
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match on the kind sentinels.
func (e *TransformError) Is(target error) bool {
	switch target {
	case ErrSourceNotFound:
		return e.Kind == SourceNotFound
	case ErrMalformedInput:
		return e.Kind == MalformedInput
	}
	return false
}

// KindOf reports the kind of err, or GenericFailure when err is not a
// TransformError.
func KindOf(err error) ErrorKind {
	var te *TransformError
	if errors.As(err, &te) {
		return te.Kind
	}
	return GenericFailure
}

// MissingFieldError reports a record without a required key.
type MissingFieldError struct {
	Index int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("record %d: missing required key %q", e.Index, e.Field)
}

// FieldTypeError reports a required key holding the wrong kind of value.
type FieldTypeError struct {
	Index int
	Field string
	Want  string
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("record %d: key %q must be %s", e.Index, e.Field, e.Want)
}
