package services

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "source_not_found", SourceNotFound.String())
	assert.Equal(t, "malformed_input", MalformedInput.String())
	assert.Equal(t, "generic_failure", GenericFailure.String())
}

func TestTransformErrorMatching(t *testing.T) {
	notFound := &TransformError{Kind: SourceNotFound, Path: "in.json", Err: fs.ErrNotExist}
	assert.True(t, errors.Is(notFound, ErrSourceNotFound))
	assert.True(t, errors.Is(notFound, fs.ErrNotExist))
	assert.False(t, errors.Is(notFound, ErrMalformedInput))
	assert.Equal(t, "file in.json does not exist", notFound.Error())

	wrapped := fmt.Errorf("run: %w", &TransformError{Kind: MalformedInput, Path: "in.json", Err: errors.New("bad token")})
	assert.True(t, errors.Is(wrapped, ErrMalformedInput))
	assert.Equal(t, MalformedInput, KindOf(wrapped))
}

func TestTransformErrorWithoutCause(t *testing.T) {
	assert.Equal(t, "generic_failure", (&TransformError{}).Error())
	assert.Equal(t, "file in.json is not valid JSON", (&TransformError{Kind: MalformedInput, Path: "in.json"}).Error())
	assert.Equal(t, "file in.json does not exist", (&TransformError{Kind: SourceNotFound, Path: "in.json"}).Error())
	assert.NoError(t, (&TransformError{}).Unwrap())
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, GenericFailure, KindOf(errors.New("boom")))
}

func TestMissingFieldErrorMessage(t *testing.T) {
	err := &MissingFieldError{Index: 2, Field: "title"}
	assert.Equal(t, `record 2: missing required key "title"`, err.Error())

	te := &TransformError{Kind: GenericFailure, Err: err}
	assert.Equal(t, err.Error(), te.Error())
}
