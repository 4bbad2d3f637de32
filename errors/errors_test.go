package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New("test error")
	require.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf("error: %s %d", "test", 42)
	require.NotNil(t, err)
	assert.Equal(t, "error: test 42", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestIs(t *testing.T) {
	err1 := New("error 1")
	err2 := New("error 2")
	wrapped := Wrap(err1, "wrapped")

	assert.True(t, Is(wrapped, err1))
	assert.False(t, Is(wrapped, err2))
	assert.False(t, Is(nil, err1))
}

func TestSentinels(t *testing.T) {
	err := Wrap(ErrNotFound, "respondent 7")
	assert.True(t, IsNotFoundError(err))
	assert.False(t, IsNotFoundError(New("other")))
	assert.False(t, IsNotFoundError(nil))
}

func TestWrapParse(t *testing.T) {
	decodeErr := New("yaml: line 3: did not find expected key")
	err := WrapParse(decodeErr, "failed to read roster")

	assert.True(t, IsParseError(err))
	assert.Contains(t, err.Error(), "failed to read roster")
	assert.Contains(t, err.Error(), "line 3")
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("respondent %d not in table", 12)
	assert.True(t, Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "respondent 12 not in table")
}
