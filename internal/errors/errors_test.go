package errors

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAsType(t *testing.T) {
	base := &fs.PathError{Op: "open", Path: "products/x", Err: fs.ErrNotExist}
	wrapped := Wrap(base, "load image")

	got, ok := AsType[*fs.PathError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)
	assert.True(t, Is(wrapped, fs.ErrNotExist))

	_, ok = AsType[*fs.PathError](New("plain"))
	assert.False(t, ok)
}

func TestWrap_NilStaysNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
	assert.NoError(t, WithStack(nil))
}
