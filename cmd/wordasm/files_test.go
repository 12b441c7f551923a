package main

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

type closeRecorder struct {
	bytes.Buffer
	closed bool
	err    error
}

func (cr *closeRecorder) Close() error {
	cr.closed = true
	return cr.err
}

func TestWriteOutput(t *testing.T) {
	assert := assert.New(t)

	errWrite := errors.New("write failed")
	errClose := errors.New("close failed")

	write := func(w io.Writer) error {
		_, err := w.Write([]byte("003100b3\n"))
		return err
	}

	out := &closeRecorder{}
	assert.NoError(writeOutput(out, write))
	assert.True(out.closed)
	assert.Equal("003100b3\n", out.String())

	out = &closeRecorder{err: errClose}
	assert.ErrorIs(writeOutput(out, write), errClose)
	assert.True(out.closed)

	out = &closeRecorder{err: errClose}
	err := writeOutput(out, func(io.Writer) error { return errWrite })
	assert.ErrorIs(err, errWrite)
	assert.NotErrorIs(err, errClose)
	assert.True(out.closed)

	assert.NoError(writeOutput(nopWriteCloser{&bytes.Buffer{}}, write))
}
