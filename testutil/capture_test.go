package testutil

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureStdout(t *testing.T) {
	got, err := Capture(CaptureStdout, func() {
		fmt.Println("Hello, World!")
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", got.Stdout())
	assert.Empty(t, got.Stderr())
}

func TestCaptureStderr(t *testing.T) {
	got, err := Capture(CaptureStderr, func() {
		fmt.Fprintln(os.Stderr, "oh no")
	})
	require.NoError(t, err)
	assert.Equal(t, "oh no", got.Stderr())
	assert.Empty(t, got.Stdout())
}

func TestCaptureAll(t *testing.T) {
	got, err := Capture(CaptureAll, func() {
		fmt.Println("to out")
		fmt.Fprintln(os.Stderr, "to err")
	})
	require.NoError(t, err)
	assert.Equal(t, "to out", got.Stdout())
	assert.Equal(t, "to err", got.Stderr())
}

func TestCaptureStdoutOnlyLeavesStderrAlone(t *testing.T) {
	origOut, origErr := os.Stdout, os.Stderr
	_, err := Capture(CaptureStdout, func() {
		assert.Same(t, origErr, os.Stderr)
		assert.NotSame(t, origOut, os.Stdout)
	})
	require.NoError(t, err)
}

func TestCaptureRestoresStreams(t *testing.T) {
	origOut, origErr := os.Stdout, os.Stderr
	_, err := Capture(CaptureAll, func() {})
	require.NoError(t, err)
	assert.Same(t, origOut, os.Stdout)
	assert.Same(t, origErr, os.Stderr)
}

func TestCaptureRestoresOnPanic(t *testing.T) {
	origOut := os.Stdout
	assert.Panics(t, func() {
		Capture(CaptureStdout, func() {
			fmt.Println("before the panic")
			panic("boom")
		})
	})
	assert.Same(t, origOut, os.Stdout)
}

func TestCaptureUnknownMode(t *testing.T) {
	origOut, origErr := os.Stdout, os.Stderr
	_, err := Capture("both", func() {
		t.Error("fn ran despite the bad mode")
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Contains(t, err.Error(), `"both"`)
	// No partial effect: streams untouched.
	assert.Same(t, origOut, os.Stdout)
	assert.Same(t, origErr, os.Stderr)
}

func TestCaptureTrimsWhitespace(t *testing.T) {
	got, err := Capture(CaptureStdout, func() {
		fmt.Print("\n  padded  \n\n")
	})
	require.NoError(t, err)
	assert.Equal(t, "padded", got.Stdout())
}

func TestCaptureMultipleWrites(t *testing.T) {
	got, err := Capture(CaptureStdout, func() {
		fmt.Println("line one")
		fmt.Println("line two")
	})
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got.Stdout())
}
