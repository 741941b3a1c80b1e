package wlan

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs command with stdout going to a temporary file, which
// unlike a pipe can't fill up and block a chatty command.
func captureStdout(t *testing.T, command func()) string {
	t.Helper()

	var f, err = os.CreateTemp(t.TempDir(), "stdout")
	require.NoError(t, err)
	defer f.Close()

	var oldStdout = os.Stdout
	os.Stdout = f
	defer func() {
		os.Stdout = oldStdout
	}()

	command()

	_, err = f.Seek(0, io.SeekStart)
	require.NoError(t, err)

	var output, readErr = io.ReadAll(f)
	require.NoError(t, readErr)

	return string(output)
}

func AssertOutputContains(t *testing.T, command func(), expectedOutputContains string) {
	t.Helper()

	assert.Contains(t, captureStdout(t, command), expectedOutputContains)
}
