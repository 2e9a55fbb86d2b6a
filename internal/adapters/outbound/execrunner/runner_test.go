package execrunner_test

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubegrade/kubegrade/internal/adapters/outbound/execrunner"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell")
	}
}

func TestRun_CapturesOutputAndExitCode(t *testing.T) {
	skipOnWindows(t)

	res, err := execrunner.New().Run(context.Background(), "sh", "-c", "echo out; echo err >&2; exit 3")

	require.NoError(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "out\n", res.Stdout)
	assert.Equal(t, "err\n", res.Stderr)
}

func TestRun_ZeroExit(t *testing.T) {
	skipOnWindows(t)

	res, err := execrunner.New().Run(context.Background(), "sh", "-c", "echo hi")

	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hi\n", res.Stdout)
}

func TestRun_MissingBinaryIsAnError(t *testing.T) {
	_, err := execrunner.New().Run(context.Background(), "definitely-not-a-real-tool-xyz")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-real-tool-xyz")
}

func TestRunWithTimeout_Expires(t *testing.T) {
	skipOnWindows(t)

	start := time.Now()
	_, err := execrunner.New().RunWithTimeout(100*time.Millisecond, "sleep", "5")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 2*time.Second)
}
