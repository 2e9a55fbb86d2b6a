package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubegrade/kubegrade/internal/adapters/outbound/config"
	"github.com/kubegrade/kubegrade/internal/domain"
)

func TestLoad_NoFileReturnsDefaults(t *testing.T) {
	opts, err := config.New().Load(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultOptions(), opts)
}

func TestLoad_OverridesKeepUnsetDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kubegrade.yaml"),
		[]byte("cluster_name: my-cluster\nwait_timeout_seconds: 120\n"), 0644))

	opts, err := config.New().Load(dir)

	require.NoError(t, err)
	assert.Equal(t, "my-cluster", opts.ClusterName)
	assert.Equal(t, 120, opts.WaitTimeoutSeconds)
	assert.Equal(t, "k8s", opts.ManifestDir)
	assert.Equal(t, "k8s-challenge-app:latest", opts.Image)
}

func TestLoad_InvalidYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kubegrade.yaml"),
		[]byte("cluster_name: [broken\n"), 0644))

	_, err := config.New().Load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ".kubegrade.yaml")
}

func TestLoad_InvalidValuesErrors(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".kubegrade.yaml"),
		[]byte("wait_timeout_seconds: -5\n"), 0644))

	_, err := config.New().Load(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .kubegrade.yaml")
}
