package domain

import (
	"fmt"
	"time"
)

// Options configure the harness. They come from .kubegrade.yaml when
// present, with every field optional.
type Options struct {
	// ManifestDir holds the four manifest files, relative to the
	// challenge directory.
	ManifestDir string `yaml:"manifest_dir"`
	// ClusterName is the kind cluster used by deploy.
	ClusterName string `yaml:"cluster_name"`
	// Image is the tag built and loaded into the cluster.
	Image string `yaml:"image"`
	// BuildContext is the docker build context for the demo app.
	BuildContext string `yaml:"build_context"`
	// WaitTimeoutSeconds bounds the kubectl wait for the deployment.
	WaitTimeoutSeconds int `yaml:"wait_timeout_seconds"`
}

// DefaultOptions mirror the challenge repository layout.
func DefaultOptions() Options {
	return Options{
		ManifestDir:        "k8s",
		ClusterName:        "k8s-challenge",
		Image:              "k8s-challenge-app:latest",
		BuildContext:       ".",
		WaitTimeoutSeconds: 60,
	}
}

// Validate rejects values the deploy pipeline cannot work with.
func (o Options) Validate() error {
	if o.ManifestDir == "" {
		return fmt.Errorf("manifest_dir must not be empty")
	}
	if o.ClusterName == "" {
		return fmt.Errorf("cluster_name must not be empty")
	}
	if o.WaitTimeoutSeconds < 0 {
		return fmt.Errorf("wait_timeout_seconds must not be negative, got %d", o.WaitTimeoutSeconds)
	}
	return nil
}

// WaitTimeout returns the deployment readiness timeout as a duration.
func (o Options) WaitTimeout() time.Duration {
	return time.Duration(o.WaitTimeoutSeconds) * time.Second
}
