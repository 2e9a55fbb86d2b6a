package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kubegrade/kubegrade/internal/adapters/outbound/config"
	"github.com/kubegrade/kubegrade/internal/adapters/outbound/execrunner"
	"github.com/kubegrade/kubegrade/internal/adapters/outbound/tui"
	"github.com/kubegrade/kubegrade/internal/application"
	"github.com/kubegrade/kubegrade/internal/domain"
)

func newDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy [path]",
		Short: "Deploy the challenge to a local kind cluster",
		Long:  "Build the demo image, load it into a kind cluster, apply the manifests, and wait for the deployment to become available.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newDeployService(cmd, args)
			if err != nil {
				return err
			}

			if err := svc.Deploy(cmd.Context()); err != nil {
				// Failure and hint were already reported per step.
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, "  To test your app:")
			fmt.Fprintln(out, "    kubectl port-forward service/k8s-challenge-service 8080:80")
			fmt.Fprintln(out, "    curl http://localhost:8080/health")
			fmt.Fprintln(out, "  To view logs:")
			fmt.Fprintln(out, "    kubectl logs -l app=k8s-challenge")
			return nil
		},
	}
	return cmd
}

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [path]",
		Short: "Delete the challenge resources from the cluster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := newDeployService(cmd, args)
			if err != nil {
				return err
			}
			return svc.Clean(cmd.Context())
		},
	}
	return cmd
}

// newDeployService wires the deploy pipeline for a challenge directory,
// resolving the manifest dir and build context against it.
func newDeployService(cmd *cobra.Command, args []string) (*application.DeployService, domain.Options, error) {
	path := "."
	if len(args) > 0 {
		path = args[0]
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, domain.Options{}, fmt.Errorf("resolving path: %w", err)
	}

	opts, err := config.New().Load(absPath)
	if err != nil {
		return nil, domain.Options{}, err
	}
	opts.ManifestDir = filepath.Join(absPath, opts.ManifestDir)
	opts.BuildContext = filepath.Join(absPath, opts.BuildContext)

	reporter := tui.NewSpinnerReporter(cmd.OutOrStdout())
	svc := application.NewDeployService(execrunner.New(), reporter, opts)
	return svc, opts, nil
}
