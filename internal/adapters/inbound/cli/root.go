package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kubegrade",
		Short:         "Check your Kubernetes challenge manifests",
		Long:          "Kubegrade scores the four challenge manifests against the rubric and can deploy them to a local kind cluster.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGradeCmd())
	cmd.AddCommand(newDeployCmd())
	cmd.AddCommand(newCleanCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
