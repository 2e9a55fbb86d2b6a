package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kubegrade/kubegrade/internal/adapters/outbound/config"
	"github.com/kubegrade/kubegrade/internal/adapters/outbound/gitinfo"
	"github.com/kubegrade/kubegrade/internal/adapters/outbound/history"
	"github.com/kubegrade/kubegrade/internal/adapters/outbound/loader"
	"github.com/kubegrade/kubegrade/internal/adapters/outbound/tui"
	"github.com/kubegrade/kubegrade/internal/application"
	"github.com/kubegrade/kubegrade/internal/domain"
)

func newGradeCmd() *cobra.Command {
	var (
		jsonOutput  bool
		ciMode      bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "grade [path]",
		Short: "Score the challenge manifests against the rubric",
		Long:  "Check deployment.yaml, service.yaml, configmap.yaml, and secret.yaml against the challenge rubric and print a scored report.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			opts, err := config.New().Load(absPath)
			if err != nil {
				return err
			}

			svc := application.NewGradeService(loader.New())
			report := svc.Grade(filepath.Join(absPath, opts.ManifestDir))

			// Attach git commit hash if available
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(absPath); err == nil {
				report.CommitHash = hash
			}

			// Save to history
			hist := history.New()
			entry := domain.GradeEntry{
				Timestamp:  time.Now().Format(time.RFC3339),
				CommitHash: report.CommitHash,
				Points:     report.TotalPoints,
				Percent:    report.Percent,
			}
			_ = hist.Save(absPath, entry) // best-effort

			// Show history if requested
			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))

			if ciMode && report.Percent < 100 {
				return fmt.Errorf("score %d%% is below 100%%", report.Percent)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 unless the score is 100%")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show grade history")

	return cmd
}

func renderJSON(cmd *cobra.Command, report *domain.Report) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
