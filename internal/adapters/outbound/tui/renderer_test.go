package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kubegrade/kubegrade/internal/adapters/outbound/tui"
	"github.com/kubegrade/kubegrade/internal/domain"
)

func sampleReport() *domain.Report {
	deployment := domain.EvaluationOutcome{MaxPoints: 25}
	deployment.Pass("Replicas >= 2", "Found 3 replicas", 5)
	deployment.Fail("Correct image", "Expected k8s-challenge-app, got nginx:latest")

	secret := domain.EvaluationOutcome{MaxPoints: 15}
	secret.Pass("Correct name", "k8s-challenge-secrets", 3)
	secret.Pass("Type Opaque", "", 2)
	secret.Pass("api-key (base64)", "Valid (5 chars decoded)", 10)

	return domain.BuildReport([]domain.KindResult{
		{Kind: "Deployment", File: "deployment.yaml", Outcome: deployment},
		{Kind: "Secret", File: "secret.yaml", Outcome: secret},
	})
}

func TestRenderReport_ContainsKindHeaders(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Deployment")
	assert.Contains(t, output, "(5/25 points)")
	assert.Contains(t, output, "Secret")
	assert.Contains(t, output, "(15/15 points)")
}

func TestRenderReport_ContainsCheckLines(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	assert.Contains(t, output, "Replicas >= 2")
	assert.Contains(t, output, "Found 3 replicas")
	assert.Contains(t, output, "Expected k8s-challenge-app, got nginx:latest")
}

func TestRenderReport_ContainsScoreLine(t *testing.T) {
	output := tui.RenderReport(sampleReport())
	// 20 of 40 points in the sample
	assert.Contains(t, output, "20/40 points (50%)")
	assert.Contains(t, output, "Keep going!")
}

func TestRenderReport_CompleteVerdict(t *testing.T) {
	secret := domain.EvaluationOutcome{MaxPoints: 15}
	secret.Pass("Correct name", "k8s-challenge-secrets", 3)
	secret.Pass("Type Opaque", "", 2)
	secret.Pass("api-key (base64)", "Valid (5 chars decoded)", 10)
	report := domain.BuildReport([]domain.KindResult{
		{Kind: "Secret", File: "secret.yaml", Outcome: secret},
	})

	output := tui.RenderReport(report)

	assert.Contains(t, output, "All manifests complete!")
	assert.Contains(t, output, "kubegrade deploy")
}

func TestRenderReport_AlmostThereVerdict(t *testing.T) {
	outcome := domain.EvaluationOutcome{MaxPoints: 25}
	outcome.Pass("Replicas >= 2", "", 20)
	report := domain.BuildReport([]domain.KindResult{
		{Kind: "Deployment", Outcome: outcome},
	})

	output := tui.RenderReport(report)

	assert.Contains(t, output, "Almost there!")
}

func TestRenderHistory_Empty(t *testing.T) {
	output := tui.RenderHistory(nil)
	assert.Contains(t, output, "No grade history found")
}

func TestRenderHistory_ShowsEntriesAndDeltas(t *testing.T) {
	output := tui.RenderHistory([]domain.GradeEntry{
		{Timestamp: "2026-08-24T10:00:00Z", Percent: 53},
		{Timestamp: "2026-08-24T11:00:00Z", Percent: 100, CommitHash: "abcdef1234"},
	})

	assert.Contains(t, output, "2026-08-24")
	assert.Contains(t, output, "abcdef1")
	assert.Contains(t, output, "53%")
	assert.Contains(t, output, "100%")
	assert.Contains(t, output, "↑47")
}
