package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kubegrade/kubegrade/internal/domain"
)

func TestEvaluationOutcome_PassAndFailKeepOrder(t *testing.T) {
	out := domain.EvaluationOutcome{MaxPoints: 10}
	out.Pass("first", "ok", 4)
	out.Fail("second", "nope")
	out.Pass("third", "", 6)

	require.Len(t, out.Checks, 3)
	assert.Equal(t, "first", out.Checks[0].Name)
	assert.Equal(t, "second", out.Checks[1].Name)
	assert.Equal(t, "third", out.Checks[2].Name)
	assert.Equal(t, 10, out.Points)
	assert.True(t, out.Complete())
}

func TestBuildReport_SumsAndFloorsPercent(t *testing.T) {
	report := domain.BuildReport([]domain.KindResult{
		{Kind: "Deployment", Outcome: domain.EvaluationOutcome{Points: 20, MaxPoints: 25}},
		{Kind: "Service", Outcome: domain.EvaluationOutcome{Points: 10, MaxPoints: 20}},
		{Kind: "ConfigMap", Outcome: domain.EvaluationOutcome{Points: 15, MaxPoints: 15}},
		{Kind: "Secret", Outcome: domain.EvaluationOutcome{Points: 5, MaxPoints: 15}},
	})

	assert.Equal(t, 50, report.TotalPoints)
	assert.Equal(t, 75, report.TotalMax)
	// 50/75 is 66.67%; the report floors it.
	assert.Equal(t, 66, report.Percent)
}

func TestBuildReport_EmptyResults(t *testing.T) {
	report := domain.BuildReport(nil)

	assert.Equal(t, 0, report.TotalMax)
	assert.Equal(t, 0, report.Percent)
}

func TestVerdictFor_Tiers(t *testing.T) {
	assert.Equal(t, domain.VerdictComplete, domain.VerdictFor(100))
	assert.Equal(t, domain.VerdictAlmost, domain.VerdictFor(99))
	assert.Equal(t, domain.VerdictAlmost, domain.VerdictFor(80))
	assert.Equal(t, domain.VerdictKeepGoing, domain.VerdictFor(79))
	assert.Equal(t, domain.VerdictKeepGoing, domain.VerdictFor(0))
}

func TestReport_Verdict(t *testing.T) {
	report := domain.BuildReport([]domain.KindResult{
		{Kind: "Secret", Outcome: domain.EvaluationOutcome{Points: 15, MaxPoints: 15}},
	})
	assert.Equal(t, domain.VerdictComplete, report.Verdict())
}
