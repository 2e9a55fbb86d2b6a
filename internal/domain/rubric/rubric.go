// Package rubric holds the fixed grading rubric for the Kubernetes basics
// challenge: one point-weighted evaluator per manifest kind. Evaluators are
// pure functions over the generic manifest document and never fail; missing
// fields default to empty values and simply miss their points.
package rubric

import "github.com/kubegrade/kubegrade/internal/domain"

// Maximum points per manifest kind. The full rubric totals 75.
const (
	DeploymentMaxPoints = 25
	ServiceMaxPoints    = 20
	ConfigMapMaxPoints  = 15
	SecretMaxPoints     = 15
)

// ManifestKind binds a manifest file to its evaluator.
type ManifestKind struct {
	Name      string
	File      string
	MaxPoints int
	Evaluate  func(domain.Manifest) domain.EvaluationOutcome
}

// Kinds returns the rubric in presentation order.
func Kinds() []ManifestKind {
	return []ManifestKind{
		{Name: "Deployment", File: "deployment.yaml", MaxPoints: DeploymentMaxPoints, Evaluate: EvaluateDeployment},
		{Name: "Service", File: "service.yaml", MaxPoints: ServiceMaxPoints, Evaluate: EvaluateService},
		{Name: "ConfigMap", File: "configmap.yaml", MaxPoints: ConfigMapMaxPoints, Evaluate: EvaluateConfigMap},
		{Name: "Secret", File: "secret.yaml", MaxPoints: SecretMaxPoints, Evaluate: EvaluateSecret},
	}
}

// preflight handles the absent and malformed sentinel states shared by all
// evaluators. The second return is true when the outcome is final.
func preflight(m domain.Manifest, kind string, maxPoints int) (domain.EvaluationOutcome, bool) {
	out := domain.EvaluationOutcome{MaxPoints: maxPoints}
	switch m.State {
	case domain.ManifestAbsent:
		out.Fail(kind+" file exists", "File not found")
		return out, true
	case domain.ManifestMalformed:
		out.Fail("Valid YAML", m.ParseError)
		return out, true
	}
	return out, false
}
