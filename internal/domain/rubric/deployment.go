package rubric

import (
	"fmt"
	"strings"

	"github.com/kubegrade/kubegrade/internal/domain"
)

// EvaluateDeployment grades deployment.yaml (25 points):
// replicas >= 2 (5), image (3), resources (5), liveness probe (4),
// readiness probe (4), configMapRef (2), secretKeyRef (2).
func EvaluateDeployment(m domain.Manifest) domain.EvaluationOutcome {
	out, done := preflight(m, "Deployment", DeploymentMaxPoints)
	if done {
		return out
	}
	doc := m.Doc

	replicas := domain.IntAt(doc, "spec", "replicas")
	if replicas >= 2 {
		out.Pass("Replicas >= 2", fmt.Sprintf("Found %d replicas", replicas), 5)
	} else {
		out.Fail("Replicas >= 2", fmt.Sprintf("Found %d, need at least 2", replicas))
	}

	containers := domain.SliceAt(doc, "spec", "template", "spec", "containers")
	if len(containers) == 0 {
		out.Fail("Container defined", "No containers found")
		return out
	}
	container := domain.AsMap(containers[0])

	image := domain.StringAt(container, "image")
	if strings.Contains(image, "k8s-challenge-app") {
		out.Pass("Correct image", image, 3)
	} else {
		out.Fail("Correct image", fmt.Sprintf("Expected k8s-challenge-app, got %s", image))
	}

	resources := domain.MapAt(container, "resources")
	if domain.Truthy(resources["limits"]) && domain.Truthy(resources["requests"]) {
		out.Pass("Resource limits", "Requests and limits defined", 5)
	} else {
		out.Fail("Resource limits", "Missing requests or limits")
	}

	checkProbe(&out, container, "livenessProbe", "Liveness probe")
	checkProbe(&out, container, "readinessProbe", "Readiness probe")

	hasConfigMap := false
	for _, entry := range domain.SliceAt(container, "envFrom") {
		if domain.Truthy(domain.AsMap(entry)["configMapRef"]) {
			hasConfigMap = true
		}
	}
	if hasConfigMap {
		out.Pass("ConfigMap reference", "envFrom configured", 2)
	} else {
		out.Fail("ConfigMap reference", "Missing envFrom configMapRef")
	}

	hasSecret := false
	for _, entry := range domain.SliceAt(container, "env") {
		if domain.Truthy(domain.ValueAt(domain.AsMap(entry), "valueFrom", "secretKeyRef")) {
			hasSecret = true
		}
	}
	if hasSecret {
		out.Pass("Secret reference", "secretKeyRef configured", 2)
	} else {
		out.Fail("Secret reference", "Missing secretKeyRef")
	}

	return out
}

// checkProbe awards 4 points when the probe does an HTTP GET on /health.
func checkProbe(out *domain.EvaluationOutcome, container map[string]any, field, name string) {
	probe := domain.MapAt(container, field)
	if len(probe) == 0 {
		out.Fail(name, "Not configured")
		return
	}
	if domain.StringAt(probe, "httpGet", "path") == "/health" {
		out.Pass(name, "HTTP GET /health", 4)
	} else {
		out.Fail(name, "Wrong path or type")
	}
}
