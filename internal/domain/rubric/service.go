package rubric

import (
	"fmt"

	"github.com/kubegrade/kubegrade/internal/domain"
)

// EvaluateService grades service.yaml (20 points): NodePort type (5),
// selector (5), 80→5000 port mapping (5), explicit nodePort (5).
func EvaluateService(m domain.Manifest) domain.EvaluationOutcome {
	out, done := preflight(m, "Service", ServiceMaxPoints)
	if done {
		return out
	}
	doc := m.Doc

	// An omitted type means ClusterIP.
	svcType := domain.StringAt(doc, "spec", "type")
	if svcType == "" {
		svcType = "ClusterIP"
	}
	if svcType == "NodePort" {
		out.Pass("Service type", "NodePort", 5)
	} else {
		out.Fail("Service type", fmt.Sprintf("Expected NodePort, got %s", svcType))
	}

	selector := domain.MapAt(doc, "spec", "selector")
	if domain.StringAt(selector, "app") == "k8s-challenge" {
		out.Pass("Selector matches", "app: k8s-challenge", 5)
	} else {
		out.Fail("Selector matches", fmt.Sprintf("Expected app: k8s-challenge, got %v", selector))
	}

	ports := domain.SliceAt(doc, "spec", "ports")
	if len(ports) == 0 {
		out.Fail("Ports defined", "No ports configured")
		return out
	}
	port := domain.AsMap(ports[0])

	if domain.IntAt(port, "port") == 80 && domain.IntAt(port, "targetPort") == 5000 {
		out.Pass("Port mapping", "80 → 5000", 5)
	} else {
		out.Fail("Port mapping", fmt.Sprintf("Expected 80→5000, got %v→%v", port["port"], port["targetPort"]))
	}

	if domain.Truthy(port["nodePort"]) {
		out.Pass("NodePort set", fmt.Sprintf("Port %v", port["nodePort"]), 5)
	} else {
		out.Fail("NodePort set", "Not specified")
	}

	return out
}
