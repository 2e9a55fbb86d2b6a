package rubric

import (
	"fmt"
	"strings"

	"github.com/kubegrade/kubegrade/internal/domain"
)

// EvaluateConfigMap grades configmap.yaml (15 points): exact name (3),
// PLACEHOLDER removed (2), all three config keys present (10, with 3 points
// per key found as partial credit).
func EvaluateConfigMap(m domain.Manifest) domain.EvaluationOutcome {
	out, done := preflight(m, "ConfigMap", ConfigMapMaxPoints)
	if done {
		return out
	}
	doc := m.Doc

	name := domain.StringAt(doc, "metadata", "name")
	if name == "k8s-challenge-config" {
		out.Pass("Correct name", name, 3)
	} else {
		out.Fail("Correct name", fmt.Sprintf("Expected k8s-challenge-config, got %s", name))
	}

	data := domain.MapAt(doc, "data")

	// The placeholder rule only surfaces when violated; the points are
	// awarded silently otherwise.
	if _, present := data["PLACEHOLDER"]; present {
		out.Fail("Remove placeholder", "PLACEHOLDER key still present")
	} else {
		out.Points += 2
	}

	required := []string{"FLASK_ENV", "LOG_LEVEL", "APP_NAME"}
	var found, missing []string
	for _, key := range required {
		if _, ok := data[key]; ok {
			found = append(found, key)
		} else {
			missing = append(missing, key)
		}
	}

	if len(found) == len(required) {
		out.Pass("All config keys", strings.Join(found, ", "), 10)
	} else {
		out.Fail("All config keys", "Missing: "+strings.Join(missing, ", "))
		out.Points += len(found) * 3 // partial credit
	}

	return out
}
