package rubric

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/kubegrade/kubegrade/internal/domain"
)

const secretPlaceholder = "REPLACE-WITH-BASE64-ENCODED-VALUE"

// EvaluateSecret grades secret.yaml (15 points): exact name (3), Opaque
// type (2), and a real base64-encoded api-key (10).
func EvaluateSecret(m domain.Manifest) domain.EvaluationOutcome {
	out, done := preflight(m, "Secret", SecretMaxPoints)
	if done {
		return out
	}
	doc := m.Doc

	name := domain.StringAt(doc, "metadata", "name")
	if name == "k8s-challenge-secrets" {
		out.Pass("Correct name", name, 3)
	} else {
		out.Fail("Correct name", fmt.Sprintf("Expected k8s-challenge-secrets, got %s", name))
	}

	secretType := domain.StringAt(doc, "type")
	if secretType == "Opaque" {
		out.Pass("Type Opaque", "", 2)
	} else {
		out.Fail("Type Opaque", fmt.Sprintf("Got %s", secretType))
	}

	apiKey := domain.StringAt(doc, "data", "api-key")
	if apiKey == "" || apiKey == secretPlaceholder {
		out.Fail("api-key (base64)", "Not set or still placeholder")
		return out
	}

	decoded, err := base64.StdEncoding.DecodeString(apiKey)
	switch {
	case err != nil || !utf8.Valid(decoded):
		out.Fail("api-key (base64)", "Invalid base64 encoding")
	case len(decoded) == 0:
		out.Fail("api-key (base64)", "Empty value")
	default:
		out.Pass("api-key (base64)", fmt.Sprintf("Valid (%d chars decoded)", utf8.RuneCount(decoded)), 10)
	}

	return out
}
