package loader

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kubegrade/kubegrade/internal/domain"
)

// YAMLLoader implements domain.ManifestLoader with yaml.v3. Every failure
// mode maps to a sentinel manifest so the rubric can grade it.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads a manifest file. A missing file is Absent; unreadable or
// unparseable content is Malformed with the error surfaced verbatim.
func (l *YAMLLoader) Load(path string) domain.Manifest {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.AbsentManifest()
		}
		return domain.MalformedManifest(err.Error())
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return domain.MalformedManifest(err.Error())
	}
	return domain.LoadedManifest(doc)
}
