package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kubegrade/kubegrade/internal/domain"
)

const fileName = ".kubegrade.yaml"

// YAMLLoader implements domain.OptionsLoader by reading .kubegrade.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .kubegrade.yaml from dir. Returns DefaultOptions if the file
// does not exist; explicit values override defaults field by field.
func (l *YAMLLoader) Load(dir string) (domain.Options, error) {
	data, err := os.ReadFile(filepath.Join(dir, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultOptions(), nil
		}
		return domain.Options{}, err
	}

	opts := domain.DefaultOptions()
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return domain.Options{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	if err := opts.Validate(); err != nil {
		return domain.Options{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return opts, nil
}
