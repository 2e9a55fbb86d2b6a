package application

import (
	"path/filepath"

	"github.com/kubegrade/kubegrade/internal/domain"
	"github.com/kubegrade/kubegrade/internal/domain/rubric"
)

// GradeService runs the full rubric over a manifest directory:
// load each file → evaluate → aggregate into a report.
type GradeService struct {
	loader domain.ManifestLoader
}

func NewGradeService(loader domain.ManifestLoader) *GradeService {
	return &GradeService{loader: loader}
}

// Grade evaluates the four manifests in rubric order and returns the
// aggregated report. Missing or broken files score as failing checks, so
// grading itself cannot fail.
func (s *GradeService) Grade(manifestDir string) *domain.Report {
	kinds := rubric.Kinds()
	results := make([]domain.KindResult, 0, len(kinds))
	for _, kind := range kinds {
		manifest := s.loader.Load(filepath.Join(manifestDir, kind.File))
		results = append(results, domain.KindResult{
			Kind:    kind.Name,
			File:    kind.File,
			Outcome: kind.Evaluate(manifest),
		})
	}
	return domain.BuildReport(results)
}
