package domain

// CheckResult is a single rubric check in presentation order.
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// EvaluationOutcome is the scored result of running one manifest kind's
// rubric. Checks keep the order they were produced in.
type EvaluationOutcome struct {
	Checks    []CheckResult `json:"checks"`
	Points    int           `json:"points"`
	MaxPoints int           `json:"max_points"`
}

// Pass records a passing check worth the given points.
func (o *EvaluationOutcome) Pass(name, detail string, points int) {
	o.Checks = append(o.Checks, CheckResult{Name: name, Passed: true, Detail: detail})
	o.Points += points
}

// Fail records a failing check.
func (o *EvaluationOutcome) Fail(name, detail string) {
	o.Checks = append(o.Checks, CheckResult{Name: name, Detail: detail})
}

// Complete reports whether every available point was earned.
func (o EvaluationOutcome) Complete() bool {
	return o.Points == o.MaxPoints
}

// KindResult pairs a manifest kind with its evaluation.
type KindResult struct {
	Kind    string            `json:"kind"`
	File    string            `json:"file"`
	Outcome EvaluationOutcome `json:"outcome"`
}

// Report aggregates the evaluations of all manifest kinds in rubric order.
type Report struct {
	Results     []KindResult `json:"results"`
	TotalPoints int          `json:"total_points"`
	TotalMax    int          `json:"total_max"`
	Percent     int          `json:"percent"`
	CommitHash  string       `json:"commit_hash,omitempty"`
}

// BuildReport sums points across kinds and computes the floor percentage.
func BuildReport(results []KindResult) *Report {
	r := &Report{Results: results}
	for _, kr := range results {
		r.TotalPoints += kr.Outcome.Points
		r.TotalMax += kr.Outcome.MaxPoints
	}
	if r.TotalMax > 0 {
		r.Percent = r.TotalPoints * 100 / r.TotalMax
	}
	return r
}

// Verdict tiers derived from the overall percentage.
const (
	VerdictComplete  = "complete"
	VerdictAlmost    = "almost there"
	VerdictKeepGoing = "keep going"
)

// Verdict returns the tier for the report's percentage.
func (r *Report) Verdict() string {
	return VerdictFor(r.Percent)
}

func VerdictFor(percent int) string {
	switch {
	case percent == 100:
		return VerdictComplete
	case percent >= 80:
		return VerdictAlmost
	default:
		return VerdictKeepGoing
	}
}

// GradeEntry is one saved grading run.
type GradeEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Points     int    `json:"points"`
	Percent    int    `json:"percent"`
}
