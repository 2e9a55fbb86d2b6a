package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerReporter implements domain.StepReporter with an animated spinner
// per pipeline step. Steps run strictly one at a time, so a single active
// spinner is enough.
type SpinnerReporter struct {
	out  io.Writer
	spin *spinner.Spinner
}

// NewSpinnerReporter writes step progress to out.
func NewSpinnerReporter(out io.Writer) *SpinnerReporter {
	return &SpinnerReporter{out: out}
}

func (r *SpinnerReporter) Start(step string) {
	r.spin = spinner.New(spinner.CharSets[9], 100*time.Millisecond,
		spinner.WithWriter(r.out), spinner.WithHiddenCursor(false))
	r.spin.Prefix = "  " + step + " "
	r.spin.Start()
}

func (r *SpinnerReporter) Success(step, detail string) {
	r.stop()
	line := "  " + passStyle.Render("✓") + " " + step
	if detail != "" {
		line += dimStyle.Render(" - " + detail)
	}
	fmt.Fprintln(r.out, line)
}

func (r *SpinnerReporter) Failure(step, detail, hint string) {
	r.stop()
	fmt.Fprintf(r.out, "  %s %s: %s\n", failStyle.Render("❌"), step, failStyle.Render(detail))
	if hint != "" {
		fmt.Fprintln(r.out, "     "+warnStyle.Render(hint))
	}
}

func (r *SpinnerReporter) Note(line string) {
	r.stop()
	fmt.Fprintln(r.out, "      "+dimStyle.Render(line))
}

func (r *SpinnerReporter) stop() {
	if r.spin != nil {
		r.spin.Stop()
		r.spin = nil
	}
}
