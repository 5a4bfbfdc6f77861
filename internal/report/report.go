// Package report prints run-scoped progress to the user. Every run gets
// a unique ID so log lines from overlapping runs can be told apart.
package report

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
)

// Reporter writes user-facing progress for one export run.
type Reporter struct {
	runID   uuid.UUID
	out     io.Writer
	started time.Time
}

// New creates a reporter writing to stdout.
func New() *Reporter {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a reporter writing to w.
func NewWithWriter(w io.Writer) *Reporter {
	r := &Reporter{
		runID:   uuid.New(),
		out:     w,
		started: time.Now(),
	}
	log.Printf("report: run %s started", r.runID)
	return r
}

// RunID returns this run's unique identifier.
func (r *Reporter) RunID() string {
	return r.runID.String()
}

// Stage announces a new stage of the run, e.g. "Reading Watch history".
func (r *Reporter) Stage(name string) {
	fmt.Fprintf(r.out, "%s...\n", name)
}

// Step reports progress within a staged sequence.
func (r *Reporter) Step(label string, current, total int) {
	fmt.Fprintf(r.out, "  [%d/%d] %s\n", current, total, label)
}

// Info prints a plain informational line.
func (r *Reporter) Info(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Warn prints a warning line.
func (r *Reporter) Warn(format string, args ...any) {
	fmt.Fprintf(r.out, "Warning: "+format+"\n", args...)
}

// Done announces the end of the run with its elapsed time.
func (r *Reporter) Done() {
	elapsed := time.Since(r.started).Round(time.Second)
	log.Printf("report: run %s finished in %s", r.runID, elapsed)
	fmt.Fprintf(r.out, "Done in %s.\n", elapsed)
}
