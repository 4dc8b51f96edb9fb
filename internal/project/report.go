package project

import (
	"fmt"
	"sort"
)

// Report accumulates the human-readable summary and next steps of a run.
// Appends may repeat; Summary and NextSteps dedupe and sort at read time.
type Report struct {
	log   []string
	steps []string
}

// Log appends a formatted summary line.
func (r *Report) Log(format string, args ...interface{}) {
	r.log = append(r.log, fmt.Sprintf(format, args...))
}

// NextStep appends a follow-up instruction for the developer.
func (r *Report) NextStep(step string) {
	r.steps = append(r.steps, step)
}

// Summary returns the deduplicated, sorted summary lines.
func (r *Report) Summary() []string {
	return sortedUnique(r.log)
}

// NextSteps returns the deduplicated, sorted next-step entries.
func (r *Report) NextSteps() []string {
	return sortedUnique(r.steps)
}

func sortedUnique(in []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
