// Package report defines the sink the validation engine emits conflict
// findings to, together with the in-memory implementation used by tests
// and the CLI.
package report

import (
	"sort"

	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// Sink receives conflict findings during a validation run. Report must
// be idempotent per exact (date, reason) pair: reporting the same
// reason twice for one date must not duplicate it.
type Sink interface {
	// Clear removes all prior findings.
	Clear()

	// Report records one finding against a date.
	Report(date, reason string)
}

// Summarizer is implemented by sinks that want the end-of-run signal.
// The engine calls Finish exactly once per validation run, after all
// rules have executed.
type Summarizer interface {
	Finish(totalConflicts int)
}

// MemorySink accumulates findings in memory, deduplicated per exact
// (date, reason) pair, preserving first-report order within a date.
type MemorySink struct {
	seen    map[model.Finding]bool
	byDate  map[string][]string
	total   int
	summary bool
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	s := &MemorySink{}
	s.Clear()
	return s
}

func (s *MemorySink) Clear() {
	s.seen = make(map[model.Finding]bool)
	s.byDate = make(map[string][]string)
	s.total = 0
	s.summary = false
}

func (s *MemorySink) Report(date, reason string) {
	f := model.Finding{Date: date, Reason: reason}
	if s.seen[f] {
		return
	}
	s.seen[f] = true
	s.byDate[date] = append(s.byDate[date], reason)
}

func (s *MemorySink) Finish(totalConflicts int) {
	s.total = totalConflicts
	s.summary = true
}

// Reasons returns the accumulated reasons for one date, in report order.
func (s *MemorySink) Reasons(date string) []string {
	return s.byDate[date]
}

// Dates returns every date with at least one finding, sorted.
func (s *MemorySink) Dates() []string {
	out := make([]string, 0, len(s.byDate))
	for d := range s.byDate {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Findings returns every accumulated finding, sorted by date then by
// report order within the date.
func (s *MemorySink) Findings() []model.Finding {
	var out []model.Finding
	for _, d := range s.Dates() {
		for _, r := range s.byDate[d] {
			out = append(out, model.Finding{Date: d, Reason: r})
		}
	}
	return out
}

// TotalConflicts returns the conflict count delivered by Finish.
func (s *MemorySink) TotalConflicts() int {
	return s.total
}

// Finished reports whether the end-of-run signal has arrived.
func (s *MemorySink) Finished() bool {
	return s.summary
}
