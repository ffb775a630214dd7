package report

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ZapSink decorates another sink, logging every finding and the
// end-of-run summary. Each run (delimited by Clear) is tagged with a
// fresh run ID so findings from separate runs can be told apart in the
// log stream.
type ZapSink struct {
	next   Sink
	logger *zap.Logger
	runID  string
	used   bool
}

// NewZapSink wraps next so findings are also logged through logger.
func NewZapSink(next Sink, logger *zap.Logger) *ZapSink {
	return &ZapSink{
		next:   next,
		logger: logger,
		runID:  uuid.NewString(),
	}
}

// RunID returns the identifier of the current validation run.
func (s *ZapSink) RunID() string {
	return s.runID
}

// Clear keeps the ID assigned at construction for the first run, so a
// caller may log it before validation starts; later runs get fresh IDs.
func (s *ZapSink) Clear() {
	if s.used {
		s.runID = uuid.NewString()
	}
	s.used = true
	s.logger.Debug("Starting validation run", zap.String("runID", s.runID))
	s.next.Clear()
}

func (s *ZapSink) Report(date, reason string) {
	s.logger.Warn("Schedule conflict",
		zap.String("runID", s.runID),
		zap.String("date", date),
		zap.String("reason", reason),
	)
	s.next.Report(date, reason)
}

func (s *ZapSink) Finish(totalConflicts int) {
	if totalConflicts == 0 {
		s.logger.Info("Validation passed", zap.String("runID", s.runID))
	} else {
		s.logger.Info("Validation finished with conflicts",
			zap.String("runID", s.runID),
			zap.Int("totalConflicts", totalConflicts),
		)
	}
	if sum, ok := s.next.(Summarizer); ok {
		sum.Finish(totalConflicts)
	}
}
