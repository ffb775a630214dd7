package rules

import (
	"time"

	"github.com/rosterkit/rosterkit/pkg/core/model"
	"github.com/rosterkit/rosterkit/pkg/report"
)

// newTestContext builds a context over January 2026 with an in-memory
// sink, the shape the rule checks see during a real run.
func newTestContext(schedule model.ScheduleData, holidays model.HolidayCalendar, availability model.Availability) (*Context, *report.MemorySink) {
	sink := report.NewMemorySink()
	ctx := &Context{
		Schedule:     schedule,
		Year:         2026,
		Month:        time.January,
		Holidays:     holidays,
		Availability: availability,
		Sink:         sink,
	}
	return ctx, sink
}

// workdays assigns the employee the given shift on each listed date.
func workdays(schedule model.ScheduleData, employee string, kind model.ShiftKind, days ...string) {
	for _, d := range days {
		schedule[d] = append(schedule[d], model.Assignment{Employee: employee, Shift: kind})
	}
}
