package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosterkit/rosterkit/pkg/core/model"
)

func TestMinShiftGap_AdjacentShiftsConflict(t *testing.T) {
	schedule := model.ScheduleData{}
	workdays(schedule, "alice", model.ShiftDay, "2026-01-01")
	workdays(schedule, "alice", model.ShiftEvening, "2026-01-02")

	ctx, sink := newTestContext(schedule, nil, nil)
	conflicts := checkMinShiftGap(ctx, model.EmployeeRule{
		Kind: model.RuleMinShiftGap, Employee: "alice",
	})

	assert.Equal(t, 1, conflicts)
	assert.Len(t, sink.Reasons("2026-01-01"), 1)
	assert.Len(t, sink.Reasons("2026-01-02"), 1)
	assert.Equal(t, sink.Reasons("2026-01-01"), sink.Reasons("2026-01-02"),
		"both days carry the same reason text")
}

func TestMinShiftGap_TwoStepJumpAllowed(t *testing.T) {
	schedule := model.ScheduleData{}
	workdays(schedule, "alice", model.ShiftDay, "2026-01-01")
	workdays(schedule, "alice", model.ShiftNight, "2026-01-02")

	ctx, sink := newTestContext(schedule, nil, nil)
	conflicts := checkMinShiftGap(ctx, model.EmployeeRule{
		Kind: model.RuleMinShiftGap, Employee: "alice",
	})

	assert.Equal(t, 0, conflicts)
	assert.Empty(t, sink.Findings())
}

func TestMinShiftGap_HolidayBoundaryExempt(t *testing.T) {
	schedule := model.ScheduleData{}
	workdays(schedule, "alice", model.ShiftNight, "2026-01-02")
	workdays(schedule, "alice", model.ShiftWeekendDay, "2026-01-03")

	holidays := model.HolidayCalendar{"2026-01-03": true}

	ctx, _ := newTestContext(schedule, holidays, nil)
	conflicts := checkMinShiftGap(ctx, model.EmployeeRule{
		Kind: model.RuleMinShiftGap, Employee: "alice",
	})

	assert.Equal(t, 0, conflicts)
}

func TestMinShiftGap_UsesFirstAssignmentWhenDoubleBooked(t *testing.T) {
	schedule := model.ScheduleData{}
	// Double booking itself is the duplicate rule's business; gap checks
	// only see the first non-off assignment.
	workdays(schedule, "alice", model.ShiftDay, "2026-01-01")
	workdays(schedule, "alice", model.ShiftNight, "2026-01-01")
	workdays(schedule, "alice", model.ShiftNight, "2026-01-02")

	ctx, _ := newTestContext(schedule, nil, nil)
	conflicts := checkMinShiftGap(ctx, model.EmployeeRule{
		Kind: model.RuleMinShiftGap, Employee: "alice",
	})

	// day → night is a two-step jump, so no conflict
	assert.Equal(t, 0, conflicts)
}

func TestMinShiftGap_SameShiftOnConsecutiveDays(t *testing.T) {
	schedule := model.ScheduleData{}
	// The same shift two days running is routine scheduling; only the
	// consecutive-days rule has an opinion about it.
	workdays(schedule, "alice", model.ShiftNight, "2026-01-01", "2026-01-02", "2026-01-03")

	ctx, sink := newTestContext(schedule, nil, nil)
	conflicts := checkMinShiftGap(ctx, model.EmployeeRule{
		Kind: model.RuleMinShiftGap, Employee: "alice",
	})

	assert.Equal(t, 0, conflicts)
	assert.Empty(t, sink.Findings())
}

func TestMinShiftGap_OffDayBreaksPair(t *testing.T) {
	schedule := model.ScheduleData{}
	workdays(schedule, "alice", model.ShiftNight, "2026-01-01")
	workdays(schedule, "alice", model.ShiftOff, "2026-01-02")
	workdays(schedule, "alice", model.ShiftDay, "2026-01-03")

	ctx, _ := newTestContext(schedule, nil, nil)
	conflicts := checkMinShiftGap(ctx, model.EmployeeRule{
		Kind: model.RuleMinShiftGap, Employee: "alice",
	})

	assert.Equal(t, 0, conflicts)
}
