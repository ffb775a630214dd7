package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosterkit/rosterkit/pkg/core/model"
)

func TestMaxConsecutiveDays_FlagsFirstDayOverThreshold(t *testing.T) {
	schedule := model.ScheduleData{}
	workdays(schedule, "alice", model.ShiftDay,
		"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04")

	ctx, sink := newTestContext(schedule, nil, nil)
	conflicts := checkMaxConsecutiveDays(ctx, model.EmployeeRule{
		Kind: model.RuleMaxConsecutiveDays, Employee: "alice", Value: "3",
	})

	assert.Equal(t, 1, conflicts)
	assert.Len(t, sink.Reasons("2026-01-04"), 1)
	assert.Empty(t, sink.Reasons("2026-01-03"))
}

func TestMaxConsecutiveDays_StreakFromPriorMonth(t *testing.T) {
	schedule := model.ScheduleData{}
	// Worked the last three days of December, then January 1st
	workdays(schedule, "alice", model.ShiftNight,
		"2025-12-29", "2025-12-30", "2025-12-31", "2026-01-01")

	ctx, sink := newTestContext(schedule, nil, nil)
	conflicts := checkMaxConsecutiveDays(ctx, model.EmployeeRule{
		Kind: model.RuleMaxConsecutiveDays, Employee: "alice", Value: "3",
	})

	assert.Equal(t, 1, conflicts)
	assert.Len(t, sink.Reasons("2026-01-01"), 1)
	assert.Empty(t, sink.Reasons("2025-12-31"), "out-of-month days carry no findings")
}

func TestMaxConsecutiveDays_OffDayResetsStreak(t *testing.T) {
	schedule := model.ScheduleData{}
	workdays(schedule, "alice", model.ShiftDay, "2026-01-01", "2026-01-02", "2026-01-03")
	workdays(schedule, "alice", model.ShiftOff, "2026-01-04")
	workdays(schedule, "alice", model.ShiftDay, "2026-01-05", "2026-01-06", "2026-01-07")

	ctx, _ := newTestContext(schedule, nil, nil)
	conflicts := checkMaxConsecutiveDays(ctx, model.EmployeeRule{
		Kind: model.RuleMaxConsecutiveDays, Employee: "alice", Value: "3",
	})

	assert.Equal(t, 0, conflicts)
}

func TestMaxConsecutiveDays_FlagsEveryDayPastThreshold(t *testing.T) {
	schedule := model.ScheduleData{}
	workdays(schedule, "alice", model.ShiftDay,
		"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04", "2026-01-05", "2026-01-06")

	ctx, sink := newTestContext(schedule, nil, nil)
	conflicts := checkMaxConsecutiveDays(ctx, model.EmployeeRule{
		Kind: model.RuleMaxConsecutiveDays, Employee: "alice", Value: "3",
	})

	assert.Equal(t, 3, conflicts)
	assert.Len(t, sink.Reasons("2026-01-04"), 1)
	assert.Len(t, sink.Reasons("2026-01-05"), 1)
	assert.Len(t, sink.Reasons("2026-01-06"), 1)
}

func TestMaxConsecutiveDays_UnparseableValueDisablesRule(t *testing.T) {
	schedule := model.ScheduleData{}
	workdays(schedule, "alice", model.ShiftDay,
		"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04")

	ctx, sink := newTestContext(schedule, nil, nil)

	for _, value := range []string{"", "lots", "-1"} {
		conflicts := checkMaxConsecutiveDays(ctx, model.EmployeeRule{
			Kind: model.RuleMaxConsecutiveDays, Employee: "alice", Value: value,
		})
		assert.Equal(t, 0, conflicts, "value %q should disable the rule", value)
	}
	assert.Empty(t, sink.Findings())
}
