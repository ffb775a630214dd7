package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
)

func TestMinStaffing_Underfilled(t *testing.T) {
	schedule := model.ScheduleData{}
	workdays(schedule, "alice", model.ShiftDay, "2026-01-05")
	workdays(schedule, "bob", model.ShiftDay, "2026-01-06")
	workdays(schedule, "carol", model.ShiftDay, "2026-01-06")

	ctx, sink := newTestContext(schedule, nil, nil)
	conflicts := checkMinStaffing(ctx, model.ShiftRule{
		Kind: model.RuleMinStaffing, Shift: model.ShiftDay, Value: "2",
	})

	// Every day of January except the 6th is below minimum
	assert.Equal(t, dates.DaysIn(2026, ctx.Month)-1, conflicts)
	assert.Contains(t, sink.Reasons("2026-01-05")[0], "have 1, need 2")
	assert.Empty(t, sink.Reasons("2026-01-06"))
}

func TestMinStaffing_ExactKindMatch(t *testing.T) {
	schedule := model.ScheduleData{}
	// weekend-day never satisfies a day staffing rule
	workdays(schedule, "alice", model.ShiftWeekendDay, "2026-01-03")
	workdays(schedule, "bob", model.ShiftDay, "2026-01-03")

	ctx, sink := newTestContext(schedule, nil, nil)
	checkMinStaffing(ctx, model.ShiftRule{
		Kind: model.RuleMinStaffing, Shift: model.ShiftDay, Value: "2",
	})

	assert.Contains(t, sink.Reasons("2026-01-03")[0], "have 1, need 2")
}

func TestMinStaffing_UnparseableValueDisablesRule(t *testing.T) {
	schedule := model.ScheduleData{}

	ctx, sink := newTestContext(schedule, nil, nil)
	conflicts := checkMinStaffing(ctx, model.ShiftRule{
		Kind: model.RuleMinStaffing, Shift: model.ShiftDay, Value: "plenty",
	})

	assert.Equal(t, 0, conflicts)
	assert.Empty(t, sink.Findings())
}
