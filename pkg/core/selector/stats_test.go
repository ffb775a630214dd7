package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rosterkit/rosterkit/pkg/core/model"
)

func TestTallyStats(t *testing.T) {
	schedule := model.ScheduleData{
		"2026-01-01": {
			{Employee: "alice", Shift: model.ShiftDay},
			{Employee: "bob", Shift: model.ShiftNight},
		},
		"2026-01-02": {
			{Employee: "alice", Shift: model.ShiftWeekendDay},
			{Employee: "alice", Shift: model.ShiftEvening},
			{Employee: "bob", Shift: model.ShiftOff},
		},
	}

	stats := TallyStats(schedule)

	assert.Equal(t, model.EmployeeStats{TotalShifts: 3, DayShifts: 2, NightShifts: 0}, stats["alice"],
		"evening counts toward the total but neither class")
	assert.Equal(t, model.EmployeeStats{TotalShifts: 1, DayShifts: 0, NightShifts: 1}, stats["bob"],
		"off assignments are not counted")
}

func TestRoster_UnionOfScheduleAndAvailability(t *testing.T) {
	schedule := model.ScheduleData{
		"2026-01-01": {{Employee: "alice", Shift: model.ShiftDay}},
	}
	availability := model.Availability{
		"bob": {"2026-01-02": false},
	}

	roster := Roster(schedule, availability)
	assert.ElementsMatch(t, []string{"alice", "bob"}, roster)
}
