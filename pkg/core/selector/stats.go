package selector

import (
	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// TallyStats aggregates per-employee shift statistics from a schedule
// snapshot, for callers that do not track stats externally. Off
// assignments are ignored; evening shifts count toward the total but
// toward neither class.
func TallyStats(schedule model.ScheduleData) map[string]model.EmployeeStats {
	stats := make(map[string]model.EmployeeStats)

	for _, assignments := range schedule {
		for _, a := range assignments {
			if a.Shift.IsOff() {
				continue
			}
			s := stats[a.Employee]
			s.TotalShifts++
			switch {
			case a.Shift.IsDayClass():
				s.DayShifts++
			case a.Shift.IsNightClass():
				s.NightShifts++
			}
			stats[a.Employee] = s
		}
	}

	return stats
}

// Roster returns every employee seen in the schedule or the
// availability map, deduplicated, in no particular order.
func Roster(schedule model.ScheduleData, availability model.Availability) []string {
	seen := make(map[string]bool)
	var roster []string

	for _, assignments := range schedule {
		for _, a := range assignments {
			if !seen[a.Employee] {
				seen[a.Employee] = true
				roster = append(roster, a.Employee)
			}
		}
	}
	for employee := range availability {
		if !seen[employee] {
			seen[employee] = true
			roster = append(roster, employee)
		}
	}

	return roster
}
