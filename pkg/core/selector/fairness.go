package selector

import (
	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// SelectWithFairness selects like Select but with a two-phase
// correction: slots are filled first from available employees whose
// total shifts sit strictly below the roster-wide mean, then from the
// remaining available pool, each phase ranked by the chosen strategy.
//
// Employees exactly at the mean are not under-scheduled. With an empty
// roster the mean is undefined and selection degrades to a single
// strategy-only phase over the full available pool.
func SelectWithFairness(available []string, kind model.ShiftKind, required int, stats map[string]model.EmployeeStats, roster []string, strategy Strategy, day int) []string {
	if required <= 0 || len(available) == 0 {
		return []string{}
	}
	if len(roster) == 0 {
		return Select(available, kind, required, stats, strategy, day)
	}

	total := 0
	for _, employee := range roster {
		total += stats[employee].TotalShifts
	}
	mean := float64(total) / float64(len(roster))

	under := make(map[string]bool, len(roster))
	for _, employee := range roster {
		if float64(stats[employee].TotalShifts) < mean {
			under[employee] = true
		}
	}

	var underAvailable, rest []string
	for _, employee := range available {
		if under[employee] {
			underAvailable = append(underAvailable, employee)
		} else {
			rest = append(rest, employee)
		}
	}

	selected := Select(underAvailable, kind, required, stats, strategy, day)
	if len(selected) < required {
		selected = append(selected, Select(rest, kind, required-len(selected), stats, strategy, day)...)
	}
	return selected
}
