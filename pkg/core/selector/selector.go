// Package selector ranks and picks employees for open shift slots
// using fairness-aware strategies. It is a heuristic ranking, not an
// optimal assignment solver.
package selector

import (
	"sort"

	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// Strategy names a selection heuristic.
type Strategy string

const (
	// StrategyBalanced picks employees with the fewest total shifts,
	// breaking ties toward whoever has worked less of the slot's class.
	StrategyBalanced Strategy = "balanced"

	// StrategyMinimizeNight picks employees with the fewest shifts of
	// the slot's class, then the fewest total shifts.
	StrategyMinimizeNight Strategy = "minimize_night"

	// StrategyRotate walks an alphabetical roster, advancing the start
	// position by one per day of month.
	StrategyRotate Strategy = "rotate"
)

// Select returns an ordered subset of exactly min(len(available),
// required) employees for one shift slot. Unknown strategies fall back
// to ascending total shifts. day is the day of month, used only by the
// rotate strategy.
func Select(available []string, kind model.ShiftKind, required int, stats map[string]model.EmployeeStats, strategy Strategy, day int) []string {
	if required <= 0 || len(available) == 0 {
		return []string{}
	}

	ranked := rank(available, kind, stats, strategy, day)
	if required > len(ranked) {
		required = len(ranked)
	}
	return ranked[:required]
}

// rank returns the full available pool in strategy order.
func rank(available []string, kind model.ShiftKind, stats map[string]model.EmployeeStats, strategy Strategy, day int) []string {
	pool := make([]string, len(available))
	copy(pool, available)

	switch strategy {
	case StrategyRotate:
		sort.Strings(pool)
		if len(pool) > 1 {
			offset := ((day % len(pool)) + len(pool)) % len(pool)
			rotated := make([]string, 0, len(pool))
			rotated = append(rotated, pool[offset:]...)
			rotated = append(rotated, pool[:offset]...)
			pool = rotated
		}

	case StrategyBalanced:
		sort.SliceStable(pool, func(i, j int) bool {
			a, b := stats[pool[i]], stats[pool[j]]
			if a.TotalShifts != b.TotalShifts {
				return a.TotalShifts < b.TotalShifts
			}
			if ca, cb := classCount(a, kind), classCount(b, kind); ca != cb {
				return ca < cb
			}
			return pool[i] < pool[j]
		})

	case StrategyMinimizeNight:
		sort.SliceStable(pool, func(i, j int) bool {
			a, b := stats[pool[i]], stats[pool[j]]
			if ca, cb := classCount(a, kind), classCount(b, kind); ca != cb {
				return ca < cb
			}
			if a.TotalShifts != b.TotalShifts {
				return a.TotalShifts < b.TotalShifts
			}
			return pool[i] < pool[j]
		})

	default:
		sort.SliceStable(pool, func(i, j int) bool {
			a, b := stats[pool[i]], stats[pool[j]]
			if a.TotalShifts != b.TotalShifts {
				return a.TotalShifts < b.TotalShifts
			}
			return pool[i] < pool[j]
		})
	}

	return pool
}

// classCount returns how many shifts of the slot's class the employee
// has already worked. Slots that are not night-class count on the day
// side.
func classCount(s model.EmployeeStats, kind model.ShiftKind) int {
	if kind.IsNightClass() {
		return s.NightShifts
	}
	return s.DayShifts
}
