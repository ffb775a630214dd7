// Package shifts defines the ordered shift sequences per day kind and
// the minimum-gap rule between shifts worked on consecutive days.
package shifts

import (
	"slices"

	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// WeekdayOrder is the fixed rotation of shifts on a non-holiday.
var WeekdayOrder = []model.ShiftKind{model.ShiftDay, model.ShiftEvening, model.ShiftNight}

// HolidayOrder is the fixed rotation of shifts on a holiday.
var HolidayOrder = []model.ShiftKind{model.ShiftWeekendDay, model.ShiftWeekendNight}

// GapSufficient reports whether the rest between a shift worked on one
// day and a shift worked on the next day is long enough.
//
// Transitions across a weekday/holiday boundary are exempt, as is any
// pairing involving an off day. Holiday-to-holiday pairs are always
// sufficient: the two-shift holiday cycle has no too-close pairing.
// On weekdays, only a forward cyclic distance of exactly one step in
// WeekdayOrder is insufficient (day→evening, evening→night, night→day).
// The same shift on consecutive days is a plain repeat: that pattern is
// governed by the consecutive-days rule, not the gap rule.
func GapSufficient(first, second model.ShiftKind, firstHoliday, secondHoliday bool) bool {
	if firstHoliday != secondHoliday {
		return true
	}
	if first.IsOff() || second.IsOff() {
		return true
	}
	if firstHoliday {
		return true
	}

	posA := slices.Index(WeekdayOrder, first)
	posB := slices.Index(WeekdayOrder, second)
	if posA < 0 || posB < 0 {
		return true
	}

	steps := (posB - posA + len(WeekdayOrder)) % len(WeekdayOrder)
	return steps != 1
}

// NightKind returns the night-class shift for a day's holiday flag.
func NightKind(holiday bool) model.ShiftKind {
	if holiday {
		return model.ShiftWeekendNight
	}
	return model.ShiftNight
}

// DayKind returns the day-class shift for a day's holiday flag.
func DayKind(holiday bool) model.ShiftKind {
	if holiday {
		return model.ShiftWeekendDay
	}
	return model.ShiftDay
}
