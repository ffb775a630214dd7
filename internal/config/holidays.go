package config

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// HolidayCalendar expands the configured holiday rules into a calendar
// covering the given month plus one day on either side: the turnaround
// check consults the prior day's holiday flag when it examines the 1st,
// and the gap check pairs the month's last day with the day after it.
// Recurrences without an explicit DTSTART are anchored at the start of
// that window.
func (c *Config) HolidayCalendar(year int, month time.Month) (model.HolidayCalendar, error) {
	calendar := make(model.HolidayCalendar)

	start := dates.MonthStart(year, month).AddDate(0, 0, -1)
	end := dates.MonthEnd(year, month)

	for i, raw := range c.Holidays.RRules {
		opt, err := rrule.StrToROption(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in holidays.rrules[%d]: %w", i, err)
		}
		if opt.Dtstart.IsZero() {
			opt.Dtstart = start
		}

		rule, err := rrule.NewRRule(*opt)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in holidays.rrules[%d]: %w", i, err)
		}

		for _, occurrence := range rule.Between(start, end.AddDate(0, 0, 1), true) {
			calendar[dates.Format(occurrence)] = true
		}
	}

	for _, date := range c.Holidays.Dates {
		calendar[date] = true
	}

	return calendar, nil
}
