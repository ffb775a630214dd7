package rules

import (
	"fmt"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
	"github.com/rosterkit/rosterkit/pkg/core/shifts"
)

// checkNoTurnaround flags a night-class shift followed directly by a
// day-class shift the next morning.
//
// Each side's night/day class is resolved against its own day's holiday
// flag, so a holiday night followed by a weekday day (or vice versa) is
// still a violation even though the kind labels differ. The first day
// of the month is compared against the last day of the prior month.
func checkNoTurnaround(ctx *Context, rule model.EmployeeRule) int {
	conflicts := 0
	end := dates.MonthEnd(ctx.Year, ctx.Month)

	for t := dates.MonthStart(ctx.Year, ctx.Month); !t.After(end); t = t.AddDate(0, 0, 1) {
		prev := t.AddDate(0, 0, -1)
		prevDate := dates.Format(prev)
		curDate := dates.Format(t)

		nightKind := shifts.NightKind(ctx.isHoliday(prevDate))
		dayKind := shifts.DayKind(ctx.isHoliday(curDate))

		if !ctx.workedKind(rule.Employee, prev, nightKind) {
			continue
		}
		if !ctx.workedKind(rule.Employee, t, dayKind) {
			continue
		}

		conflicts++
		nightLabel := ctx.Labels.Label(nightKind)
		dayLabel := ctx.Labels.Label(dayKind)
		ctx.Sink.Report(curDate, fmt.Sprintf(
			"%s works the %s shift straight after last night's %s shift",
			rule.Employee, dayLabel, nightLabel))
		ctx.Sink.Report(prevDate, fmt.Sprintf(
			"%s's %s shift runs into the next morning's %s shift",
			rule.Employee, nightLabel, dayLabel))
	}

	return conflicts
}
