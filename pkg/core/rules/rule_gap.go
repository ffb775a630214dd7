package rules

import (
	"fmt"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
	"github.com/rosterkit/rosterkit/pkg/core/shifts"
)

// checkMinShiftGap flags shifts on consecutive days that sit too close
// together in the shift rotation (a direct transition). The same reason
// text is recorded against both days of the pair.
func checkMinShiftGap(ctx *Context, rule model.EmployeeRule) int {
	conflicts := 0
	end := dates.MonthEnd(ctx.Year, ctx.Month)

	for t := dates.MonthStart(ctx.Year, ctx.Month); !t.After(end); t = t.AddDate(0, 0, 1) {
		next := t.AddDate(0, 0, 1)

		first, ok := ctx.firstShift(rule.Employee, t)
		if !ok {
			continue
		}
		second, ok := ctx.firstShift(rule.Employee, next)
		if !ok {
			continue
		}

		curDate := dates.Format(t)
		nextDate := dates.Format(next)

		if shifts.GapSufficient(first, second, ctx.isHoliday(curDate), ctx.isHoliday(nextDate)) {
			continue
		}

		conflicts++
		reason := fmt.Sprintf("%s: insufficient rest between %s and %s shifts",
			rule.Employee, ctx.Labels.Label(first), ctx.Labels.Label(second))
		ctx.Sink.Report(curDate, reason)
		ctx.Sink.Report(nextDate, reason)
	}

	return conflicts
}
