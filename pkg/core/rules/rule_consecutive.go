package rules

import (
	"fmt"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// checkMaxConsecutiveDays flags every in-month day on which the
// employee's run of worked days exceeds the configured threshold.
//
// The scan starts the threshold's worth of days before the month so a
// streak that began in the prior month is still caught on its first
// in-month day. The streak resets on any off or unassigned day.
func checkMaxConsecutiveDays(ctx *Context, rule model.EmployeeRule) int {
	limit, ok := threshold(rule.Value)
	if !ok {
		return 0
	}

	start := dates.MonthStart(ctx.Year, ctx.Month).AddDate(0, 0, -limit)
	end := dates.MonthEnd(ctx.Year, ctx.Month)

	conflicts := 0
	streak := 0

	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		if !ctx.worked(rule.Employee, t) {
			streak = 0
			continue
		}

		streak++
		if streak > limit && dates.SameMonth(t, ctx.Year, ctx.Month) {
			conflicts++
			ctx.Sink.Report(dates.Format(t), fmt.Sprintf(
				"%s has worked more than %d consecutive days", rule.Employee, limit))
		}
	}

	return conflicts
}
