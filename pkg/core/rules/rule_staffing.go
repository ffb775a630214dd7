package rules

import (
	"fmt"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// checkMinStaffing flags every day on which fewer than the required
// number of employees hold the configured shift kind. Counts are
// exact-kind matches: a weekend-day assignment never satisfies a day
// staffing rule.
func checkMinStaffing(ctx *Context, rule model.ShiftRule) int {
	required, ok := threshold(rule.Value)
	if !ok {
		return 0
	}

	conflicts := 0
	end := dates.MonthEnd(ctx.Year, ctx.Month)

	for t := dates.MonthStart(ctx.Year, ctx.Month); !t.After(end); t = t.AddDate(0, 0, 1) {
		count := 0
		for _, a := range ctx.assignmentsOn(t) {
			if a.Shift == rule.Shift {
				count++
			}
		}

		if count >= required {
			continue
		}

		conflicts++
		ctx.Sink.Report(dates.Format(t), fmt.Sprintf(
			"%s staffing below minimum: have %d, need %d",
			ctx.Labels.Label(rule.Shift), count, required))
	}

	return conflicts
}
