package rules

import (
	"fmt"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
)

// checkAvailabilityConflicts flags every non-off assignment on a date
// the employee has explicitly marked unavailable. Absent entries mean
// available; a missing availability map disables the check entirely.
func checkAvailabilityConflicts(ctx *Context) int {
	if ctx.Availability == nil {
		return 0
	}

	conflicts := 0
	end := dates.MonthEnd(ctx.Year, ctx.Month)

	for t := dates.MonthStart(ctx.Year, ctx.Month); !t.After(end); t = t.AddDate(0, 0, 1) {
		date := dates.Format(t)
		for _, a := range ctx.assignmentsOn(t) {
			if a.Shift.IsOff() {
				continue
			}
			days, ok := ctx.Availability[a.Employee]
			if !ok {
				continue
			}
			available, present := days[date]
			if !present || available {
				continue
			}

			conflicts++
			ctx.Sink.Report(date, fmt.Sprintf(
				"%s is assigned the %s shift but is unavailable",
				a.Employee, ctx.Labels.Label(a.Shift)))
		}
	}

	return conflicts
}
