package rules

import (
	"fmt"
	"strings"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// checkDuplicateAssignments flags any employee holding more than one
// non-off assignment on a single day. The finding lists all of that
// employee's shifts for the day. Off assignments never count toward
// duplication.
func checkDuplicateAssignments(ctx *Context) int {
	conflicts := 0
	end := dates.MonthEnd(ctx.Year, ctx.Month)

	for t := dates.MonthStart(ctx.Year, ctx.Month); !t.After(end); t = t.AddDate(0, 0, 1) {
		byEmployee := make(map[string][]model.ShiftKind)
		var order []string

		for _, a := range ctx.assignmentsOn(t) {
			if a.Shift.IsOff() {
				continue
			}
			if _, seen := byEmployee[a.Employee]; !seen {
				order = append(order, a.Employee)
			}
			byEmployee[a.Employee] = append(byEmployee[a.Employee], a.Shift)
		}

		date := dates.Format(t)
		for _, employee := range order {
			kinds := byEmployee[employee]
			if len(kinds) < 2 {
				continue
			}

			labels := make([]string, len(kinds))
			for i, k := range kinds {
				labels[i] = ctx.Labels.Label(k)
			}

			conflicts++
			ctx.Sink.Report(date, fmt.Sprintf(
				"%s has multiple assignments on the same day: %s",
				employee, strings.Join(labels, ", ")))
		}
	}

	return conflicts
}
