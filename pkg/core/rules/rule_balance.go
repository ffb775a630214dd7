package rules

import (
	"fmt"
	"strings"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// defaultBalanceDifference is the allowed day/night spread when a
// balance rule carries no value.
const defaultBalanceDifference = 2

// checkShiftBalance flags an employee whose month-wide day-class and
// night-class shift counts drift further apart than the allowed
// difference. At most one finding is recorded per employee per month,
// attached to the latest date bearing a shift of the dominant class.
func checkShiftBalance(ctx *Context, rule model.EmployeeRule) int {
	allowed := defaultBalanceDifference
	if strings.TrimSpace(rule.Value) != "" {
		n, ok := threshold(rule.Value)
		if !ok {
			return 0
		}
		allowed = n
	}

	start := dates.MonthStart(ctx.Year, ctx.Month)
	end := dates.MonthEnd(ctx.Year, ctx.Month)

	dayCount := 0
	nightCount := 0
	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		for _, a := range ctx.assignmentsOn(t) {
			if a.Employee != rule.Employee {
				continue
			}
			switch {
			case a.Shift.IsDayClass():
				dayCount++
			case a.Shift.IsNightClass():
				nightCount++
			}
		}
	}

	diff := dayCount - nightCount
	if diff < 0 {
		diff = -diff
	}
	if diff <= allowed || (dayCount == 0 && nightCount == 0) {
		return 0
	}

	dominantIsDay := dayCount > nightCount

	// Attach the single finding to the most recent day on which the
	// dominant class occurred.
	for t := end; !t.Before(start); t = t.AddDate(0, 0, -1) {
		for _, a := range ctx.assignmentsOn(t) {
			if a.Employee != rule.Employee {
				continue
			}
			if (dominantIsDay && a.Shift.IsDayClass()) || (!dominantIsDay && a.Shift.IsNightClass()) {
				ctx.Sink.Report(dates.Format(t), fmt.Sprintf(
					"%s: day/night shift imbalance (%d day vs %d night, allowed difference %d)",
					rule.Employee, dayCount, nightCount, allowed))
				return 1
			}
		}
	}

	return 0
}
