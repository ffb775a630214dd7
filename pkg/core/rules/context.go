// Package rules implements the schedule validation engine: a dispatcher
// that maps configured rule kinds to constraint checks and runs them
// over an immutable schedule snapshot for one target month.
package rules

import (
	"strconv"
	"strings"
	"time"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
	"github.com/rosterkit/rosterkit/pkg/report"
)

// Context bundles everything a constraint check needs for one run. It
// is built once per Validate call and shared read-only by all checks.
type Context struct {
	Schedule     model.ScheduleData
	Year         int
	Month        time.Month
	Labels       model.ShiftLabels
	Holidays     model.HolidayCalendar
	Availability model.Availability
	Sink         report.Sink
}

// Params are the inputs to one validation run.
type Params struct {
	Year         int
	Month        time.Month
	Schedule     model.ScheduleData
	Conditions   model.Conditions
	Labels       model.ShiftLabels
	Holidays     model.HolidayCalendar
	Availability model.Availability
	Sink         report.Sink
}

// Result summarises one validation run.
type Result struct {
	TotalConflicts int
	IsValid        bool
}

type employeeHandler func(ctx *Context, rule model.EmployeeRule) int

type shiftHandler func(ctx *Context, rule model.ShiftRule) int

type systemHandler func(ctx *Context) int

// Handler registries. Unknown kinds are skipped without error so a
// partially configured rule set never blocks validation. System
// handlers run unconditionally on every validation.
var (
	employeeHandlers = map[model.EmployeeRuleKind]employeeHandler{
		model.RuleMaxConsecutiveDays: checkMaxConsecutiveDays,
		model.RuleNoTurnaround:       checkNoTurnaround,
		model.RuleMinShiftGap:        checkMinShiftGap,
		model.RuleShiftBalance:       checkShiftBalance,
	}

	shiftHandlers = map[model.ShiftRuleKind]shiftHandler{
		model.RuleMinStaffing: checkMinStaffing,
	}

	systemHandlers = []systemHandler{
		checkAvailabilityConflicts,
		checkDuplicateAssignments,
	}
)

// Validate runs every configured employee rule, every configured shift
// rule, and every system rule over the schedule snapshot, accumulating
// findings through the sink. The sink is cleared at the start of each
// run so repeated runs never see stale findings.
func Validate(p Params) Result {
	if p.Sink == nil {
		p.Sink = report.NewMemorySink()
	}
	p.Sink.Clear()

	ctx := &Context{
		Schedule:     p.Schedule,
		Year:         p.Year,
		Month:        p.Month,
		Labels:       p.Labels,
		Holidays:     p.Holidays,
		Availability: p.Availability,
		Sink:         p.Sink,
	}

	total := 0

	for _, rule := range p.Conditions.EmployeeRules {
		handler, ok := employeeHandlers[rule.Kind]
		if !ok {
			continue
		}
		total += handler(ctx, rule)
	}

	for _, rule := range p.Conditions.ShiftRules {
		handler, ok := shiftHandlers[rule.Kind]
		if !ok {
			continue
		}
		total += handler(ctx, rule)
	}

	for _, handler := range systemHandlers {
		total += handler(ctx)
	}

	if sum, ok := p.Sink.(report.Summarizer); ok {
		sum.Finish(total)
	}

	return Result{TotalConflicts: total, IsValid: total == 0}
}

// isHoliday looks the date up in the run's holiday calendar.
func (c *Context) isHoliday(date string) bool {
	return dates.IsHoliday(date, c.Holidays)
}

// assignmentsOn returns the raw assignment list for a date.
func (c *Context) assignmentsOn(t time.Time) []model.Assignment {
	return c.Schedule[dates.Format(t)]
}

// worked reports whether the employee has any non-off assignment that
// day.
func (c *Context) worked(employee string, t time.Time) bool {
	for _, a := range c.assignmentsOn(t) {
		if a.Employee == employee && !a.Shift.IsOff() {
			return true
		}
	}
	return false
}

// workedKind reports whether the employee has an assignment of exactly
// the given kind that day.
func (c *Context) workedKind(employee string, t time.Time, kind model.ShiftKind) bool {
	for _, a := range c.assignmentsOn(t) {
		if a.Employee == employee && a.Shift == kind {
			return true
		}
	}
	return false
}

// firstShift returns the employee's first non-off assignment on the
// day. When an employee is double-booked only the first assignment
// participates in adjacency checks; the duplicate rule reports the
// double booking itself.
func (c *Context) firstShift(employee string, t time.Time) (model.ShiftKind, bool) {
	for _, a := range c.assignmentsOn(t) {
		if a.Employee == employee && !a.Shift.IsOff() {
			return a.Shift, true
		}
	}
	return model.ShiftOff, false
}

// threshold parses a configured rule value. ok is false for missing,
// non-numeric, or negative values, which disables the rule rather than
// letting a bad comparison silently misfire.
func threshold(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
