package model

// ShiftKind is the category of work assigned to an employee on a date.
type ShiftKind string

const (
	ShiftDay          ShiftKind = "day"
	ShiftEvening      ShiftKind = "evening"
	ShiftNight        ShiftKind = "night"
	ShiftWeekendDay   ShiftKind = "weekend-day"
	ShiftWeekendNight ShiftKind = "weekend-night"
	ShiftOff          ShiftKind = "off"
)

func (k ShiftKind) IsValid() bool {
	switch k {
	case ShiftDay, ShiftEvening, ShiftNight, ShiftWeekendDay, ShiftWeekendNight, ShiftOff:
		return true
	}
	return false
}

// IsOff reports whether the kind represents no work.
func (k ShiftKind) IsOff() bool {
	return k == ShiftOff
}

// IsDayClass reports whether the kind counts as daytime work for
// balance and turnaround purposes.
func (k ShiftKind) IsDayClass() bool {
	return k == ShiftDay || k == ShiftWeekendDay
}

// IsNightClass reports whether the kind counts as night work for
// balance and turnaround purposes.
func (k ShiftKind) IsNightClass() bool {
	return k == ShiftNight || k == ShiftWeekendNight
}

// Assignment binds one employee to one shift kind on a single date.
type Assignment struct {
	Employee string    `yaml:"employee"`
	Shift    ShiftKind `yaml:"shift"`
}

// ScheduleData maps "YYYY-MM-DD" dates to the assignments on that date.
// The raw structure does not enforce uniqueness: an employee may appear
// more than once per day, and the duplicate-assignment rule reports it.
type ScheduleData map[string][]Assignment

// HolidayCalendar maps "YYYY-MM-DD" dates to a holiday flag. Absent
// dates are not holidays.
type HolidayCalendar map[string]bool

// Availability maps employees to dates they have marked unavailable
// (false = explicitly unavailable, absence = available).
type Availability map[string]map[string]bool

// ShiftLabels maps shift kinds to human-readable labels used in
// conflict reasons.
type ShiftLabels map[ShiftKind]string

// Label returns the configured label for a kind, falling back to the
// kind's raw value.
func (l ShiftLabels) Label(k ShiftKind) string {
	if l != nil {
		if s, ok := l[k]; ok && s != "" {
			return s
		}
	}
	return string(k)
}

// EmployeeRuleKind tags a per-employee constraint.
type EmployeeRuleKind string

const (
	RuleMaxConsecutiveDays EmployeeRuleKind = "max-consecutive-days"
	RuleNoTurnaround       EmployeeRuleKind = "no-24h-turnaround"
	RuleMinShiftGap        EmployeeRuleKind = "min-shift-gap"
	RuleShiftBalance       EmployeeRuleKind = "shift-balance"
)

// ShiftRuleKind tags a per-shift-kind constraint.
type ShiftRuleKind string

const (
	RuleMinStaffing ShiftRuleKind = "min-staffing"
)

// EmployeeRule is a numeric constraint scoped to one employee. Value is
// kept as the raw configured string; handlers parse it defensively and
// treat an unparseable value as "rule disabled".
type EmployeeRule struct {
	Kind     EmployeeRuleKind `yaml:"kind"`
	Employee string           `yaml:"employee"`
	Value    string           `yaml:"value,omitempty"`
}

// ShiftRule is a numeric constraint scoped to one shift kind.
type ShiftRule struct {
	Kind  ShiftRuleKind `yaml:"kind"`
	Shift ShiftKind     `yaml:"shift"`
	Value string        `yaml:"value,omitempty"`
}

// Conditions is the configured rule set for a validation run. System
// rules (availability conflicts, duplicate assignments) are implicit
// and always evaluated.
type Conditions struct {
	EmployeeRules []EmployeeRule `yaml:"employeeRules,omitempty"`
	ShiftRules    []ShiftRule    `yaml:"shiftRules,omitempty"`
}

// EmployeeStats aggregates an employee's assignment history for the
// fairness selector. The validator neither computes nor owns these.
type EmployeeStats struct {
	TotalShifts int
	DayShifts   int
	NightShifts int
}

// Finding is one (date, reason) conflict record emitted during a
// validation run. Findings are transient and never persisted.
type Finding struct {
	Date   string
	Reason string
}
