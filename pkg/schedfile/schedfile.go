// Package schedfile loads schedule snapshots and availability maps from
// YAML files. The files are input only: the engine never writes a
// schedule back.
package schedfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
)

// Document is the on-disk shape of a schedule file.
//
//	schedule:
//	  2026-02-01:
//	    - employee: alice
//	      shift: day
//	availability:
//	  alice:
//	    2026-02-03: false
type Document struct {
	Schedule     map[string][]model.Assignment `yaml:"schedule"`
	Availability map[string]map[string]bool    `yaml:"availability,omitempty"`
}

// Load reads and validates a schedule file.
func Load(path string) (model.ScheduleData, model.Availability, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read schedule file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates schedule file contents.
func Parse(data []byte) (model.ScheduleData, model.Availability, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse schedule file: %w", err)
	}

	schedule := make(model.ScheduleData, len(doc.Schedule))
	for date, assignments := range doc.Schedule {
		if _, err := dates.Parse(date); err != nil {
			return nil, nil, fmt.Errorf("invalid schedule date %q: %w", date, err)
		}
		for i, a := range assignments {
			if a.Employee == "" {
				return nil, nil, fmt.Errorf("schedule %s[%d]: missing employee", date, i)
			}
			if !a.Shift.IsValid() {
				return nil, nil, fmt.Errorf("schedule %s[%d]: unknown shift kind %q", date, i, a.Shift)
			}
		}
		schedule[date] = assignments
	}

	var availability model.Availability
	if doc.Availability != nil {
		availability = make(model.Availability, len(doc.Availability))
		for employee, days := range doc.Availability {
			for date := range days {
				if _, err := dates.Parse(date); err != nil {
					return nil, nil, fmt.Errorf("invalid availability date %q for %s: %w", date, employee, err)
				}
			}
			availability[employee] = days
		}
	}

	return schedule, availability, nil
}
