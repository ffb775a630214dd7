package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rosterkit/rosterkit/pkg/core/rules"
	"github.com/rosterkit/rosterkit/pkg/report"
	"github.com/rosterkit/rosterkit/pkg/schedfile"
)

// ValidateCmd creates the validate command
func ValidateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the schedule against the configured rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := app.Cfg.Window()
			if err != nil {
				return err
			}

			schedule, availability, err := schedfile.Load(app.Cfg.ScheduleFile)
			if err != nil {
				return fmt.Errorf("failed to load schedule: %w", err)
			}

			holidays, err := app.Cfg.HolidayCalendar(year, month)
			if err != nil {
				return fmt.Errorf("failed to build holiday calendar: %w", err)
			}

			memory := report.NewMemorySink()
			sink := report.NewZapSink(memory, app.Logger)

			app.Logger.Info("Validating schedule",
				zap.String("month", app.Cfg.Month),
				zap.Int("days", len(schedule)),
				zap.String("runID", sink.RunID()))

			result := rules.Validate(rules.Params{
				Year:         year,
				Month:        month,
				Schedule:     schedule,
				Conditions:   app.Cfg.Conditions(),
				Labels:       app.Cfg.Labels(),
				Holidays:     holidays,
				Availability: availability,
				Sink:         sink,
			})

			for _, date := range memory.Dates() {
				fmt.Printf("%s:\n", date)
				for _, reason := range memory.Reasons(date) {
					fmt.Printf("  - %s\n", reason)
				}
			}

			if result.IsValid {
				fmt.Println("Schedule is valid: no conflicts found.")
				return nil
			}

			fmt.Printf("\n%d conflicts found.\n", result.TotalConflicts)
			return nil
		},
	}
}
