package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rosterkit/rosterkit/pkg/core/dates"
	"github.com/rosterkit/rosterkit/pkg/core/model"
	"github.com/rosterkit/rosterkit/pkg/core/selector"
	"github.com/rosterkit/rosterkit/pkg/schedfile"
)

// PlanCmd creates the plan command
func PlanCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <date> <shift>",
		Short: "Suggest employees for an open shift slot",
		Long:  `Ranks available employees for one shift slot using a fairness-aware strategy. The suggestion is printed only; the schedule file is never modified.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, _ := cmd.Flags().GetInt("count")
			strategy, _ := cmd.Flags().GetString("strategy")
			if strategy == "" {
				strategy = app.Cfg.DefaultStrategy
			}

			day, err := dates.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid date %q: %w", args[0], err)
			}

			kind := model.ShiftKind(args[1])
			if !kind.IsValid() || kind.IsOff() {
				return fmt.Errorf("unknown shift kind %q", args[1])
			}

			schedule, availability, err := schedfile.Load(app.Cfg.ScheduleFile)
			if err != nil {
				return fmt.Errorf("failed to load schedule: %w", err)
			}

			stats := selector.TallyStats(schedule)
			roster := selector.Roster(schedule, availability)
			sort.Strings(roster)

			available := openCandidates(roster, schedule, availability, args[0])

			app.Logger.Info("Planning open slot",
				zap.String("date", args[0]),
				zap.String("shift", string(kind)),
				zap.Int("count", count),
				zap.String("strategy", strategy),
				zap.Int("candidates", len(available)))

			selected := selector.SelectWithFairness(
				available, kind, count, stats, roster,
				selector.Strategy(strategy), day.Day())

			if len(selected) == 0 {
				fmt.Println("No candidates available for this slot.")
				return nil
			}

			fmt.Printf("Suggested for %s %s:\n", args[0], string(kind))
			for i, employee := range selected {
				s := stats[employee]
				fmt.Printf("  %d. %s (total %d, day %d, night %d)\n",
					i+1, employee, s.TotalShifts, s.DayShifts, s.NightShifts)
			}
			return nil
		},
	}

	cmd.Flags().Int("count", 1, "Number of employees needed for the slot")
	cmd.Flags().String("strategy", "", "Selection strategy: balanced, minimize_night, rotate")

	return cmd
}

// openCandidates filters the roster down to employees who are neither
// marked unavailable nor already working on the date.
func openCandidates(roster []string, schedule model.ScheduleData, availability model.Availability, date string) []string {
	working := make(map[string]bool)
	for _, a := range schedule[date] {
		if !a.Shift.IsOff() {
			working[a.Employee] = true
		}
	}

	var available []string
	for _, employee := range roster {
		if working[employee] {
			continue
		}
		if days, ok := availability[employee]; ok {
			if v, present := days[date]; present && !v {
				continue
			}
		}
		available = append(available, employee)
	}
	return available
}
