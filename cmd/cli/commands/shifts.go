package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/matching"
	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/core/services"
)

// CreateShiftsCmd creates the createShifts command
func CreateShiftsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createShifts <event_id> <template>",
		Short: "Stamp a configured shift template onto an event",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireRole(model.RoleOrganizer); err != nil {
				return err
			}

			eventID, templateName := args[0], args[1]
			tmpl, ok := app.Cfg.Template(templateName)
			if !ok {
				return fmt.Errorf("no shift template named %q in config", templateName)
			}

			f := app.formatter()
			from := app.now().In(f.loc)
			if value, _ := cmd.Flags().GetString("from"); value != "" {
				var err error
				if from, err = parseDay(value, f.loc); err != nil {
					return fmt.Errorf("from must be YYYY-MM-DD, got: %s", value)
				}
			}

			limit, _ := cmd.Flags().GetInt("count")
			if limit <= 0 || limit > app.Cfg.MaxSeriesOccurrences {
				limit = app.Cfg.MaxSeriesOccurrences
			}

			shifts, err := services.CreateShiftSeries(app.Store, app.Logger, eventID, tmpl, from, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n✓ Created %d shifts from template %s\n\n", len(shifts), tmpl.Name)
			for i, s := range shifts {
				fmt.Fprintf(out, "  %2d. %s (%s)\n", i+1, f.TimeRange(s.StartTime, s.EndTime), s.ID)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().String("from", "", "First day to consider (YYYY-MM-DD, default today)")
	cmd.Flags().Int("count", 0, "Maximum shifts to create (default and cap: maxSeriesOccurrences)")

	return cmd
}

// SuggestCmd creates the suggest command
func SuggestCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <shift_id>",
		Short: "Rank volunteers who could fill a shift",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireRole(model.RoleOrganizer); err != nil {
				return err
			}

			shift, ok := app.Store.GetShift(args[0])
			if !ok {
				return fmt.Errorf("shift not found: %s", args[0])
			}

			limit, _ := cmd.Flags().GetInt("limit")
			app.Logger.Debug("suggest command", zap.String("shift_id", shift.ID), zap.Int("limit", limit))

			suggestions := matching.SuggestVolunteers(app.Store, shift, limit)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nSuggestions for %s (%s)\n\n", shift.Title, app.formatter().TimeRange(shift.StartTime, shift.EndTime))
			if len(suggestions) == 0 {
				fmt.Fprintln(out, "Every volunteer is already assigned.")
				return nil
			}

			for i, s := range suggestions {
				skills := "-"
				if len(s.MatchedSkills) > 0 {
					skills = strings.Join(s.MatchedSkills, ", ")
				}
				fmt.Fprintf(out, "  %d. %-20s score %.2f  skills: %s\n", i+1, s.Volunteer.Name, s.Score, skills)
			}
			fmt.Fprintln(out)
			return nil
		},
	}

	cmd.Flags().Int("limit", 5, "Maximum suggestions to show (0 for all)")

	return cmd
}

// MyShiftsCmd creates the myShifts command
func MyShiftsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "myShifts",
		Short: "Show your upcoming and past shifts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireRole(model.RoleVolunteer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			f := app.formatter()
			schedule := services.VolunteerShifts(app.Store, app.Logger, user.ID, app.now())

			fmt.Fprintf(out, "\nTotal hours: %.1f  Completed shifts: %d\n", schedule.TotalHours, schedule.CompletedCount)

			printSchedule := func(title string, shifts []services.ScheduledShift) {
				fmt.Fprintf(out, "\n%s (%d):\n", title, len(shifts))
				for _, s := range shifts {
					fmt.Fprintf(out, "  %s  %-28s %s [%s]\n",
						f.TimeRange(s.Shift.StartTime, s.Shift.EndTime),
						s.Shift.Title,
						s.EventName,
						s.Attendance,
					)
				}
			}
			printSchedule("Upcoming", schedule.Upcoming)
			printSchedule("Past", schedule.Past)
			fmt.Fprintln(out)

			return nil
		},
	}
}

// MyTasksCmd creates the myTasks command
func MyTasksCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "myTasks",
		Short: "Show your pending and completed tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.requireRole(model.RoleVolunteer)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			f := app.formatter()
			list := services.VolunteerTasks(app.Store, app.Logger, user.ID)

			fmt.Fprintf(out, "\n%d pending (%d high priority), %d completed\n", len(list.Pending), len(list.HighPriority), len(list.Completed))

			printTasks := func(title string, tasks []model.Task) {
				fmt.Fprintf(out, "\n%s:\n", title)
				for _, t := range tasks {
					due := ""
					if t.DueTime != nil {
						due = " due " + f.DateTime(*t.DueTime)
					}
					marker := " "
					if t.Priority == model.PriorityHigh && t.Status != model.TaskCompleted {
						marker = colorRed + "!" + colorReset
					}
					fmt.Fprintf(out, "  %s %s [%s]%s\n", marker, t.Title, t.Status, due)
				}
			}
			printTasks("Pending", list.Pending)
			printTasks("Completed", list.Completed)
			fmt.Fprintln(out)

			return nil
		},
	}
}
