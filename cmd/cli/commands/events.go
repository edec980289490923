package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/core/services"
)

// EventsCmd creates the events command
func EventsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "List all events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.currentUser(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			f := app.formatter()
			events := app.Store.ListEvents()

			fmt.Fprintf(out, "\nFound %d events:\n\n", len(events))
			for _, e := range events {
				fmt.Fprintf(out, "- %s (%s) - %s - %s - %d shifts [%s]\n",
					e.Name,
					e.ID,
					f.Day(e.Date),
					e.Location,
					len(app.Store.ListEventShifts(e.ID)),
					e.Status,
				)
			}
			return nil
		},
	}
}

// CreateEventCmd creates the createEvent command
func CreateEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "createEvent",
		Short: "Create an event owned by the signed-in organizer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			organizer, err := app.requireRole(model.RoleOrganizer)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			form := services.EventForm{}
			form.Name, _ = flags.GetString("name")
			form.Location, _ = flags.GetString("location")
			form.Description, _ = flags.GetString("description")
			status, _ := flags.GetString("status")
			form.Status = model.EventStatus(status)

			date, _ := flags.GetString("date")
			if date != "" {
				form.Date, err = parseDay(date, time.UTC)
				if err != nil {
					return fmt.Errorf("date must be YYYY-MM-DD, got: %s", date)
				}
			}

			event, err := services.CreateEvent(app.Store, app.Logger, organizer.ID, form)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n✓ Event created successfully!\n\n")
			fmt.Fprintf(out, "Event ID: %s\n", event.ID)
			fmt.Fprintf(out, "Name:     %s\n", event.Name)
			fmt.Fprintf(out, "Date:     %s\n", app.formatter().Day(event.Date))
			fmt.Fprintf(out, "Status:   %s\n\n", event.Status)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Event name")
	cmd.Flags().String("date", "", "Event date (YYYY-MM-DD)")
	cmd.Flags().String("location", "", "Event location")
	cmd.Flags().String("description", "", "Event description")
	cmd.Flags().String("status", "", "Status: planning, active or completed (default planning)")

	return cmd
}

// EventCmd creates the event command
func EventCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "event <event_id>",
		Short: "Show an event with its shifts, staffing and tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.currentUser(); err != nil {
				return err
			}

			app.Logger.Debug("event command", zap.String("event_id", args[0]))

			detail, err := services.EventOverview(app.Store, app.Logger, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			f := app.formatter()

			fmt.Fprintf(out, "\n%s [%s]\n", detail.Event.Name, detail.Event.Status)
			fmt.Fprintf(out, "%s - %s\n", f.Day(detail.Event.Date), detail.Event.Location)
			fmt.Fprintf(out, "%s\n\n", detail.Event.Description)

			fmt.Fprintf(out, "Tasks: %d assigned, %d in progress, %d completed\n\n",
				detail.TaskCounts[model.TaskAssigned],
				detail.TaskCounts[model.TaskInProgress],
				detail.TaskCounts[model.TaskCompleted])

			if len(detail.Shifts) == 0 {
				fmt.Fprintln(out, "No shifts yet.")
				return nil
			}

			for _, s := range detail.Shifts {
				color := staffingColor(s.Staffing.Assigned, s.Staffing.Required)
				fmt.Fprintf(out, "%s (%s)\n", s.Shift.Title, s.Shift.ID)
				fmt.Fprintf(out, "  %s @ %s\n", f.TimeRange(s.Shift.StartTime, s.Shift.EndTime), s.Shift.Location)
				fmt.Fprintf(out, "  Staffing: %s%d/%d%s", color, s.Staffing.Assigned, s.Staffing.Required, colorReset)
				if s.Staffing.Understaffed {
					fmt.Fprintf(out, " %sunderstaffed%s", colorRed, colorReset)
				}
				fmt.Fprintln(out)

				if len(s.Shift.Skills) > 0 {
					fmt.Fprintf(out, "  Skills:   %s\n", strings.Join(s.Shift.Skills, ", "))
				}
				for _, v := range s.Volunteers {
					fmt.Fprintf(out, "  - %s\n", v.Name)
				}
				for _, t := range s.Tasks {
					fmt.Fprintf(out, "  * %s [%s, %s]\n", t.Title, t.Status, t.Priority)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}
