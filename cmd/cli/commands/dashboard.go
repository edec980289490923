package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/core/services"
)

// DashboardCmd creates the dashboard command
func DashboardCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the organizer overview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireRole(model.RoleOrganizer); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			f := app.formatter()
			stats := services.OrganizerDashboard(app.Store, app.Logger, app.now(), app.Cfg.UpcomingShiftLimit)

			fmt.Fprintf(out, "\nDashboard\n\n")
			fmt.Fprintf(out, "  Active events:  %d of %d\n", stats.ActiveEvents, stats.TotalEvents)
			fmt.Fprintf(out, "  Volunteers:     %d\n", stats.Volunteers)
			fmt.Fprintf(out, "  Open shifts:    %d of %d\n", stats.OpenShifts, stats.TotalShifts)
			fmt.Fprintf(out, "  Checked in:     %d\n\n", stats.CheckedIn)

			if len(stats.Upcoming) == 0 {
				fmt.Fprintln(out, "No upcoming shifts.")
				return nil
			}

			fmt.Fprintln(out, "Upcoming shifts:")
			for _, u := range stats.Upcoming {
				color := staffingColor(u.Staffing.Assigned, u.Staffing.Required)
				fmt.Fprintf(out, "  %s  %-28s %s%d/%d%s  %s%s%s\n",
					f.TimeRange(u.Shift.StartTime, u.Shift.EndTime),
					u.Shift.Title,
					color, u.Staffing.Assigned, u.Staffing.Required, colorReset,
					colorDim, u.EventName, colorReset,
				)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
