package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/core/services"
)

// VolunteersCmd creates the volunteers command
func VolunteersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "volunteers",
		Short: "Search the volunteer directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireRole(model.RoleOrganizer); err != nil {
				return err
			}

			filter := services.VolunteerFilter{}
			filter.Search, _ = cmd.Flags().GetString("search")
			filter.Skill, _ = cmd.Flags().GetString("skill")

			dir := services.ListVolunteers(app.Store, app.Logger, filter)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\nFound %d volunteers:\n\n", len(dir.Volunteers))
			for _, v := range dir.Volunteers {
				phone := ""
				if v.User.Phone != "" {
					phone = " - " + v.User.Phone
				}
				fmt.Fprintf(out, "- %s (%s) - %s%s - %d shifts\n", v.User.Name, v.User.ID, v.User.Email, phone, v.ShiftCount)
				if len(v.User.Skills) > 0 {
					fmt.Fprintf(out, "    %s%s%s\n", colorDim, strings.Join(v.User.Skills, ", "), colorReset)
				}
			}

			fmt.Fprintf(out, "\nSkills: %s\n\n", strings.Join(dir.Skills, ", "))
			return nil
		},
	}

	cmd.Flags().String("search", "", "Match name or email, ignoring case")
	cmd.Flags().String("skill", "", "Only volunteers with this exact skill")

	return cmd
}
