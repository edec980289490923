package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/core/services"
)

// AnnounceCmd creates the announce command
func AnnounceCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "announce <event_id>",
		Short: "Post an announcement for an event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.requireRole(model.RoleOrganizer); err != nil {
				return err
			}

			flags := cmd.Flags()
			form := services.AnnouncementForm{EventID: args[0]}
			form.Title, _ = flags.GetString("title")
			form.Message, _ = flags.GetString("message")
			priority, _ := flags.GetString("priority")
			form.Priority = model.AnnouncementPriority(priority)
			audience, _ := flags.GetString("audience")
			form.TargetAudience = model.Audience(audience)

			a, err := services.CreateAnnouncement(app.Store, app.Logger, form)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n✓ Announcement posted (%s)\n", a.ID)
			fmt.Fprintf(out, "Priority: %s  Audience: %s  At: %s\n\n", a.Priority, a.TargetAudience, app.formatter().DateTime(a.Timestamp))
			return nil
		},
	}

	cmd.Flags().String("title", "", "Announcement title")
	cmd.Flags().String("message", "", "Announcement message")
	cmd.Flags().String("priority", "", "Priority: info, warning or urgent (default info)")
	cmd.Flags().String("audience", "", "Audience: all, volunteers or organizers (default all)")

	return cmd
}

// AnnouncementsCmd creates the announcements command
func AnnouncementsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "announcements",
		Short: "Show announcements, urgent first",
		Long:  "Volunteers see announcements for volunteers and everyone. Organizers see every announcement with its recipient count.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.currentUser()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			f := app.formatter()

			var feed *services.AnnouncementFeed
			var recipients map[model.Audience]int
			if user.Role == model.RoleOrganizer {
				all := services.OrganizerAnnouncements(app.Store, app.Logger, app.now(), f.loc)
				feed, recipients = &all.AnnouncementFeed, all.Recipients
			} else {
				feed = services.VolunteerAnnouncements(app.Store, app.Logger, model.AudienceForRole(user.Role), app.now(), f.loc)
			}

			fmt.Fprintf(out, "\n%d announcements, %d urgent, %d today\n\n", feed.Total, len(feed.Urgent), feed.Today)

			for _, a := range feed.Urgent {
				printAnnouncement(out, f, colorRed+"[URGENT]"+colorReset, a, recipients)
			}
			for _, a := range feed.Other {
				label := "[info]"
				if a.Priority == model.AnnouncementWarning {
					label = colorYellow + "[warning]" + colorReset
				}
				printAnnouncement(out, f, label, a, recipients)
			}
			return nil
		},
	}
}

// printAnnouncement writes one announcement; recipients is nil outside the organizer view
func printAnnouncement(out io.Writer, f dateFormatter, label string, a model.Announcement, recipients map[model.Audience]int) {
	fmt.Fprintf(out, "%s %s\n  %s\n  %s%s", label, a.Title, a.Message, colorDim, f.DateTime(a.Timestamp))
	if recipients != nil {
		fmt.Fprintf(out, " | to %s (%d recipients)", a.TargetAudience, recipients[a.TargetAudience])
	}
	fmt.Fprintf(out, "%s\n\n", colorReset)
}
