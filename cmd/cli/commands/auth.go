package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/core/services"
)

// LoginCmd creates the login command
func LoginCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with an email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			email, _ := cmd.Flags().GetString("email")
			password, _ := cmd.Flags().GetString("password")

			if password == "" {
				var err error
				password, err = promptPassword(out, "Password: ")
				if err != nil {
					return err
				}
			}

			user, err := services.Login(app.Ctx, app.Store, app.Session, app.Logger, app.Cfg.LoginDelay, email, password)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\n✓ Welcome back, %s! (%s)\n\n", user.Name, user.Role)
			return nil
		},
	}

	cmd.Flags().String("email", "", "Account email")
	cmd.Flags().String("password", "", "Account password (prompted when omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}

// RegisterCmd creates the register command
func RegisterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			flags := cmd.Flags()

			form := services.RegisterForm{}
			form.Name, _ = flags.GetString("name")
			form.Email, _ = flags.GetString("email")
			form.Password, _ = flags.GetString("password")
			form.Phone, _ = flags.GetString("phone")
			form.Skills, _ = flags.GetStringSlice("skills")
			role, _ := flags.GetString("role")
			form.Role = model.Role(role)

			slots, _ := flags.GetStringSlice("availability")
			for _, s := range slots {
				form.Availability = append(form.Availability, model.TimeSlot(strings.TrimSpace(s)))
			}

			if form.Password == "" {
				var err error
				if form.Password, err = promptPassword(out, "Password: "); err != nil {
					return err
				}
				if form.ConfirmPassword, err = promptPassword(out, "Confirm password: "); err != nil {
					return err
				}
			} else {
				form.ConfirmPassword = form.Password
			}

			user, err := services.Register(app.Ctx, app.Store, app.Session, app.Logger, app.Cfg.RegisterDelay, form)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\n✓ Account created. Signed in as %s (%s)\n", user.Name, user.Role)
			fmt.Fprintf(out, "User ID: %s\n\n", user.ID)
			return nil
		},
	}

	cmd.Flags().String("name", "", "Full name")
	cmd.Flags().String("email", "", "Email address")
	cmd.Flags().String("password", "", "Password, at least 6 characters (prompted when omitted)")
	cmd.Flags().String("role", string(model.RoleVolunteer), "Role: organizer or volunteer")
	cmd.Flags().String("phone", "", "Phone number")
	cmd.Flags().StringSlice("skills", nil, "Comma-separated skills")
	cmd.Flags().StringSlice("availability", nil, "Comma-separated time slots: morning, afternoon, evening")

	return cmd
}

// LogoutCmd creates the logout command
func LogoutCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := services.Logout(app.Session, app.Logger); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Signed out")
			return nil
		},
	}
}

// WhoamiCmd creates the whoami command
func WhoamiCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			user, ok := app.Session.CurrentUser()
			if !ok {
				fmt.Fprintln(out, "Not signed in")
				return nil
			}

			app.Logger.Debug("whoami command", zap.String("user_id", user.ID))

			fmt.Fprintf(out, "%s <%s>\n", user.Name, user.Email)
			fmt.Fprintf(out, "  Role:         %s\n", user.Role)
			fmt.Fprintf(out, "  ID:           %s\n", user.ID)
			if user.Phone != "" {
				fmt.Fprintf(out, "  Phone:        %s\n", user.Phone)
			}
			if len(user.Skills) > 0 {
				fmt.Fprintf(out, "  Skills:       %s\n", strings.Join(user.Skills, ", "))
			}
			if len(user.Availability) > 0 {
				slots := make([]string, 0, len(user.Availability))
				for _, s := range user.Availability {
					slots = append(slots, string(s))
				}
				fmt.Fprintf(out, "  Availability: %s\n", strings.Join(slots, ", "))
			}
			return nil
		},
	}
}
