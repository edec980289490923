package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/cmd/cli/commands"
	"github.com/jakechorley/crewsync/internal/config"
	"github.com/jakechorley/crewsync/pkg/db"
	"github.com/jakechorley/crewsync/pkg/session"
	"github.com/jakechorley/crewsync/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	app = &commands.AppContext{}

	rootCmd := &cobra.Command{
		Use:   "crewsync",
		Short: "CrewSync CLI - Coordinate event volunteers",
		Long:  `A CLI tool for organizing events, staffing shifts with volunteers, and keeping everyone informed.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
		SilenceUsage: true,
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: dev, demo, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Commands receive the shared context now and read its fields when they run,
	// after initApp has filled them in
	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.RegisterCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.WhoamiCmd(app))
	rootCmd.AddCommand(commands.DashboardCmd(app))
	rootCmd.AddCommand(commands.EventsCmd(app))
	rootCmd.AddCommand(commands.CreateEventCmd(app))
	rootCmd.AddCommand(commands.EventCmd(app))
	rootCmd.AddCommand(commands.CreateShiftsCmd(app))
	rootCmd.AddCommand(commands.SuggestCmd(app))
	rootCmd.AddCommand(commands.AnnounceCmd(app))
	rootCmd.AddCommand(commands.AnnouncementsCmd(app))
	rootCmd.AddCommand(commands.MyShiftsCmd(app))
	rootCmd.AddCommand(commands.MyTasksCmd(app))
	rootCmd.AddCommand(commands.VolunteersCmd(app))
	rootCmd.AddCommand(commands.SettingsCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up config, logger, store and session
func initApp() error {
	var err error
	app.Ctx = context.Background()
	app.Now = time.Now

	// Load configuration
	app.Cfg, err = config.LoadWithEnv(env)
	if errors.Is(err, config.ErrConfigNotFound) {
		app.Cfg = config.Default()
	} else if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	app.Logger, err = logging.InitLogger(env, app.Cfg.LogsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))
	app.Logger.Debug("Configuration loaded",
		zap.String("session_dir", app.Cfg.SessionDir),
		zap.Bool("seed_mock_data", app.Cfg.SeedMockData),
		zap.Int("shift_templates", len(app.Cfg.ShiftTemplates)))

	// Initialize store
	if app.Cfg.SeedMockData {
		app.Store, err = db.NewSeededDB()
		if err != nil {
			return fmt.Errorf("failed to load seed data: %w", err)
		}
	} else {
		app.Store = db.NewDB()
	}
	app.Logger.Debug("Store initialized")

	// Initialize session
	app.Session, err = session.NewStore(app.Cfg.SessionDir, app.Logger)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}
	app.Logger.Debug("Session opened", zap.String("dir", app.Cfg.SessionDir))

	return nil
}
