package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/internal/config"
	"github.com/jakechorley/crewsync/pkg/core/model"
	"github.com/jakechorley/crewsync/pkg/db"
	"github.com/jakechorley/crewsync/pkg/session"
)

var errNotLoggedIn = errors.New("not logged in (run 'login' or 'register' first)")

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg     *config.Config
	Store   db.Database
	Session *session.Store
	Logger  *zap.Logger
	Ctx     context.Context
	Now     func() time.Time
}

// currentUser returns the signed-in user or errNotLoggedIn
func (app *AppContext) currentUser() (*model.User, error) {
	user, ok := app.Session.CurrentUser()
	if !ok {
		return nil, errNotLoggedIn
	}
	return user, nil
}

// requireRole returns the signed-in user when they hold role
func (app *AppContext) requireRole(role model.Role) (*model.User, error) {
	user, err := app.currentUser()
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, fmt.Errorf("this command is only available to %ss (signed in as %s)", role, user.Role)
	}
	return user, nil
}

func (app *AppContext) now() time.Time {
	if app.Now != nil {
		return app.Now()
	}
	return time.Now()
}

func (app *AppContext) formatter() dateFormatter {
	return newDateFormatter(app.Session.Settings())
}
