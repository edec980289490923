package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/crewsync/pkg/core/model"
)

// AuthStore defines the store operations needed for signing in and up
type AuthStore interface {
	Authenticate(email, password string) (model.User, error)
	RegisterUser(reg model.Registration) (model.User, error)
}

// SessionWriter persists the signed-in user
type SessionWriter interface {
	SetCurrentUser(user model.User) error
	ClearCurrentUser() error
}

// RegisterForm is the sign-up form as submitted
type RegisterForm struct {
	Name            string           `validate:"required"`
	Email           string           `validate:"required,email"`
	Password        string           `validate:"required,min=6"`
	ConfirmPassword string           `validate:"eqfield=Password"`
	Role            model.Role       `validate:"required,oneof=organizer volunteer"`
	Phone           string           `validate:"omitempty"`
	Skills          []string         `validate:"omitempty,dive,required"`
	Availability    []model.TimeSlot `validate:"omitempty,dive,oneof=morning afternoon evening"`
}

// Login authenticates after the simulated network delay and stores the user in the session.
// Cancelling ctx during the delay abandons the attempt without touching the store or session.
func Login(
	ctx context.Context,
	store AuthStore,
	sess SessionWriter,
	logger *zap.Logger,
	delay time.Duration,
	email string,
	password string,
) (*model.User, error) {
	email = strings.TrimSpace(email)
	logger.Debug("Logging in", zap.String("email", email))

	if err := simulateLatency(ctx, delay); err != nil {
		return nil, fmt.Errorf("login abandoned: %w", err)
	}

	user, err := store.Authenticate(email, password)
	if err != nil {
		logger.Info("Login rejected", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	if err := sess.SetCurrentUser(user); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("User logged in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return &user, nil
}

// Register validates the form, waits the simulated delay, creates the user and
// signs them in
func Register(
	ctx context.Context,
	store AuthStore,
	sess SessionWriter,
	logger *zap.Logger,
	delay time.Duration,
	form RegisterForm,
) (*model.User, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)

	if err := validateForm(form); err != nil {
		return nil, err
	}

	logger.Debug("Registering user", zap.String("email", form.Email), zap.String("role", string(form.Role)))

	if err := simulateLatency(ctx, delay); err != nil {
		return nil, fmt.Errorf("registration abandoned: %w", err)
	}

	user, err := store.RegisterUser(model.Registration{
		Name:         form.Name,
		Email:        form.Email,
		Password:     form.Password,
		Role:         form.Role,
		Phone:        form.Phone,
		Skills:       form.Skills,
		Availability: form.Availability,
	})
	if err != nil {
		logger.Info("Registration rejected", zap.String("email", form.Email), zap.Error(err))
		return nil, err
	}

	if err := sess.SetCurrentUser(user); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	logger.Info("User registered", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	return &user, nil
}

// Logout clears the session user
func Logout(sess SessionWriter, logger *zap.Logger) error {
	if err := sess.ClearCurrentUser(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.Info("User logged out")
	return nil
}
