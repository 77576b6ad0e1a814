package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tHeiieh/inventory-api/internal/events"
	"github.com/tHeiieh/inventory-api/internal/hash"
	"github.com/tHeiieh/inventory-api/internal/logging"
	"github.com/tHeiieh/inventory-api/internal/models"
	"github.com/tHeiieh/inventory-api/internal/repo"
	"github.com/tHeiieh/inventory-api/internal/tokens"
	"github.com/tHeiieh/inventory-api/internal/transport"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
	TokenTTL  time.Duration
	Producer  *events.Producer
	UserTopic string
}

func (s *AuthService) Signup(ctx context.Context, name, username, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.signup")

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("signup_failed", "reason", "cannot hash password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         name,
		Username:     username,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUserIfNotExists(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			l.Warn("signup_conflict", "username", username)
			return nil, ErrConflict
		}
		return nil, err
	}

	s.publish(ctx, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	})

	l.Info("signup_success", "user_id", user.ID)
	return &user, nil
}

// Login never reveals whether the username or the password was wrong.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	token, err := tokens.SignAccessToken(user.ID, s.JWTSecret, s.TokenTTL)
	if err != nil {
		l.Error("login_failed", "reason", "cannot sign token", "error", err)
		return "", err
	}

	s.publish(ctx, fmt.Sprint(user.ID), map[string]any{
		"type":     "user_logged_in",
		"user_id":  user.ID,
		"username": user.Username,
	})

	l.Info("login_success", "user_id", user.ID)
	return token, nil
}

// UpdateUser lets an authenticated user change their own name or username,
// nothing else and nobody else's.
func (s *AuthService) UpdateUser(ctx context.Context, authUserID, targetID uint, req transport.UpdateUserRequest) (*models.User, error) {
	if authUserID != targetID {
		return nil, ErrForbidden
	}

	user, err := s.Repo.PatchUser(ctx, targetID, req)
	if err != nil {
		if errors.Is(err, repo.ErrUserAlreadyExists) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) publish(ctx context.Context, key string, event map[string]any) {
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, s.UserTopic, key, event); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "topic", s.UserTopic, "error", err)
	}
}
