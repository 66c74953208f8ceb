// Package auth issues and verifies access tokens and resolves the user behind
// a request.
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"droscher.com/Foodgram/configs"
	"droscher.com/Foodgram/pkg/model"
	"droscher.com/Foodgram/pkg/repository"
)

type UserKey struct{}

type UserStore interface {
	GetUserByUUID(ctx context.Context, userUUID uuid.UUID) (*model.User, error)
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

type Manager struct {
	tokens *Tokens
	users  UserStore
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, users UserStore, logger *zap.Logger) *Manager {
	return &Manager{tokens: NewTokens(conf.Auth), users: users, logger: logger}
}

// Login checks the credentials and returns a fresh access token.
func (a *Manager) Login(ctx context.Context, email, password string) (string, error) {
	user, err := a.users.GetUserFromEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}

		a.logger.Error("error loading user for login", zap.String("email", email), zap.Error(err))

		return "", err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return "", ErrInvalidCredentials
	}

	return a.tokens.Issue(user)
}

// Authenticate resolves the bearer token, if any, to a user stored under
// UserKey. Requests without a token pass through anonymously, requests with a
// bad token are rejected.
func (a *Manager) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accessToken, found := extractTokenFromHeader(r.Header)
		if !found {
			next.ServeHTTP(w, r)

			return
		}

		user, err := a.resolve(r.Context(), accessToken)
		if err != nil {
			reject(w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func (a *Manager) resolve(ctx context.Context, accessToken string) (*model.User, error) {
	claims, err := a.tokens.Parse(accessToken)
	if err != nil {
		a.logger.Info("rejected token", zap.Error(err))

		return nil, err
	}

	userUUID, err := claims.UserUUID()
	if err != nil {
		return nil, err
	}

	user, err := a.users.GetUserByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthenticated
		}

		a.logger.Error("error authenticating user", zap.String("uuid", userUUID.String()), zap.Error(err))

		return nil, err
	}

	return user, nil
}

// RequireUser rejects anonymous requests with 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if UserFromContext(r.Context()) == nil {
			reject(w, ErrUnauthenticated)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey{}, user)
}

// UserFromContext returns the authenticated user or nil.
func UserFromContext(ctx context.Context) *model.User {
	user, _ := ctx.Value(UserKey{}).(*model.User)

	return user
}

// extractTokenFromHeader accepts "Bearer <token>" and "Token <token>".
func extractTokenFromHeader(header http.Header) (string, bool) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		return "", false
	}

	scheme, token, found := strings.Cut(authorization, " ")
	if !found {
		return "", false
	}

	switch strings.ToLower(scheme) {
	case "bearer", "token":
		return strings.TrimSpace(token), true
	}

	return "", false
}

func reject(w http.ResponseWriter, err error) {
	status := http.StatusUnauthorized
	message := ErrUnauthenticated.Error()

	if !errors.Is(err, ErrUnauthenticated) {
		status = http.StatusInternalServerError
		message = http.StatusText(status)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="api"`)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"errors": message})
}
