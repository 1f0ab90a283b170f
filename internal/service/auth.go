// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/worklink-app/go-work-link/internal/adapter"
	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/internal/utils"
	"github.com/worklink-app/go-work-link/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	sessions SessionStore
	streams  StreamRegistry
	logger   *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions SessionStore, streams StreamRegistry, log *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, sessions: sessions, streams: streams, logger: log}
}

// Login implements ClientAuthService.
func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	resp, err := a.adapter.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	user, err := resolveUser(resp)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %v", ErrLoginOnServer, err)
	}

	session := models.Session{
		AccessToken: resp.AccessToken,
		UserID:      user.ID,
		Role:        user.Role,
		Language:    user.Language,
	}
	if err := a.sessions.Save(ctx, session); err != nil {
		// токен уже у адаптера, но без локальной сессии рестарт её потеряет
		return models.User{}, fmt.Errorf("%w: %v", ErrSessionPersist, err)
	}

	a.streams.ConnectAll()
	a.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")

	return user, nil
}

// resolveUser builds the domain user from the login response. The token
// claims are the authority for id and role; the embedded profile DTO fills
// the display fields. When the claims cannot be parsed the DTO alone decides.
func resolveUser(resp models.LoginResponse) (models.User, error) {
	var user models.User
	switch {
	case resp.TalentUser != nil:
		user = resp.TalentUser.ToDomain()
	case resp.RecruiterUser != nil:
		user = resp.RecruiterUser.ToDomain()
	default:
		return models.User{}, errors.New("login response carries no profile")
	}

	claims, err := utils.ParseTokenClaims(resp.AccessToken)
	if err != nil {
		return user, nil
	}
	if claims.UserID != "" {
		user.ID = claims.UserID
	}
	if claims.Role != "" {
		user.Role = claims.Role
	}
	return user, nil
}
