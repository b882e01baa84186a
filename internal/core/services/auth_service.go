package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	portssvc "github.com/SscSPs/bank_backoffice_app/internal/core/ports/services"
	"github.com/SscSPs/bank_backoffice_app/internal/platform/config"
	"github.com/SscSPs/bank_backoffice_app/internal/utils"
)

// tokenService implements the TokenSvcFacade for issuing JWT access tokens.
type tokenService struct {
	BaseService
	cfg   *config.Config
	clock portssvc.Clock
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config, clock portssvc.Clock) portssvc.TokenSvcFacade {
	if clock == nil {
		clock = NewSystemClock()
	}
	return &tokenService{cfg: cfg, clock: clock}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, string(user.Role), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer, s.clock.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("user_id", user.UserID))
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}
