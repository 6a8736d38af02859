package services

import (
	"time"

	"posadmin_server/lib"
	"posadmin_server/structs"

	"github.com/MonkyMars/gecho"
)

// AuthService authenticates POS terminals. A terminal logs in with its
// configured identifier and PIN and receives a short-lived access token.
type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewAuthService(logger *gecho.Logger, cfg *structs.Config) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
	}
}

// Login verifies the terminal credentials and issues an access token.
// Both a wrong terminal id and a wrong PIN return ErrInvalidCredentials
// so callers cannot distinguish which part failed.
func (as *AuthService) Login(terminal, pin string) (string, time.Time, error) {
	if !lib.SecureCompare([]byte(terminal), []byte(as.cfg.Auth.TerminalID)) {
		// Burn a hash verification anyway to keep timing consistent
		_, _ = lib.VerifyPin(pin, as.cfg.Auth.TerminalPinHash)
		as.logger.Warn("Login attempt for unknown terminal", gecho.Field("terminal", terminal))
		return "", time.Time{}, lib.ErrInvalidCredentials
	}

	ok, err := lib.VerifyPin(pin, as.cfg.Auth.TerminalPinHash)
	if err != nil {
		as.logger.Error("PIN verification failed", gecho.Field("error", err.Error()))
		return "", time.Time{}, lib.ErrInvalidCredentials
	}
	if !ok {
		as.logger.Warn("Login attempt with wrong PIN", gecho.Field("terminal", terminal))
		return "", time.Time{}, lib.ErrInvalidCredentials
	}

	token, expiresAt, err := lib.IssueAccessToken(terminal, as.cfg.Auth.AccessTokenSecret, as.cfg.Auth.AccessTokenExpiry)
	if err != nil {
		as.logger.Error("Failed to issue access token", gecho.Field("error", err.Error()))
		return "", time.Time{}, err
	}

	as.logger.Info("Terminal logged in", gecho.Field("terminal", terminal))
	return token, expiresAt, nil
}

// GetAccessTokenSecret exposes the signing secret for middleware token checks.
func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}
