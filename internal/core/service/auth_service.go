package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/inovaindustria/industria-api/internal/auth"
	"github.com/inovaindustria/industria-api/internal/core/domain"
	"github.com/inovaindustria/industria-api/internal/core/ports"
)

// lookupTimeout caps the account-lookup call so a slow store surfaces as an
// authentication failure instead of a hung request.
const lookupTimeout = 5 * time.Second

// AuthService implements login: credential check, throttling, token
// issuance and audit recording.
type AuthService struct {
	repo     ports.ClientRepository
	tokens   *auth.TokenService
	throttle ports.LoginThrottle
	audit    ports.AuthEventSink
	logger   zerolog.Logger
}

// NewAuthService wires the login use case. throttle and audit may be nil;
// both degrade to no-ops so tests and minimal deployments stay simple.
func NewAuthService(repo ports.ClientRepository, tokens *auth.TokenService, throttle ports.LoginThrottle, audit ports.AuthEventSink, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, throttle: throttle, audit: audit, logger: logger}
}

// Login authenticates an email/password pair and returns the account with a
// signed token. Every credential problem collapses into
// domain.ErrInvalidCredentials so the response does not reveal which check
// failed; the specific reason goes to the server log and the audit trail.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.tooManyFailures(ctx, email) {
		s.record(ports.AuthEventInput{Email: email, Kind: ports.AuthEventThrottled})
		return nil, domain.ErrLoginThrottled
	}

	lookupCtx, cancel := context.WithTimeout(ctx, lookupTimeout)
	defer cancel()

	client, err := s.repo.FindByEmail(lookupCtx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrClientNotFound) {
			s.logger.Error().Err(err).Msg("account lookup failed")
		}
		s.fail(ctx, email, "unknown_email")
		return nil, domain.ErrInvalidCredentials
	}

	// A missing or malformed stored hash verifies as false, which is
	// surfaced as bad credentials rather than a server error.
	if !auth.VerifyPassword(client.PasswordHash, []byte(password)) {
		s.fail(ctx, email, "bad_password")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(client)
	if err != nil {
		s.logger.Error().Err(err).Str("account_id", client.ID).Msg("token issuance failed")
		return nil, err
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("throttle reset failed")
		}
	}

	s.record(ports.AuthEventInput{Email: email, AccountID: client.ID, Kind: ports.AuthEventLoginOK})
	s.logger.Info().Str("account_id", client.ID).Str("role", string(client.Role)).Msg("login succeeded")

	return &ports.LoginResult{Token: token, Client: client}, nil
}

// tooManyFailures consults the throttle and fails open: if the throttle
// store is unreachable, logins proceed rather than locking everyone out.
func (s *AuthService) tooManyFailures(ctx context.Context, email string) bool {
	if s.throttle == nil {
		return false
	}
	blocked, err := s.throttle.TooManyFailures(ctx, email)
	if err != nil {
		s.logger.Warn().Err(err).Msg("login throttle unavailable")
		return false
	}
	return blocked
}

func (s *AuthService) fail(ctx context.Context, email, reason string) {
	if s.throttle != nil {
		if err := s.throttle.RecordFailure(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("throttle record failed")
		}
	}
	s.record(ports.AuthEventInput{Email: email, Kind: ports.AuthEventLoginFailed, Reason: reason})
}

func (s *AuthService) record(event ports.AuthEventInput) {
	if s.audit == nil {
		return
	}
	event.At = time.Now().UTC()
	s.audit.Enqueue(event)
}
