package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/MuzzammilShah/pa-agent-cli/internal/ports"
	"go.uber.org/zap"
)

// AuthState tracks one authentication attempt.
type AuthState string

const (
	AuthStateIdle           AuthState = "idle"
	AuthStateAwaitingCode   AuthState = "awaiting_code"
	AuthStateExchangingCode AuthState = "exchanging_code"
	AuthStateAuthenticated  AuthState = "authenticated"
	AuthStateFailed         AuthState = "failed"
)

// AuthFlow orchestrates the OAuth callback flow: receive a code or a
// provider error, exchange the code for a session exactly once, persist
// the session. It also owns token verification and logout.
type AuthFlow struct {
	auth   ports.AuthService
	store  ports.SessionStore
	logger *zap.Logger

	mu        sync.Mutex
	state     AuthState
	failure   string
	submitted map[string]bool
}

func NewAuthFlow(auth ports.AuthService, store ports.SessionStore, logger *zap.Logger) *AuthFlow {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AuthFlow{
		auth:      auth,
		store:     store,
		logger:    logger,
		state:     AuthStateIdle,
		submitted: make(map[string]bool),
	}
}

func (f *AuthFlow) State() AuthState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// FailureReason is the user-facing explanation once the flow is Failed.
func (f *AuthFlow) FailureReason() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failure
}

// Begin marks the flow as waiting for the provider redirect.
func (f *AuthFlow) Begin() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = AuthStateAwaitingCode
	f.failure = ""
}

// HandleProviderError transitions straight to Failed. No exchange call is
// made for provider-reported errors.
func (f *AuthFlow) HandleProviderError(providerError string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = AuthStateFailed
	f.failure = providerError
	f.logger.Debug("oauth provider error", zap.String("error", providerError))
}

// SubmitCode exchanges an authorization code for a session and persists
// it. The exchange runs at most once per code: re-submission of a code
// that is already in flight (or already settled) returns immediately
// without a second network call, regardless of whether the first exchange
// has completed.
func (f *AuthFlow) SubmitCode(ctx context.Context, code string) error {
	if code == "" {
		return errors.New("authorization code is empty")
	}

	f.mu.Lock()
	if f.submitted[code] {
		f.mu.Unlock()
		f.logger.Debug("duplicate code submission ignored")
		return nil
	}
	f.submitted[code] = true
	f.state = AuthStateExchangingCode
	f.mu.Unlock()

	session, err := f.auth.ExchangeCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrCodeAlreadyUsed) {
			// Another in-flight exchange already consumed this code. If it
			// left a session behind, the login as a whole succeeded.
			if stored, storeErr := f.store.Get(ctx); storeErr == nil && stored.Valid() {
				f.setState(AuthStateAuthenticated, "")
				return nil
			}
		}
		f.setState(AuthStateFailed, err.Error())
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	if err := f.store.Set(ctx, session); err != nil {
		f.setState(AuthStateFailed, err.Error())
		return fmt.Errorf("persist session: %w", err)
	}

	f.setState(AuthStateAuthenticated, "")
	return nil
}

func (f *AuthFlow) setState(state AuthState, failure string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = state
	f.failure = failure
}

// VerifySession confirms a stored token against the backend. An invalid
// or expired token clears the session silently; the caller just sees the
// logged-out state.
func (f *AuthFlow) VerifySession(ctx context.Context) (domain.UserInfo, error) {
	session, err := f.store.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return domain.UserInfo{}, domain.ErrNoSession
		}
		return domain.UserInfo{}, fmt.Errorf("read session: %w", err)
	}

	user, err := f.auth.Verify(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			f.logger.Debug("stored token rejected, clearing session")
			if clearErr := f.store.Clear(ctx); clearErr != nil {
				return domain.UserInfo{}, fmt.Errorf("clear invalid session: %w", clearErr)
			}
			return domain.UserInfo{}, domain.ErrNoSession
		}
		return domain.UserInfo{}, fmt.Errorf("verify session: %w", err)
	}

	if user.Email == "" && session.User != nil {
		user = *session.User
	}

	return user, nil
}

// Logout tells the backend to revoke the session, then clears local state
// no matter what the backend said. From the user's perspective logout
// cannot fail.
func (f *AuthFlow) Logout(ctx context.Context) error {
	if err := f.auth.Logout(ctx); err != nil {
		f.logger.Debug("backend logout failed, clearing local session anyway", zap.Error(err))
	}

	if err := f.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	return nil
}
