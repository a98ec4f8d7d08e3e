package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MuzzammilShah/pa-agent-cli/internal/adapters/api"
	"github.com/MuzzammilShah/pa-agent-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	mu      sync.Mutex
	session *domain.Session
	setErr  error
}

func (m *memoryStore) Get(_ context.Context) (domain.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.session == nil {
		return domain.Session{}, domain.ErrNoSession
	}
	return *m.session, nil
}

func (m *memoryStore) Set(_ context.Context, session domain.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.setErr != nil {
		return m.setErr
	}
	m.session = &session
	return nil
}

func (m *memoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

type fakeAuthService struct {
	mu            sync.Mutex
	exchangeCalls int
	exchangeErr   error
	session       domain.Session
	verifyUser    domain.UserInfo
	verifyErr     error
	logoutErr     error
	logoutCalls   int
}

func (f *fakeAuthService) LoginURL(_ context.Context) (string, error) {
	return "https://provider.example/authorize", nil
}

func (f *fakeAuthService) ExchangeCode(_ context.Context, _ string) (domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.exchangeCalls++
	if f.exchangeErr != nil {
		return domain.Session{}, f.exchangeErr
	}
	return f.session, nil
}

func (f *fakeAuthService) Verify(_ context.Context) (domain.UserInfo, error) {
	if f.verifyErr != nil {
		return domain.UserInfo{}, f.verifyErr
	}
	return f.verifyUser, nil
}

func (f *fakeAuthService) Logout(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	return f.logoutErr
}

func (f *fakeAuthService) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.exchangeCalls
}

func validSession() domain.Session {
	return domain.Session{
		AccessToken: "token-abc",
		User:        &domain.UserInfo{Email: "demo@example.com", Name: "Demo User"},
	}
}

func TestAuthFlowSubmitCodePersistsSession(t *testing.T) {
	auth := &fakeAuthService{session: validSession()}
	store := &memoryStore{}
	flow := NewAuthFlow(auth, store, nil)

	flow.Begin()
	require.Equal(t, AuthStateAwaitingCode, flow.State())

	require.NoError(t, flow.SubmitCode(context.Background(), "code-1"))
	assert.Equal(t, AuthStateAuthenticated, flow.State())

	stored, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-abc", stored.AccessToken)
	assert.Equal(t, 1, auth.calls())
}

func TestAuthFlowDuplicateCodeExchangesOnce(t *testing.T) {
	auth := &fakeAuthService{session: validSession()}
	store := &memoryStore{}
	flow := NewAuthFlow(auth, store, nil)
	flow.Begin()

	require.NoError(t, flow.SubmitCode(context.Background(), "code-1"))
	require.NoError(t, flow.SubmitCode(context.Background(), "code-1"))

	assert.Equal(t, 1, auth.calls())
	assert.Equal(t, AuthStateAuthenticated, flow.State())
}

func TestAuthFlowDuplicateCodeBackendRejection(t *testing.T) {
	t.Run("session already persisted", func(t *testing.T) {
		auth := &fakeAuthService{
			exchangeErr: &api.Error{StatusCode: 400, Detail: "authorization code has already been used"},
		}
		store := &memoryStore{}
		require.NoError(t, store.Set(context.Background(), validSession()))
		flow := NewAuthFlow(auth, store, nil)
		flow.Begin()

		require.NoError(t, flow.SubmitCode(context.Background(), "code-1"))
		assert.Equal(t, AuthStateAuthenticated, flow.State())
	})

	t.Run("no session persisted", func(t *testing.T) {
		auth := &fakeAuthService{
			exchangeErr: &api.Error{StatusCode: 400, Detail: "authorization code has already been used"},
		}
		store := &memoryStore{}
		flow := NewAuthFlow(auth, store, nil)
		flow.Begin()

		err := flow.SubmitCode(context.Background(), "code-1")
		require.Error(t, err)
		assert.Equal(t, AuthStateFailed, flow.State())
	})
}

func TestAuthFlowExchangeFailure(t *testing.T) {
	auth := &fakeAuthService{exchangeErr: errors.New("backend unavailable")}
	store := &memoryStore{}
	flow := NewAuthFlow(auth, store, nil)
	flow.Begin()

	err := flow.SubmitCode(context.Background(), "code-1")
	require.Error(t, err)
	assert.Equal(t, AuthStateFailed, flow.State())
	assert.Contains(t, flow.FailureReason(), "backend unavailable")

	_, getErr := store.Get(context.Background())
	assert.ErrorIs(t, getErr, domain.ErrNoSession)
}

func TestAuthFlowEmptyCodeRejected(t *testing.T) {
	auth := &fakeAuthService{session: validSession()}
	flow := NewAuthFlow(auth, &memoryStore{}, nil)
	flow.Begin()

	require.Error(t, flow.SubmitCode(context.Background(), ""))
	assert.Equal(t, 0, auth.calls())
}

func TestAuthFlowProviderError(t *testing.T) {
	flow := NewAuthFlow(&fakeAuthService{}, &memoryStore{}, nil)
	flow.Begin()

	flow.HandleProviderError("access_denied: user declined")

	assert.Equal(t, AuthStateFailed, flow.State())
	assert.Equal(t, "access_denied: user declined", flow.FailureReason())
}

func TestAuthFlowVerifySession(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		auth := &fakeAuthService{verifyUser: domain.UserInfo{Email: "demo@example.com"}}
		store := &memoryStore{}
		require.NoError(t, store.Set(context.Background(), validSession()))
		flow := NewAuthFlow(auth, store, nil)

		user, err := flow.VerifySession(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "demo@example.com", user.Email)
	})

	t.Run("no session", func(t *testing.T) {
		flow := NewAuthFlow(&fakeAuthService{}, &memoryStore{}, nil)

		_, err := flow.VerifySession(context.Background())
		assert.ErrorIs(t, err, domain.ErrNoSession)
	})

	t.Run("rejected token clears session", func(t *testing.T) {
		auth := &fakeAuthService{verifyErr: domain.ErrUnauthorized}
		store := &memoryStore{}
		require.NoError(t, store.Set(context.Background(), validSession()))
		flow := NewAuthFlow(auth, store, nil)

		_, err := flow.VerifySession(context.Background())
		assert.ErrorIs(t, err, domain.ErrNoSession)

		_, getErr := store.Get(context.Background())
		assert.ErrorIs(t, getErr, domain.ErrNoSession)
	})
}

func TestAuthFlowLogoutClearsDespiteBackendFailure(t *testing.T) {
	auth := &fakeAuthService{logoutErr: errors.New("backend unavailable")}
	store := &memoryStore{}
	require.NoError(t, store.Set(context.Background(), validSession()))
	flow := NewAuthFlow(auth, store, nil)

	require.NoError(t, flow.Logout(context.Background()))

	assert.Equal(t, 1, auth.logoutCalls)
	_, err := store.Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
