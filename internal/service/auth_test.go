package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/worklink-app/go-work-link/internal/adapter"
	"github.com/worklink-app/go-work-link/internal/logger"
	"github.com/worklink-app/go-work-link/internal/mock"
	"github.com/worklink-app/go-work-link/models"
)

// fakeSessionStore — хелпер-заглушка вместо настоящего SQLite-хранилища
type fakeSessionStore struct {
	mu      sync.Mutex
	session models.Session
	saveErr error
	saves   int
	clears  int
}

func (f *fakeSessionStore) Current() models.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *fakeSessionStore) TokenValue() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session.AccessToken
}

func (f *fakeSessionStore) Save(_ context.Context, s models.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	s.OnboardingDone = f.session.OnboardingDone
	f.session = s
	return nil
}

func (f *fakeSessionStore) SetOnboardingDone(_ context.Context, done bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session.OnboardingDone = done
	return nil
}

func (f *fakeSessionStore) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clears++
	f.session = models.Session{
		Language:       f.session.Language,
		OnboardingDone: f.session.OnboardingDone,
	}
	return nil
}

// fakeRegistry counts bulk stream operations.
type fakeRegistry struct {
	connects    atomic.Int64
	disconnects atomic.Int64
}

func (f *fakeRegistry) ConnectAll()    { f.connects.Add(1) }
func (f *fakeRegistry) DisconnectAll() { f.disconnects.Add(1) }

func signedToken(t *testing.T, userID, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
	})
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (ClientAuthService, *mock.MockServerAdapter, *fakeSessionStore, *fakeRegistry) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	sessions := &fakeSessionStore{}
	streams := &fakeRegistry{}
	svc := NewClientAuthService(mockAdapter, sessions, streams, logger.Nop())
	return svc, mockAdapter, sessions, streams
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, streams := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token := signedToken(t, "u1", models.RoleTalent)
	creds := models.Credentials{Email: "alice@example.com", Password: "secret"}

	mockAdapter.EXPECT().Login(ctx, creds).Return(models.LoginResponse{
		AccessToken: token,
		TalentUser: &models.TalentDTO{
			ID:        "u1",
			FirstName: "Alice",
			Headline:  "Go developer",
			Language:  "fr",
		},
	}, nil)

	user, err := svc.Login(ctx, creds)
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, models.RoleTalent, user.Role)
	assert.Equal(t, "Alice", user.FirstName)

	saved := sessions.Current()
	assert.Equal(t, token, saved.AccessToken)
	assert.Equal(t, "u1", saved.UserID)
	assert.Equal(t, models.RoleTalent, saved.Role)
	assert.Equal(t, "fr", saved.Language)

	assert.Equal(t, int64(1), streams.connects.Load())
}

func TestClientAuthService_Login_ClaimsOverrideProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	// в профиле сервер прислал старый id, истина — в клеймах токена
	token := signedToken(t, "u-from-claims", models.RoleRecruiter)
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{
		AccessToken:   token,
		RecruiterUser: &models.RecruiterDTO{ID: "u-from-body", CompanyName: "Acme"},
	}, nil)

	user, err := svc.Login(ctx, models.Credentials{Email: "bob@example.com", Password: "x"})
	require.NoError(t, err)

	assert.Equal(t, "u-from-claims", user.ID)
	assert.Equal(t, models.RoleRecruiter, user.Role)
	assert.Equal(t, "Acme", user.CompanyName)
}

func TestClientAuthService_Login_OpaqueTokenFallsBackToProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{
		AccessToken: "not-a-jwt",
		TalentUser:  &models.TalentDTO{ID: "u9"},
	}, nil)

	user, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)

	assert.Equal(t, "u9", user.ID)
	assert.Equal(t, models.RoleTalent, user.Role)
	assert.Equal(t, "not-a-jwt", sessions.Current().AccessToken)
}

func TestClientAuthService_Login_WrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, streams := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{}, adapter.ErrUnauthorized)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "wrong"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 0, sessions.saves)
	assert.Equal(t, int64(0), streams.connects.Load())
}

func TestClientAuthService_Login_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, streams := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{}, adapter.ErrInternalServerError)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.Equal(t, int64(0), streams.connects.Load())
}

func TestClientAuthService_Login_NoProfileInResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{
		AccessToken: signedToken(t, "u1", models.RoleTalent),
	}, nil)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, ErrLoginOnServer)
}

func TestClientAuthService_Login_SessionPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, sessions, streams := newTestAuthSvc(t, ctrl)
	sessions.saveErr = errors.New("disk full")
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.LoginResponse{
		AccessToken: signedToken(t, "u1", models.RoleTalent),
		TalentUser:  &models.TalentDTO{ID: "u1"},
	}, nil)

	_, err := svc.Login(ctx, models.Credentials{Email: "a@b.c", Password: "x"})

	assert.ErrorIs(t, err, ErrSessionPersist)
	// стримы не поднимаем, если локальная сессия не записалась
	assert.Equal(t, int64(0), streams.connects.Load())
}
