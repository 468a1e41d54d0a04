package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/repository"
	"alcyxob/fitplanner/internal/repository/mocks"
	"alcyxob/fitplanner/internal/service"
	servicemocks "alcyxob/fitplanner/internal/service/mocks"
	"alcyxob/fitplanner/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

const testGoogleClientID = "client-123.apps.googleusercontent.com"

type authFixture struct {
	users  *mocks.MockUserRepository
	google *servicemocks.MockGoogleTokenValidator
	hub    *session.Hub
	svc    service.AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	f := &authFixture{
		users:  mocks.NewMockUserRepository(ctrl),
		google: servicemocks.NewMockGoogleTokenValidator(ctrl),
		hub:    session.NewHub(zap.NewNop()),
	}
	t.Cleanup(f.hub.Close)
	f.svc = service.NewAuthService(f.users, f.google, f.hub, service.AuthConfig{
		JWTSecret:      "test-secret",
		JWTExpiration:  time.Hour,
		GoogleClientID: testGoogleClientID,
	}, zap.NewNop())
	return f
}

func passwordUser(t *testing.T, email, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.User{
		ID:           primitive.NewObjectID(),
		Name:         "Ann",
		Email:        email,
		PasswordHash: string(hash),
		Provider:     domain.ProviderPassword,
	}
}

func TestSignUpWithPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a lower-cased account", func(t *testing.T) {
		f := newAuthFixture(t)
		newID := primitive.NewObjectID()
		f.users.EXPECT().GetByEmail(ctx, "ann@example.com").Return(nil, repository.ErrNotFound)
		f.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (primitive.ObjectID, error) {
			assert.Equal(t, "ann@example.com", u.Email)
			assert.Equal(t, domain.ProviderPassword, u.Provider)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
			return newID, nil
		})

		user, err := f.svc.SignUpWithPassword(ctx, " Ann ", " Ann@Example.com ", "secret1")
		require.NoError(t, err)
		assert.Equal(t, newID, user.ID)
		assert.Equal(t, "Ann", user.Name)
		assert.Empty(t, user.PasswordHash)
	})

	t.Run("rejects short passwords", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.svc.SignUpWithPassword(ctx, "Ann", "ann@example.com", "12345")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("existing email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "ann@example.com").Return(&domain.User{}, nil)
		_, err := f.svc.SignUpWithPassword(ctx, "Ann", "ann@example.com", "secret1")
		assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
	})

	t.Run("concurrent sign-up caught by unique index", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "ann@example.com").Return(nil, repository.ErrNotFound)
		f.users.EXPECT().Create(ctx, gomock.Any()).Return(primitive.NilObjectID, repository.ErrDuplicate)
		_, err := f.svc.SignUpWithPassword(ctx, "Ann", "ann@example.com", "secret1")
		assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
	})
}

func TestSignInWithPassword(t *testing.T) {
	ctx := context.Background()
	user := passwordUser(t, "ann@example.com", "secret1")

	t.Run("issues a token and signs the session in", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "ann@example.com").Return(user, nil)

		token, got, err := f.svc.SignInWithPassword(ctx, "ANN@example.com", "secret1")
		require.NoError(t, err)
		assert.Empty(t, got.PasswordHash)

		claims, err := f.svc.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.Hex(), claims.UserID)
		assert.NotEmpty(t, claims.ID)

		state := f.hub.Current(user.ID)
		assert.False(t, state.Loading)
		require.NotNil(t, state.User)
		assert.Equal(t, user.ID, state.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "ann@example.com").Return(passwordUser(t, "ann@example.com", "secret1"), nil)
		_, _, err := f.svc.SignInWithPassword(ctx, "ann@example.com", "nope-nope")
		assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "bob@example.com").Return(nil, repository.ErrNotFound)
		_, _, err := f.svc.SignInWithPassword(ctx, "bob@example.com", "secret1")
		assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
	})

	t.Run("federated-only account has no password", func(t *testing.T) {
		f := newAuthFixture(t)
		f.users.EXPECT().GetByEmail(ctx, "ann@example.com").Return(&domain.User{Provider: domain.ProviderGoogle}, nil)
		_, _, err := f.svc.SignInWithPassword(ctx, "ann@example.com", "secret1")
		assert.ErrorIs(t, err, service.ErrAuthenticationFailed)
	})
}

func TestSignOut_RevokesToken(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	user := passwordUser(t, "ann@example.com", "secret1")
	f.users.EXPECT().GetByEmail(ctx, "ann@example.com").Return(user, nil)

	token, _, err := f.svc.SignInWithPassword(ctx, "ann@example.com", "secret1")
	require.NoError(t, err)
	claims, err := f.svc.ParseToken(token)
	require.NoError(t, err)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	states, err := f.hub.Watch(watchCtx, user.ID)
	require.NoError(t, err)
	<-states

	require.NoError(t, f.svc.SignOut(ctx, claims))

	_, err = f.svc.ParseToken(token)
	assert.ErrorIs(t, err, service.ErrTokenRevoked)
	assert.Equal(t, session.State{}, <-states)
}

func TestParseToken_Rejects(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.ParseToken("not-a-jwt")
	assert.ErrorIs(t, err, service.ErrInvalidToken)

	other := service.NewAuthService(f.users, nil, f.hub, service.AuthConfig{JWTSecret: "other"}, zap.NewNop())
	f.users.EXPECT().GetByEmail(gomock.Any(), "ann@example.com").Return(passwordUser(t, "ann@example.com", "secret1"), nil)
	token, _, err := other.SignInWithPassword(context.Background(), "ann@example.com", "secret1")
	require.NoError(t, err)

	_, err = f.svc.ParseToken(token)
	assert.ErrorIs(t, err, service.ErrInvalidToken, "signed with a different secret")
}

func googlePayload(subject, email string, verified bool) *idtoken.Payload {
	return &idtoken.Payload{
		Subject: subject,
		Claims: map[string]interface{}{
			"email":          email,
			"email_verified": verified,
			"name":           "Ann G",
		},
	}
}

func TestSignInWithGoogle(t *testing.T) {
	ctx := context.Background()

	t.Run("known subject", func(t *testing.T) {
		f := newAuthFixture(t)
		user := &domain.User{ID: primitive.NewObjectID(), Email: "ann@example.com", Provider: domain.ProviderGoogle, Subject: "g-1"}
		f.google.EXPECT().Validate(ctx, "id-token", testGoogleClientID).Return(googlePayload("g-1", "ann@example.com", true), nil)
		f.users.EXPECT().GetBySubject(ctx, domain.ProviderGoogle, "g-1").Return(user, nil)

		token, got, err := f.svc.SignInWithGoogle(ctx, "id-token")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("links a verified email to an existing account", func(t *testing.T) {
		f := newAuthFixture(t)
		existing := passwordUser(t, "ann@example.com", "secret1")
		f.google.EXPECT().Validate(ctx, "id-token", testGoogleClientID).Return(googlePayload("g-1", "Ann@Example.com", true), nil)
		f.users.EXPECT().GetBySubject(ctx, domain.ProviderGoogle, "g-1").Return(nil, repository.ErrNotFound)
		f.users.EXPECT().GetByEmail(ctx, "ann@example.com").Return(existing, nil)
		f.users.EXPECT().LinkSubject(ctx, existing.ID, domain.ProviderGoogle, "g-1").Return(nil)

		_, got, err := f.svc.SignInWithGoogle(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, got.ID)
		assert.Equal(t, "g-1", got.Subject)
	})

	t.Run("unverified email clashing with an account", func(t *testing.T) {
		f := newAuthFixture(t)
		f.google.EXPECT().Validate(ctx, "id-token", testGoogleClientID).Return(googlePayload("g-1", "ann@example.com", false), nil)
		f.users.EXPECT().GetBySubject(ctx, domain.ProviderGoogle, "g-1").Return(nil, repository.ErrNotFound)
		f.users.EXPECT().GetByEmail(ctx, "ann@example.com").Return(passwordUser(t, "ann@example.com", "secret1"), nil)

		_, _, err := f.svc.SignInWithGoogle(ctx, "id-token")
		assert.ErrorIs(t, err, service.ErrUserAlreadyExists)
	})

	t.Run("creates a new account", func(t *testing.T) {
		f := newAuthFixture(t)
		newID := primitive.NewObjectID()
		f.google.EXPECT().Validate(ctx, "id-token", testGoogleClientID).Return(googlePayload("g-2", "new@example.com", true), nil)
		f.users.EXPECT().GetBySubject(ctx, domain.ProviderGoogle, "g-2").Return(nil, repository.ErrNotFound)
		f.users.EXPECT().GetByEmail(ctx, "new@example.com").Return(nil, repository.ErrNotFound)
		f.users.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) (primitive.ObjectID, error) {
			assert.Equal(t, domain.ProviderGoogle, u.Provider)
			assert.Equal(t, "g-2", u.Subject)
			assert.Equal(t, "Ann G", u.Name)
			assert.Empty(t, u.PasswordHash)
			return newID, nil
		})

		_, got, err := f.svc.SignInWithGoogle(ctx, "id-token")
		require.NoError(t, err)
		assert.Equal(t, newID, got.ID)
	})

	t.Run("rejected token", func(t *testing.T) {
		f := newAuthFixture(t)
		f.google.EXPECT().Validate(ctx, "bad", testGoogleClientID).Return(nil, errors.New("idtoken: invalid"))
		_, _, err := f.svc.SignInWithGoogle(ctx, "bad")
		assert.ErrorIs(t, err, service.ErrFederatedTokenInvalid)
	})

	t.Run("not configured", func(t *testing.T) {
		f := newAuthFixture(t)
		svc := service.NewAuthService(f.users, nil, f.hub, service.AuthConfig{JWTSecret: "s"}, zap.NewNop())
		_, _, err := svc.SignInWithGoogle(ctx, "id-token")
		assert.ErrorIs(t, err, service.ErrFederationNotConfigured)
	})
}

func TestCurrentSession_ResolvesLoading(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)

	known := &domain.User{ID: primitive.NewObjectID(), Email: "ann@example.com", PasswordHash: "hash"}
	f.users.EXPECT().GetByID(ctx, known.ID).Return(known, nil)
	state, err := f.svc.CurrentSession(ctx, known.ID)
	require.NoError(t, err)
	assert.False(t, state.Loading)
	require.NotNil(t, state.User)
	assert.Empty(t, state.User.PasswordHash)

	// resolved sessions are served from the hub without another lookup
	state, err = f.svc.CurrentSession(ctx, known.ID)
	require.NoError(t, err)
	assert.NotNil(t, state.User)

	gone := primitive.NewObjectID()
	f.users.EXPECT().GetByID(ctx, gone).Return(nil, repository.ErrNotFound)
	state, err = f.svc.CurrentSession(ctx, gone)
	require.NoError(t, err)
	assert.False(t, state.Loading)
	assert.Nil(t, state.User)
}
