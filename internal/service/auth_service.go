package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"alcyxob/fitplanner/internal/domain"
	"alcyxob/fitplanner/internal/repository"
	"alcyxob/fitplanner/internal/session"

	"github.com/coocood/freecache"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
)

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks alcyxob/fitplanner/internal/service PlanGenerator,GoogleTokenValidator
//go:generate mockgen -destination=mocks/mock_service.go -package=mocks alcyxob/fitplanner/internal/service AuthService,ProfileService,PlanService,TrackerService

// --- Error Definitions ---
var (
	ErrUserAlreadyExists       = errors.New("user with this email already exists")
	ErrAuthenticationFailed    = errors.New("authentication failed: invalid email or password")
	ErrInvalidCredentials      = errors.New("email and a password of at least 6 characters are required")
	ErrHashingFailed           = errors.New("failed to hash password")
	ErrTokenGeneration         = errors.New("failed to generate authentication token")
	ErrInvalidToken            = errors.New("invalid token")
	ErrTokenRevoked            = errors.New("token has been revoked")
	ErrFederationNotConfigured = errors.New("google sign-in is not configured")
	ErrFederatedTokenInvalid   = errors.New("google id token is invalid")
)

const (
	minPasswordLength = 6
	tokenIssuer       = "fitplanner"
	// freecache refuses anything smaller
	minRevocationCacheBytes = 512 * 1024
)

// GoogleTokenValidator verifies Google ID tokens. *idtoken.Validator satisfies it.
type GoogleTokenValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// Claims is the JWT payload. RegisteredClaims.ID carries the token id used
// for revocation.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

type AuthService interface {
	SignUpWithPassword(ctx context.Context, name, email, password string) (*domain.User, error)
	SignInWithPassword(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	SignInWithGoogle(ctx context.Context, idToken string) (token string, user *domain.User, err error)
	// SignOut revokes the token until it would have expired anyway.
	SignOut(ctx context.Context, claims *Claims) error
	// ParseToken verifies signature, expiry and revocation.
	ParseToken(tokenString string) (*Claims, error)
	// CurrentSession resolves a Loading session from the store before returning it.
	CurrentSession(ctx context.Context, userID primitive.ObjectID) (session.State, error)
}

type AuthConfig struct {
	JWTSecret            string
	JWTExpiration        time.Duration
	GoogleClientID       string
	RevocationCacheBytes int
}

// authService implements the AuthService interface.
type authService struct {
	userRepo       repository.UserRepository
	google         GoogleTokenValidator
	hub            *session.Hub
	revoked        *freecache.Cache
	jwtSecret      string
	jwtExpiration  time.Duration
	googleClientID string
	logger         *zap.Logger
}

// NewAuthService panics on an empty JWT secret. google may be nil when
// federated sign-in is not used.
func NewAuthService(userRepo repository.UserRepository, google GoogleTokenValidator, hub *session.Hub, cfg AuthConfig, logger *zap.Logger) AuthService {
	if cfg.JWTSecret == "" {
		panic("JWT secret cannot be empty")
	}
	if cfg.JWTExpiration <= 0 {
		cfg.JWTExpiration = time.Hour
	}
	if cfg.RevocationCacheBytes < minRevocationCacheBytes {
		cfg.RevocationCacheBytes = minRevocationCacheBytes
	}
	return &authService{
		userRepo:       userRepo,
		google:         google,
		hub:            hub,
		revoked:        freecache.NewCache(cfg.RevocationCacheBytes),
		jwtSecret:      cfg.JWTSecret,
		jwtExpiration:  cfg.JWTExpiration,
		googleClientID: cfg.GoogleClientID,
		logger:         logger,
	}
}

func (s *authService) SignUpWithPassword(ctx context.Context, name, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) < minPasswordLength {
		return nil, ErrInvalidCredentials
	}

	_, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrHashingFailed
	}

	user := &domain.User{
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Provider:     domain.ProviderPassword,
	}
	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// unique index caught a concurrent sign-up
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	user.ID = userID
	user.PasswordHash = ""

	s.logger.Info("user signed up", zap.String("userId", userID.Hex()))
	return user, nil
}

func (s *authService) SignInWithPassword(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	// federated-only accounts have no hash
	if user.PasswordHash == "" {
		return "", nil, ErrAuthenticationFailed
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthenticationFailed
	}

	return s.issue(user)
}

func (s *authService) SignInWithGoogle(ctx context.Context, idToken string) (string, *domain.User, error) {
	if s.google == nil || s.googleClientID == "" {
		return "", nil, ErrFederationNotConfigured
	}

	payload, err := s.google.Validate(ctx, idToken, s.googleClientID)
	if err != nil {
		s.logger.Warn("google id token rejected", zap.Error(err))
		return "", nil, ErrFederatedTokenInvalid
	}

	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	name, _ := payload.Claims["name"].(string)
	if payload.Subject == "" || email == "" {
		return "", nil, ErrFederatedTokenInvalid
	}

	user, err := s.federatedUser(ctx, payload.Subject, strings.ToLower(email), verified, name)
	if err != nil {
		return "", nil, err
	}
	return s.issue(user)
}

// federatedUser finds the account for a Google subject. An existing account
// with the same verified email is linked instead of duplicated.
func (s *authService) federatedUser(ctx context.Context, subject, email string, verified bool, name string) (*domain.User, error) {
	user, err := s.userRepo.GetBySubject(ctx, domain.ProviderGoogle, subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if !verified {
			return nil, ErrUserAlreadyExists
		}
		if err = s.userRepo.LinkSubject(ctx, existing.ID, domain.ProviderGoogle, subject); err != nil {
			return nil, err
		}
		existing.Provider = domain.ProviderGoogle
		existing.Subject = subject
		return existing, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	user = &domain.User{
		Name:     name,
		Email:    email,
		Provider: domain.ProviderGoogle,
		Subject:  subject,
	}
	user.ID, err = s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}
	s.logger.Info("user signed up with google", zap.String("userId", user.ID.Hex()))
	return user, nil
}

// issue signs a token for user and publishes the signed-in session.
func (s *authService) issue(user *domain.User) (string, *domain.User, error) {
	token, err := s.generateJWT(user)
	if err != nil {
		s.logger.Error("failed to sign token", zap.String("userId", user.ID.Hex()), zap.Error(err))
		return "", nil, ErrTokenGeneration
	}
	user.PasswordHash = ""
	s.hub.SignedIn(user)
	return token, user, nil
}

func (s *authService) SignOut(_ context.Context, claims *Claims) error {
	userID, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return ErrInvalidToken
	}

	if claims.ID != "" && claims.ExpiresAt != nil {
		ttl := int(time.Until(claims.ExpiresAt.Time).Seconds()) + 1
		if ttl > 0 {
			if err := s.revoked.Set([]byte(claims.ID), []byte{1}, ttl); err != nil {
				return fmt.Errorf("revoke token: %w", err)
			}
		}
	}

	s.hub.SignedOut(userID)
	s.logger.Info("user signed out", zap.String("userId", claims.UserID))
	return nil
}

func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	if _, err := s.revoked.Get([]byte(claims.ID)); err == nil {
		return nil, ErrTokenRevoked
	}
	return claims, nil
}

func (s *authService) CurrentSession(ctx context.Context, userID primitive.ObjectID) (session.State, error) {
	if state := s.hub.Current(userID); !state.Loading {
		return state, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	switch {
	case err == nil:
		user.PasswordHash = ""
		s.hub.SignedIn(user)
	case errors.Is(err, repository.ErrNotFound):
		s.hub.SignedOut(userID)
		return session.State{}, nil
	default:
		s.logger.Error("failed to resolve session", zap.String("userId", userID.Hex()), zap.Error(err))
		return session.State{}, err
	}
	return s.hub.Current(userID), nil
}

// --- JWT Helper ---

func (s *authService) generateJWT(user *domain.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
