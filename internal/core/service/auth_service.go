package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tourdesk/tour-service/internal/core/domain"
	"github.com/tourdesk/tour-service/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// Claims is the payload of an access token.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService implements login, registration and bearer token resolution.
type AuthService struct {
	repo      ports.AuthRepository
	limiter   ports.LoginLimiter
	jwtSecret []byte
	tokenTTL  time.Duration
	now       func() time.Time
	log       zerolog.Logger
}

// NewAuthService builds an AuthService. limiter may be nil.
func NewAuthService(repo ports.AuthRepository, limiter ports.LoginLimiter, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{
		repo:      repo,
		limiter:   limiter,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		now:       time.Now,
		log:       log,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	return s.repo.Create(ctx, &domain.User{
		Username:  username,
		Password:  string(hash),
		Role:      r,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		blocked, err := s.limiter.Blocked(ctx, username)
		if err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login limiter check failed")
		} else if blocked {
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, username)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !passwordMatches(user.Password, password) {
		s.recordFailure(ctx, username)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, username); err != nil {
			s.log.Warn().Err(err).Str("username", username).Msg("login limiter reset failed")
		}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Authenticate resolves a bearer token to its user, or nil.
func (s *AuthService) Authenticate(ctx context.Context, token string) *domain.User {
	if token == "" {
		return nil
	}

	claims, err := s.parseToken(token)
	if err != nil {
		s.log.Warn().Err(err).Msg("error verifying token")
		return nil
	}

	username := claims.Username
	if username == "" {
		username = claims.Subject
	}
	if username == "" {
		s.log.Warn().Msg("token has no username claim")
		return nil
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.log.Error().Err(err).Str("username", username).Msg("user lookup failed")
		}
		return nil
	}
	return user
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter update failed")
	}
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := s.now()
	claims := Claims{
		Username: user.Username,
		Role:     user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.jwtSecret)
}

func (s *AuthService) parseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}

// passwordMatches accepts bcrypt hashes and, for records created before
// hashing was introduced, plaintext credentials.
func passwordMatches(stored, given string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}

func isBcryptHash(s string) bool {
	if len(s) != 60 {
		return false
	}
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}
