package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fleetflow/validate"
)

var (
	// ErrInvalidCredentials signals wrong username or password.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	// ErrWeakPassword signals the password doesn't meet requirements.
	ErrWeakPassword = errors.New("auth: password must be at least 6 characters")
	// ErrSetupComplete signals an admin already exists; the bootstrap
	// endpoint only works while the portal has zero admin accounts.
	ErrSetupComplete = errors.New("auth: admin setup already completed")
)

const minPasswordLen = 6

// Service handles admin authentication and first-run bootstrap.
type Service struct {
	repo        Repository
	jwtSecret   []byte
	tokenTTL    time.Duration
	idGenerator func() string
	now         func() time.Time
}

// LoginResult bundles the signed token and the admin returned after login.
type LoginResult struct {
	Token string
	User  AdminUser
}

// NewService creates a new authentication service. tokenTTL bounds how long
// an issued token stays valid.
func NewService(repo Repository, jwtSecret string, tokenTTL time.Duration) *Service {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Service{
		repo:        repo,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
		idGenerator: func() string { return uuid.NewString() },
		now:         time.Now,
	}
}

// WithIDGenerator overrides id generation, for tests.
func (s *Service) WithIDGenerator(gen func() string) *Service {
	s.idGenerator = gen
	return s
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// NeedsSetup reports whether the portal still has zero admin accounts.
func (s *Service) NeedsSetup(ctx context.Context) (bool, error) {
	count, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Bootstrap creates the first admin account. It refuses once any admin
// exists; the username uniqueness constraint backstops a racing duplicate.
func (s *Service) Bootstrap(ctx context.Context, req BootstrapRequest) (*AdminUser, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, validate.FieldErrors{"username": "is required"}
	}
	if len(req.Password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	count, err := s.repo.CountAdmins(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSetupComplete
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash password: %w", err)
	}

	admin, err := s.repo.CreateAdmin(ctx, CreateAdminParams{
		ID:           s.idGenerator(),
		Username:     username,
		PasswordHash: string(passwordHash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	return &admin, nil
}

// Login authenticates an admin and returns a signed, expiring token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	admin, err := s.repo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return LoginResult{}, fmt.Errorf("auth: generate token: %w", err)
	}

	return LoginResult{Token: token, User: admin}, nil
}

// VerifyToken validates a token and returns the admin username it was
// issued to. Expired or tampered tokens fail here, so every admin request
// re-proves itself.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", fmt.Errorf("auth: parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("auth: invalid token")
	}

	username, ok := claims["username"].(string)
	if !ok || username == "" {
		return "", fmt.Errorf("auth: invalid username in token")
	}
	return username, nil
}

func (s *Service) generateToken(admin AdminUser) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":      admin.ID,
		"username": admin.Username,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
