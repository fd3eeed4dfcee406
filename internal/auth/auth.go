// Package auth backs the mock login screen. Accounts live in memory and the
// password check is a presence check only; the issued JWT exists so the rest
// of the API can exercise a realistic bearer-token flow.
package auth

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/invenhub/pos-service/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

const tokenTTL = 24 * time.Hour

type Service struct {
	mu     sync.RWMutex
	users  map[string]domain.User
	secret []byte
	logger *zap.Logger
}

func New(seed []domain.User, secret string, logger *zap.Logger) *Service {
	users := make(map[string]domain.User, len(seed))
	for _, u := range seed {
		users[strings.ToLower(u.Email)] = u
	}
	return &Service{
		users:  users,
		secret: []byte(secret),
		logger: logger,
	}
}

// Login issues a signed token for a known account. Any non-empty password is
// accepted; there is no real credential store behind this.
func (s *Service) Login(email, password string) (string, domain.User, error) {
	if password == "" {
		return "", domain.User{}, ErrInvalidCredentials
	}

	s.mu.RLock()
	user, ok := s.users[strings.ToLower(email)]
	s.mu.RUnlock()
	if !ok {
		return "", domain.User{}, ErrInvalidCredentials
	}

	token, err := s.sign(user)
	if err != nil {
		return "", domain.User{}, err
	}

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role))

	return token, user, nil
}

// Register adds an in-memory account with the employee role and logs it in.
func (s *Service) Register(req domain.RegisterRequest) (string, domain.User, error) {
	key := strings.ToLower(req.Email)

	s.mu.Lock()
	if _, ok := s.users[key]; ok {
		s.mu.Unlock()
		return "", domain.User{}, ErrUserExists
	}
	user := domain.User{
		ID:    uuid.NewString(),
		Name:  req.Name,
		Email: req.Email,
		Role:  domain.RoleEmployee,
	}
	s.users[key] = user
	s.mu.Unlock()

	token, err := s.sign(user)
	if err != nil {
		return "", domain.User{}, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID))
	return token, user, nil
}

// Verify parses a token and returns the account it was issued for.
func (s *Service) Verify(tokenString string) (domain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.User{}, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, ErrInvalidCredentials
	}
	email, _ := claims["email"].(string)

	s.mu.RLock()
	user, ok := s.users[strings.ToLower(email)]
	s.mu.RUnlock()
	if !ok {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (s *Service) sign(user domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
