package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/luminashop/storefront/internal/core/domain"
)

// AuthService implements the simulated login boundary. It stands in for a
// real identity provider: credentials are accepted after a fixed artificial
// delay and never validated.
type AuthService struct {
	jwtSecret string
	tokenTTL  time.Duration
	delay     time.Duration
	log       zerolog.Logger
}

func NewAuthService(jwtSecret string, tokenTTL, delay time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{jwtSecret: jwtSecret, tokenTTL: tokenTTL, delay: delay, log: log}
}

// Login resolves after the configured delay with a fresh user carrying an
// empty order history. The delay is not cancellable; like the payment round
// trip, a started login always resolves.
func (s *AuthService) Login(_ context.Context, email, password string) (string, *domain.User, error) {
	_ = password // accepted, never checked

	if s.delay > 0 {
		time.Sleep(s.delay)
	}

	user := &domain.User{
		ID:    "u1",
		Name:  "Jan Kowalski",
		Email: email,
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("email", email).Msg("user logged in")
	return token, user, nil
}

// DemoLogin signs in the built-in demo user with no delay.
func (s *AuthService) DemoLogin() (string, *domain.User, error) {
	user := &domain.User{
		ID:    "demo",
		Name:  "Demo User",
		Email: "demo@lumina.com",
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Msg("demo user logged in")
	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"name":  user.Name,
		"email": user.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
