package ports

import (
	"context"

	"github.com/luminashop/storefront/internal/core/domain"
)

// AuthService implements the demo login boundary. Credentials are accepted
// as-is after a simulated network delay; no validation is performed.
type AuthService interface {
	// Login returns a session token and a fresh user with an empty order
	// history after the configured delay.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// DemoLogin signs in the built-in demo user immediately.
	DemoLogin() (string, *domain.User, error)
}
