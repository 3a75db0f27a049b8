package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/localnerve/authorizer-go"
	"github.com/localnerve/legalaid-api/internal/config"
	"github.com/localnerve/legalaid-api/internal/models"
	"github.com/localnerve/legalaid-api/internal/utils"
)

// SessionCookie is the identity provider's session cookie name.
const SessionCookie = "cookie_session"

// SessionValidator validates a session cookie and returns the identity it
// belongs to.
type SessionValidator interface {
	ValidateSession(ctx context.Context, cookie string) (*Identity, error)
}

// AuthorizerSessions validates sessions with an Authorizer identity provider.
// The client is created on first use and creation is retried until it succeeds.
type AuthorizerSessions struct {
	cfg         *config.Config
	redirectURL string

	mu     sync.Mutex
	client *authorizer.AuthorizerClient
}

// NewAuthorizerSessions creates a validator. redirectURL is where the
// provider sends the browser after login.
func NewAuthorizerSessions(cfg *config.Config, redirectURL string) *AuthorizerSessions {
	return &AuthorizerSessions{cfg: cfg, redirectURL: redirectURL}
}

// Init connects to the identity provider now rather than on first use.
func (s *AuthorizerSessions) Init(ctx context.Context) error {
	_, err := s.authClient(ctx)
	return err
}

func (s *AuthorizerSessions) authClient(ctx context.Context) (*authorizer.AuthorizerClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	if err := utils.PingAuthorizer(ctx, s.cfg.AuthzURL); err != nil {
		return nil, fmt.Errorf("authorizer ping failed: %w", err)
	}

	slog.Info("initializing authorizer", "url", s.cfg.AuthzURL, "clientID", s.cfg.AuthzClientID, "redirectURL", s.redirectURL)

	client, err := authorizer.NewAuthorizerClient(s.cfg.AuthzClientID, s.cfg.AuthzURL, s.redirectURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}
	s.client = client
	return client, nil
}

// providerUser is the subset of the provider's user record we consume.
type providerUser struct {
	ID         string    `json:"id"`
	Email      *string   `json:"email"`
	GivenName  *string   `json:"given_name"`
	FamilyName *string   `json:"family_name"`
	Picture    *string   `json:"picture"`
	Roles      []*string `json:"roles"`
}

// ValidateSession validates the cookie with the identity provider.
func (s *AuthorizerSessions) ValidateSession(ctx context.Context, cookie string) (*Identity, error) {
	client, err := s.authClient(ctx)
	if err != nil {
		return nil, err
	}

	res, err := client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
	})
	if err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if res == nil || !res.IsValid {
		return nil, fmt.Errorf("session is not valid")
	}

	raw, err := json.Marshal(res.User)
	if err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}
	var pu providerUser
	if err := json.Unmarshal(raw, &pu); err != nil {
		return nil, fmt.Errorf("failed to read session user: %w", err)
	}
	if pu.ID == "" {
		return nil, fmt.Errorf("session user has no id")
	}

	return &Identity{
		ID:              pu.ID,
		Email:           pu.Email,
		FirstName:       pu.GivenName,
		LastName:        pu.FamilyName,
		ProfileImageURL: pu.Picture,
		Role:            platformRole(pu.Roles),
	}, nil
}

// platformRole picks the most privileged platform role asserted by the
// provider. Provider roles outside the platform set are ignored.
func platformRole(roles []*string) models.Role {
	found := map[models.Role]bool{}
	for _, r := range roles {
		if r != nil {
			found[models.Role(*r)] = true
		}
	}
	for _, role := range []models.Role{models.RoleAdmin, models.RoleLawyer, models.RolePrisoner} {
		if found[role] {
			return role
		}
	}
	return ""
}
