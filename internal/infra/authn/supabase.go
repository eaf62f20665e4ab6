package authn

import (
	"context"
	"errors"

	"github.com/google/uuid"
	auth "github.com/supabase-community/auth-go"

	"github.com/formastudio/forma-api/internal/config"
)

var ErrInvalidToken = errors.New("invalid or expired access token")

// Identity is the minimal view of an authenticated account the rest of the
// application consumes. Signup, password custody and token issuance stay with
// the hosted auth provider.
type Identity struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Verifier resolves a bearer access token to an identity.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

type supabaseVerifier struct {
	client auth.Client
}

func NewSupabaseVerifier(cfg *config.Config) Verifier {
	return &supabaseVerifier{
		client: auth.New(cfg.Auth.ProjectReference, cfg.Auth.APIKey),
	}
}

func (v *supabaseVerifier) VerifyToken(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	user, err := v.client.WithToken(token).GetUser()
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Identity{ID: user.ID, Email: user.Email}, nil
}
