package gate

import (
	"context"
	"errors"
	"strings"

	"physio-agenda/internal/ports/auth"
)

// Verifier implementa ports/auth.AuthVerifier contra el gate remoto.
type Verifier struct {
	client *Client
}

func NewVerifier(client *Client) *Verifier {
	return &Verifier{client: client}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.client == nil {
		return auth.Claims{}, ErrGateNotConfigured
	}
	if strings.TrimSpace(token) == "" {
		return auth.Claims{}, ErrGateUnauthorized
	}

	claims, err := v.client.VerifyToken(ctx, token)
	if err != nil {
		return auth.Claims{}, err
	}

	// Un token válido sin user id no sirve para nada aguas abajo.
	if strings.TrimSpace(claims.UserID) == "" {
		return auth.Claims{}, errors.New("gate: verify response without user_id")
	}

	return claims, nil
}
