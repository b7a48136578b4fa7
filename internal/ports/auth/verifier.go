package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error. El gate de
// autenticación es un colaborador externo: este servicio solo consume
// el resultado.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
