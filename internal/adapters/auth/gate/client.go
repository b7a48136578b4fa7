package gate

import (
	"context"
	"errors"
	"strings"
	"time"

	"physio-agenda/internal/platform/httpclient"
	"physio-agenda/internal/ports/auth"
)

var (
	ErrGateNotConfigured = errors.New("auth gate client not configured")
	ErrGateUnauthorized  = errors.New("auth gate unauthorized")
	ErrGateUpstream      = errors.New("auth gate upstream error")
)

// Config del cliente del gate de autenticación. BaseURL y APIKey
// normalmente vienen de env vars (AUTH_GATE_URL / AUTH_GATE_API_KEY).
type Config struct {
	BaseURL string
	APIKey  string

	// Opcional: nombre del header donde se manda la API key.
	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

type Client struct {
	apiKey       string
	apiKeyHeader string
	http         *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
		http:         hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.apiKey != ""
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// VerifyToken consulta al gate por un token de sesión y trae claims.
func (c *Client) VerifyToken(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrGateNotConfigured
	}

	var resp verifyResponse
	err := c.http.DoJSON(ctx, "POST", "/v1/sessions/verify",
		map[string]string{c.apiKeyHeader: c.apiKey},
		verifyRequest{Token: token},
		&resp,
	)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == 401 || httpErr.StatusCode == 403 {
				return auth.Claims{}, ErrGateUnauthorized
			}
			return auth.Claims{}, ErrGateUpstream
		}
		return auth.Claims{}, err
	}

	return auth.Claims{
		UserID:   resp.UserID,
		Username: resp.Username,
	}, nil
}
