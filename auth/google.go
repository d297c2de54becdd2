package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const tokenInfoURL = "https://oauth2.googleapis.com/tokeninfo"

// GoogleUser holds the verified claims extracted from a Google ID token.
type GoogleUser struct {
	Email   string
	Name    string
	Subject string
}

// GoogleVerifier validates an externally issued identity token. It is an
// interface so tests can substitute a fake for Google's endpoint.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*GoogleUser, error)
}

// TokenInfoVerifier checks ID tokens against Google's tokeninfo endpoint,
// which performs the signature check server-side. The audience claim must
// match the configured OAuth client ID.
type TokenInfoVerifier struct {
	clientID string
	client   *http.Client
	endpoint string
}

func NewTokenInfoVerifier(clientID string) *TokenInfoVerifier {
	return &TokenInfoVerifier{
		clientID: clientID,
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: tokenInfoURL,
	}
}

type tokenInfo struct {
	Email         string `json:"email"`
	EmailVerified string `json:"email_verified"`
	Name          string `json:"name"`
	Aud           string `json:"aud"`
	Sub           string `json:"sub"`
}

func (v *TokenInfoVerifier) Verify(ctx context.Context, idToken string) (*GoogleUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.endpoint+"?id_token="+url.QueryEscape(idToken), nil)
	if err != nil {
		return nil, err
	}
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("google token verification failed: status %d", resp.StatusCode)
	}

	var info tokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Aud != v.clientID {
		return nil, fmt.Errorf("google token audience mismatch")
	}
	if info.Email == "" || info.EmailVerified != "true" {
		return nil, fmt.Errorf("google token has no verified email")
	}
	return &GoogleUser{Email: info.Email, Name: info.Name, Subject: info.Sub}, nil
}
