package googleauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/hades874/10MS-Req-Dash/internal/config"
)

const defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// ErrInvalidToken is returned when Google rejects an access token.
var ErrInvalidToken = errors.New("invalid or expired access token")

// NewOAuthConfig builds the authorization-code config for dashboard logins.
func NewOAuthConfig(cfg config.GoogleConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// UserInfo is the subset of the Google userinfo response the dashboard uses.
type UserInfo struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// UserInfoClient resolves an access token to the Google account behind it.
type UserInfoClient struct {
	// Endpoint can be overridden in tests; defaults to Google's userinfo URL.
	Endpoint   string
	httpClient *http.Client
}

func NewUserInfoClient() *UserInfoClient {
	return &UserInfoClient{
		Endpoint:   defaultUserInfoURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (u *UserInfoClient) Fetch(ctx context.Context, accessToken string) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.Endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, ErrInvalidToken
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request failed: %d", resp.StatusCode)
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %v", err)
	}
	if info.Email == "" {
		return nil, ErrInvalidToken
	}

	return &info, nil
}
