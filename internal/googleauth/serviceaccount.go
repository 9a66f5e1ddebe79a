package googleauth

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const (
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	sheetsScope     = "https://www.googleapis.com/auth/spreadsheets"
	jwtBearerGrant  = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	// Tokens are refreshed this long before the reported expiry.
	expirySkew = time.Minute
)

// ServiceAccount holds the parsed GOOGLE_SERVICE_ACCOUNT_CREDENTIALS blob.
type ServiceAccount struct {
	ClientEmail string
	PrivateKey  *rsa.PrivateKey
	TokenURL    string
}

// ParseCredentials parses the service account JSON blob. Private keys arrive
// with literal "\n" sequences when stored in an environment variable, so
// escaped newlines are normalized before PEM decoding.
func ParseCredentials(blob string) (*ServiceAccount, error) {
	var raw struct {
		ClientEmail string `json:"client_email"`
		PrivateKey  string `json:"private_key"`
		TokenURI    string `json:"token_uri"`
	}
	if err := json.Unmarshal([]byte(blob), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %v", err)
	}
	if raw.ClientEmail == "" || raw.PrivateKey == "" {
		return nil, errors.New("service account credentials missing client_email or private_key")
	}

	pemKey := strings.ReplaceAll(raw.PrivateKey, `\n`, "\n")
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(pemKey))
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account private key: %v", err)
	}

	tokenURL := raw.TokenURI
	if tokenURL == "" {
		tokenURL = defaultTokenURL
	}

	return &ServiceAccount{
		ClientEmail: raw.ClientEmail,
		PrivateKey:  key,
		TokenURL:    tokenURL,
	}, nil
}

// ServiceTokenSource exchanges a signed JWT assertion for a spreadsheet-scoped
// access token and caches it until shortly before expiry.
type ServiceTokenSource struct {
	account    *ServiceAccount
	httpClient *http.Client

	mu     sync.RWMutex
	token  string
	expiry time.Time
}

func NewServiceTokenSource(account *ServiceAccount) *ServiceTokenSource {
	return &ServiceTokenSource{
		account:    account,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *ServiceTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.token != "" && time.Now().Before(s.expiry) {
		token := s.token
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Check again in case another goroutine refreshed it
	if s.token != "" && time.Now().Before(s.expiry) {
		return s.token, nil
	}

	token, expiry, err := s.exchange(ctx)
	if err != nil {
		return "", err
	}

	s.token = token
	s.expiry = expiry
	return token, nil
}

func (s *ServiceTokenSource) exchange(ctx context.Context) (string, time.Time, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   s.account.ClientEmail,
		"scope": sheetsScope,
		"aud":   s.account.TokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.account.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token assertion: %v", err)
	}

	form := url.Values{}
	form.Set("grant_type", jwtBearerGrant)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.account.TokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", time.Time{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token exchange failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", time.Time{}, fmt.Errorf("token exchange failed: %d - %s", resp.StatusCode, string(body))
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to decode token response: %v", err)
	}
	if tokenResp.AccessToken == "" {
		return "", time.Time{}, errors.New("token response missing access_token")
	}

	expiry := now.Add(time.Duration(tokenResp.ExpiresIn)*time.Second - expirySkew)
	return tokenResp.AccessToken, expiry, nil
}
