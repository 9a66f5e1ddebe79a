package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hades874/10MS-Req-Dash/internal/models"
)

const (
	defaultBaseURL = "https://sheets.googleapis.com"
	readRange      = "A:CE"
)

// ErrStatusConflict is returned when an expected-status precondition does not
// match the cell's current value.
var ErrStatusConflict = errors.New("status changed since last read")

// TokenSource supplies the service-account bearer token for cell writes.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// FetchError carries a non-2xx response from the Sheets API so handlers can
// forward the upstream status and body text.
type FetchError struct {
	StatusCode int
	Body       string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("Google Sheets API error: %d - %s", e.StatusCode, e.Body)
}

// ConfigError reports a missing credential before any network call is made.
type ConfigError struct {
	Missing    string
	Suggestion string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s", e.Missing)
}

// SheetInfo is the spreadsheet metadata returned by the health probe.
type SheetInfo struct {
	Title  string   `json:"title"`
	Sheets []string `json:"sheets"`
}

// Client talks to the Google Sheets values API. Reads use the read-only API
// key; single-cell status writes use a service-account token, never the
// caller's own token.
type Client struct {
	apiKey        string
	spreadsheetID string
	tokens        TokenSource
	httpClient    *http.Client
	baseURL       string
}

func NewClient(apiKey, spreadsheetID string, tokens TokenSource) *Client {
	return &Client{
		apiKey:        apiKey,
		spreadsheetID: spreadsheetID,
		tokens:        tokens,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
		baseURL:       defaultBaseURL,
	}
}

// SetBaseURL overrides the API endpoint. Used by tests.
func (c *Client) SetBaseURL(base string) {
	c.baseURL = base
}

func (c *Client) checkReadConfig() error {
	if c.apiKey == "" {
		return &ConfigError{
			Missing:    "GOOGLE_SHEETS_API_KEY",
			Suggestion: "Set GOOGLE_SHEETS_API_KEY to a Sheets API key with read access",
		}
	}
	if c.spreadsheetID == "" {
		return &ConfigError{
			Missing:    "GOOGLE_SPREADSHEET_ID",
			Suggestion: "Set GOOGLE_SPREADSHEET_ID to the form response spreadsheet id",
		}
	}
	return nil
}

// GetRequisitions fetches the full A:CE range and maps it to records.
func (c *Client) GetRequisitions(ctx context.Context) ([]models.Requisition, error) {
	values, err := c.fetchRange(ctx, readRange)
	if err != nil {
		return nil, err
	}
	return ParseGrid(values), nil
}

func (c *Client) fetchRange(ctx context.Context, rangeRef string) ([][]string, error) {
	if err := c.checkReadConfig(); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		c.baseURL, c.spreadsheetID, url.PathEscape(rangeRef), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var data struct {
		Values [][]string `json:"values"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode sheet values: %v", err)
	}

	return data.Values, nil
}

// UpdateStatus overwrites the status cell for the given zero-based data row.
// When expectedStatus is non-empty the current cell value is read first and
// ErrStatusConflict is returned on mismatch; otherwise the write is
// last-write-wins.
func (c *Client) UpdateStatus(ctx context.Context, rowIndex int, status, expectedStatus string) error {
	if rowIndex < 0 {
		return fmt.Errorf("invalid row index: %d", rowIndex)
	}
	if c.tokens == nil {
		return &ConfigError{
			Missing:    "GOOGLE_SERVICE_ACCOUNT_CREDENTIALS",
			Suggestion: "Set GOOGLE_SERVICE_ACCOUNT_CREDENTIALS to the service account JSON blob",
		}
	}

	cellRef := StatusCell(rowIndex)

	if expectedStatus != "" {
		current, err := c.readCell(ctx, cellRef)
		if err != nil {
			return err
		}
		if current == "" {
			current = DefaultStatus
		}
		if current != expectedStatus {
			return ErrStatusConflict
		}
	}

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("service account token: %v", err)
	}

	payload, err := json.Marshal(map[string][][]string{
		"values": {{status}},
	})
	if err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?valueInputOption=RAW",
		c.baseURL, c.spreadsheetID, url.PathEscape(cellRef))

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, reqURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheets update failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &FetchError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return nil
}

func (c *Client) readCell(ctx context.Context, cellRef string) (string, error) {
	values, err := c.fetchRange(ctx, cellRef)
	if err != nil {
		return "", err
	}
	if len(values) == 0 || len(values[0]) == 0 {
		return "", nil
	}
	return values[0][0], nil
}

// Health probes the spreadsheet metadata endpoint and reports the document
// title and sheet names.
func (c *Client) Health(ctx context.Context) (*SheetInfo, error) {
	if err := c.checkReadConfig(); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/v4/spreadsheets/%s?key=%s",
		c.baseURL, c.spreadsheetID, url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets metadata request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var data struct {
		Properties struct {
			Title string `json:"title"`
		} `json:"properties"`
		Sheets []struct {
			Properties struct {
				Title string `json:"title"`
			} `json:"properties"`
		} `json:"sheets"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode spreadsheet metadata: %v", err)
	}

	info := &SheetInfo{Title: data.Properties.Title}
	for _, s := range data.Sheets {
		info.Sheets = append(info.Sheets, s.Properties.Title)
	}
	return info, nil
}
