package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type staticTokens string

func (s staticTokens) Token(ctx context.Context) (string, error) {
	return string(s), nil
}

func TestGetRequisitionsMissingConfig(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("network call made despite missing configuration")
	}))
	defer server.Close()

	client := NewClient("", "sheet1", nil)
	client.SetBaseURL(server.URL)

	_, err := client.GetRequisitions(context.Background())
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Missing != "GOOGLE_SHEETS_API_KEY" {
		t.Fatalf("wrong missing key: %s", cfgErr.Missing)
	}
	if cfgErr.Suggestion == "" {
		t.Fatal("expected a remediation suggestion")
	}
}

func TestGetRequisitionsForwardsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, "API key not valid")
	}))
	defer server.Close()

	client := NewClient("key", "sheet1", nil)
	client.SetBaseURL(server.URL)

	_, err := client.GetRequisitions(context.Background())
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", fetchErr.StatusCode)
	}
	if !strings.Contains(fetchErr.Body, "API key not valid") {
		t.Fatalf("expected upstream body preserved, got %q", fetchErr.Body)
	}
}

func TestGetRequisitionsParsesValues(t *testing.T) {
	row := make([]string, 83)
	row[0] = "1/5/2024 10:00:00"
	row[1] = "a@example.com"
	row[2] = "Course A"
	row[82] = "completed"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.RawQuery, "key=secret") {
			t.Errorf("expected API key in query, got %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string][][]string{
			"values": {{"Timestamp", "Email"}, row},
		})
	}))
	defer server.Close()

	client := NewClient("secret", "sheet1", nil)
	client.SetBaseURL(server.URL)

	got, err := client.GetRequisitions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 requisition, got %d", len(got))
	}
	if got[0].Status != "completed" {
		t.Fatalf("expected status from column CE, got %q", got[0].Status)
	}
}

func TestUpdateStatusWritesStatusCell(t *testing.T) {
	var gotPath, gotAuth, gotQuery string
	var gotBody struct {
		Values [][]string `json:"values"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			t.Errorf("expected PUT, got %s", r.Method)
		}
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		fmt.Fprint(w, "{}")
	}))
	defer server.Close()

	client := NewClient("key", "sheet1", staticTokens("sa-token"))
	client.SetBaseURL(server.URL)

	if err := client.UpdateStatus(context.Background(), 3, "completed", ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasSuffix(gotPath, "/values/CE5") {
		t.Fatalf("expected write to CE5, got path %s", gotPath)
	}
	if !strings.Contains(gotQuery, "valueInputOption=RAW") {
		t.Fatalf("expected RAW value input, got %s", gotQuery)
	}
	if gotAuth != "Bearer sa-token" {
		t.Fatalf("expected service account bearer token, got %q", gotAuth)
	}
	if len(gotBody.Values) != 1 || len(gotBody.Values[0]) != 1 || gotBody.Values[0][0] != "completed" {
		t.Fatalf("unexpected payload: %+v", gotBody.Values)
	}
}

func TestUpdateStatusExpectedStatusConflict(t *testing.T) {
	var wrote bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string][][]string{
				"values": {{"completed"}},
			})
		case http.MethodPut:
			wrote = true
			fmt.Fprint(w, "{}")
		}
	}))
	defer server.Close()

	client := NewClient("key", "sheet1", staticTokens("sa-token"))
	client.SetBaseURL(server.URL)

	err := client.UpdateStatus(context.Background(), 0, "in-progress", "pending")
	if !errors.Is(err, ErrStatusConflict) {
		t.Fatalf("expected ErrStatusConflict, got %v", err)
	}
	if wrote {
		t.Fatal("cell written despite failed precondition")
	}
}

func TestUpdateStatusExpectedStatusMatch(t *testing.T) {
	var wrote bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			// Blank cell reads as the default status
			json.NewEncoder(w).Encode(map[string][][]string{"values": {}})
		case http.MethodPut:
			wrote = true
			fmt.Fprint(w, "{}")
		}
	}))
	defer server.Close()

	client := NewClient("key", "sheet1", staticTokens("sa-token"))
	client.SetBaseURL(server.URL)

	if err := client.UpdateStatus(context.Background(), 0, "in-progress", DefaultStatus); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !wrote {
		t.Fatal("expected the cell write to happen")
	}
}

func TestUpdateStatusWithoutCredentials(t *testing.T) {
	client := NewClient("key", "sheet1", nil)

	err := client.UpdateStatus(context.Background(), 0, "completed", "")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigError, got %v", err)
	}
	if cfgErr.Missing != "GOOGLE_SERVICE_ACCOUNT_CREDENTIALS" {
		t.Fatalf("wrong missing key: %s", cfgErr.Missing)
	}
}

func TestHealthReportsSheetNames(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"properties":{"title":"Requisitions"},"sheets":[{"properties":{"title":"Sheet1"}},{"properties":{"title":"Archive"}}]}`)
	}))
	defer server.Close()

	client := NewClient("key", "sheet1", nil)
	client.SetBaseURL(server.URL)

	info, err := client.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Title != "Requisitions" {
		t.Fatalf("expected title Requisitions, got %q", info.Title)
	}
	if len(info.Sheets) != 2 || info.Sheets[0] != "Sheet1" {
		t.Fatalf("unexpected sheet list: %v", info.Sheets)
	}
}
