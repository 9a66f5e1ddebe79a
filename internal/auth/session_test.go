package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hades874/10MS-Req-Dash/internal/directory"
	"github.com/hades874/10MS-Req-Dash/internal/googleauth"
	"github.com/hades874/10MS-Req-Dash/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubMembers map[string]*models.TeamMember

func (s stubMembers) Get(id string) (*models.TeamMember, error) {
	if m, ok := s[id]; ok {
		return m, nil
	}
	return nil, directory.ErrNotFound
}

type stubUserInfo struct {
	info  *googleauth.UserInfo
	err   error
	calls int
}

func (s *stubUserInfo) Fetch(ctx context.Context, accessToken string) (*googleauth.UserInfo, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}

func testContext(req *http.Request) *gin.Context {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c
}

func activeMember() *models.TeamMember {
	return &models.TeamMember{
		ID:       "1700000000000",
		Email:    "umama@10minuteschool.com",
		Name:     "Umama",
		Team:     "SMD",
		Role:     models.RoleTeamMember,
		IsActive: true,
	}
}

func TestResolveSessionCookieShortCircuits(t *testing.T) {
	member := activeMember()
	userInfo := &stubUserInfo{info: &googleauth.UserInfo{Email: "x@y"}}
	resolver := NewResolver(stubMembers{member.ID: member}, directory.NewManagerList(""), userInfo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieTeamSession, Value: member.ID})
	// A token cookie is also present but must not be consulted
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "some-token"})

	identity, err := resolver.Resolve(testContext(req))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity == nil {
		t.Fatal("expected an identity")
	}
	if identity.User.Role != models.RoleTeamMember || identity.User.ID != member.ID {
		t.Fatalf("unexpected identity: %+v", identity.User)
	}
	if identity.Token != TeamMemberToken {
		t.Fatalf("expected placeholder token, got %q", identity.Token)
	}
	if userInfo.calls != 0 {
		t.Fatal("session cookie path must not contact Google")
	}
}

func TestResolveStaleSessionFallsThrough(t *testing.T) {
	userInfo := &stubUserInfo{info: &googleauth.UserInfo{Email: "someone@example.com", Name: "Someone"}}
	resolver := NewResolver(stubMembers{}, directory.NewManagerList(""), userInfo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieTeamSession, Value: "gone"})
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "google-token"})

	identity, err := resolver.Resolve(testContext(req))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity == nil || identity.User.Email != "someone@example.com" {
		t.Fatalf("expected token identity, got %+v", identity)
	}
	if userInfo.calls != 1 {
		t.Fatalf("expected one userinfo call, got %d", userInfo.calls)
	}
}

func TestResolveInactiveMemberIsNotASession(t *testing.T) {
	member := activeMember()
	member.IsActive = false
	resolver := NewResolver(stubMembers{member.ID: member}, directory.NewManagerList(""), &stubUserInfo{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieTeamSession, Value: member.ID})

	identity, err := resolver.Resolve(testContext(req))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity != nil {
		t.Fatalf("inactive member resolved to %+v", identity.User)
	}
}

func TestResolveBearerTokenClassifiesManager(t *testing.T) {
	userInfo := &stubUserInfo{info: &googleauth.UserInfo{Email: "akram@10minuteschool.com", Name: "Akram"}}
	resolver := NewResolver(stubMembers{}, directory.NewManagerList(""), userInfo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer google-token")

	identity, err := resolver.Resolve(testContext(req))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.User.Role != models.RoleManager {
		t.Fatalf("expected manager, got %q", identity.User.Role)
	}
	if identity.Token != "google-token" {
		t.Fatalf("expected the presented token, got %q", identity.Token)
	}
}

func TestResolveUnknownEmailIsSubmitter(t *testing.T) {
	userInfo := &stubUserInfo{info: &googleauth.UserInfo{Email: "requester@example.com"}}
	resolver := NewResolver(stubMembers{}, directory.NewManagerList(""), userInfo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieAccessToken, Value: "google-token"})

	identity, err := resolver.Resolve(testContext(req))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.User.Role != models.RoleSubmitter {
		t.Fatalf("expected submitter, got %q", identity.User.Role)
	}
}

func TestResolveRejectedTokenIsAnError(t *testing.T) {
	userInfo := &stubUserInfo{err: googleauth.ErrInvalidToken}
	resolver := NewResolver(stubMembers{}, directory.NewManagerList(""), userInfo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer expired")

	_, err := resolver.Resolve(testContext(req))
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestResolveNoCredentialsIsPublic(t *testing.T) {
	userInfo := &stubUserInfo{}
	resolver := NewResolver(stubMembers{}, directory.NewManagerList(""), userInfo)

	identity, err := resolver.Resolve(testContext(httptest.NewRequest(http.MethodGet, "/", nil)))
	if err != nil {
		t.Fatalf("public path must not error, got %v", err)
	}
	if identity != nil {
		t.Fatalf("expected nil identity, got %+v", identity)
	}
	if userInfo.calls != 0 {
		t.Fatal("public path must not contact Google")
	}
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := BearerToken(testContext(req)); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}

	req.Header.Set("Authorization", "Bearer abc123")
	if got := BearerToken(testContext(req)); got != "abc123" {
		t.Fatalf("expected abc123, got %q", got)
	}

	req.Header.Set("Authorization", "Basic abc123")
	if got := BearerToken(testContext(req)); got != "" {
		t.Fatalf("non-bearer scheme must be ignored, got %q", got)
	}
}
