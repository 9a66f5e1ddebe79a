// Package auth resolves a request's identity from its cookies and headers and
// classifies it as submitter, team_member, or manager.
package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hades874/10MS-Req-Dash/internal/directory"
	"github.com/hades874/10MS-Req-Dash/internal/googleauth"
	"github.com/hades874/10MS-Req-Dash/internal/models"
)

// Cookie names shared with the dashboard frontend.
const (
	CookieTeamSession = "team_member_session"
	CookieAccessToken = "access_token"
	CookieUserEmail   = "user_email"
)

// TeamMemberToken is the placeholder token reported for cookie-session
// callers, who never hold a Google token.
const TeamMemberToken = "team-member-token"

// ErrInvalidToken mirrors googleauth.ErrInvalidToken for callers that only
// import this package.
var ErrInvalidToken = googleauth.ErrInvalidToken

// MemberSource looks up directory entries by id.
type MemberSource interface {
	Get(id string) (*models.TeamMember, error)
}

// UserInfoFetcher resolves a Google access token to the account behind it.
type UserInfoFetcher interface {
	Fetch(ctx context.Context, accessToken string) (*googleauth.UserInfo, error)
}

// Identity is a resolved caller: who they are and the token they presented.
type Identity struct {
	User  models.User
	Token string
}

type Resolver struct {
	members  MemberSource
	managers *directory.ManagerList
	userInfo UserInfoFetcher
}

func NewResolver(members MemberSource, managers *directory.ManagerList, userInfo UserInfoFetcher) *Resolver {
	return &Resolver{members: members, managers: managers, userInfo: userInfo}
}

// Resolve determines the caller's identity. Precedence: team session cookie,
// then OAuth token (bearer header or cookie), then public. A matching session
// cookie short-circuits without contacting Google. Public callers get
// (nil, nil); only a rejected Google token is an error.
func (r *Resolver) Resolve(c *gin.Context) (*Identity, error) {
	if sessionID, err := c.Cookie(CookieTeamSession); err == nil && sessionID != "" {
		member, err := r.members.Get(sessionID)
		if err == nil && member.IsActive {
			log.Printf("Auth: team session cookie matched member %s", member.Email)
			return &Identity{
				User: models.User{
					ID:    member.ID,
					Email: member.Email,
					Name:  member.Name,
					Role:  member.Role,
					Team:  member.Team,
				},
				Token: TeamMemberToken,
			}, nil
		}
		if err != nil && !errors.Is(err, directory.ErrNotFound) {
			return nil, err
		}
		// Stale session cookie; fall through to the token path
		log.Printf("Auth: team session cookie did not match any active member")
	}

	token := BearerToken(c)
	if token == "" {
		if cookieToken, err := c.Cookie(CookieAccessToken); err == nil {
			token = cookieToken
		}
	}
	if token == "" {
		log.Printf("Auth: no credentials, treating request as public")
		return nil, nil
	}

	info, err := r.userInfo.Fetch(c.Request.Context(), token)
	if err != nil {
		log.Printf("Auth: Google token rejected: %v", err)
		return nil, err
	}

	role := models.RoleSubmitter
	if r.managers.IsManager(info.Email) {
		role = models.RoleManager
	}
	log.Printf("Auth: Google token resolved to %s (%s)", info.Email, role)

	return &Identity{
		User: models.User{
			Email:   info.Email,
			Name:    info.Name,
			Picture: info.Picture,
			Role:    role,
		},
		Token: token,
	}, nil
}

// BearerToken extracts the token from an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// CanUpdateStatus reports whether a role may write requisition statuses.
func CanUpdateStatus(role string) bool {
	return role == models.RoleTeamMember || role == models.RoleManager
}
