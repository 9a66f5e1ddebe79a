package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hades874/10MS-Req-Dash/internal/auth"
	"github.com/hades874/10MS-Req-Dash/internal/directory"
)

const sessionMaxAge = int((24 * time.Hour) / time.Second)

// TeamLogin godoc
// @Summary Team member login
// @Description Authenticate against the directory and set a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{message=string,user=models.User}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /api/auth/team-login [post]
func (h *Handler) TeamLogin(c *gin.Context) {
	var credentials struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	member, err := h.store.Authenticate(credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, directory.ErrInvalidCredentials) {
			log.Printf("Team login failed for %s", credentials.Email)
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password. Please check your credentials and try again.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed. Please try again later."})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieTeamSession, member.ID, sessionMaxAge, "/", "", h.secureCookies(), true)

	log.Printf("Team login successful for %s", member.Email)
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user": gin.H{
			"id":    member.ID,
			"email": member.Email,
			"name":  member.Name,
			"role":  member.Role,
			"team":  member.Team,
		},
	})
}

// OAuthCallback godoc
// @Summary Google OAuth callback
// @Description Exchange the authorization code, set token cookies, redirect home
// @Tags auth
// @Param code query string true "Authorization code"
// @Success 307
// @Router /api/auth/callback [get]
func (h *Handler) OAuthCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusTemporaryRedirect, "/login?error=no_code")
		return
	}

	token, err := h.oauth.Exchange(c.Request.Context(), code)
	if err != nil {
		log.Printf("OAuth code exchange failed: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, "/login?error=auth_failed")
		return
	}

	info, err := h.userInfo.Fetch(c.Request.Context(), token.AccessToken)
	if err != nil {
		log.Printf("OAuth userinfo lookup failed: %v", err)
		c.Redirect(http.StatusTemporaryRedirect, "/login?error=auth_failed")
		return
	}

	maxAge := sessionMaxAge
	if !token.Expiry.IsZero() {
		maxAge = int(time.Until(token.Expiry) / time.Second)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieAccessToken, token.AccessToken, maxAge, "/", "", h.secureCookies(), true)
	c.SetCookie(auth.CookieUserEmail, info.Email, maxAge, "/", "", h.secureCookies(), true)

	c.Redirect(http.StatusTemporaryRedirect, "/")
}

// Logout godoc
// @Summary Log out
// @Description Clear every auth cookie
// @Tags auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /api/auth/logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieAccessToken, "", -1, "/", "", h.secureCookies(), true)
	c.SetCookie(auth.CookieUserEmail, "", -1, "/", "", h.secureCookies(), true)
	c.SetCookie(auth.CookieTeamSession, "", -1, "/", "", h.secureCookies(), true)

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me godoc
// @Summary Current identity
// @Description Resolve the caller from cookies or bearer token
// @Tags auth
// @Produce json
// @Success 200 {object} object{user=models.User,accessToken=string}
// @Failure 401 {object} object{error=string}
// @Router /api/auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	identity, err := h.resolver.Resolve(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":        identity.User,
		"accessToken": identity.Token,
	})
}
