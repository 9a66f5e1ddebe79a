// internal/api/routes.go
package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/hades874/10MS-Req-Dash/internal/api/handlers"
	"github.com/hades874/10MS-Req-Dash/internal/api/middleware"
	"github.com/hades874/10MS-Req-Dash/internal/auth"
	"github.com/hades874/10MS-Req-Dash/internal/ratelimit"
)

// SetupRouter wires the HTTP surface. rl may be nil, in which case rate
// limiting is disabled (tests run without Redis).
func SetupRouter(h *handlers.Handler, resolver *auth.Resolver, rl *ratelimit.RateLimiter) *gin.Engine {
	router := gin.Default()

	//Swagger Route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.Home)

	// Auth routes
	authGroup := router.Group("/api/auth")
	if rl != nil {
		authGroup.Use(middleware.AuthRateLimit(rl))
	}
	{
		authGroup.GET("/callback", h.OAuthCallback)
		authGroup.POST("/team-login", h.TeamLogin)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", h.Me)
	}

	// Requisition feed is public read; status writes require an
	// authenticated team member or manager.
	reqGroup := router.Group("/api")
	if rl != nil {
		reqGroup.Use(middleware.FeedRateLimit(rl))
	}
	{
		reqGroup.GET("/requisitions", h.ListRequisitions)
		reqGroup.PUT("/requisitions", RequireIdentity(resolver), RequireUpdater(), h.UpdateStatus)
		reqGroup.GET("/stats", h.Stats)
		reqGroup.GET("/sheet/health", h.SheetHealth)
	}

	// Directory administration is manager-only; the member list itself is
	// visible to any authenticated caller.
	members := router.Group("/api/team-members")
	members.Use(RequireIdentity(resolver))
	{
		members.GET("", h.ListTeamMembers)
		members.POST("", RequireManager(), h.CreateTeamMember)
		members.PUT("/:id", RequireManager(), h.UpdateTeamMember)
		members.DELETE("/:id", RequireManager(), h.DeleteTeamMember)
	}

	return router
}
