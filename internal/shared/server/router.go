package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"airesume-backend/internal/analyses"
	googleauth "airesume-backend/internal/auth"
	"airesume-backend/internal/resumes"
	"airesume-backend/internal/shared/config"
	"airesume-backend/internal/shared/metrics"
	"airesume-backend/internal/shared/server/middleware"
	"airesume-backend/internal/shared/server/respond"
	"airesume-backend/internal/templates"
	"airesume-backend/internal/users"
)

const aiRateLimitGroup = "AI"

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config          config.Config
	ResumesHandler  *resumes.Handler
	AnalysisHandler *analyses.Handler
	TemplateHandler *templates.Handler
	UsersHandler    *users.Handler
	GoogleAuth      *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if strings.EqualFold(deps.Config.Env, "production") {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(
		middleware.Auth(
			"/api/v1/auth/signup",
			"/api/v1/auth/login",
			"/api/v1/auth/google",
		),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT":        {Rate: 20, Burst: 40},
				aiRateLimitGroup: {Rate: 0.5, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				if strings.HasPrefix(c.Request.URL.Path, "/api/v1/ai/analyze") ||
					strings.HasPrefix(c.Request.URL.Path, "/api/v1/ai/enhance") {
					return aiRateLimitGroup
				}
				return "DEFAULT"
			},
		}),
	)

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.UsersHandler != nil {
		deps.UsersHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
	}
	if deps.AnalysisHandler != nil {
		deps.AnalysisHandler.RegisterRoutes(api)
	}
	if deps.TemplateHandler != nil {
		deps.TemplateHandler.RegisterRoutes(api)
	}

	r.NoRoute(func(c *gin.Context) {
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	})

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
