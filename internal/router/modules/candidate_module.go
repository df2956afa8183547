package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop-api/internal/application"
	"github.com/hireloop/hireloop-api/internal/container"
	handlers "github.com/hireloop/hireloop-api/internal/interface/http"
	"github.com/hireloop/hireloop-api/internal/interface/middleware"
	"github.com/hireloop/hireloop-api/pkg/helpers"
)

// CandidateModule wires the candidate profile and directory routes.
// All routes require authentication.

type CandidateModule struct {
	Handler *handlers.CandidateHandler
	JWT     *helpers.JWTManager
	Auth    *application.AuthService
}

func NewCandidateModule(h *handlers.CandidateHandler, jwt *helpers.JWTManager, auth *application.AuthService) *CandidateModule {
	return &CandidateModule{Handler: h, JWT: jwt, Auth: auth}
}

func (m *CandidateModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Auth))
	auth.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil),
	)
	{
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
		auth.POST("/profile/resume", m.Handler.UploadResume)
		auth.GET("/candidates", m.Handler.List)
		// Search candidates via Elasticsearch
		auth.GET("/candidates/search", m.Handler.Search)
	}
}
