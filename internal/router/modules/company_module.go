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

// CompanyModule wires company and company-location routes.
// Reads are public; writes require authentication.

type CompanyModule struct {
	Handler *handlers.CompanyHandler
	JWT     *helpers.JWTManager
	Auth    *application.AuthService
}

func NewCompanyModule(h *handlers.CompanyHandler, jwt *helpers.JWTManager, auth *application.AuthService) *CompanyModule {
	return &CompanyModule{Handler: h, JWT: jwt, Auth: auth}
}

func (m *CompanyModule) Register(rg *gin.RouterGroup) {
	readLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/companies", readLimiter, m.Handler.List)
	rg.GET("/companies/:id", readLimiter, m.Handler.Get)
	rg.GET("/companies/:id/locations", readLimiter, m.Handler.ListLocations)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Auth))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/companies", m.Handler.Create)
		auth.POST("/companies/:id/locations", m.Handler.CreateLocation)
		auth.PUT("/companies/:id/locations/:locationId", m.Handler.UpdateLocation)
	}
}
