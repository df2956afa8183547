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

// AuthModule wires registration and session routes.
// Public: POST /api/auth/register, POST /api/auth/login, POST /api/auth/refresh
// Protected: POST /api/auth/logout

type AuthModule struct {
	Handler *handlers.AuthHandler
	JWT     *helpers.JWTManager
	Auth    *application.AuthService
}

func NewAuthModule(h *handlers.AuthHandler, jwt *helpers.JWTManager, auth *application.AuthService) *AuthModule {
	return &AuthModule{Handler: h, JWT: jwt, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public with rate limiting
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP(), nil)   // 10 req/min per IP
	refreshLimiter := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil) // 60 req/min per IP

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/refresh", refreshLimiter, m.Handler.Refresh)

	// Protected
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT, m.Auth))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/auth/logout", m.Handler.Logout)
	}
}
