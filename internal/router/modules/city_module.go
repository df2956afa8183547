package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop-api/internal/container"
	handlers "github.com/hireloop/hireloop-api/internal/interface/http"
	"github.com/hireloop/hireloop-api/internal/interface/middleware"
)

// CityModule exposes the read-only city directory.

type CityModule struct {
	Handler *handlers.CityHandler
}

func NewCityModule(h *handlers.CityHandler) *CityModule {
	return &CityModule{Handler: h}
}

func (m *CityModule) Register(rg *gin.RouterGroup) {
	limiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())
	rg.GET("/cities", limiter, m.Handler.List)
}
