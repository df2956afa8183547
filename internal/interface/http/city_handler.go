package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop-api/internal/domain/repository"
	"github.com/hireloop/hireloop-api/pkg/response"
)

type CityHandler struct {
	Cities repository.CityRepository
}

func NewCityHandler(cities repository.CityRepository) *CityHandler {
	return &CityHandler{Cities: cities}
}

func (h *CityHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	f := repository.CityFilter{Page: page, Size: size}
	if name := c.Query("name"); name != "" {
		f.Name = &name
	}
	items, err := h.Cities.FindMany(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	views := make([]gin.H, 0, len(items))
	for _, it := range items {
		views = append(views, cityView(it))
	}
	response.OK(c, http.StatusOK, views, "cities", gin.H{"page": page, "page_size": size})
}
