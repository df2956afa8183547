package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hireloop/hireloop-api/internal/application"
	"github.com/hireloop/hireloop-api/internal/domain/repository"
	"github.com/hireloop/hireloop-api/pkg/response"
	"github.com/hireloop/hireloop-api/pkg/validation"
)

type CompanyHandler struct {
	Svc    *application.CompanyService
	Logger *logrus.Logger
}

func NewCompanyHandler(svc *application.CompanyService, logger *logrus.Logger) *CompanyHandler {
	return &CompanyHandler{Svc: svc, Logger: logger}
}

type createCompanyRequest struct {
	Name        string  `json:"name" binding:"required"`
	Website     *string `json:"website" binding:"omitempty,url"`
	Description *string `json:"description"`
}

type createLocationRequest struct {
	Name      string   `json:"name" binding:"required"`
	IsRemote  bool     `json:"is_remote"`
	Address   *string  `json:"address"`
	CityID    *string  `json:"city_id"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
}

type updateLocationRequest struct {
	Name      *string  `json:"name"`
	Address   *string  `json:"address"`
	CityID    *string  `json:"city_id"`
	Latitude  *float64 `json:"latitude" binding:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" binding:"omitempty,longitude"`
}

func (h *CompanyHandler) Create(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	co, err := h.Svc.CreateCompany(c.Request.Context(), application.CreateCompanyInput{
		Name:        req.Name,
		Website:     req.Website,
		Description: req.Description,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, companyView(co), "company created", nil)
}

func (h *CompanyHandler) Get(c *gin.Context) {
	co, err := h.Svc.GetCompany(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, companyView(co), "company", nil)
}

func (h *CompanyHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	f := repository.CompanyFilter{Page: page, Size: size}
	if name := c.Query("name"); name != "" {
		f.Name = &name
	}
	items, total, err := h.Svc.ListCompanies(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, companyViews(items), "companies", gin.H{
		"page": page, "page_size": size, "total": total,
	})
}

func (h *CompanyHandler) CreateLocation(c *gin.Context) {
	var req createLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	loc, err := h.Svc.CreateLocation(c.Request.Context(), application.CreateLocationInput{
		CompanyID: c.Param("id"),
		Name:      req.Name,
		IsRemote:  req.IsRemote,
		Address:   req.Address,
		CityID:    req.CityID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusCreated, locationView(loc), "location created", nil)
}

func (h *CompanyHandler) UpdateLocation(c *gin.Context) {
	var req updateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	loc, err := h.Svc.UpdateLocation(c.Request.Context(), c.Param("locationId"), application.UpdateLocationInput{
		Name:      req.Name,
		Address:   req.Address,
		CityID:    req.CityID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, locationView(loc), "location updated", nil)
}

func (h *CompanyHandler) ListLocations(c *gin.Context) {
	page, size := pageParams(c)
	companyID := c.Param("id")
	f := repository.CompanyLocationFilter{CompanyID: &companyID, Page: page, Size: size}
	items, total, err := h.Svc.ListLocations(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, locationViews(items), "locations", gin.H{
		"page": page, "page_size": size, "total": total,
	})
}
