package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hireloop/hireloop-api/internal/application"
	"github.com/hireloop/hireloop-api/internal/domain/repository"
	"github.com/hireloop/hireloop-api/pkg/response"
	"github.com/hireloop/hireloop-api/pkg/validation"
)

type CandidateHandler struct {
	Svc    *application.CandidateService
	Logger *logrus.Logger
}

func NewCandidateHandler(svc *application.CandidateService, logger *logrus.Logger) *CandidateHandler {
	return &CandidateHandler{Svc: svc, Logger: logger}
}

type updateCandidateRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	CityID      *string `json:"city_id"`
	Headline    *string `json:"headline"`
	LinkedinURL *string `json:"linkedin_url" binding:"omitempty,url"`
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return page, size
}

func (h *CandidateHandler) GetProfile(c *gin.Context) {
	uid := c.GetString("userID")
	cand, err := h.Svc.Get(c.Request.Context(), uid)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, candidateView(cand), "profile", nil)
}

func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	uid := c.GetString("userID")
	var req updateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cand, err := h.Svc.UpdateProfile(c.Request.Context(), uid, application.UpdateCandidateInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CityID:      req.CityID,
		Headline:    req.Headline,
		LinkedinURL: req.LinkedinURL,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, candidateView(cand), "profile updated", nil)
}

func (h *CandidateHandler) List(c *gin.Context) {
	page, size := pageParams(c)
	f := repository.CandidateFilter{Page: page, Size: size}
	if name := c.Query("name"); name != "" {
		f.Name = &name
	}
	if cityID := c.Query("city_id"); cityID != "" {
		f.CityID = &cityID
	}
	items, total, err := h.Svc.List(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, http.StatusOK, candidateViews(items), "candidates", gin.H{
		"page": page, "page_size": size, "total": total,
	})
}

// UploadResume accepts a multipart CV file and stores it in GCS.
func (h *CandidateHandler) UploadResume(c *gin.Context) {
	uid := c.GetString("userID")
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		response.Fail[any](c, http.StatusBadRequest, "missing resume file", nil)
		return
	}
	defer func() { _ = file.Close() }()

	url, err := h.Svc.UploadResume(c.Request.Context(), uid, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK[any](c, http.StatusOK, gin.H{"resume_url": url}, "resume uploaded", nil)
}

func (h *CandidateHandler) Search(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	hits, err := h.Svc.Search(c.Request.Context(), q, size)
	if err != nil {
		response.Fail[any](c, http.StatusBadGateway, "search unavailable", nil)
		return
	}
	response.OK(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}
