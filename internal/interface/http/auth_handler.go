package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hireloop/hireloop-api/internal/application"
	"github.com/hireloop/hireloop-api/pkg/helpers"
	"github.com/hireloop/hireloop-api/pkg/response"
	"github.com/hireloop/hireloop-api/pkg/validation"
)

type AuthHandler struct {
	Auth       *application.AuthService
	Candidates *application.CandidateService
	Logger     *logrus.Logger
	Cookies    *helpers.Manager
}

func NewAuthHandler(auth *application.AuthService, candidates *application.CandidateService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Auth: auth, Candidates: candidates, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required,pwd"`
	FirstName   string  `json:"first_name" binding:"required"`
	LastName    string  `json:"last_name" binding:"required"`
	CityID      *string `json:"city_id"`
	Headline    *string `json:"headline"`
	LinkedinURL *string `json:"linkedin_url" binding:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cand, err := h.Candidates.Register(c.Request.Context(), application.RegisterCandidateInput{
		Email:       req.Email,
		Password:    req.Password,
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
	response.OK(c, http.StatusCreated, candidateView(cand), "candidate registered", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	cand, pair, err := h.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Fail[any](c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		fail(c, err)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK(c, http.StatusOK, candidateView(cand), "login successful", gin.H{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

func (h *AuthHandler) Refresh(c *gin.Context) {
	refresh, err := c.Cookie("refresh_token")
	if err != nil || refresh == "" {
		response.Fail[any](c, http.StatusUnauthorized, "missing refresh token", nil)
		return
	}
	pair, _, err := h.Auth.Refresh(c.Request.Context(), refresh)
	if err != nil {
		response.Fail[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	h.Cookies.SetPair(c, pair.AccessToken, pair.AccessTokenExpiry, pair.RefreshToken, pair.RefreshTokenExpiry)
	response.OK[any](c, http.StatusOK, gin.H{"refreshed": true}, "token refreshed", gin.H{
		"access_expires_at":  pair.AccessTokenExpiry,
		"refresh_expires_at": pair.RefreshTokenExpiry,
	})
}

// Logout blacklists the current access token and clears the cookie pair.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		if err := h.Auth.Logout(c.Request.Context(), token); err != nil {
			fail(c, err)
			return
		}
	}
	h.Cookies.Clear(c)
	response.OK[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}
