package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/hireloop-api/internal/application"
	"github.com/hireloop/hireloop-api/internal/domain/repository"
	"github.com/hireloop/hireloop-api/pkg/response"
)

// fail maps application error kinds onto status codes. Repository errors
// stay opaque to clients; their cause is for the logs.
func fail(c *gin.Context, err error) {
	var notValid *application.OperationNotValidError
	if errors.As(err, &notValid) {
		response.Fail[any](c, http.StatusNotFound, notValid.Reason, gin.H{"id": notValid.ID})
		return
	}
	var exists *application.ResourceAlreadyExistsError
	if errors.As(err, &exists) {
		response.Fail[any](c, http.StatusConflict, exists.Resource+" already exists", gin.H{
			"id":     exists.ID,
			"fields": exists.Fields,
		})
		return
	}
	var repoErr *repository.RepositoryError
	if errors.As(err, &repoErr) {
		response.Fail[any](c, http.StatusInternalServerError, "storage failure", nil)
		return
	}
	response.Fail[any](c, http.StatusInternalServerError, "internal error", nil)
}
