package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/country-gallery-api/internal/api/dto"
	"github.com/kingrain94/country-gallery-api/internal/service"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrMissingFields, http.StatusBadRequest},
	{service.ErrInvalidFileType, http.StatusBadRequest},
	{service.ErrFileTooLarge, http.StatusBadRequest},
	{service.ErrTooManyFiles, http.StatusBadRequest},
	{service.ErrTenantNotFound, http.StatusNotFound},
	{service.ErrSubmissionNotFound, http.StatusNotFound},
	{service.ErrInvalidCode, http.StatusUnauthorized},
	{service.ErrUnauthorized, http.StatusUnauthorized},
	{service.ErrStorageWrite, http.StatusBadGateway},
	{service.ErrRecordWrite, http.StatusInternalServerError},
	{service.ErrStoreRead, http.StatusInternalServerError},
}

// classify maps a service error onto an HTTP status and the sentinel it
// wraps. Unknown errors are 500 with no sentinel.
func classify(err error) (int, error) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status, e.err
		}
	}
	return http.StatusInternalServerError, nil
}

// respondError writes err as a dto.Error. Server-side failures only expose the
// sentinel message so driver and SDK details stay in the logs.
func respondError(c *gin.Context, err error) {
	status, sentinel := classify(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = "internal server error"
		if sentinel != nil {
			message = sentinel.Error()
		}
	}
	c.JSON(status, dto.Error{Error: message})
}
