package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/country-gallery-api/internal/api/dto"
	"github.com/kingrain94/country-gallery-api/internal/service"
)

type DeletionService interface {
	Delete(ctx context.Context, req service.DeleteRequest) (*service.DeleteResult, error)
}

type SubmissionHandler struct {
	*BaseHandler
	service DeletionService
}

func NewSubmissionHandler(service DeletionService) *SubmissionHandler {
	return &SubmissionHandler{service: service}
}

// DeleteSubmissions godoc
// @Summary Delete a gallery group or submission
// @Description Removes every image of a group, or a single submission, given the admin delete code. group_key wins when both targets are set.
// @Tags submissions
// @Accept json
// @Produce json
// @Param body body dto.DeleteSubmissionsRequest true "Admin code and target"
// @Success 200 {object} dto.DeleteSubmissionsResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /submissions [delete]
func (h *SubmissionHandler) DeleteSubmissions(c *gin.Context) {
	var req dto.DeleteSubmissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	result, err := h.service.Delete(h.RequestCtx(c), service.DeleteRequest{
		AdminCode:    req.AdminDeleteCode,
		GroupKey:     req.GroupKey,
		SubmissionID: req.SubmissionID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromDeleteResult(result))
}
