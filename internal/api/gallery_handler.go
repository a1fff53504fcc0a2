package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/country-gallery-api/internal/api/dto"
	"github.com/kingrain94/country-gallery-api/internal/domain"
)

//go:generate mockery --name GalleryService --output ../mocks
type GalleryService interface {
	ListApproved(ctx context.Context, countryID string) ([]domain.Group, error)
	Search(ctx context.Context, countryID, query string) ([]domain.Group, error)
}

type GalleryHandler struct {
	*BaseHandler
	service GalleryService
}

func NewGalleryHandler(service GalleryService) *GalleryHandler {
	return &GalleryHandler{service: service}
}

// ListGallery godoc
// @Summary List a country's gallery
// @Description Approved submissions folded into groups, newest group first
// @Tags gallery
// @Produce json
// @Param country_id query string true "Country ID"
// @Success 200 {object} dto.GalleryResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /gallery [get]
func (h *GalleryHandler) ListGallery(c *gin.Context) {
	var query dto.GalleryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	groups, err := h.service.ListApproved(h.RequestCtx(c), query.CountryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromGroups(query.CountryID, groups))
}

// SearchGallery godoc
// @Summary Search a country's gallery
// @Description Full text search over caption, author name and story
// @Tags gallery
// @Produce json
// @Param country_id query string true "Country ID"
// @Param q query string true "Search terms"
// @Success 200 {object} dto.GalleryResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router /gallery/search [get]
func (h *GalleryHandler) SearchGallery(c *gin.Context) {
	var query dto.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	groups, err := h.service.Search(h.RequestCtx(c), query.CountryID, query.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromGroups(query.CountryID, groups))
}
