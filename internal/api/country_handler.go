package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/country-gallery-api/internal/api/dto"
	"github.com/kingrain94/country-gallery-api/internal/domain"
	"github.com/kingrain94/country-gallery-api/internal/service"
	"github.com/kingrain94/country-gallery-api/internal/utils"
)

type CountryService interface {
	List(ctx context.Context) ([]domain.Country, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Country, error)
	GetByID(ctx context.Context, id string) (*domain.Country, error)
	Login(ctx context.Context, slug, code string) (*service.LoginResult, error)
}

type CountryHandler struct {
	*BaseHandler
	service CountryService
}

func NewCountryHandler(service CountryService) *CountryHandler {
	return &CountryHandler{service: service}
}

// ListCountries godoc
// @Summary List countries
// @Description Active countries ordered by name
// @Tags countries
// @Produce json
// @Success 200 {array} dto.CountryResponse
// @Failure 500 {object} dto.Error
// @Router /countries [get]
func (h *CountryHandler) ListCountries(c *gin.Context) {
	countries, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCountries(countries))
}

// GetCountry godoc
// @Summary Get a country
// @Tags countries
// @Produce json
// @Param slug path string true "Country slug"
// @Success 200 {object} dto.CountryResponse
// @Failure 404 {object} dto.Error
// @Router /countries/{slug} [get]
func (h *CountryHandler) GetCountry(c *gin.Context) {
	country, err := h.service.GetBySlug(h.RequestCtx(c), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCountry(country))
}

// Login godoc
// @Summary Log in to a country
// @Description Checks the access code and returns a session token scoped to the country. No code use is spent.
// @Tags countries
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Country and access code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Router /countries/login [post]
func (h *CountryHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	result, err := h.service.Login(h.RequestCtx(c), req.CountrySlug, req.AccessCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromLoginResult(result))
}

// Me godoc
// @Summary Current country
// @Description Country named by the session token
// @Tags countries
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CountryResponse
// @Failure 401 {object} dto.Error
// @Router /countries/me [get]
func (h *CountryHandler) Me(c *gin.Context) {
	ctx := h.RequestCtx(c)
	countryID, err := utils.GetCountryIDFromContext(ctx)
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
		return
	}

	country, err := h.service.GetByID(ctx, countryID)
	if err != nil {
		if errors.Is(err, service.ErrTenantNotFound) {
			// token outlived its country
			c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromCountry(country))
}
