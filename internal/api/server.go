package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kingrain94/country-gallery-api/internal/api/dto"
	"github.com/kingrain94/country-gallery-api/internal/config"
	"github.com/kingrain94/country-gallery-api/internal/metrics"
	"github.com/kingrain94/country-gallery-api/internal/middleware"
	"github.com/kingrain94/country-gallery-api/pkg/logger"
)

const (
	// multipart framing on top of the file payloads
	uploadOverhead = 1 << 20
	jsonBodyLimit  = 64 << 10
)

type Server struct {
	country    *CountryHandler
	upload     *UploadHandler
	gallery    *GalleryHandler
	submission *SubmissionHandler
	websocket  *WebSocketHandler
	auth       *middleware.AuthMiddleware
	rateLimit  *middleware.RateLimitMiddleware
	validation *middleware.ValidationMiddleware
	config     *config.Config
}

func NewServer(
	countryService CountryService,
	uploadService UploadService,
	galleryService GalleryService,
	deletionService DeletionService,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	cfg *config.Config,
	logger *logger.Logger,
	subscriber EventSubscriber,
) *Server {
	return &Server{
		country:    NewCountryHandler(countryService),
		upload:     NewUploadHandler(uploadService),
		gallery:    NewGalleryHandler(galleryService),
		submission: NewSubmissionHandler(deletionService),
		websocket:  NewWebSocketHandler(logger, subscriber),
		auth:       auth,
		rateLimit:  rateLimit,
		validation: validation,
		config:     cfg,
	}
}

// SetupOps installs request metrics and mounts the unversioned health and
// metrics endpoints. Call it before SetupRoutes so API routes are measured.
func (s *Server) SetupOps(router *gin.Engine) {
	router.Use(metrics.Middleware())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
	})
	router.GET("/metrics", gin.WrapH(metrics.Handler()))
}

func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	maxUpload := int64(s.config.Upload.MaxFiles)*s.config.Upload.MaxFileSize + uploadOverhead

	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateContentType("application/json", "multipart/form-data"))
	api.Use(s.rateLimit.GlobalRateLimit())

	{
		countries := api.Group("/countries")
		{
			countries.GET("", s.country.ListCountries)
			countries.GET("/me", s.auth.JWTAuth(), s.country.Me)
			countries.GET("/:slug", s.country.GetCountry)
			countries.POST("/login",
				s.validation.ValidateRequestSize(jsonBodyLimit),
				s.rateLimit.AttemptRateLimit("login"),
				s.country.Login,
			)
		}

		api.POST("/upload",
			s.validation.ValidateRequestSize(maxUpload),
			s.rateLimit.AttemptRateLimit("upload"),
			s.upload.Upload,
		)

		gallery := api.Group("/gallery")
		{
			gallery.GET("", s.gallery.ListGallery)
			gallery.GET("/search", s.gallery.SearchGallery)
			gallery.GET("/stream", s.auth.JWTAuth(), s.websocket.HandleWebSocket)
		}

		api.DELETE("/submissions",
			s.validation.ValidateRequestSize(jsonBodyLimit),
			s.rateLimit.AttemptRateLimit("delete"),
			s.submission.DeleteSubmissions,
		)
	}
}

// StartWebSocketHub starts the hub that fans gallery events out to viewers
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
