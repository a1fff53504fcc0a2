package api

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/kingrain94/country-gallery-api/internal/api/dto"
	"github.com/kingrain94/country-gallery-api/internal/service"
)

const (
	imagesField       = "images"
	legacyImageField  = "image"
	multipartMemLimit = 32 << 20
)

type UploadService interface {
	Submit(ctx context.Context, req service.SubmitRequest) (*service.SubmitResult, error)
}

type UploadHandler struct {
	*BaseHandler
	service UploadService
}

func NewUploadHandler(service UploadService) *UploadHandler {
	return &UploadHandler{service: service}
}

// Upload godoc
// @Summary Upload a batch of photos
// @Description Stores every file under one batch and spends one use of the access code
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param country_slug formData string true "Country slug"
// @Param access_code formData string true "Country access code"
// @Param caption formData string false "Caption"
// @Param author_name formData string false "Author name"
// @Param story formData string false "Story"
// @Param images formData file true "Images (jpeg, png or webp), repeat for several"
// @Success 201 {object} dto.UploadResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Router /upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	if err := c.Request.ParseMultipartForm(multipartMemLimit); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "invalid multipart form"})
		return
	}
	defer c.Request.MultipartForm.RemoveAll()

	var form dto.UploadForm
	if err := c.ShouldBindWith(&form, binding.FormMultipart); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}
	form.FillLegacyFields(c.Request.MultipartForm.Value)

	headers := c.Request.MultipartForm.File[imagesField]
	if len(headers) == 0 {
		headers = c.Request.MultipartForm.File[legacyImageField]
	}

	result, err := h.service.Submit(h.RequestCtx(c), service.SubmitRequest{
		CountrySlug: form.CountrySlug,
		AccessCode:  form.AccessCode,
		Caption:     form.Caption,
		AuthorName:  form.AuthorName,
		Story:       form.Story,
		Files:       uploadFiles(headers),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromSubmitResult(result))
}

func uploadFiles(headers []*multipart.FileHeader) []service.UploadFile {
	files := make([]service.UploadFile, len(headers))
	for i, fh := range headers {
		files[i] = service.UploadFile{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Size:        fh.Size,
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		}
	}
	return files
}
