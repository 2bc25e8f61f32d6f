package handler

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	uploadapp "github.com/storefront/backend/internal/application/upload"
	"github.com/storefront/backend/internal/interfaces/http/dto"
)

// UploadHandler handles image uploads scoped by store
type UploadHandler struct {
	BaseHandler
	uploadService *uploadapp.Service
}

// NewUploadHandler creates a new UploadHandler
func NewUploadHandler(uploadService *uploadapp.Service) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// RegisterRoutes registers the upload endpoint
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload/:storeId", h.Upload)
}

// Upload stores one or more image files for a store. Files are accepted
// from any multipart field name.
func (h *UploadHandler) Upload(c *gin.Context) {
	storeID, ok := parseStoreID(c)
	if !ok {
		h.NotFound(c, "Store not found")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Expected multipart form data")
		return
	}

	// An empty file list is not rejected here: the service checks store
	// existence first, so an absent store stays a 404 even with no files.
	var headers []*multipart.FileHeader
	for _, fieldFiles := range form.File {
		headers = append(headers, fieldFiles...)
	}

	files := make([]uploadapp.File, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))
	defer func() {
		for _, f := range opened {
			f.Close()
		}
	}()

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			h.Error(c, http.StatusBadRequest, dto.ErrCodeInvalidInput, "Unreadable file in request")
			return
		}
		opened = append(opened, f)
		files = append(files, uploadapp.File{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Body:        f,
		})
	}

	result, err := h.uploadService.Upload(c.Request.Context(), storeID, files)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
