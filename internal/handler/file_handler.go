package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"webpconv/internal/service"
)

// CreateUploadRequest is the body of POST /file.
type CreateUploadRequest struct {
	Filename string `json:"filename" binding:"required" example:"summer trip.jpg"`
	FileType string `json:"ftype" binding:"required" example:"image/jpeg"`
}

// DownloadURLResponse is the body returned by GET /file/{objectKey}.
type DownloadURLResponse struct {
	SignedURL string `json:"signedUrl" example:"https://uploads.s3.amazonaws.com/summer%20trip.jpg.webp?X-Amz-Signature=..."`
}

// FileHandler serves presigned upload and download URLs.
type FileHandler struct {
	fileService service.FileService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(fileService service.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// CreateUpload handles POST /file
// @Summary Presign a browser upload
// @Description Returns a presigned POST form for uploading an image (max 5MB, Content-Type image/*) straight to the bucket
// @Tags files
// @Accept json
// @Produce json
// @Param request body CreateUploadRequest true "File name and MIME type"
// @Success 200 {object} port.PresignedPost "Form URL and fields"
// @Failure 400 {object} APIResponse "Missing fields or non-image type"
// @Failure 502 {object} APIResponse "Storage error"
// @Router /file [post]
func (h *FileHandler) CreateUpload(c *gin.Context) {
	var req CreateUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	post, err := h.fileService.CreateUpload(c.Request.Context(), req.Filename, req.FileType)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetDownloadURL handles GET /file/{objectKey}
// @Summary Presign a download
// @Description Returns a presigned GET for the WebP derivative of the object when one exists, otherwise for the object itself
// @Tags files
// @Produce json
// @Param objectKey path string true "Object key as uploaded"
// @Success 200 {object} DownloadURLResponse
// @Failure 400 {object} APIResponse "Missing object key"
// @Failure 502 {object} APIResponse "Storage error"
// @Router /file/{objectKey} [get]
func (h *FileHandler) GetDownloadURL(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("objectKey"), "/")
	if key == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "object key is required")
		return
	}

	signed, err := h.fileService.GetDownloadURL(c.Request.Context(), key)
	if err != nil {
		HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, DownloadURLResponse{SignedURL: signed})
}
