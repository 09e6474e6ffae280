package handler

import (
	"errors"
	"io"
	"net/http"

	"screamy/internal/services"
	"screamy/internal/transport/httpdto"
	screamy_errors "screamy/pkg/errors"
	"screamy/pkg/logger"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	service *services.UploadService
	logger  *logger.Logger
}

func NewUploadHandler(service *services.UploadService, l *logger.Logger) *UploadHandler {
	return &UploadHandler{service: service, logger: l}
}

// UploadImage streams the multipart body part by part. The first file part
// is the profile image; later file parts and plain form fields are skipped.
// A disallowed MIME type is rejected before any byte reaches disk, and
// success is reported only after the profile update lands.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	handle, ok := services.HandleFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, httpdto.ErrorResponse{Error: "unauthorized"})
		return
	}

	reader, err := c.Request.MultipartReader()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "expected a multipart body"})
		return
	}

	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "malformed multipart body"})
			return
		}
		if part.FileName() == "" {
			continue
		}

		contentType := part.Header.Get("Content-Type")
		_, err = h.service.UploadProfileImage(c.Request.Context(), handle, part.FileName(), contentType, part)
		part.Close()
		if err != nil {
			if errors.Is(err, screamy_errors.ErrWrongFileType) {
				c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "Wrong file type submitted"})
				return
			}
			if h.logger != nil {
				h.logger.ErrorfCtx(c.Request.Context(), "image upload failed: %s", err)
			}
			c.JSON(http.StatusInternalServerError, httpdto.ErrorResponse{Error: "something went wrong"})
			return
		}

		c.JSON(http.StatusOK, httpdto.MessageResponse{Message: "image uploaded successfully"})
		return
	}

	c.JSON(http.StatusBadRequest, httpdto.ErrorResponse{Error: "no file submitted"})
}
