package api

import (
	"errors"
	"io"
	"net/http"

	"worldtime-service/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for the form boundaries and the other fields.
const multipartOverhead = 1 << 20

// RemoveBackground relays one uploaded image to the background removal API and returns the PNG.
func (h *Handler) RemoveBackground(c *gin.Context) {
	maxBytes := h.relay.MaxBytes()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)

	header, err := c.FormFile("image_file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			AbortWithError(c, &entity.RelayError{Status: http.StatusRequestEntityTooLarge, Code: entity.RelayFileTooLarge, Message: "Image file is too large"})
			return
		}
		AbortWithError(c, &entity.RelayError{Status: http.StatusBadRequest, Code: entity.RelayMissingFile, Message: "No image file provided"})
		return
	}

	upload := &entity.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}
	if err := h.relay.ValidateUpload(upload, header.Size); err != nil {
		AbortWithError(c, err)
		return
	}

	f, err := header.Open()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	defer f.Close()

	upload.Data, err = io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	png, err := h.relay.RemoveBackground(c.Request.Context(), upload)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
