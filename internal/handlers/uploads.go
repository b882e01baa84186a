package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// limitBody caps the request body so multipart parsing cannot exhaust memory or disk.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 && c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// formAttachment opens the named multipart file. It returns nil when the
// field is absent; the caller must invoke closeFn once the upload is done.
func formAttachment(c *gin.Context, field string) (attachment *domain.Attachment, closeFn func(), err error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, fmt.Errorf("open %s: %w", field, err)
	}
	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return &domain.Attachment{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        file,
	}, func() { _ = file.Close() }, nil
}
