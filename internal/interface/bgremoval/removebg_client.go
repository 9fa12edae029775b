package bgremoval

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/domain/repository"
	"worldtime-service/pkg/logger"
)

// maxResponseBytes caps how much of an upstream body is read.
const maxResponseBytes = 50 << 20

// RemoveBgClient forwards images to a remove.bg compatible API
type RemoveBgClient struct {
	logger   logger.Logger
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewRemoveBgClient creates a new background removal client
func NewRemoveBgClient(endpoint, apiKey string, timeout time.Duration, logger logger.Logger) repository.BackgroundRemover {
	return &RemoveBgClient{
		logger:   logger,
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

// RemoveBackground uploads the image and returns the PNG result
func (c *RemoveBgClient) RemoveBackground(ctx context.Context, image *entity.ImageUpload) ([]byte, error) {
	if c.apiKey == "" {
		return nil, &entity.RelayError{
			Status:  http.StatusInternalServerError,
			Code:    entity.RelayNotConfigured,
			Message: "Background removal is not configured",
		}
	}

	body, contentType, err := encodeForm(image)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "image/png")

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Background removal request failed", "error", err)
		return nil, &entity.RelayError{
			Status:  http.StatusInternalServerError,
			Code:    entity.RelayProcessingFailed,
			Message: "Failed to remove background",
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warn("Background removal upstream error",
			"status", resp.StatusCode,
			"body", string(detail))
		return nil, entity.NewRelayErrorFromUpstream(resp.StatusCode)
	}

	png, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return png, nil
}

func encodeForm(image *entity.ImageUpload) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image_file"; filename=%q`, image.Filename))
	header.Set("Content-Type", image.ContentType)
	part, err := w.CreatePart(header)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(image.Data); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("size", "auto"); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
