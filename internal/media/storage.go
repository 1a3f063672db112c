package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// UploadResult holds the storage-assigned reference for an uploaded image.
type UploadResult struct {
	URL      string `json:"imageUrl"`
	PublicID string `json:"publicId"`
}

// Storage forwards image bytes to an external object store.
type Storage interface {
	Upload(ctx context.Context, filename string, data []byte, mime string) (*UploadResult, error)
}

// Client uploads to an object-storage HTTP endpoint under a fixed folder.
// No retries and no caching: failures propagate to the caller.
type Client struct {
	http   *resty.Client
	folder string
}

func NewClient(baseURL, folder string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout)
	return &Client{http: cli, folder: folder}
}

type uploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

func (c *Client) Upload(ctx context.Context, filename string, data []byte, mime string) (*UploadResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		SetFormData(map[string]string{
			"folder":       c.folder,
			"content_type": mime,
		}).
		Post("/upload")
	if err != nil {
		return nil, fmt.Errorf("storage upload request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("storage upload failed: %s", resp.Status())
	}

	var body uploadResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("storage upload response: %w", err)
	}
	if body.URL == "" || body.PublicID == "" {
		return nil, fmt.Errorf("storage upload response missing url or public_id")
	}

	return &UploadResult{URL: body.URL, PublicID: body.PublicID}, nil
}
