// Package avatar forwards uploaded profile images to an external image
// host. The core never stores image bytes; only the host's public URL
// and asset id are kept on the user record.
package avatar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/linkvault/linkvault/internal/utils"
)

// Asset identifies a stored image at the host.
type Asset struct {
	URL string `json:"url"`
	ID  string `json:"id"`
}

// Uploader stores an image and returns its public asset.
type Uploader interface {
	Upload(ctx context.Context, filename string, data io.Reader) (*Asset, error)
}

// HostClient uploads avatars to an HTTP image host endpoint that accepts
// multipart posts and answers with a JSON asset descriptor.
type HostClient struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHostClient(endpoint, apiKey string, timeout time.Duration) *HostClient {
	return &HostClient{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

func (c *HostClient) Upload(ctx context.Context, filename string, data io.Reader) (*Asset, error) {
	var body bytes.Buffer
	mp := multipart.NewWriter(&body)

	part, err := mp.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, data); err != nil {
		return nil, fmt.Errorf("copying image data: %w", err)
	}
	if err := mp.Close(); err != nil {
		return nil, fmt.Errorf("finalizing upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", mp.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("uploading avatar: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("image host returned status %d", resp.StatusCode)
	}

	var asset Asset
	if err := json.NewDecoder(resp.Body).Decode(&asset); err != nil {
		return nil, fmt.Errorf("decoding image host response: %w", err)
	}
	if asset.URL == "" {
		return nil, fmt.Errorf("image host response missing url")
	}
	return &asset, nil
}
