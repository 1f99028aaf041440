package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"artifact-catalog-service/internal/domain"
)

// Client reads artifact bytes from the external object-store gateway that
// owns the asset paths recorded in the catalog.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch retrieves the bytes stored at assetPath.
func (c *Client) Fetch(ctx context.Context, assetPath string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, strings.TrimLeft(assetPath, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create blob store request: %w", err)
	}

	log.WithFields(log.Fields{
		"asset_path": assetPath,
		"url":        url,
	}).Debug("fetching asset from blob store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBlobStoreUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("read asset body: %w", err)
		}
		return data, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrAssetNotFound
	default:
		return nil, fmt.Errorf("%w: upstream returned %d", domain.ErrBlobStoreUnavailable, resp.StatusCode)
	}
}
