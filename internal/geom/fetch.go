package geom

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

var httpClient = &http.Client{Timeout: 30 * time.Second}

// FetchBasemap downloads and parses the background shape collection. If
// cachePath is non-empty a previously cached copy is preferred, and a
// successful download is written back to it (best effort; a cache write
// failure does not fail the fetch).
func FetchBasemap(ctx context.Context, url, cachePath string) (*Basemap, error) {
	if cachePath != "" {
		if data, err := os.ReadFile(cachePath); err == nil {
			if bm, err := ParseBasemap(data); err == nil {
				return bm, nil
			}
			// Corrupt cache falls through to a fresh download.
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating basemap request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching basemap: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching basemap: status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading basemap: %w", err)
	}

	bm, err := ParseBasemap(data)
	if err != nil {
		return nil, fmt.Errorf("parsing basemap: %w", err)
	}

	if cachePath != "" {
		if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err == nil {
			os.WriteFile(cachePath, data, 0o644)
		}
	}
	return bm, nil
}
