package archive

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// DownloadError is a failed fetch or decompression of a monthly archive.
// Fatal for the requested date; the caller does not retry.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// Client downloads monthly archives over HTTP.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an archive client. A zero timeout means no timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// FetchMonth downloads the archive covering date into destDir and extracts
// the daily CSV files it contains. The zip is kept next to the extracted
// files, matching the layout the provider's consumers expect.
func (c *Client) FetchMonth(ctx context.Context, date time.Time, destDir string) error {
	url := ArchiveURL(c.baseURL, date)
	zipPath := filepath.Join(destDir, ArchiveFilename(date))

	log.Printf("downloading archive %s", url)
	if err := c.download(ctx, url, zipPath); err != nil {
		return &DownloadError{URL: url, Err: err}
	}
	if err := Unzip(zipPath, destDir); err != nil {
		return &DownloadError{URL: url, Err: err}
	}
	log.Printf("extracted archive %s into %s", ArchiveFilename(date), destDir)
	return nil
}

func (c *Client) download(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(dest)
		return err
	}
	return f.Close()
}
