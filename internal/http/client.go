package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// Client wraps HTTP operations against the dataset file share.
//
// Client provides:
//   - A shared connection pool across all concurrent fetches
//   - Configured User-Agent header
//   - File download with atomic writes and progress tracking
//
// Example usage:
//
//	client := NewClient(0)
//
//	// Fetch the record manifest
//	text, err := client.GetString(ctx, baseURL+"&files=records.txt")
//
//	// Download an artifact
//	err = client.DownloadFile(ctx, fileURL, "Data-CSV/record.zip", func(written, total int64) {
//	    fmt.Printf("%d / %d bytes\n", written, total)
//	})
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client for the file share.
//
// A zero timeout disables the whole-request deadline; cancellation is
// still available through the request context. Dataset videos run to
// gigabytes, so callers normally pass zero.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: "putemg-downloader",
	}
}

// ProgressWriter wraps a writer to track download progress.
//
// Use this to monitor large downloads by providing an OnUpdate callback
// that receives the current bytes written and total expected bytes.
type ProgressWriter struct {
	// Writer is the underlying writer to write data to.
	Writer io.Writer

	// Total is the expected total bytes (from Content-Length header).
	Total int64

	// Written is the current number of bytes written.
	Written int64

	// OnUpdate is called after each Write with current progress.
	// Parameters are (bytesWritten, totalExpected).
	OnUpdate func(written, total int64)
}

// Write implements io.Writer, tracking progress and calling OnUpdate.
func (pw *ProgressWriter) Write(p []byte) (int, error) {
	n, err := pw.Writer.Write(p)
	pw.Written += int64(n)
	if pw.OnUpdate != nil {
		pw.OnUpdate(pw.Written, pw.Total)
	}
	return n, err
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails
//   - The response status is outside the 2xx range
//   - Reading the body fails
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetString performs a GET request and returns the response body as a string.
//
// This is a convenience wrapper around Get for fetching text content
// like the record manifest.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	body, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// DownloadFile downloads a file to the specified path with optional
// progress callback.
//
// The content is streamed to a staging file next to the destination and
// renamed into place only after the full body has been read, so a crash
// or failure mid-download never leaves a partial file at destPath that
// a later run would mistake for a complete one. The staging file is
// removed on failure.
//
// Parameters:
//   - ctx: Context for cancellation
//   - url: URL to download from
//   - destPath: Local file path to save to (its directory must exist)
//   - onProgress: Optional callback called with (bytesWritten, totalBytes);
//     pass nil to disable progress tracking
func (c *Client) DownloadFile(ctx context.Context, url, destPath string, onProgress func(written, total int64)) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	staging, err := os.CreateTemp(filepath.Dir(destPath), filepath.Base(destPath)+".part*")
	if err != nil {
		return err
	}

	var writer io.Writer = staging
	if onProgress != nil {
		writer = &ProgressWriter{
			Writer:   staging,
			Total:    resp.ContentLength,
			OnUpdate: onProgress,
		}
	}

	if _, err := io.Copy(writer, resp.Body); err != nil {
		staging.Close()
		os.Remove(staging.Name())
		return err
	}

	if err := staging.Close(); err != nil {
		os.Remove(staging.Name())
		return err
	}

	if err := os.Rename(staging.Name(), destPath); err != nil {
		os.Remove(staging.Name())
		return err
	}

	return nil
}
