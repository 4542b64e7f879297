package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestClient_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "hello")
	}))
	defer srv.Close()

	client := NewClient(0)
	body, err := client.Get(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(body) != "hello" {
		t.Errorf("body = %q, want %q", body, "hello")
	}
}

func TestClient_GetNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(0)
	if _, err := client.Get(context.Background(), srv.URL); err == nil {
		t.Fatal("Get succeeded on 404, want error")
	}
}

func TestClient_DownloadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "file content")
	}))
	defer srv.Close()

	dir := t.TempDir()
	destPath := filepath.Join(dir, "artifact.zip")

	client := NewClient(0)
	if err := client.DownloadFile(context.Background(), srv.URL, destPath, nil); err != nil {
		t.Fatalf("DownloadFile failed: %v", err)
	}

	data, err := os.ReadFile(destPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "file content" {
		t.Errorf("content = %q, want %q", data, "file content")
	}

	// No staging leftovers after a successful download.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestClient_DownloadFileFailureLeavesNothing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir := t.TempDir()
	destPath := filepath.Join(dir, "artifact.zip")

	client := NewClient(0)
	if err := client.DownloadFile(context.Background(), srv.URL, destPath, nil); err == nil {
		t.Fatal("DownloadFile succeeded on 500, want error")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory has %d entries after failure, want 0", len(entries))
	}
}

func TestClient_DownloadFileTruncatedBody(t *testing.T) {
	// Content-Length larger than the actual body makes the copy fail
	// mid-stream; the staging file must not survive as the final path.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		io.WriteString(w, "short")
	}))
	defer srv.Close()

	dir := t.TempDir()
	destPath := filepath.Join(dir, "artifact.zip")

	client := NewClient(0)
	if err := client.DownloadFile(context.Background(), srv.URL, destPath, nil); err == nil {
		t.Fatal("DownloadFile succeeded on truncated body, want error")
	}

	if _, err := os.Stat(destPath); !os.IsNotExist(err) {
		t.Errorf("final path exists after truncated download")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("directory has %d entries after truncated download, want 0", len(entries))
	}
}

func TestProgressWriter(t *testing.T) {
	var lastWritten, lastTotal int64
	pw := &ProgressWriter{
		Writer: io.Discard,
		Total:  10,
		OnUpdate: func(written, total int64) {
			lastWritten = written
			lastTotal = total
		},
	}

	pw.Write([]byte("12345"))
	pw.Write([]byte("678"))

	if lastWritten != 8 {
		t.Errorf("written = %d, want 8", lastWritten)
	}
	if lastTotal != 10 {
		t.Errorf("total = %d, want 10", lastTotal)
	}
}
