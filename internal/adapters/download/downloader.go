package download

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/javaBin/talks-site/internal/config"
	"github.com/javaBin/talks-site/internal/domain"
	"github.com/natefinch/atomic"
)

// defaultExtension is used when neither the response nor the URL tells the file type
const defaultExtension = ".jpg"

// maxBodySize bounds the size of a downloaded file
const maxBodySize = 20 << 20

var imageExtensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/avif":    ".avif",
	"image/svg+xml": ".svg",
}

// Downloader fetches remote files over HTTP and writes them atomically
type Downloader struct {
	httpClient *http.Client
	maxSize    int64
	logger     *slog.Logger
}

// New creates a new Downloader, retrieving configuration from context
func New(ctx context.Context) *Downloader {
	cfg := config.GetConfig(ctx)
	return NewWithHTTPClient(&http.Client{Timeout: cfg.Photos.Timeout})
}

// NewWithHTTPClient creates a new Downloader with a custom HTTP client.
// This constructor is primarily intended for testing purposes.
func NewWithHTTPClient(httpClient *http.Client) *Downloader {
	return &Downloader{
		httpClient: httpClient,
		maxSize:    maxBodySize,
		logger:     slog.Default().With("component", "download"),
	}
}

// SetLogger sets a custom logger for the downloader
func (d *Downloader) SetLogger(logger *slog.Logger) {
	d.logger = logger
}

// Download fetches rawURL and writes it to destPrefix plus an extension
// derived from the response content type, or the URL when the content type
// is not an image. It returns the base name of the written file.
// Failures are logged here; callers may drop the error.
func (d *Downloader) Download(ctx context.Context, rawURL, destPrefix string) (string, error) {
	file, err := d.download(ctx, rawURL, destPrefix)
	if err != nil {
		d.logger.Warn("download failed", "url", rawURL, "error", err)
		return "", err
	}
	return file, nil
}

func (d *Downloader) download(ctx context.Context, rawURL, destPrefix string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %w", domain.ErrDownload, err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %w", domain.ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status code %d for %s", domain.ErrDownload, resp.StatusCode, rawURL)
	}

	dest := destPrefix + extension(resp.Header.Get("Content-Type"), rawURL)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("%w: failed to create directory: %w", domain.ErrDownload, err)
	}

	if resp.ContentLength > d.maxSize {
		return "", fmt.Errorf("%w: %s is larger than %d bytes", domain.ErrDownload, rawURL, d.maxSize)
	}

	body := &sizeLimitedReader{r: io.LimitReader(resp.Body, d.maxSize+1), max: d.maxSize}
	if err := atomic.WriteFile(dest, body); err != nil {
		return "", fmt.Errorf("%w: failed to write %s: %w", domain.ErrDownload, dest, err)
	}

	d.logger.Debug("downloaded file", "url", rawURL, "dest", dest)
	return filepath.Base(dest), nil
}

// sizeLimitedReader fails once more than max bytes have been read, so a
// truncated body is never written in place of the file
type sizeLimitedReader struct {
	r    io.Reader
	max  int64
	read int64
}

func (l *sizeLimitedReader) Read(p []byte) (int, error) {
	n, err := l.r.Read(p)
	l.read += int64(n)
	if l.read > l.max {
		return n, fmt.Errorf("body is larger than %d bytes", l.max)
	}
	return n, err
}

// extension returns the file extension for a response content type, falling
// back to the extension of the URL path
func extension(contentType, rawURL string) string {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if ext, ok := imageExtensions[strings.ToLower(mediaType)]; ok {
			return ext
		}
	}

	if u, err := url.Parse(rawURL); err == nil {
		ext := strings.ToLower(path.Ext(u.Path))
		for _, known := range imageExtensions {
			if ext == known {
				return ext
			}
		}
		if ext == ".jpeg" {
			return ".jpg"
		}
	}

	return defaultExtension
}
