// Package download fetches PDFs over HTTP with content validation.
package download

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds the whole request.
	DefaultTimeout = 20 * time.Second

	// DefaultMaxSize is the download size cap.
	DefaultMaxSize = 10 * 1024 * 1024

	// copyChunkSize is the streaming buffer size.
	copyChunkSize = 1024 * 1024
)

// pdfMagic is the required file signature.
var pdfMagic = []byte("%PDF")

// badFilenameChars are characters rejected in the destination base name.
var badFilenameChars = regexp.MustCompile(`[\\/:*?"<>|]`)

// Errors returned by Download.
var (
	// ErrEmptyURL indicates a blank download URL.
	ErrEmptyURL = errors.New("download URL must be non-empty")

	// ErrDestIsDirectory indicates the destination path is a directory.
	ErrDestIsDirectory = errors.New("destination path is a directory")

	// ErrBadFilename indicates illegal characters in the destination name.
	ErrBadFilename = errors.New("invalid characters in filename")

	// ErrNetwork indicates a connection or timeout failure.
	ErrNetwork = errors.New("network error or timeout")

	// ErrNotPDF indicates the response content type is not a PDF.
	ErrNotPDF = errors.New("content is not PDF")

	// ErrEmptyFile indicates a zero-byte download.
	ErrEmptyFile = errors.New("downloaded file is empty")

	// ErrTooLarge indicates the download exceeded the size cap.
	ErrTooLarge = errors.New("downloaded file too large")

	// ErrBadMagic indicates the file content does not start with %PDF.
	ErrBadMagic = errors.New("file content is not PDF")
)

// HTTPError represents a non-200 response from the asset host.
type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("download failed: HTTP %d", e.StatusCode)
}

// Options configures a download.
type Options struct {
	// Timeout bounds the request; <= 0 uses DefaultTimeout.
	Timeout time.Duration

	// MaxSize caps the download in bytes; <= 0 uses DefaultMaxSize.
	MaxSize int64

	// HTTPClient overrides the client used for the request (for testing).
	// Its timeout is left untouched when set.
	HTTPClient *http.Client
}

// Download streams url to dest, validating that the response is a real,
// non-empty PDF within the size cap. On any size, type, or content failure
// the partially written file is removed before the error is returned.
func Download(ctx context.Context, url, dest string, opts Options) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}
	if info, err := os.Stat(dest); err == nil && info.IsDir() {
		return fmt.Errorf("%w: %s", ErrDestIsDirectory, dest)
	}
	if badFilenameChars.MatchString(filepath.Base(dest)) {
		return fmt.Errorf("%w: %s", ErrBadFilename, filepath.Base(dest))
	}
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating destination directory: %w", err)
		}
	}

	maxSize := opts.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}

	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &HTTPError{StatusCode: resp.StatusCode}
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/pdf") {
		return fmt.Errorf("%w: got %q", ErrNotPDF, ct)
	}

	written, err := writeBody(resp.Body, dest, maxSize)
	if err != nil {
		os.Remove(dest)
		return err
	}
	if written == 0 {
		os.Remove(dest)
		return ErrEmptyFile
	}

	if err := checkMagic(dest); err != nil {
		os.Remove(dest)
		return err
	}
	return nil
}

// writeBody streams body to dest, failing once the size cap is exceeded.
func writeBody(body io.Reader, dest string, maxSize int64) (int64, error) {
	f, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	var total int64
	buf := make([]byte, copyChunkSize)
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			total += int64(n)
			if total > maxSize {
				return total, fmt.Errorf("%w: exceeds %d bytes", ErrTooLarge, maxSize)
			}
			if _, err := f.Write(buf[:n]); err != nil {
				return total, fmt.Errorf("writing file: %w", err)
			}
		}
		if readErr == io.EOF {
			return total, nil
		}
		if readErr != nil {
			return total, fmt.Errorf("%w: %v", ErrNetwork, readErr)
		}
	}
}

// checkMagic verifies the file starts with the PDF signature.
func checkMagic(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reopening file: %w", err)
	}
	defer f.Close()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return ErrBadMagic
	}
	if !bytes.Equal(head, pdfMagic) {
		return ErrBadMagic
	}
	return nil
}
