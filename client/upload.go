package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// IsLocalFile distinguishes a local file reference (which must be
// uploaded) from an already-remote URL (which is passed through as a
// string and never re-uploaded).
func IsLocalFile(ref string) bool {
	if ref == "" {
		return false
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return false
	}
	if strings.HasPrefix(ref, "file://") {
		return true
	}
	_, err := os.Stat(ref)
	return err == nil
}

func localPath(ref string) string {
	return strings.TrimPrefix(ref, "file://")
}

// doMultipart performs one multipart/form-data request. fields are
// plain text parts; files maps a form field name to a local file
// reference. Field names are fixed by the backend contract.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, files map[string]string) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("write form field %s: %w", name, err)
		}
	}
	for name, ref := range files {
		f, err := os.Open(localPath(ref))
		if err != nil {
			return nil, fmt.Errorf("open upload file: %w", err)
		}
		part, err := w.CreateFormFile(name, filepath.Base(localPath(ref)))
		if err != nil {
			f.Close()
			return nil, err
		}
		if _, err := io.Copy(part, f); err != nil {
			f.Close()
			return nil, fmt.Errorf("read upload file: %w", err)
		}
		f.Close()
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", w.FormDataContentType())
	return c.send(req)
}
