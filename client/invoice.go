package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"khatapro-client/models"
)

// GenerateInvoice asks the backend to render an invoice PDF. The
// response is binary, not JSON: it is streamed to the download
// directory and the file path is returned.
func (c *Client) GenerateInvoice(ctx context.Context, req models.GenerateInvoiceRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate-invoice", bytes.NewReader(raw))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/pdf")
	c.attachToken(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		var env envelope
		_ = json.Unmarshal(body, &env)
		if resp.StatusCode == http.StatusUnauthorized && isTokenInvalidMessage(env.Message) {
			c.sessions.Invalidate(ctx)
		}
		return "", &APIError{StatusCode: resp.StatusCode, Message: env.Message, Body: body}
	}

	name := "invoice-" + strings.Split(uuid.New().String(), "-")[0] + ".pdf"
	path := filepath.Join(c.downloadDir, name)
	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create invoice file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("save invoice: %w", err)
	}
	return path, nil
}
