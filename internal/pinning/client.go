// Package pinning talks to the external content-pinning provider (Pinata).
// Provider responses, including error payloads, are relayed verbatim.
package pinning

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"inkwell/internal/utils"
)

// Client posts files to the provider's pin endpoint with fixed auth headers.
type Client struct {
	endpoint  string
	apiKey    string
	apiSecret string
	http      *http.Client
}

// Response carries the provider's verbatim reply.
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

func NewClient(endpoint, apiKey, apiSecret string) *Client {
	return &Client{
		endpoint:  endpoint,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		http:      &http.Client{Timeout: 60 * time.Second},
	}
}

// Configured reports whether provider credentials were supplied.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

// PinFile streams the file content under the given filename to the provider
// and returns its response unmodified. The multipart body is piped rather
// than buffered, so the upload never sits in memory whole.
func (c *Client) PinFile(ctx context.Context, filename string, content io.Reader) (*Response, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, content); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, pr)
	if err != nil {
		pr.Close()
		return nil, utils.NewAppError(utils.ErrProvider, "failed to build provider request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("pinata_api_key", c.apiKey)
	req.Header.Set("pinata_secret_api_key", c.apiSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, utils.NewAppError(utils.ErrProvider, "pinning provider unreachable", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, utils.NewAppError(utils.ErrProvider, "failed to read provider response", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
		Body:        body,
	}, nil
}
