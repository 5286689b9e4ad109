package pinning

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"inkwell/internal/utils"

	"github.com/stretchr/testify/assert"
)

func TestPinFileForwardsAuthAndFile(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("pinata_api_key"))
		assert.Equal(t, "secret", r.Header.Get("pinata_secret_api_key"))

		file, header, err := r.FormFile("file")
		assert.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "notes.md", header.Filename)

		content, err := io.ReadAll(file)
		assert.NoError(t, err)
		assert.Equal(t, "pinned content", string(content))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"IpfsHash":"QmAbc"}`))
	}))
	defer provider.Close()

	client := NewClient(provider.URL, "key", "secret")
	resp, err := client.PinFile(context.Background(), "notes.md", strings.NewReader("pinned content"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.ContentType)
	assert.JSONEq(t, `{"IpfsHash":"QmAbc"}`, string(resp.Body))
}

func TestPinFileRelaysProviderErrors(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"Invalid API key"}`))
	}))
	defer provider.Close()

	client := NewClient(provider.URL, "bad", "bad")
	resp, err := client.PinFile(context.Background(), "notes.md", strings.NewReader("x"))
	assert.NoError(t, err, "provider errors are relayed, not translated")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Invalid API key"}`, string(resp.Body))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("source read failed")
}

// A reader that fails mid-stream aborts the piped request body, so the
// failure surfaces as a provider error instead of hanging the upload.
func TestPinFileReportsReadFailure(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.Copy(io.Discard, r.Body)
	}))
	defer provider.Close()

	client := NewClient(provider.URL, "key", "secret")
	_, err := client.PinFile(context.Background(), "notes.md", failingReader{})
	assert.Error(t, err)
	assert.True(t, utils.IsErrorCode(err, utils.ErrProvider))
}

func TestConfigured(t *testing.T) {
	assert.False(t, NewClient("u", "", "").Configured())
	assert.False(t, NewClient("u", "k", "").Configured())
	assert.True(t, NewClient("u", "k", "s").Configured())
}
