package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"alcyxob/fitplanner/internal/config"
	"alcyxob/fitplanner/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordedRequest struct {
	method      string
	path        string
	contentType string
	body        string
}

func newFakeS3(t *testing.T) (*httptest.Server, func() []recordedRequest) {
	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		mu.Lock()
		requests = append(requests, recordedRequest{
			method:      r.Method,
			path:        r.URL.Path,
			contentType: r.Header.Get("Content-Type"),
			body:        string(body),
		})
		mu.Unlock()

		switch r.Method {
		case http.MethodPut:
			w.Header().Set("ETag", `"abc"`)
			w.WriteHeader(http.StatusOK)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func newTestStorage(t *testing.T, endpoint string) storage.FileStorage {
	fs, err := storage.NewS3Storage(context.Background(), config.S3Config{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		AccessKeyID:     "test",
		SecretAccessKey: "test",
		BucketName:      "plans",
	}, zap.NewNop())
	require.NoError(t, err)
	return fs
}

func TestNewS3Storage_RequiresBucket(t *testing.T) {
	_, err := storage.NewS3Storage(context.Background(), config.S3Config{Region: "us-east-1"}, zap.NewNop())
	require.ErrorIs(t, err, storage.ErrBucketNotConfigured)
}

func TestS3Storage_PutAndDelete(t *testing.T) {
	srv, requests := newFakeS3(t)
	fs := newTestStorage(t, srv.URL)

	require.NoError(t, fs.PutObject(context.Background(), "exports/u1/p.md", "text/markdown", []byte("# Plan")))
	require.NoError(t, fs.DeleteObject(context.Background(), "exports/u1/p.md"))

	got := requests()
	require.Len(t, got, 2)
	assert.Equal(t, http.MethodPut, got[0].method)
	assert.Equal(t, "/plans/exports/u1/p.md", got[0].path)
	assert.Equal(t, "text/markdown", got[0].contentType)
	assert.Contains(t, got[0].body, "# Plan")
	assert.Equal(t, http.MethodDelete, got[1].method)
}

func TestS3Storage_PresignedDownloadURL(t *testing.T) {
	fs := newTestStorage(t, "http://localhost:9000")

	raw, err := fs.GeneratePresignedDownloadURL(context.Background(), "exports/u1/p.md", 0)
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", u.Host)
	assert.Equal(t, "/plans/exports/u1/p.md", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"), "defaults to 15 minutes")

	raw, err = fs.GeneratePresignedDownloadURL(context.Background(), "exports/u1/p.md", 2*time.Minute)
	require.NoError(t, err)
	u, err = url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "120", u.Query().Get("X-Amz-Expires"))
}
