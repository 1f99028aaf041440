package blobstore

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"artifact-catalog-service/internal/domain"
)

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/weights.bin", r.URL.Path)
		w.Write([]byte("remote bytes"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	data, err := client.Fetch(context.Background(), "models/weights.bin")
	assert.NoError(t, err)
	assert.Equal(t, []byte("remote bytes"), data)
}

func TestClientFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background(), "missing/asset")
	assert.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestClientFetch_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second)
	_, err := client.Fetch(context.Background(), "models/weights.bin")
	assert.ErrorIs(t, err, domain.ErrBlobStoreUnavailable)
}

func TestClientFetch_Unreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 100*time.Millisecond)
	_, err := client.Fetch(context.Background(), "models/weights.bin")
	assert.ErrorIs(t, err, domain.ErrBlobStoreUnavailable)
}
