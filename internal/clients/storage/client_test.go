package storage_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/certification/internal/clients/storage"
	"github.com/samandr77/microservices/certification/pkg/config"
)

func newClient(url string) *storage.Client {
	return storage.NewClient(config.Storage{
		URL:           url + "/",
		ServiceKey:    "service-key",
		Bucket:        "personnel-photos",
		Timeout:       time.Second,
		RetryAttempts: 2,
	})
}

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	var gotPath, gotType, gotAuth, gotUpsert string
	var gotBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotAuth = r.Header.Get("Authorization")
		gotUpsert = r.Header.Get("x-upsert")
		gotBody, _ = io.ReadAll(r.Body)

		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)

	got, err := newClient(server.URL).Upload(context.Background(), "company-1/1710496800.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	require.Equal(t, server.URL+"/object/public/personnel-photos/company-1/1710496800.png", got)
	require.Equal(t, "/object/personnel-photos/company-1/1710496800.png", gotPath)
	require.Equal(t, "image/png", gotType)
	require.Equal(t, "Bearer service-key", gotAuth)
	require.Equal(t, "true", gotUpsert)
	require.Equal(t, []byte("png-bytes"), gotBody)
}

func TestClient_UploadRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}))
	t.Cleanup(server.Close)

	_, err := newClient(server.URL).Upload(context.Background(), "c/1.jpg", "image/jpeg", []byte("jpg"))
	require.NoError(t, err)
	require.Equal(t, int32(2), calls.Load())
}

func TestClient_UploadUpstreamError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"InvalidKey"}`))
	}))
	t.Cleanup(server.Close)

	_, err := newClient(server.URL).Upload(context.Background(), "c/1.jpg", "image/jpeg", []byte("jpg"))
	require.ErrorContains(t, err, "unexpected code 400")
	require.ErrorContains(t, err, "InvalidKey")
}

func TestClient_UploadRetryAfterStoredAttempt(t *testing.T) {
	t.Parallel()

	var (
		calls  atomic.Int32
		stored atomic.Bool
	)

	// The first attempt is stored but answered with a gateway error, as when the response is lost.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		if stored.Swap(true) {
			if r.Header.Get("x-upsert") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"Duplicate"}`))

				return
			}

			w.WriteHeader(http.StatusOK)

			return
		}

		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	t.Cleanup(server.Close)

	got, err := newClient(server.URL).Upload(context.Background(), "c/2.png", "image/png", []byte("png"))
	require.NoError(t, err)
	require.Equal(t, server.URL+"/object/public/personnel-photos/c/2.png", got)
	require.Equal(t, int32(2), calls.Load())
}
