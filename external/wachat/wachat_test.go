package wachat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	return &Client{
		apiKey:  "test-key",
		baseURL: baseURL,
		client:  &http.Client{Timeout: 2 * time.Second},
		status:  StatusDisconnected,
	}
}

func TestLifecycle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	require.Equal(t, StatusDisconnected, c.Status())

	require.NoError(t, c.Connect(context.Background()))
	require.Equal(t, StatusConnected, c.Status())

	c.Disconnect()
	require.Equal(t, StatusDisconnected, c.Status())
}

func TestSendRequiresConnection(t *testing.T) {
	c := newTestClient("http://unused.invalid")
	err := c.SendOrderMessage(context.Background(), "+919900112233", "hi")
	require.Error(t, err)
	require.Contains(t, err.Error(), "not connected")
}

func TestSendOrderMessage(t *testing.T) {
	var got textMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusOK)
			return
		}
		require.Equal(t, "/messages/text", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	require.NoError(t, c.Connect(context.Background()))
	require.NoError(t, c.SendOrderMessage(context.Background(), "+919900112233", "Your order USN1 is confirmed"))
	require.Equal(t, "+919900112233", got.To)
}
