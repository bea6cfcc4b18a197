package utils

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_NotNil(t *testing.T) {
	client := NewHTTPClient()

	require.NotNil(t, client)
	require.NotNil(t, client.Client)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	client1 := NewHTTPClient()
	client2 := NewHTTPClient()

	assert.NotSame(t, client1.Client, client2.Client)
}

func TestHTTPClient_FetchDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/eggs/paper.yaml", r.URL.Path)
		_, _ = w.Write([]byte("name: Paper\n"))
	}))
	defer srv.Close()

	body, err := NewHTTPClient().FetchDocument(context.Background(), srv.URL+"/eggs/paper.yaml")

	require.NoError(t, err)
	assert.Equal(t, "name: Paper\n", string(body))
}

func TestHTTPClient_FetchDocument_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	body, err := NewHTTPClient().FetchDocument(context.Background(), srv.URL+"/missing.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Nil(t, body)
}

func TestHTTPClient_FetchDocument_CanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPClient().FetchDocument(ctx, srv.URL)

	require.Error(t, err)
}
