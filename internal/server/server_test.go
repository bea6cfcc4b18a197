package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-panel/internal/config"
	"github.com/MKhiriev/go-panel/internal/handler"
	myHTTP "github.com/MKhiriev/go-panel/internal/handler/http"
	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/service"
)

func TestNewServer_NoHandlers(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{"nil handlers", nil, config.Server{HTTPAddress: ":8080"}},
		{"nil http handler", &handler.Handlers{}, config.Server{HTTPAddress: ":8080"}},
		{"empty address", &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, logger.Nop())}, config.Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, s)
		})
	}
}

func TestNewServer_HTTP(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(&service.Services{}, logger.Nop())}

	s, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	require.NoError(t, err)
	require.IsType(t, &server{}, s)
	assert.NotNil(t, s.(*server).httpServer.server.Handler)
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	t.Run("configured", func(t *testing.T) {
		h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":8080", RequestTimeout: 5 * time.Second}, logger.Nop())

		assert.Equal(t, ":8080", h.server.Addr)
		assert.Equal(t, 5*time.Second, h.server.ReadTimeout)
		assert.Equal(t, 5*time.Second, h.server.WriteTimeout)
		assert.Equal(t, 10*time.Second, h.server.IdleTimeout)
	})

	t.Run("default", func(t *testing.T) {
		h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: ":8080"}, logger.Nop())

		assert.Equal(t, defaultRequestTimeout, h.server.ReadHeaderTimeout)
		assert.Equal(t, defaultRequestTimeout, h.server.WriteTimeout)
	})
}

func TestNewHTTPServer_ServesHandler(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := newHTTPServer(handler, config.Server{HTTPAddress: ":0"}, logger.Nop())

	rr := httptest.NewRecorder()
	h.server.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.run(ctx)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestServer_RunReturnsListenError(t *testing.T) {
	s := &server{
		httpServer: newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "not-an-address"}, logger.Nop()),
		logger:     logger.Nop(),
	}

	err := s.run(context.Background())

	assert.Error(t, err)
}

func TestHTTPServer_ShutdownBeforeStart(t *testing.T) {
	h := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	h.Shutdown()

	assert.NoError(t, h.listen())
}
