package server

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/handler"
	"github.com/MKhiriev/go-item-sync/internal/logger"
)

func TestNewServer_NothingToServe(t *testing.T) {
	_, err := NewServer(nil, config.ClientServer{HTTPAddress: "localhost:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNothingToServe)

	_, err = NewServer(&handler.Handlers{}, config.ClientServer{}, logger.Nop())
	assert.ErrorIs(t, err, errNothingToServe)
}

func TestHTTPServer_RunAndShutdown(t *testing.T) {
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	srv := newHTTPServer(router, "127.0.0.1:0", logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// ждём, пока listener получит реальный порт
	require.Eventually(t, func() bool { return srv.Addr() != "127.0.0.1:0" }, time.Second, 5*time.Millisecond)

	resp, err := http.Get("http://" + srv.Addr() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "pong", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestHTTPServer_ListenFailure(t *testing.T) {
	srv := newHTTPServer(http.NotFoundHandler(), "256.0.0.1:99999", logger.Nop())

	err := srv.Run(context.Background())

	assert.Error(t, err)
}
