package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestNewGracefulServer_AppliesTimeouts(t *testing.T) {
	e := echo.New()
	gs := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{
		Port:            8080,
		ReadTimeout:     15,
		WriteTimeout:    20,
		ShutdownTimeout: 5,
	})

	assert.Equal(t, ":8080", gs.addr)
	assert.Equal(t, 15*time.Second, e.Server.ReadTimeout)
	assert.Equal(t, 20*time.Second, e.Server.WriteTimeout)
	assert.Equal(t, 5*time.Second, gs.shutdownTimeout)
}

func TestGracefulServer_RunStopsOnContextCancel(t *testing.T) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	port := freePort(t)
	gs := NewGracefulServer(e, logger.NewNopLogger(), models.ServerConfig{Host: "127.0.0.1", Port: port})

	var closed []string
	gs.OnShutdown(func(context.Context) error { closed = append(closed, "db"); return nil })
	gs.OnShutdown(func(context.Context) error { closed = append(closed, "nsq"); return nil })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"nsq", "db"}, closed)
}

func TestShutdownManager_ReturnsFirstError(t *testing.T) {
	sm := NewShutdownManager(logger.NewNopLogger())
	errA := errors.New("a")
	calls := 0
	sm.Register(func(context.Context) error { calls++; return errA })
	sm.Register(func(context.Context) error { calls++; return errors.New("b") })

	err := sm.Shutdown(context.Background())
	assert.EqualError(t, err, "b")
	assert.Equal(t, 2, calls)
}

func TestGracefulServer_CloseWithoutRun(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNopLogger(), models.ServerConfig{})

	closed := 0
	gs.OnShutdown(func(context.Context) error { closed++; return nil })

	require.NoError(t, gs.Close())
	require.NoError(t, gs.Close())
	assert.Equal(t, 1, closed)
}
