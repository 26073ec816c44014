package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vantran-dev/storefront/internal/config"
	"github.com/vantran-dev/storefront/internal/notifier"
	testhelpers "github.com/vantran-dev/storefront/internal/test"
	"github.com/vantran-dev/storefront/internal/worker"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestDispatcher() *worker.NotificationDispatcher {
	logger := discardLogger()
	return worker.NewNotificationDispatcher(notifier.NewLogSender(logger), 1, 1, logger)
}

func TestNewHTTPServer(t *testing.T) {
	cfg := &config.Config{RunAddress: ":9999"}
	router := gin.New()
	server := newHTTPServer(serverParams{Config: cfg, Router: router})
	if server.Addr != ":9999" {
		t.Fatalf("expected address :9999, got %q", server.Addr)
	}
	if server.Handler != router {
		t.Fatalf("expected handler to be router")
	}
}

func TestNewSenderSelectsDelivery(t *testing.T) {
	logger := discardLogger()

	sender := newSender(&config.Config{}, logger)
	if _, ok := sender.(*notifier.LogSender); !ok {
		t.Fatalf("expected log sender without smtp host, got %T", sender)
	}

	sender = newSender(&config.Config{Mail: config.SMTP{Host: "smtp.example.com", Port: 587}}, logger)
	if _, ok := sender.(*notifier.SMTPSender); !ok {
		t.Fatalf("expected smtp sender with host configured, got %T", sender)
	}
}

func TestNewDispatcherUsesConfig(t *testing.T) {
	dispatcher := newDispatcher(dispatcherParams{
		Sender: notifier.NewLogSender(discardLogger()),
		Config: &config.Config{NotifyQueueSize: 4, NotifyWorkers: 2},
		Logger: discardLogger(),
	})
	if dispatcher == nil {
		t.Fatal("expected dispatcher instance")
	}
}

func TestRegisterLifecycleStartStop(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()}
	dispatcher := newTestDispatcher()

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Worker:     dispatcher,
		Config:     &config.Config{ShutdownTimeout: 100 * time.Millisecond},
	})

	if len(recorder.Hooks) != 1 {
		t.Fatalf("expected one hook registered, got %d", len(recorder.Hooks))
	}

	hook := recorder.Hooks[0]
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := hook.OnStart(ctx); err != nil {
		t.Fatalf("on start failed: %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = hook.OnStop(context.Background())
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected on stop to finish")
	}
}

func TestRegisterLifecycleShutdownOnServerError(t *testing.T) {
	recorder := &testhelpers.LifecycleRecorder{}
	shutdowner := &testhelpers.ShutdownerStub{Called: make(chan struct{}, 1)}

	server := &http.Server{Addr: "bad addr"}
	dispatcher := newTestDispatcher()

	registerLifecycle(lifecycleParams{
		Lifecycle:  recorder,
		Shutdowner: shutdowner,
		Logger:     discardLogger(),
		Server:     server,
		Worker:     dispatcher,
		Config:     &config.Config{ShutdownTimeout: time.Second},
	})

	hook := recorder.Hooks[0]
	if err := hook.OnStart(context.Background()); err != nil {
		t.Fatalf("on start returned error: %v", err)
	}

	select {
	case <-shutdowner.Called:
	case <-time.After(time.Second):
		t.Fatal("expected shutdown to be triggered on server error")
	}

	_ = hook.OnStop(context.Background())
}
