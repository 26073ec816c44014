package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects registered hooks so tests can run them directly.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append stores the hook without invoking it.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever a shutdown is requested.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown performs a non-blocking send on Called.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
