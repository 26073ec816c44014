package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/vantran-dev/storefront/internal/notifier"
)

// NotificationDispatcher drains a bounded queue of notifications through a
// pool of workers. Enqueue never blocks the request path: when the queue is
// full the message is dropped with a log line. Failures are logged and never
// surfaced, so a committed order cannot be affected by mail delivery.
type NotificationDispatcher struct {
	sender  notifier.Sender
	workers int
	logger  *slog.Logger

	queue  chan notifier.Message
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs the dispatcher worker pool.
func NewNotificationDispatcher(sender notifier.Sender, queueSize, workers int, logger *slog.Logger) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &NotificationDispatcher{
		sender:  sender,
		workers: workers,
		logger:  logger,
		queue:   make(chan notifier.Message, queueSize),
	}
}

// Start launches background delivery. Worker lifetime is bound to Stop, not
// to the hook context, which expires as soon as startup returns.
func (d *NotificationDispatcher) Start(context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for in-flight deliveries to finish.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Enqueue submits a message for delivery without blocking.
func (d *NotificationDispatcher) Enqueue(msg notifier.Message) {
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("notification queue full, dropping message",
			slog.String("to", msg.To),
			slog.String("subject", msg.Subject),
		)
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-d.queue:
			if err := d.sender.Send(ctx, msg); err != nil {
				d.logger.Error("notification send failed",
					slog.String("to", msg.To),
					slog.String("subject", msg.Subject),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
