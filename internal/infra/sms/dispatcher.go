package sms

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/domain/service"

	"go.uber.org/fx"
)

const (
	defaultQueueSize   = 256
	defaultMaxAttempts = 3
	defaultRetryDelay  = 2 * time.Second
)

// dispatcher is the outbound SMS queue. Enqueue is fire-and-forget: callers
// never learn whether delivery succeeded, and a full queue drops the message
// rather than blocking the request path.
type dispatcher struct {
	gateway     service.SMSGateway
	logger      *slog.Logger
	queue       chan service.SMSMessage
	maxAttempts int
	retryDelay  time.Duration

	mu     sync.Mutex
	closed bool
	done   chan struct{}
}

// DispatcherParams holds dependencies for the SMS dispatcher
type DispatcherParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Gateway service.SMSGateway
}

// NewDispatcher creates the outbound SMS queue and registers its worker with
// the application lifecycle.
func NewDispatcher(params DispatcherParams) service.SMSDispatcher {
	queueSize := defaultQueueSize
	maxAttempts := defaultMaxAttempts
	retryDelay := defaultRetryDelay
	if params.Cfg.SMS != nil {
		if params.Cfg.SMS.QueueSize > 0 {
			queueSize = params.Cfg.SMS.QueueSize
		}
		if params.Cfg.SMS.MaxAttempts > 0 {
			maxAttempts = params.Cfg.SMS.MaxAttempts
		}
		if params.Cfg.SMS.RetryDelay > 0 {
			retryDelay = params.Cfg.SMS.RetryDelay
		}
	}

	d := &dispatcher{
		gateway:     params.Gateway,
		logger:      params.Logger,
		queue:       make(chan service.SMSMessage, queueSize),
		maxAttempts: maxAttempts,
		retryDelay:  retryDelay,
		done:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go d.run()

			return nil
		},
		OnStop: d.stop,
	})

	return d
}

// Enqueue hands a message to the worker. It never blocks and never reports
// failure to the caller.
func (d *dispatcher) Enqueue(msg service.SMSMessage) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.logger.Warn("SMS dropped: dispatcher stopped",
			slog.String("template", msg.Template),
			slog.String("receptor", msg.Receptor),
		)

		return
	}

	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("SMS dropped: queue full",
			slog.String("template", msg.Template),
			slog.String("receptor", msg.Receptor),
		)
	}
}

// run drains the queue until it is closed, delivering each message with
// bounded retries.
func (d *dispatcher) run() {
	defer close(d.done)

	for msg := range d.queue {
		d.deliver(msg)
	}
}

func (d *dispatcher) deliver(msg service.SMSMessage) {
	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		err := d.gateway.SendPattern(context.Background(), msg)
		if err == nil {
			d.logger.Info("SMS sent",
				slog.String("template", msg.Template),
				slog.String("receptor", msg.Receptor),
			)

			return
		}

		d.logger.Warn("SMS send failed",
			slog.String("template", msg.Template),
			slog.String("receptor", msg.Receptor),
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		if attempt < d.maxAttempts {
			time.Sleep(d.retryDelay)
		}
	}

	d.logger.Error("SMS given up",
		slog.String("template", msg.Template),
		slog.String("receptor", msg.Receptor),
		slog.Int("attempts", d.maxAttempts),
	)
}

// stop closes the queue and waits for the worker to finish in-flight
// deliveries, bounded by the lifecycle timeout.
func (d *dispatcher) stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-d.done:
		return nil
	case <-waitCtx.Done():
		return waitCtx.Err()
	}
}
