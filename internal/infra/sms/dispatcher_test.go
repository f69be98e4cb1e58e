package sms

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingGateway captures sent messages and fails a configurable number of
// times before succeeding.
type recordingGateway struct {
	mu        sync.Mutex
	sent      []service.SMSMessage
	failFirst int
	calls     int
}

func (g *recordingGateway) SendPattern(_ context.Context, msg service.SMSMessage) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls++
	if g.calls <= g.failFirst {
		return errors.New("provider unavailable")
	}

	g.sent = append(g.sent, msg)

	return nil
}

func (g *recordingGateway) snapshot() ([]service.SMSMessage, int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return append([]service.SMSMessage(nil), g.sent...), g.calls
}

func newTestDispatcher(gateway service.SMSGateway, queueSize int) *dispatcher {
	d := &dispatcher{
		gateway:     gateway,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		queue:       make(chan service.SMSMessage, queueSize),
		maxAttempts: 3,
		retryDelay:  time.Millisecond,
		done:        make(chan struct{}),
	}
	go d.run()

	return d
}

func TestDispatcher_DeliversEnqueuedMessage(t *testing.T) {
	gateway := &recordingGateway{}
	d := newTestDispatcher(gateway, 8)

	d.Enqueue(service.SMSMessage{
		Receptor: "09120000000",
		Template: service.TemplateNewService,
		Tokens:   []string{"ali_ahmadi", "Ahmadi Market", "42"},
	})

	require.NoError(t, d.stop(context.Background()))

	sent, _ := gateway.snapshot()
	require.Len(t, sent, 1)
	assert.Equal(t, "09120000000", sent[0].Receptor)
	assert.Equal(t, service.TemplateNewService, sent[0].Template)
}

func TestDispatcher_RetriesTransientFailures(t *testing.T) {
	gateway := &recordingGateway{failFirst: 2}
	d := newTestDispatcher(gateway, 8)

	d.Enqueue(service.SMSMessage{
		Receptor: "09120000001",
		Template: service.TemplateServicemanSMS,
		Tokens:   []string{"7"},
	})

	require.NoError(t, d.stop(context.Background()))

	sent, calls := gateway.snapshot()
	assert.Equal(t, 3, calls)
	require.Len(t, sent, 1)
}

func TestDispatcher_GivesUpAfterMaxAttempts(t *testing.T) {
	gateway := &recordingGateway{failFirst: 10}
	d := newTestDispatcher(gateway, 8)

	d.Enqueue(service.SMSMessage{
		Receptor: "09120000002",
		Template: service.TemplateServicemanSMS,
		Tokens:   []string{"8"},
	})

	require.NoError(t, d.stop(context.Background()))

	sent, calls := gateway.snapshot()
	assert.Equal(t, 3, calls)
	assert.Empty(t, sent)
}

func TestDispatcher_EnqueueAfterStopIsSafe(t *testing.T) {
	gateway := &recordingGateway{}
	d := newTestDispatcher(gateway, 8)

	require.NoError(t, d.stop(context.Background()))

	// Must not panic on the closed queue.
	d.Enqueue(service.SMSMessage{
		Receptor: "09120000003",
		Template: service.TemplateNewService,
		Tokens:   []string{"x", "y", "1"},
	})

	sent, _ := gateway.snapshot()
	assert.Empty(t, sent)
}

func TestDispatcher_FullQueueDropsWithoutBlocking(t *testing.T) {
	gateway := &recordingGateway{}
	// No worker running: the queue fills and stays full.
	d := &dispatcher{
		gateway:     gateway,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		queue:       make(chan service.SMSMessage, 1),
		maxAttempts: 1,
		retryDelay:  time.Millisecond,
		done:        make(chan struct{}),
	}

	msg := service.SMSMessage{Receptor: "09120000004", Template: service.TemplateNewService, Tokens: []string{"a", "b", "1"}}

	finished := make(chan struct{})
	go func() {
		d.Enqueue(msg)
		d.Enqueue(msg)
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}
