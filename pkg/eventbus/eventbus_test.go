package eventbus

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testEvent struct{ name string }

func (e testEvent) Name() string { return e.name }

func TestBus_PublishCallsSubscribers(t *testing.T) {
	bus := New(zap.NewNop())
	var calls atomic.Int32

	bus.Subscribe("a", func(ctx context.Context, e Event) error {
		calls.Add(1)
		return nil
	})
	bus.Subscribe("a", func(ctx context.Context, e Event) error {
		calls.Add(1)
		return errors.New("boom")
	})
	bus.Subscribe("b", func(ctx context.Context, e Event) error {
		calls.Add(100)
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "a"})
	bus.Wait()

	assert.Equal(t, int32(2), calls.Load())
}

func TestBus_ListenerOutlivesRequestContext(t *testing.T) {
	bus := New(zap.NewNop())
	var ctxErr error
	bus.Subscribe("a", func(ctx context.Context, e Event) error {
		ctxErr = ctx.Err()
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bus.Publish(ctx, testEvent{name: "a"})
	bus.Wait()

	assert.NoError(t, ctxErr)
}
