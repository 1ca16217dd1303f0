package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHub_Broadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	first := NewClient(hub, nil, 1, "warehouse")
	second := NewClient(hub, nil, 2, "accountant")
	hub.Register(first)
	hub.Register(second)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, hub.Broadcast("tasks.invalidated", TasksInvalidatedPayload{TaskIDs: []int64{7}, Reason: "approval"}))

	for _, c := range []*Client{first, second} {
		select {
		case raw := <-c.Send:
			var env struct {
				Type    string                  `json:"type"`
				Payload TasksInvalidatedPayload `json:"payload"`
			}
			require.NoError(t, json.Unmarshal(raw, &env))
			assert.Equal(t, "tasks.invalidated", env.Type)
			assert.Equal(t, []int64{7}, env.Payload.TaskIDs)
		case <-time.After(time.Second):
			t.Fatalf("клиент %d не получил сообщение", c.UserID)
		}
	}
}

func TestHub_Unregister(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(zap.NewNop())
	go hub.Run(ctx)

	client := NewClient(hub, nil, 5, "admin")
	hub.Register(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	hub.Unregister(client)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)
}
