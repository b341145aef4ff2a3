package brackets

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunningHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func join(t *testing.T, hub *Hub, room string, buffer int) *Client {
	t.Helper()
	client := &Client{Hub: hub, Send: make(chan []byte, buffer), Room: room}
	before := hub.ClientCount(room)
	require.True(t, hub.Join(client))
	require.Eventually(t, func() bool { return hub.ClientCount(room) == before+1 }, time.Second, 5*time.Millisecond)
	return client
}

func TestHub_BroadcastReachesOnlyRoom(t *testing.T) {
	hub := newRunningHub(t)
	inRoom := join(t, hub, TournamentRoom(1), 4)
	elsewhere := join(t, hub, TournamentRoom(2), 4)

	hub.BroadcastToRoom(TournamentRoom(1), WebSocketMessage{
		Type:    MessageMatchResultRecorded,
		Payload: map[string]int{"match_id": 9},
		RoomID:  TournamentRoom(1),
	})

	select {
	case raw := <-inRoom.Send:
		var msg WebSocketMessage
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, MessageMatchResultRecorded, msg.Type)
		assert.Equal(t, "tournament_1", msg.RoomID)
	case <-time.After(time.Second):
		t.Fatal("room client did not receive message")
	}
	assert.Empty(t, elsewhere.Send)
}

func TestHub_FullClientDoesNotBlockBroadcast(t *testing.T) {
	hub := newRunningHub(t)
	slow := join(t, hub, "room", 1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			hub.BroadcastToRoom("room", WebSocketMessage{Type: "PING"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a slow client")
	}
	assert.Len(t, slow.Send, 1)
}

func TestHub_UnregisterClosesSendChannel(t *testing.T) {
	hub := newRunningHub(t)
	client := join(t, hub, "room", 1)

	hub.Unregister <- client
	require.Eventually(t, func() bool { return hub.ClientCount("room") == 0 }, time.Second, 5*time.Millisecond)

	_, open := <-client.Send
	assert.False(t, open)
}

func TestHub_JoinAndLeaveAfterShutdownDoNotBlock(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	member := join(t, hub, "room", 1)
	cancel()
	<-stopped

	_, open := <-member.Send
	assert.False(t, open, "shutdown closes joined clients")

	late := &Client{Hub: hub, Send: make(chan []byte, 1), Room: "room"}
	returned := make(chan bool, 1)
	go func() {
		ok := hub.Join(late)
		hub.leave(member)
		returned <- ok
	}()

	select {
	case ok := <-returned:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("join or leave blocked after the hub stopped")
	}
	assert.Zero(t, hub.ClientCount("room"))
}
