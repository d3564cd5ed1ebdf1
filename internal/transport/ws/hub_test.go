package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recvMessage(t *testing.T, conn *Connection) *Message {
	t.Helper()
	select {
	case data, ok := <-conn.Send:
		require.True(t, ok, "send channel closed")
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return &msg
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestHubBroadcastToForm(t *testing.T) {
	h := NewHub()

	watcher := &Connection{FormID: "form1", Send: make(chan []byte, 4), Hub: h}
	other := &Connection{FormID: "form2", Send: make(chan []byte, 4), Hub: h}
	h.Register(watcher)
	h.Register(other)

	h.BroadcastToForm("form1", string(MsgResultsUpdate), map[string]int{"totalSubmissions": 3})

	msg := recvMessage(t, watcher)
	assert.Equal(t, MsgResultsUpdate, msg.Type)
	assert.JSONEq(t, `{"totalSubmissions":3}`, string(msg.Payload))

	// the other form's dashboard sees nothing
	select {
	case data := <-other.Send:
		t.Fatalf("unexpected message on other form: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubDisconnectForm(t *testing.T) {
	h := NewHub()

	watcher := &Connection{FormID: "form1", Send: make(chan []byte, 4), Hub: h}
	h.Register(watcher)

	h.DisconnectForm("form1")

	msg := recvMessage(t, watcher)
	assert.Equal(t, MsgFormClosed, msg.Type)

	select {
	case _, ok := <-watcher.Send:
		assert.False(t, ok, "send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
}

func TestHubUnregister(t *testing.T) {
	h := NewHub()

	watcher := &Connection{FormID: "form1", Send: make(chan []byte, 4), Hub: h}
	h.Register(watcher)
	h.Unregister(watcher)

	select {
	case _, ok := <-watcher.Send:
		assert.False(t, ok, "send channel should be closed")
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}

	// broadcasting to a form with no watchers must not block or panic
	h.BroadcastToForm("form1", string(MsgResultsUpdate), nil)
}
