package remote

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"LocalPaint/internal/state"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialPanel(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, cmd Command) Reply {
	t.Helper()
	require.NoError(t, conn.WriteJSON(cmd))
	var reply Reply
	require.NoError(t, conn.ReadJSON(&reply))
	return reply
}

func TestApplyColorFollowsPanelRules(t *testing.T) {
	shared := state.NewDefaultShared()
	s := NewServer(shared)

	reply := s.Apply(Command{Type: "color", Channel: "r", Text: "999"})
	assert.Empty(t, reply.Error)
	assert.Equal(t, "255", reply.Echo)
	assert.Equal(t, [3]uint8{255, 0, 0}, reply.Color)

	reply = s.Apply(Command{Type: "color", Channel: "red", Text: "abc"})
	assert.Equal(t, "0", reply.Echo)
	assert.Equal(t, [3]uint8{0, 0, 0}, reply.Color)

	reply = s.Apply(Command{Type: "color", Channel: "g", Text: "120"})
	assert.Equal(t, "120", reply.Echo)
	assert.Equal(t, uint8(120), shared.Color.Get().G)
}

func TestApplyRejectsUnknownInput(t *testing.T) {
	shared := state.NewDefaultShared()
	s := NewServer(shared)

	for _, cmd := range []Command{
		{Type: "tool", Tool: "spray"},
		{Type: "color", Channel: "alpha", Text: "10"},
		{Type: "size", Text: "lots"},
		{Type: "undo"},
	} {
		reply := s.Apply(cmd)
		assert.NotEmpty(t, reply.Error, cmd.Type)
		assert.Equal(t, "pen", reply.Tool)
		assert.Equal(t, [3]uint8{0, 0, 0}, reply.Color)
		assert.Equal(t, 7, reply.Size)
	}
}

func TestPanelOverWebSocket(t *testing.T) {
	shared := state.NewDefaultShared()
	s := NewServer(shared)
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	conn := dialPanel(t, "ws"+strings.TrimPrefix(ts.URL, "http")+PanelPath)

	reply := roundTrip(t, conn, Command{Type: "state"})
	assert.Equal(t, Reply{Type: "state", Tool: "pen", Size: 7}, reply)

	reply = roundTrip(t, conn, Command{Type: "tool", Tool: "rectangle"})
	assert.Empty(t, reply.Error)
	assert.Equal(t, "rectangle", reply.Tool)
	assert.Equal(t, state.ToolRectangle, shared.Tool.Get())

	reply = roundTrip(t, conn, Command{Type: "size", Text: "3"})
	assert.Equal(t, 3, reply.Size)
	assert.Equal(t, 3, shared.Size.Get())

	reply = roundTrip(t, conn, Command{Type: "size", Text: "x"})
	assert.NotEmpty(t, reply.Error)
	assert.Equal(t, "x", reply.Echo)
	assert.Equal(t, 3, shared.Size.Get())

	assert.Eventually(t, func() bool { return s.Peers() == 1 }, time.Second, 10*time.Millisecond)
	conn.Close()
	assert.Eventually(t, func() bool { return s.Peers() == 0 }, time.Second, 10*time.Millisecond)
}

func TestStartAndShutdown(t *testing.T) {
	s := NewServer(state.NewDefaultShared())
	addr, err := s.Start("127.0.0.1:0")
	require.NoError(t, err)

	conn := dialPanel(t, "ws://"+addr.String()+PanelPath)
	reply := roundTrip(t, conn, Command{Type: "tool", Tool: "line"})
	assert.Equal(t, "line", reply.Tool)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	var r Reply
	assert.Error(t, conn.ReadJSON(&r), "connection is closed on shutdown")
}

func TestShutdownWithoutStart(t *testing.T) {
	s := NewServer(state.NewDefaultShared())
	assert.NoError(t, s.Shutdown(context.Background()))
}

func TestPanelURLAndTXTRecord(t *testing.T) {
	assert.Equal(t, "ws://10.0.0.5:8899/panel", PanelURL("10.0.0.5", 8899))
	assert.Equal(t, []string{"LocalPaint", "session=abc", "path=/panel"}, txtRecord("abc"))
}
