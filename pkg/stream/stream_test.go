package stream

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viewtree-dev/viewtree/pkg/vtree"
	"github.com/viewtree-dev/viewtree/pkg/wire"
)

// wsPair establishes a real websocket connection through an httptest
// server and returns both ends.
func wsPair(t *testing.T) (server, client *websocket.Conn) {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	connCh := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		connCh <- c
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-connCh:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for server connection")
	}
	t.Cleanup(func() { server.Close() })
	return server, client
}

func textPatch(path vtree.Path, text string) vtree.Patch {
	return vtree.Patch{Op: vtree.OpSetText, Path: path, Text: text}
}

func TestSendReceive(t *testing.T) {
	serverConn, clientConn := wsPair(t)

	sender := NewSender(serverConn)
	receiver := NewReceiver(clientConn)

	require.NoError(t, sender.SendPatches([]vtree.Patch{textPatch(vtree.Path{0}, "one")}))
	require.NoError(t, sender.SendPatches([]vtree.Patch{
		textPatch(vtree.Path{0}, "two"),
		{Op: vtree.OpRemoveChild, Path: nil, Index: 1},
	}))

	f1, err := receiver.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), f1.Seq)
	require.Len(t, f1.Patches, 1)
	assert.Equal(t, "one", f1.Patches[0].Text)

	f2, err := receiver.Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), f2.Seq)
	assert.Len(t, f2.Patches, 2)
	assert.Equal(t, vtree.OpRemoveChild, f2.Patches[1].Op)

	assert.Equal(t, uint64(2), sender.Seq())
}

func TestEmptyPatchListSkipped(t *testing.T) {
	serverConn, clientConn := wsPair(t)

	sender := NewSender(serverConn)
	require.NoError(t, sender.SendPatches(nil))
	assert.Equal(t, uint64(0), sender.Seq())

	// The next real frame still carries sequence 1.
	require.NoError(t, sender.SendPatches([]vtree.Patch{textPatch(nil, "x")}))
	f, err := NewReceiver(clientConn).Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), f.Seq)
}

func TestReceiverSkipsTextMessages(t *testing.T) {
	serverConn, clientConn := wsPair(t)

	require.NoError(t, serverConn.WriteMessage(websocket.TextMessage, []byte("ping")))
	sender := NewSender(serverConn)
	require.NoError(t, sender.SendPatches([]vtree.Patch{textPatch(nil, "x")}))

	f, err := NewReceiver(clientConn).Next()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), f.Seq)
}

func TestReceiverSequenceGap(t *testing.T) {
	serverConn, clientConn := wsPair(t)

	// Frame 3 arrives first: the receiver expected 1.
	data := wire.EncodeFrame(&wire.Frame{Seq: 3, Patches: []vtree.Patch{textPatch(nil, "x")}})
	require.NoError(t, serverConn.WriteMessage(websocket.BinaryMessage, data))

	_, err := NewReceiver(clientConn).Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSequenceGap), "err = %v", err)
}

func TestReceiverCorruptFrame(t *testing.T) {
	serverConn, clientConn := wsPair(t)

	require.NoError(t, serverConn.WriteMessage(websocket.BinaryMessage, []byte{0x80}))

	_, err := NewReceiver(clientConn).Next()
	require.Error(t, err)
}

func TestSenderClosedConnection(t *testing.T) {
	serverConn, clientConn := wsPair(t)
	clientConn.Close()
	serverConn.Close()

	sender := NewSender(serverConn, WithWriteTimeout(time.Second))
	err := sender.SendPatches([]vtree.Patch{textPatch(nil, "x")})
	require.Error(t, err)
}
