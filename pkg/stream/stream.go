// Package stream ships wire-encoded patch frames over a websocket
// connection.
//
// A Sender is the server side of a render loop: after each diff it
// pushes one frame carrying the patch list, tagged with a monotonically
// increasing sequence number. A Receiver consumes frames in order and
// reports a gap, which means the receiving surface is stale and needs a
// full remount.
package stream

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/viewtree-dev/viewtree/pkg/metrics"
	"github.com/viewtree-dev/viewtree/pkg/vtree"
	"github.com/viewtree-dev/viewtree/pkg/wire"
)

// ErrSequenceGap reports a missed frame on the receiving side.
var ErrSequenceGap = errors.New("stream: frame sequence gap")

// DefaultWriteTimeout bounds a single frame write.
const DefaultWriteTimeout = 10 * time.Second

// Sender pushes patch frames over a websocket connection. Writes are
// serialized with a mutex; the sender may be shared across goroutines.
type Sender struct {
	conn         *websocket.Conn
	writeTimeout time.Duration
	logger       *slog.Logger

	mu  sync.Mutex
	seq uint64
}

// SenderOption configures a Sender.
type SenderOption func(*Sender)

// WithWriteTimeout overrides DefaultWriteTimeout.
func WithWriteTimeout(d time.Duration) SenderOption {
	return func(s *Sender) { s.writeTimeout = d }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) SenderOption {
	return func(s *Sender) { s.logger = logger }
}

// NewSender wraps an established websocket connection.
func NewSender(conn *websocket.Conn, opts ...SenderOption) *Sender {
	s := &Sender{
		conn:         conn,
		writeTimeout: DefaultWriteTimeout,
		logger:       slog.Default().With("component", "stream"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Seq returns the sequence number of the last sent frame.
func (s *Sender) Seq() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq
}

// SendPatches encodes and pushes one patch frame. An empty patch list
// is skipped without consuming a sequence number.
func (s *Sender) SendPatches(patches []vtree.Patch) error {
	if len(patches) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	data := wire.EncodeFrame(&wire.Frame{Seq: s.seq, Patches: patches})

	s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
		s.logger.Error("frame write failed", "seq", s.seq, "error", err)
		return fmt.Errorf("stream: write frame %d: %w", s.seq, err)
	}

	metrics.FramesSent.Inc()
	metrics.FrameBytes.Add(float64(len(data)))
	s.logger.Debug("frame sent", "seq", s.seq, "patches", len(patches), "bytes", len(data))
	return nil
}

// Receiver consumes patch frames from a websocket connection and
// enforces in-order delivery. Not safe for concurrent use.
type Receiver struct {
	conn    *websocket.Conn
	lastSeq uint64
}

// NewReceiver wraps an established websocket connection.
func NewReceiver(conn *websocket.Conn) *Receiver {
	return &Receiver{conn: conn}
}

// Next blocks for the next binary frame and decodes it. A non-binary
// message is skipped. A sequence gap returns ErrSequenceGap; the caller
// should resynchronize with a full remount.
func (r *Receiver) Next() (*wire.Frame, error) {
	for {
		msgType, data, err := r.conn.ReadMessage()
		if err != nil {
			return nil, fmt.Errorf("stream: read frame: %w", err)
		}
		if msgType != websocket.BinaryMessage {
			continue
		}
		frame, err := wire.DecodeFrame(data)
		if err != nil {
			return nil, err
		}
		if frame.Seq != r.lastSeq+1 {
			return nil, fmt.Errorf("%w: got %d, want %d", ErrSequenceGap, frame.Seq, r.lastSeq+1)
		}
		r.lastSeq = frame.Seq
		return frame, nil
	}
}
