// Package channel wraps the websocket transport to the game server. It
// exposes fire-and-forget sends, a single ordered stream of inbound
// signals, and explicit connection lifecycle reporting.
package channel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/jask/wordgrid/internal/protocol"
)

// ErrQueueFull is returned by Send when the outbound queue cap is
// exceeded. Failing fast beats silently losing a room-creation or word
// submission while the socket is still coming up.
var ErrQueueFull = errors.New("channel: outbound queue full")

// ErrClosed is returned by Send after Close.
var ErrClosed = errors.New("channel: closed")

// outboundQueueCap bounds how many sends may pile up before the
// connection is established (or while the writer is behind).
const outboundQueueCap = 32

const writeTimeout = 10 * time.Second

// SignalKind discriminates the inbound signal stream.
type SignalKind int

const (
	// SignalEvent carries a decoded server envelope.
	SignalEvent SignalKind = iota
	// SignalConnected fires once the transport is established.
	SignalConnected
	// SignalDisconnected fires when the transport goes away.
	SignalDisconnected
	// SignalError carries a transport-level failure.
	SignalError
)

// Signal is one entry on the inbound stream. Signals are delivered in
// arrival order on a single channel so the consumer never has to merge
// lifecycle and event ordering itself.
type Signal struct {
	Kind     SignalKind
	Envelope protocol.Envelope
	Err      error
}

// Client is the event channel to the game server. Sends are
// fire-and-forget: queued before the socket is up, written by the writer
// pump afterwards. Replies arrive later as independent signals.
type Client struct {
	url        string
	instanceID string
	log        zerolog.Logger

	out     chan []byte
	signals chan Signal
	done    chan struct{}

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// New creates a client for the given websocket URL. Dial must be called
// before any signals arrive; Send may be called immediately and queues.
func New(url string, log zerolog.Logger) *Client {
	return &Client{
		url:        url,
		instanceID: uuid.New().String(),
		log:        log,
		out:        make(chan []byte, outboundQueueCap),
		signals:    make(chan Signal, 64),
		done:       make(chan struct{}),
	}
}

// InstanceID is this client's per-process identity, sent on dial so the
// server can tell connections apart before it assigns a player id.
func (c *Client) InstanceID() string { return c.instanceID }

// Signals is the ordered inbound stream. It is never closed; consumers
// stop reading after a SignalDisconnected or after Close.
func (c *Client) Signals() <-chan Signal { return c.signals }

// Dial establishes the transport, emits SignalConnected, and starts the
// reader and writer pumps. Commands queued before Dial are flushed by the
// writer pump in order.
func (c *Client) Dial(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.url+"?client_id="+c.instanceID, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return ErrClosed
	}
	c.conn = conn
	c.mu.Unlock()

	c.log.Info().Str("url", c.url).Str("client_id", c.instanceID).Msg("channel connected")
	c.emit(Signal{Kind: SignalConnected})

	go c.writePump(conn)
	go c.readPump(conn)
	return nil
}

// Send marshals a command envelope and hands it to the writer pump.
// It never blocks: when the bounded queue is full it fails fast.
func (c *Client) Send(event string, payload any) error {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}

	raw, err := protocol.Encode(event, payload)
	if err != nil {
		return err
	}

	select {
	case c.out <- raw:
		c.log.Debug().Str("event", event).Msg("queued outbound command")
		return nil
	default:
		return ErrQueueFull
	}
}

// Close tears down the transport and stops both pumps. Safe to call more
// than once.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	close(c.done)
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) writePump(conn *websocket.Conn) {
	for {
		select {
		case <-c.done:
			return
		case raw := <-c.out:
			conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
				c.log.Error().Err(err).Msg("channel write failed")
				c.emit(Signal{Kind: SignalError, Err: err})
				return
			}
		}
	}
}

func (c *Client) readPump(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			select {
			case <-c.done:
				// Close() initiated the teardown; nothing to report.
			default:
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					c.log.Error().Err(err).Msg("channel read failed")
					c.emit(Signal{Kind: SignalError, Err: err})
				}
				c.log.Info().Msg("channel disconnected")
				c.emit(Signal{Kind: SignalDisconnected})
			}
			return
		}

		env, err := protocol.Decode(raw)
		if err != nil {
			// Malformed frames are logged and dropped, never fatal.
			c.log.Warn().Err(err).Str("raw", string(raw)).Msg("dropping undecodable frame")
			continue
		}
		c.log.Debug().Str("event", env.Event).Msg("inbound event")
		c.emit(Signal{Kind: SignalEvent, Envelope: env})
	}
}

func (c *Client) emit(sig Signal) {
	select {
	case c.signals <- sig:
	case <-c.done:
	}
}
