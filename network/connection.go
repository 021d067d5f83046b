// Package network maintains the websocket link to the simulation server.
package network

import (
	"encoding/json"
	"errors"
	"log"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
)

// ErrNotConnected is returned by Send while the link is down or the
// outbound buffer is full. Commands are fire-and-forget, so callers just
// log and move on.
var ErrNotConnected = errors.New("not connected")

// Client owns the websocket connection and redials with capped exponential
// backoff when it drops. Raw inbound frames are delivered on Messages; the
// server re-sends a snapshot and z-level after every reconnect, which is
// what re-establishes a consistent mirror.
type Client struct {
	url       string
	messages  chan []byte
	outbound  chan []byte
	connected atomic.Bool
	done      chan struct{}
}

// NewClient prepares a client for the given websocket URL. Run must be
// started for anything to happen.
func NewClient(url string) *Client {
	return &Client{
		url:      url,
		messages: make(chan []byte, 64),
		outbound: make(chan []byte, 256), // buffered so Send never blocks the event loop
		done:     make(chan struct{}),
	}
}

// Messages returns the inbound frame channel. It is closed when the client
// shuts down.
func (c *Client) Messages() <-chan []byte {
	return c.messages
}

// Connected reports whether the link is currently up.
func (c *Client) Connected() bool {
	return c.connected.Load()
}

// Send marshals a command and queues it for the write pump.
func (c *Client) Send(cmd any) error {
	data, err := json.Marshal(cmd)
	if err != nil {
		return err
	}
	if !c.connected.Load() {
		return ErrNotConnected
	}
	select {
	case c.outbound <- data:
		return nil
	default:
		return ErrNotConnected
	}
}

// Close stops the dial loop and closes the message channel.
func (c *Client) Close() {
	close(c.done)
}

// Run dials the server and pumps messages until Close is called. Meant to
// run in its own goroutine; the event loop consumes Messages.
func (c *Client) Run() {
	defer close(c.messages)

	backoff := initialBackoff
	for {
		select {
		case <-c.done:
			return
		default:
		}

		ws, _, err := websocket.DefaultDialer.Dial(c.url, nil)
		if err != nil {
			log.Printf("dial %s: %v (retrying in %s)", c.url, err, backoff)
			select {
			case <-time.After(backoff):
			case <-c.done:
				return
			}
			if backoff *= 2; backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}

		log.Printf("connected to %s", c.url)
		backoff = initialBackoff
		c.connected.Store(true)
		c.pump(ws)
		c.connected.Store(false)
		log.Printf("connection lost")
	}
}

// pump runs the write pump in a goroutine and reads inbound frames until
// the connection fails or the client closes.
func (c *Client) pump(ws *websocket.Conn) {
	defer ws.Close()

	stop := make(chan struct{})
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for {
			select {
			case data := <-c.outbound:
				if err := ws.WriteMessage(websocket.TextMessage, data); err != nil {
					return
				}
			case <-c.done:
				ws.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			case <-stop:
				return
			}
		}
	}()

	for {
		_, data, err := ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("read: %v", err)
			}
			break
		}
		select {
		case c.messages <- data:
		case <-c.done:
			return
		}
	}

	// Unblock and wait for the writer before redialing.
	close(stop)
	<-writerDone
}
