package server

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/kbreese-x/cosmograph/cosmo"
	"github.com/kbreese-x/cosmograph/errors"
	grapherr "github.com/kbreese-x/cosmograph/graph/error"
	"github.com/kbreese-x/cosmograph/logger"
)

// WebSocket timeout constants following Gorilla best practices
// See: https://github.com/gorilla/websocket/blob/master/examples/chat/client.go
const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = 54 * time.Second

	// Pointer events are tiny; anything larger is a misbehaving client
	maxMessageSize = 4096
)

// Client represents a WebSocket client connection
type Client struct {
	server    *Server
	conn      *websocket.Conn
	send      chan interface{}
	done      chan struct{}
	id        string
	limiter   *rate.Limiter
	closeOnce sync.Once

	// warned is set after the first rate-limit notice so a flood of hovers
	// produces one error message, not hundreds
	warned bool
}

func newClient(s *Server, conn *websocket.Conn, id string) *Client {
	r, burst := s.eventLimits()
	return &Client{
		server:  s,
		conn:    conn,
		send:    make(chan interface{}, clientSendBuffer),
		done:    make(chan struct{}),
		id:      id,
		limiter: rate.NewLimiter(r, burst),
	}
}

// queue enqueues msg without blocking. It reports false when the queue is
// full or the client is closed. send is never closed, so this cannot panic.
func (c *Client) queue(msg interface{}) bool {
	select {
	case <-c.done:
		return false
	default:
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// readPump handles reading messages from the WebSocket connection
func (c *Client) readPump() {
	defer func() {
		select {
		case c.server.unregister <- c:
		case <-c.server.ctx.Done():
			c.close()
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.handleReadError(err)
			return
		}

		if logger.ShouldOutput(int(c.server.verbosity.Load()), logger.OutputDataDump) {
			c.server.logger.Debugw("Received WebSocket message",
				logger.FieldClientID, c.id,
				"payload", string(data),
			)
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.server.logger.Warnw("JSON unmarshal error",
				logger.FieldError, err.Error(),
				logger.FieldClientID, c.id,
			)
			continue
		}

		c.routeMessage(&msg)
	}
}

// handleReadError logs unexpected WebSocket read errors.
// Expected closure codes (going away, abnormal, no status) are silently ignored.
func (c *Client) handleReadError(err error) {
	if websocket.IsUnexpectedCloseError(err,
		websocket.CloseGoingAway,
		websocket.CloseNormalClosure,
		websocket.CloseAbnormalClosure,
		websocket.CloseNoStatusReceived,
	) {
		graphErr := grapherr.New(grapherr.CategoryWebSocket, grapherr.SubcategoryWSRead, err).
			Describe("WebSocket connection closed unexpectedly")

		c.server.logger.Warnw("WebSocket read error",
			append(graphErr.ToLogFields(), logger.FieldClientID, c.id)...,
		)
	}
}

// routeMessage dispatches an incoming message to its handler
func (c *Client) routeMessage(msg *clientMessage) {
	switch msg.Type {
	case string(cosmo.EventClick), string(cosmo.EventHover), string(cosmo.EventHoverEnd):
		c.handleEvent(cosmo.PointerEvent{Type: cosmo.EventType(msg.Type), NodeID: msg.NodeID})
	case "set_verbosity":
		c.handleSetVerbosity(msg.Verbosity)
	case "ping":
		// Deadline handled by pong handler
	default:
		c.server.logger.Debugw("Unknown message type",
			"type", msg.Type,
			logger.FieldClientID, c.id,
		)
	}
}

// handleEvent throttles and dispatches a pointer event into the current options record.
func (c *Client) handleEvent(ev cosmo.PointerEvent) {
	if !c.limiter.Allow() {
		if !c.warned {
			c.warned = true
			graphErr := grapherr.Newf(grapherr.CategoryWebSocket, grapherr.SubcategoryWSRateLimited,
				"client %s exceeded %v events/s", c.id, c.limiter.Limit(),
			).Describe("Too many pointer events, some were dropped")
			c.server.logger.Warnw("Pointer events rate limited", graphErr.ToLogFields()...)
			c.queue(ErrorMessage{Type: MsgError, Error: graphErr.ToMeta()})
		}
		return
	}
	c.warned = false

	g, cfg, _ := c.server.snapshot()
	fired, err := cfg.Dispatch(ev, g)
	if err != nil {
		c.server.logger.Debugw("Pointer event rejected",
			logger.FieldClientID, c.id,
			logger.FieldEventType, ev.Type,
			logger.FieldNodeID, ev.NodeID,
			logger.FieldError, err,
		)
		c.queue(ErrorMessage{Type: MsgError, Error: eventErrorMeta(err, ev)})
		return
	}

	if logger.ShouldOutput(int(c.server.verbosity.Load()), logger.OutputEvents) {
		c.server.logger.Debugw("Pointer event dispatched",
			logger.FieldClientID, c.id,
			logger.FieldEventType, ev.Type,
			logger.FieldNodeID, ev.NodeID,
			"fired", fired,
		)
	}
}

func eventErrorMeta(err error, ev cosmo.PointerEvent) map[string]string {
	msg := "Unknown node"
	if errors.IsInvalidRequestError(err) {
		msg = "Malformed pointer event"
	}
	return grapherr.New(grapherr.CategoryGraph, "", err).
		Describe(msg).
		With(logger.FieldEventType, string(ev.Type)).
		ToMeta()
}

// handleSetVerbosity updates the server verbosity level
func (c *Client) handleSetVerbosity(verbosity int) {
	old := int(c.server.verbosity.Swap(int32(verbosity)))
	logger.SetVerbosity(verbosity)

	c.server.logger.Infow("Verbosity level changed",
		logger.FieldClientID, c.id,
		"old_verbosity", old,
		"new_verbosity", verbosity,
		"level_name", logger.LevelName(verbosity),
	)
}

// writePump writes queued messages to the WebSocket connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.server.ctx.Done():
			return
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case msg := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteJSON(msg); err != nil {
				graphErr := grapherr.New(grapherr.CategoryWebSocket, grapherr.SubcategoryWSWrite, err).
					Describe("Failed to send message to client")

				c.server.logger.Warnw("WebSocket write error",
					append(graphErr.ToLogFields(), logger.FieldClientID, c.id)...,
				)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// close stops the write pump. Safe to call more than once.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
