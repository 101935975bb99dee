package ws

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/delivery/http/dto"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/domain/job"
	"github.com/theemubin/navgurukul-placement-dashboard-sub002/internal/usecase"

	"github.com/gorilla/websocket"
)

const (
	writeWait       = 10 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = (pongWait * 9) / 10
	maxMessageSize  = 64 * 1024
	estimateTimeout = 5 * time.Second
)

type Estimator interface {
	EstimateEligibleCount(ctx context.Context, draft job.Job) (usecase.Estimate, error)
}

type inbound struct {
	Type      string              `json:"type"`
	RequestID string              `json:"request_id"`
	Draft     dto.JobDraftRequest `json:"draft"`
}

type estimateReply struct {
	Type       string `json:"type"`
	RequestID  string `json:"request_id,omitempty"`
	Eligible   int    `json:"eligible"`
	Total      int    `json:"total"`
	OpenForAll bool   `json:"open_for_all"`
}

type errorReply struct {
	Type      string `json:"type"`
	RequestID string `json:"request_id,omitempty"`
	Message   string `json:"message"`
}

var (
	errClientClosed = errors.New("client closed")
	errSendFull     = errors.New("send buffer full")
)

type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	estimator Estimator
	logger    *log.Logger

	// send is closed at most once, by closeSend. Every write goes through
	// trySend so no goroutine sends after the close.
	send   chan []byte
	mu     sync.Mutex
	closed bool
}

func NewClient(hub *Hub, conn *websocket.Conn, estimator Estimator, logger *log.Logger) *Client {
	return &Client{hub: hub, conn: conn, send: make(chan []byte, 16), estimator: estimator, logger: logger}
}

// ReadPump answers each draft with a fresh estimate until the peer leaves.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && c.logger != nil {
				c.logger.Printf("[WS] read error: %v", err)
			}
			return
		}

		reply := c.handle(ctx, raw)
		switch err := c.trySend(reply); {
		case errors.Is(err, errClientClosed):
			return
		case err != nil && c.logger != nil:
			c.logger.Printf("[WS] reply dropped reason=send_buffer_full")
		}
	}
}

// trySend queues msg without blocking.
func (c *Client) trySend(msg []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errClientClosed
	}
	select {
	case c.send <- msg:
		return nil
	default:
		return errSendFull
	}
}

func (c *Client) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

// WritePump owns all writes to the connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handle(ctx context.Context, raw []byte) []byte {
	var msg inbound
	if err := json.Unmarshal(raw, &msg); err != nil {
		return encode(errorReply{Type: MessageError, Message: "invalid message"})
	}
	if msg.Type != MessageEstimate {
		return encode(errorReply{Type: MessageError, RequestID: msg.RequestID, Message: "unsupported message type"})
	}
	if err := msg.Draft.Validate(); err != nil {
		return encode(errorReply{Type: MessageError, RequestID: msg.RequestID, Message: err.Error()})
	}

	ectx, cancel := context.WithTimeout(ctx, estimateTimeout)
	defer cancel()
	est, err := c.estimator.EstimateEligibleCount(ectx, msg.Draft.ToJob())
	if err != nil {
		if c.logger != nil {
			c.logger.Printf("[WS] estimate failed request_id=%s err=%v", msg.RequestID, err)
		}
		return encode(errorReply{Type: MessageError, RequestID: msg.RequestID, Message: "estimate unavailable"})
	}
	return encode(estimateReply{
		Type:       MessageEstimate,
		RequestID:  msg.RequestID,
		Eligible:   est.Eligible,
		Total:      est.Total,
		OpenForAll: est.OpenForAll,
	})
}

func encode(v any) []byte {
	b, _ := json.Marshal(v)
	return b
}
