// Package gateway maintains the long-lived event-stream connection to the
// remote service and dispatches typed events to the coordinator. The
// connection reconnects forever with a fixed delay; cancellation is checked
// at every loop boundary, and an in-flight read is unblocked by closing the
// connection so shutdown latency stays bounded.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	jsoniter "github.com/json-iterator/go"

	"landshop/internal/domain/event"
	"landshop/pkg/contextx"
	"landshop/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const defaultReconnectDelay = 10 * time.Second

// Handler consumes the two event types the gateway understands.
type Handler interface {
	HandleNotify(ctx context.Context, ev event.Notify)
	HandlePayment(ctx context.Context, ev event.Payment)
}

type envelope struct {
	Type string              `json:"type"`
	Data jsoniter.RawMessage `json:"data"`
}

type Client struct {
	url            string
	token          uuid.UUID
	handler        Handler
	reconnectDelay time.Duration
	dialer         *websocket.Dialer
}

func NewClient(url string, token uuid.UUID, handler Handler) *Client {
	return &Client{
		url:            url,
		token:          token,
		handler:        handler,
		reconnectDelay: defaultReconnectDelay,
		dialer:         websocket.DefaultDialer,
	}
}

func (c *Client) WithReconnectDelay(delay time.Duration) *Client {
	if delay > 0 {
		c.reconnectDelay = delay
	}
	return c
}

// Run drives the connection lifecycle until ctx is cancelled. Every
// disconnect, clean or not, is followed by the fixed reconnect delay.
func (c *Client) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := c.readOnce(ctx); err != nil {
			reconnects.Inc()
			logger(ctx).Warn("gateway connection lost, retrying", logx.Error(err))
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.reconnectDelay):
		}
	}
}

// readOnce dials the gateway and reads messages until the connection drops
// or ctx is cancelled. A nil return means a cooperative exit.
func (c *Client) readOnce(ctx context.Context) error {
	conn, _, err := c.dialer.DialContext(ctx, fmt.Sprintf("%s?token=%s", c.url, c.token), nil)
	if err != nil {
		return fmt.Errorf("dialer.DialContext: %w", err)
	}
	defer conn.Close() //nolint:errcheck

	// Unblock a pending read on cancellation by closing the connection.
	readDone := make(chan struct{})
	defer close(readDone)

	go func() {
		select {
		case <-ctx.Done():
			conn.Close() //nolint:errcheck
		case <-readDone:
		}
	}()

	connects.Inc()
	logger(ctx).Info("gateway connected", slog.String(logx.FieldURL, c.url))

	for {
		if ctx.Err() != nil {
			return nil
		}

		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("conn.ReadMessage: %w", err)
		}

		c.dispatch(ctx, data)
	}
}

// dispatch decodes one inbound message and routes it by its type tag.
// Unrecognized types and undecodable payloads are dropped, never fatal.
func (c *Client) dispatch(ctx context.Context, data []byte) {
	var msg envelope
	if err := json.Unmarshal(data, &msg); err != nil {
		logger(ctx).Debug("ignoring undecodable gateway message", logx.Error(err))
		return
	}

	traceID := contextx.NewTraceID()
	ctx = contextx.WithTraceID(ctx, traceID)
	ctx = contextx.WithLogger(ctx, logger(ctx).With(logx.Stringer(logx.FieldTraceID, traceID)))

	switch msg.Type {
	case event.TypeLandNotify:
		var ev event.Notify
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			logger(ctx).Error("failed to decode land_notify payload", logx.Error(err))
			return
		}

		eventsDispatched.WithLabelValues(msg.Type).Inc()
		c.handler.HandleNotify(ctx, ev)
	case event.TypePayment:
		var ev event.Payment
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			logger(ctx).Error("failed to decode payment payload", logx.Error(err))
			return
		}

		eventsDispatched.WithLabelValues(msg.Type).Inc()
		c.handler.HandlePayment(ctx, ev)
	default:
		logger(ctx).Debug("ignoring gateway event", slog.String(logx.FieldEventType, msg.Type))
	}
}
