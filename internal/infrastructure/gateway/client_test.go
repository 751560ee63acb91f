package gateway_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"landshop/internal/domain/event"
	"landshop/internal/infrastructure/gateway"
)

var testToken = uuid.MustParse("55555555-5555-5555-5555-555555555555")

type recordingHandler struct {
	notifies chan event.Notify
	payments chan event.Payment
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{
		notifies: make(chan event.Notify, 16),
		payments: make(chan event.Payment, 16),
	}
}

func (h *recordingHandler) HandleNotify(_ context.Context, ev event.Notify) {
	h.notifies <- ev
}

func (h *recordingHandler) HandlePayment(_ context.Context, ev event.Payment) {
	h.payments <- ev
}

func TestClientDispatchesAndReconnects(t *testing.T) {
	rq := require.New(t)

	var connections atomic.Int64

	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rq.Equal(testToken.String(), r.URL.Query().Get("token"))

		conn, err := upgrader.Upgrade(w, r, nil)
		rq.NoError(err)
		defer conn.Close() //nolint:errcheck

		if connections.Add(1) > 1 {
			// Later connections stay silent until the client goes away.
			conn.ReadMessage() //nolint:errcheck
			return
		}

		messages := []string{
			`{"type":"weather","data":{}}`,
			`not even json`,
			`{"type":"land_notify","data":{"powered":true,"key":"11111111-1111-1111-1111-111111111111","env":"overworld","x":10,"y":64,"z":-3}}`,
			`{"type":"payment","data":{"state":"finish","id":"33333333-3333-3333-3333-333333333333"}}`,
		}
		for _, msg := range messages {
			rq.NoError(conn.WriteMessage(websocket.TextMessage, []byte(msg)))
		}
		// Dropping the connection here must trigger a reconnect.
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	handler := newRecordingHandler()

	client := gateway.NewClient(url, testToken, handler).
		WithReconnectDelay(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- client.Run(ctx)
	}()

	select {
	case ev := <-handler.notifies:
		rq.True(ev.Powered)
		rq.Equal(uuid.MustParse("11111111-1111-1111-1111-111111111111"), ev.Key)
		rq.Equal("overworld", ev.Env)
		rq.Equal(64.0, ev.Y)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for notify event")
	}

	select {
	case ev := <-handler.payments:
		rq.Equal("finish", ev.State)
		rq.Equal(uuid.MustParse("33333333-3333-3333-3333-333333333333"), ev.ID)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for payment event")
	}

	// The dropped connection must come back after the fixed delay.
	rq.Eventually(func() bool {
		return connections.Load() >= 2
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		rq.ErrorIs(err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("client did not exit after cancellation")
	}
}

func TestClientRetriesFailedDial(t *testing.T) {
	rq := require.New(t)

	var attempts atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		// Not a websocket handshake: the dial fails with a bad status.
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")

	client := gateway.NewClient(url, testToken, newRecordingHandler()).
		WithReconnectDelay(10 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- client.Run(ctx)
	}()

	rq.Eventually(func() bool {
		return attempts.Load() >= 2
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		rq.ErrorIs(err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("client did not exit after cancellation")
	}
}
