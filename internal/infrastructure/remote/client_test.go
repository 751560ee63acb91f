package remote_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"landshop/internal/domain"
	"landshop/internal/domain/value"
	"landshop/internal/infrastructure/remote"
	"landshop/pkg/errcodes"
)

var (
	testToken   = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	testRemoter = uuid.MustParse("22222222-2222-2222-2222-222222222222")
)

type capture struct {
	path     string
	rawQuery string
}

func newTestServer(t *testing.T, body string, captured *capture) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.path = r.URL.Path
		captured.rawQuery = r.URL.RawQuery

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body)) //nolint:errcheck
	}))
	t.Cleanup(server.Close)

	return server
}

func TestSetRemoteLock(t *testing.T) {
	rq := require.New(t)

	var captured capture
	server := newTestServer(t, "anything, the body is ignored", &captured)

	client := remote.NewClient(server.URL, testToken)

	rq.NoError(client.SetRemoteLock(context.Background(), testRemoter, false))
	rq.Equal("/api/remote/22222222-2222-2222-2222-222222222222/false", captured.path)

	rq.NoError(client.SetRemoteLock(context.Background(), testRemoter, true))
	rq.Equal("/api/remote/22222222-2222-2222-2222-222222222222/true", captured.path)
}

func TestPlayersInRange(t *testing.T) {
	rq := require.New(t)

	var captured capture
	server := newTestServer(t, `[{"player":"P1"},{"player":"P2"}]`, &captured)

	client := remote.NewClient(server.URL, testToken)

	players, err := client.PlayersInRange(context.Background(), "overworld", 10, 65, -3, 1.25)
	rq.NoError(err)
	rq.Equal([]remote.Player{{Player: "P1"}, {Player: "P2"}}, players)
	rq.Equal("/api/range", captured.path)
	rq.Equal("env=overworld&x=10&y=65&z=-3&range=1.25", captured.rawQuery)
}

func TestPlayersInRangeDecodeError(t *testing.T) {
	rq := require.New(t)

	var captured capture
	server := newTestServer(t, "<html>definitely not json</html>", &captured)

	client := remote.NewClient(server.URL, testToken)

	_, err := client.PlayersInRange(context.Background(), "overworld", 0, 0, 0, 1.25)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.RemoteDecodeError, code)
}

func TestRequestPayment(t *testing.T) {
	rq := require.New(t)

	var captured capture
	server := newTestServer(t, `{"id":"33333333-3333-3333-3333-333333333333","state":"wait"}`, &captured)

	client := remote.NewClient(server.URL, testToken)

	prices, _ := value.ParsePriceSpec("gold:10,emerald:3")

	payment, err := client.RequestPayment(context.Background(), "P1", "Iron+Sword", prices)
	rq.NoError(err)
	rq.Equal(remote.Payment{
		ID:    uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		State: "wait",
	}, payment)

	rq.Equal("/api/payment/request", captured.path)

	// The display arrives pre-encoded and goes onto the wire verbatim.
	rq.Equal(
		"token=55555555-5555-5555-5555-555555555555&player=P1&display=Iron+Sword&prices=gold:10,emerald:3",
		captured.rawQuery,
	)
}

func TestRequestPaymentDecodeError(t *testing.T) {
	rq := require.New(t)

	var captured capture
	server := newTestServer(t, "oops", &captured)

	client := remote.NewClient(server.URL, testToken)

	_, err := client.RequestPayment(context.Background(), "P1", "Sword", value.PriceSpec{})
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.RemoteDecodeError, code)
}

func TestTransportError(t *testing.T) {
	rq := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	client := remote.NewClient(server.URL, testToken)

	err := client.SetRemoteLock(context.Background(), testRemoter, true)
	rq.Error(err)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.RemoteTransportError, code)
}
