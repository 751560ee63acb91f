// Package remote is the synchronous facade over the shop service HTTP API.
// Responses are decoded with jsoniter; a body that does not decode carries
// errcodes.RemoteDecodeError so callers can tell it from transport trouble.
package remote

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"landshop/internal/domain"
	"landshop/internal/domain/value"
	"landshop/pkg/errcodes"
	"landshop/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Player is one occupant returned by the range query.
type Player struct {
	Player string `json:"player"`
}

// Payment is the remote service's answer to a payment request.
type Payment struct {
	ID    uuid.UUID `json:"id"`
	State string    `json:"state"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	token      uuid.UUID
}

func NewClient(baseURL string, token uuid.UUID) *Client {
	return &Client{
		httpClient: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport),
		},
		baseURL: baseURL,
		token:   token,
	}
}

// SetRemoteLock toggles the remoter's lock. The response body is ignored.
func (c *Client) SetRemoteLock(ctx context.Context, remoterID uuid.UUID, locked bool) error {
	url := fmt.Sprintf("%s/api/remote/%s/%t", c.baseURL, remoterID, locked)

	_, err := c.get(ctx, url)

	return err
}

// PlayersInRange returns the occupants within radius of (x, y, z) in env.
func (c *Client) PlayersInRange(ctx context.Context, env string, x, y, z, radius float64) ([]Player, error) {
	url := fmt.Sprintf("%s/api/range?env=%s&x=%s&y=%s&z=%s&range=%s",
		c.baseURL, env, formatCoord(x), formatCoord(y), formatCoord(z), formatCoord(radius))

	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var players []Player
	if err := json.Unmarshal(body, &players); err != nil {
		return nil, domain.WrapError(err, errcodes.RemoteDecodeError, "failed to decode range response")
	}

	return players, nil
}

// RequestPayment asks the remote service to open a trade with player.
// display arrives already percent-encoded (it is stored that way), so the
// query is assembled verbatim rather than re-escaped.
func (c *Client) RequestPayment(ctx context.Context, player, display string, prices value.PriceSpec) (Payment, error) {
	url := fmt.Sprintf("%s/api/payment/request?token=%s&player=%s&display=%s&prices=%s",
		c.baseURL, c.token, player, display, prices)

	body, err := c.get(ctx, url)
	if err != nil {
		return Payment{}, err
	}

	var payment Payment
	if err := json.Unmarshal(body, &payment); err != nil {
		return Payment{}, domain.WrapError(err, errcodes.RemoteDecodeError, "failed to decode payment response")
	}

	return payment, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.RemoteTransportError, "failed to build request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.RemoteTransportError, "request failed")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.RemoteTransportError, "failed to read response body")
	}

	return body, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
