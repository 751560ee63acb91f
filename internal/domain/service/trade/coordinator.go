// Package trade implements the trade lifecycle coordinator: it turns
// inbound notify events into outbound payment requests and reconciles
// completion events against the locally persisted trades.
package trade

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"landshop/internal/domain"
	"landshop/internal/domain/entity"
	"landshop/internal/domain/event"
	"landshop/internal/domain/value"
	"landshop/internal/infrastructure/remote"
	"landshop/pkg/contextx"
	"landshop/pkg/errcodes"
	"landshop/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const defaultScanRadius = 1.25

// RemoteService is the slice of the remote facade the coordinator calls.
type RemoteService interface {
	SetRemoteLock(ctx context.Context, remoterID uuid.UUID, locked bool) error
	PlayersInRange(ctx context.Context, env string, x, y, z, radius float64) ([]remote.Player, error)
	RequestPayment(ctx context.Context, player, display string, prices value.PriceSpec) (remote.Payment, error)
}

// ItemSource is read-only: the coordinator never mutates shop items.
type ItemSource interface {
	Get(id uuid.UUID) (entity.ShopItem, bool)
}

type TradeStorage interface {
	Get(id uuid.UUID) (entity.Trade, bool)
	Upsert(trade entity.Trade) error
}

type Coordinator struct {
	remote RemoteService
	items  ItemSource
	trades TradeStorage
	radius float64
}

func NewCoordinator(
	remoteService RemoteService,
	items ItemSource,
	trades TradeStorage,
) *Coordinator {
	return &Coordinator{
		remote: remoteService,
		items:  items,
		trades: trades,
		radius: defaultScanRadius,
	}
}

func (c *Coordinator) WithScanRadius(radius float64) *Coordinator {
	if radius > 0 {
		c.radius = radius
	}
	return c
}

// HandleNotify reacts to a land_notify trigger. At most one trade comes out
// of one notify; any failure past the guards aborts the flow for this event
// only, with no compensation for remote calls that already fired.
func (c *Coordinator) HandleNotify(ctx context.Context, ev event.Notify) {
	if !ev.Powered {
		return
	}

	item, ok := c.items.Get(ev.Key)
	if !ok {
		return
	}

	// Best effort: the notify flow proceeds when the unlock fails in
	// transit, but an answer we cannot parse aborts it.
	if err := c.remote.SetRemoteLock(ctx, item.RemoterID, false); err != nil {
		if code, ok := domain.GetCode(err); ok && code == errcodes.RemoteDecodeError {
			c.logTradeNotCreated(ctx, ev.Key, err)
			return
		}

		logger(ctx).Debug(
			"remoter unlock failed",
			logx.Stringer(logx.FieldRemoterID, item.RemoterID),
			logx.Error(err),
		)
	}

	players, err := c.remote.PlayersInRange(ctx, ev.Env, ev.X, ev.Y+1, ev.Z, c.radius)
	if err != nil {
		c.logTradeNotCreated(ctx, ev.Key, err)
		return
	}

	// Nobody stood on the notifier: no trade, no retry.
	if len(players) == 0 {
		return
	}

	buyer := players[0].Player

	payment, err := c.remote.RequestPayment(ctx, buyer, item.Display, item.Prices)
	if err != nil {
		c.logTradeNotCreated(ctx, ev.Key, err)
		return
	}

	trade := entity.Trade{
		ID:        payment.ID,
		RemoterID: item.RemoterID,
		State:     payment.State,
	}

	if err := c.trades.Upsert(trade); err != nil {
		c.logTradeNotCreated(ctx, ev.Key, err)
		return
	}

	tradesCreated.Inc()

	logger(ctx).Info(
		"trade created",
		logx.Stringer(logx.FieldTradeID, trade.ID),
		logx.Stringer(logx.FieldNotifierID, ev.Key),
		slog.String(logx.FieldPlayer, buyer),
		slog.String("state", trade.State),
	)
}

// HandlePayment finalizes a trade when its completion event arrives. The
// wait guard makes replays of the same event no-ops.
func (c *Coordinator) HandlePayment(ctx context.Context, ev event.Payment) {
	if ev.State != entity.TradeStateFinish {
		return
	}

	trade, ok := c.trades.Get(ev.ID)
	if !ok {
		return
	}

	if trade.State != entity.TradeStateWait {
		return
	}

	trade.State = entity.TradeStateFinish

	// Best effort: the trade still finishes when the lock fails.
	if err := c.remote.SetRemoteLock(ctx, trade.RemoterID, true); err != nil {
		logger(ctx).Error(
			"remoter lock failed",
			logx.Stringer(logx.FieldRemoterID, trade.RemoterID),
			logx.Error(err),
		)
	}

	if err := c.trades.Upsert(trade); err != nil {
		logger(ctx).Error(
			"failed to finish trade",
			logx.Stringer(logx.FieldTradeID, ev.ID),
			logx.Error(err),
		)
		return
	}

	tradesCompleted.Inc()

	logger(ctx).Info(
		"trade finished",
		logx.Stringer(logx.FieldTradeID, trade.ID),
	)
}

func (c *Coordinator) logTradeNotCreated(ctx context.Context, notifierID uuid.UUID, err error) {
	logger(ctx).Error(
		"failed to create trade",
		logx.Stringer(logx.FieldNotifierID, notifierID),
		logx.Error(err),
	)
}
