package service

import (
	"context"

	"github.com/lichub/lichub.go/db/models"
	"github.com/uptrace/bun"
)

// appendEvent writes the notification row inside the transition's
// transaction. If the transaction rolls back, so does the event: a failed
// operation is never observable on the stream.
func (svc *LichubService) appendEvent(ctx context.Context, tx bun.Tx, event *models.LedgerEvent) error {
	_, err := tx.NewInsert().Model(event).Exec(ctx)
	return err
}

// publishEvent hands a committed event to in-process subscribers. Callers
// invoke it after the transaction committed, never before.
func (svc *LichubService) publishEvent(event models.LedgerEvent) {
	svc.EventPubSub.Publish(LedgerEventTopic, event)
	svc.EventPubSub.Publish(event.AssetID, event)
}

// LedgerEventsSince returns the durable event stream starting at (not
// including) the given event id. The external indexer uses this to catch up
// after a disconnect.
func (svc *LichubService) LedgerEventsSince(ctx context.Context, sinceId int64) ([]models.LedgerEvent, error) {
	events := []models.LedgerEvent{}
	err := svc.DB.NewSelect().Model(&events).Where("id > ?", sinceId).OrderExpr("id ASC").Limit(500).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return events, nil
}
