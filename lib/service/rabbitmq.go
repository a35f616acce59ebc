package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cenkalti/backoff/v4"
	"github.com/lichub/lichub.go/db/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

var bufPool sync.Pool = sync.Pool{
	New: func() interface{} { return new(bytes.Buffer) },
}

// StartRabbitMqPublisher pushes every committed ledger event to the
// configured topic exchange so the external indexer can build its catalog.
// The connection is re-established with exponential backoff; the durable
// ledger_events table covers any events missed while disconnected.
func (svc *LichubService) StartRabbitMqPublisher(ctx context.Context) error {
	// buffered so a short reconnect does not stall committing transitions
	events := make(chan models.LedgerEvent, 64)
	subId := svc.EventPubSub.Subscribe(LedgerEventTopic, events)
	defer svc.EventPubSub.Unsubscribe(subId, LedgerEventTopic)

	expBackoff := backoff.NewExponentialBackOff()
	// keep reconnecting for as long as the service runs
	expBackoff.MaxElapsedTime = 0

	return backoff.Retry(func() error {
		err := svc.publishToRabbitMq(ctx, events)
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		svc.Logger.Errorf("rabbitmq publisher disconnected, reconnecting: %v", err)
		return err
	}, backoff.WithContext(expBackoff, ctx))
}

func (svc *LichubService) publishToRabbitMq(ctx context.Context, events chan models.LedgerEvent) error {
	// It is recommended that, when possible, publishers and consumers
	// use separate connections so that consumers are isolated from potential
	// flow control measures that may be applied to publishing connections.
	// We therefore start a single publishing connection here instead of storing
	// one on the service object.
	conn, err := amqp.Dial(svc.Config.RabbitMQUri)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		svc.Config.RabbitMQEventExchange,
		// topic exchange so consumers can bind per asset or per event type
		"topic",
		// Durable and Non-Auto-Deleted exchanges will survive server restarts and remain
		// declared when there are no remaining bindings.
		true,
		false,
		// Non-Internal exchange's accept direct publishing
		false,
		// Nowait: We set this to false as we want to wait for a server response
		// to check wether the exchange was created succesfully
		false,
		nil,
	)
	if err != nil {
		return err
	}

	svc.Logger.Infof("Starting rabbitmq publisher")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-events:
			if err := svc.publishLedgerEvent(ctx, event, ch); err != nil {
				return err
			}
		}
	}
}

func (svc *LichubService) publishLedgerEvent(ctx context.Context, event models.LedgerEvent, ch *amqp.Channel) error {
	key := fmt.Sprintf("asset.%s.%s", event.AssetID, event.Type)

	payload := bufPool.Get().(*bytes.Buffer)
	payload.Reset()
	defer bufPool.Put(payload)

	err := json.NewEncoder(payload).Encode(event)
	if err != nil {
		return err
	}

	err = ch.PublishWithContext(ctx,
		svc.Config.RabbitMQEventExchange,
		key,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        payload.Bytes(),
		},
	)
	if err != nil {
		return err
	}

	svc.Logger.Debugf("Published ledger event %d (%s) with routing key %s", event.ID, event.Type, key)
	return nil
}
