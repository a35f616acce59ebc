package service_test

import (
	"testing"
	"time"

	"github.com/lichub/lichub.go/common"
	"github.com/lichub/lichub.go/db/models"
	"github.com/lichub/lichub.go/lib/service"
	"github.com/stretchr/testify/assert"
)

func TestPubsubDeliversToSubscriber(t *testing.T) {
	ps := service.NewPubsub()
	ch := make(chan models.LedgerEvent, 1)
	subId := ps.Subscribe(service.LedgerEventTopic, ch)
	defer ps.Unsubscribe(subId, service.LedgerEventTopic)

	ps.Publish(service.LedgerEventTopic, models.LedgerEvent{
		Type:    common.EventTypeAssetMinted,
		AssetID: "asset-1",
	})

	select {
	case event := <-ch:
		assert.Equal(t, common.EventTypeAssetMinted, event.Type)
		assert.Equal(t, "asset-1", event.AssetID)
	case <-time.After(time.Second):
		t.Fatal("expected event was not delivered")
	}
}

func TestPubsubIgnoresOtherTopics(t *testing.T) {
	ps := service.NewPubsub()
	ch := make(chan models.LedgerEvent, 1)
	subId := ps.Subscribe("asset-1", ch)
	defer ps.Unsubscribe(subId, "asset-1")

	ps.Publish("asset-2", models.LedgerEvent{Type: common.EventTypeAssetUpdated, AssetID: "asset-2"})

	select {
	case <-ch:
		t.Fatal("event for another topic must not be delivered")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPubsubUnsubscribeClosesChannel(t *testing.T) {
	ps := service.NewPubsub()
	ch := make(chan models.LedgerEvent, 1)
	subId := ps.Subscribe(service.LedgerEventTopic, ch)

	ps.Unsubscribe(subId, service.LedgerEventTopic)

	_, open := <-ch
	assert.False(t, open)
}
