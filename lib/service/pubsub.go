package service

import (
	"sync"

	"github.com/lichub/lichub.go/db/models"
)

// topic every ledger event is published under; the rabbitmq publisher
// drains it
const LedgerEventTopic = "ledger"

type Pubsub struct {
	mu   sync.RWMutex
	subs map[string]map[string]chan models.LedgerEvent
}

func NewPubsub() *Pubsub {
	ps := &Pubsub{}
	ps.subs = make(map[string]map[string]chan models.LedgerEvent)
	return ps
}

func (ps *Pubsub) Subscribe(topic string, ch chan models.LedgerEvent) (subId string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		ps.subs[topic] = make(map[string]chan models.LedgerEvent)
	}
	subId = makeObjectId()
	ps.subs[topic][subId] = ch
	return subId
}

func (ps *Pubsub) Unsubscribe(id string, topic string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.subs[topic] == nil {
		return
	}
	if ps.subs[topic][id] == nil {
		return
	}
	close(ps.subs[topic][id])
	delete(ps.subs[topic], id)
}

func (ps *Pubsub) Publish(topic string, event models.LedgerEvent) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	if ps.subs[topic] == nil {
		return
	}

	for _, ch := range ps.subs[topic] {
		ch <- event
	}
}
