package models

import (
	"time"
)

// Coin : Coin Model
//
// Stand-in for the wallet layer's spendable funds. A purchase presents a
// coin by id; the engine deducts exactly the list price and leaves any
// remainder on the coin. Withdrawals mint a fresh coin for the recipient.
type Coin struct {
	ID        string    `json:"id" bun:",pk"`
	Holder    string    `json:"holder" bun:",notnull"`
	Value     int64     `json:"value" bun:",notnull"`
	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
