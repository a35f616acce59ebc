package models

import (
	"time"
)

// LedgerEvent : Ledger Event Model
//
// Append-only notification stream, one row per successful transition.
// Written in the same transaction as the mutation it describes, so the
// external indexer can rebuild its catalog from this table alone.
type LedgerEvent struct {
	ID           int64     `json:"id" bun:",pk,autoincrement"`
	Type         string    `json:"type" bun:",notnull"`
	AssetID      string    `json:"asset_id" bun:",notnull"`
	CapabilityID string    `json:"capability_id,omitempty" bun:",nullzero"`
	Recipient    string    `json:"recipient,omitempty" bun:",nullzero"`
	Listed       bool      `json:"listed"`
	Amount       int64     `json:"amount"`
	Category     uint8     `json:"category"`
	CreatedAt    time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
