package models

import (
	"time"
)

// Capability : Capability Model
//
// The token registry. One row per capability token, keyed by the token id
// the caller presents. `Holder` is the address of the current owner; the
// engine never checks it for authorization (possession of the id is the
// security boundary), it only rewrites it when an operation instructs an
// ownership transfer.
type Capability struct {
	ID        string    `json:"id" bun:",pk"`
	AssetID   string    `json:"asset_id" bun:",notnull"`
	Asset     *Asset    `json:"-" bun:"rel:belongs-to,join:asset_id=id"`
	Kind      string    `json:"kind" bun:",notnull"`
	Holder    string    `json:"holder" bun:",notnull"`
	CreatedAt time.Time `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
}
