package models

import (
	"context"
	"time"

	"github.com/uptrace/bun"
)

// Asset : Asset Model
//
// One row per licensable asset. `AvailableSupply` and `AccruedBalance` are
// the only counters mutated after creation; `TotalSupply` and `ListPrice`
// are fixed for the lifetime of the record.
type Asset struct {
	ID              string       `json:"id" bun:",pk"`
	Name            string       `json:"name" bun:",notnull"`
	Description     string       `json:"description" bun:",nullzero"`
	AssetURL        string       `json:"asset_url" bun:",nullzero"`
	ListPrice       int64        `json:"list_price" bun:",notnull"`
	TotalSupply     int64        `json:"total_supply" bun:",notnull"`
	AvailableSupply int64        `json:"available_supply" bun:",notnull"`
	Listed          bool         `json:"listed"`
	AccruedBalance  int64        `json:"accrued_balance" bun:",notnull,default:0"`
	Category        uint8        `json:"category"`
	CreatedAt       time.Time    `json:"created_at" bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt       bun.NullTime `json:"updated_at"`
}

func (a *Asset) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	switch query.(type) {
	case *bun.UpdateQuery:
		a.UpdatedAt = bun.NullTime{Time: time.Now()}
	}
	return nil
}

var _ bun.BeforeAppendModelHook = (*Asset)(nil)
