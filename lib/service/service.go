package service

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"

	"github.com/labstack/gommon/random"
	"github.com/lichub/lichub.go/db/models"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/ziflex/lecho/v3"
)

const alphaNumBytes = random.Alphanumeric

type LichubService struct {
	Config      *Config
	DB          *bun.DB
	Logger      *lecho.Logger
	EventPubSub *Pubsub
}

func makeObjectId() string {
	b := make([]byte, 24)
	for i := range b {
		b[i] = alphaNumBytes[rand.Intn(len(alphaNumBytes))]
	}
	return string(b)
}

// lockAsset loads the asset row for a read-modify-write cycle. Under
// Postgres the row is locked so concurrent transitions on the same record
// serialize; sqlite has a single writer and needs no row lock.
func (svc *LichubService) lockAsset(ctx context.Context, tx bun.Tx, assetId string) (*models.Asset, error) {
	asset := &models.Asset{}
	query := tx.NewSelect().Model(asset).Where("id = ?", assetId).Limit(1)
	if svc.DB.Dialect().Name() == dialect.PG {
		query = query.For("UPDATE")
	}
	err := query.Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (svc *LichubService) FindAsset(ctx context.Context, assetId string) (*models.Asset, error) {
	asset := &models.Asset{}
	err := svc.DB.NewSelect().Model(asset).Where("id = ?", assetId).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAssetNotFound
	}
	if err != nil {
		return nil, err
	}
	return asset, nil
}

func (svc *LichubService) FindCapability(ctx context.Context, db bun.IDB, capabilityId, kind string) (*models.Capability, error) {
	capability := &models.Capability{}
	err := db.NewSelect().Model(capability).Where("id = ? AND kind = ?", capabilityId, kind).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCapabilityNotFound
	}
	if err != nil {
		return nil, err
	}
	return capability, nil
}

func (svc *LichubService) FindCoin(ctx context.Context, db bun.IDB, coinId string) (*models.Coin, error) {
	coin := &models.Coin{}
	err := db.NewSelect().Model(coin).Where("id = ?", coinId).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCoinNotFound
	}
	if err != nil {
		return nil, err
	}
	return coin, nil
}
