package service

import (
	"context"
	"database/sql"

	"github.com/lichub/lichub.go/common"
	"github.com/lichub/lichub.go/db/models"
	"github.com/uptrace/bun"
)

type MintAssetParams struct {
	Name        string
	Description string
	AssetURL    string
	ListPrice   int64
	TotalSupply int64
	Listed      bool
	Recipient   string
	Category    uint8
}

// MintAsset creates the asset record together with its admin capability.
// This is the only code path that creates either.
func (svc *LichubService) MintAsset(ctx context.Context, params MintAssetParams) (asset *models.Asset, adminCap *models.Capability, err error) {
	if params.TotalSupply <= 0 {
		return nil, nil, ErrInvalidSupply
	}
	if params.ListPrice <= 0 {
		return nil, nil, ErrInvalidPrice
	}

	asset = &models.Asset{
		ID:              makeObjectId(),
		Name:            params.Name,
		Description:     params.Description,
		AssetURL:        params.AssetURL,
		ListPrice:       params.ListPrice,
		TotalSupply:     params.TotalSupply,
		AvailableSupply: params.TotalSupply,
		Listed:          params.Listed,
		Category:        params.Category,
	}
	adminCap = &models.Capability{
		ID:      makeObjectId(),
		AssetID: asset.ID,
		Kind:    common.CapabilityKindAdmin,
		Holder:  params.Recipient,
	}
	event := models.LedgerEvent{
		Type:      common.EventTypeAssetMinted,
		AssetID:   asset.ID,
		Category:  params.Category,
		Recipient: params.Recipient,
	}

	err = svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(asset).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewInsert().Model(adminCap).Exec(ctx); err != nil {
			return err
		}
		return svc.appendEvent(ctx, tx, &event)
	})
	if err != nil {
		return nil, nil, err
	}

	svc.publishEvent(event)
	return asset, adminCap, nil
}

// UpdateListing flips the listed flag. A toggle to the value the record
// already has is a caller error, not a silent no-op.
func (svc *LichubService) UpdateListing(ctx context.Context, assetId, adminCapId string, listed bool) (*models.Asset, error) {
	var asset *models.Asset
	var event models.LedgerEvent

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		var err error
		asset, err = svc.lockAsset(ctx, tx, assetId)
		if err != nil {
			return err
		}
		adminCap, err := svc.FindCapability(ctx, tx, adminCapId, common.CapabilityKindAdmin)
		if err != nil {
			return err
		}
		if adminCap.AssetID != asset.ID {
			return ErrNotAuthorized
		}
		if asset.Listed == listed {
			return ErrListingUnchanged
		}

		asset.Listed = listed
		if _, err := tx.NewUpdate().Model(asset).Column("listed", "updated_at").WherePK().Exec(ctx); err != nil {
			return err
		}

		event = models.LedgerEvent{
			Type:    common.EventTypeAssetUpdated,
			AssetID: asset.ID,
			Listed:  listed,
		}
		return svc.appendEvent(ctx, tx, &event)
	})
	if err != nil {
		return nil, err
	}

	svc.publishEvent(event)
	return asset, nil
}

// Withdraw drains the accrued balance into a fresh coin owned by the
// recipient. A zero balance is legal and produces a zero-amount coin and
// event.
func (svc *LichubService) Withdraw(ctx context.Context, assetId, adminCapId, recipient string) (*models.Coin, error) {
	var coin *models.Coin
	var event models.LedgerEvent

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		asset, err := svc.lockAsset(ctx, tx, assetId)
		if err != nil {
			return err
		}
		adminCap, err := svc.FindCapability(ctx, tx, adminCapId, common.CapabilityKindAdmin)
		if err != nil {
			return err
		}
		if adminCap.AssetID != asset.ID {
			return ErrNotAuthorized
		}

		amount := asset.AccruedBalance
		asset.AccruedBalance = 0
		if _, err := tx.NewUpdate().Model(asset).Column("accrued_balance", "updated_at").WherePK().Exec(ctx); err != nil {
			return err
		}

		coin = &models.Coin{
			ID:     makeObjectId(),
			Holder: recipient,
			Value:  amount,
		}
		if _, err := tx.NewInsert().Model(coin).Exec(ctx); err != nil {
			return err
		}

		event = models.LedgerEvent{
			Type:      common.EventTypeWithdrawn,
			AssetID:   asset.ID,
			Amount:    amount,
			Recipient: recipient,
		}
		return svc.appendEvent(ctx, tx, &event)
	})
	if err != nil {
		return nil, err
	}

	svc.publishEvent(event)
	return coin, nil
}
