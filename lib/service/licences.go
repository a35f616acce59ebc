package service

import (
	"context"
	"database/sql"

	"github.com/lichub/lichub.go/common"
	"github.com/lichub/lichub.go/db/models"
	"github.com/uptrace/bun"
)

// MintLicence sells one licence against a listed asset. The payment coin
// is debited by exactly the list price; whatever value is left stays with
// the payer. Balance credit, supply decrement, capability creation and
// ownership assignment commit as one transaction.
func (svc *LichubService) MintLicence(ctx context.Context, assetId, coinId, recipient string) (*models.Capability, error) {
	var licenceCap *models.Capability
	var event models.LedgerEvent

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		asset, err := svc.lockAsset(ctx, tx, assetId)
		if err != nil {
			return err
		}
		if !asset.Listed {
			return ErrNotListed
		}
		if asset.AvailableSupply <= 0 {
			return ErrSupplyExhausted
		}
		coin, err := svc.FindCoin(ctx, tx, coinId)
		if err != nil {
			return err
		}
		if coin.Value < asset.ListPrice {
			return ErrInsufficientFunds
		}

		coin.Value -= asset.ListPrice
		if _, err := tx.NewUpdate().Model(coin).Column("value").WherePK().Exec(ctx); err != nil {
			return err
		}

		asset.AccruedBalance += asset.ListPrice
		asset.AvailableSupply -= 1
		if _, err := tx.NewUpdate().Model(asset).Column("accrued_balance", "available_supply", "updated_at").WherePK().Exec(ctx); err != nil {
			return err
		}

		licenceCap = &models.Capability{
			ID:      makeObjectId(),
			AssetID: asset.ID,
			Kind:    common.CapabilityKindLicence,
			Holder:  recipient,
		}
		if _, err := tx.NewInsert().Model(licenceCap).Exec(ctx); err != nil {
			return err
		}

		event = models.LedgerEvent{
			Type:         common.EventTypeLicenceMinted,
			AssetID:      asset.ID,
			CapabilityID: licenceCap.ID,
			Amount:       asset.ListPrice,
			Recipient:    recipient,
		}
		return svc.appendEvent(ctx, tx, &event)
	})
	if err != nil {
		return nil, err
	}

	svc.publishEvent(event)
	return licenceCap, nil
}

// TransferLicence reassigns a licence capability to a new holder. Pure
// ownership move: no balance or supply effect, no fee, no restriction on
// the recipient.
func (svc *LichubService) TransferLicence(ctx context.Context, assetId, licenceCapId, recipient string) (*models.Capability, error) {
	var licenceCap *models.Capability
	var event models.LedgerEvent

	err := svc.DB.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		asset, err := svc.lockAsset(ctx, tx, assetId)
		if err != nil {
			return err
		}
		licenceCap, err = svc.FindCapability(ctx, tx, licenceCapId, common.CapabilityKindLicence)
		if err != nil {
			return err
		}
		if licenceCap.AssetID != asset.ID {
			return ErrNotAuthorized
		}

		licenceCap.Holder = recipient
		if _, err := tx.NewUpdate().Model(licenceCap).Column("holder").WherePK().Exec(ctx); err != nil {
			return err
		}

		event = models.LedgerEvent{
			Type:         common.EventTypeLicenceTransferred,
			AssetID:      asset.ID,
			CapabilityID: licenceCap.ID,
			Recipient:    recipient,
		}
		return svc.appendEvent(ctx, tx, &event)
	})
	if err != nil {
		return nil, err
	}

	svc.publishEvent(event)
	return licenceCap, nil
}
