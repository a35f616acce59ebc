package service

import (
	"context"

	"github.com/lichub/lichub.go/db/models"
)

// CreateCoin funds a holder with spendable value. This is the wallet
// collaborator's boundary: in production it is driven by whatever payment
// rail fronts the ledger, in tests it is the faucet.
func (svc *LichubService) CreateCoin(ctx context.Context, holder string, value int64) (*models.Coin, error) {
	coin := &models.Coin{
		ID:     makeObjectId(),
		Holder: holder,
		Value:  value,
	}
	_, err := svc.DB.NewInsert().Model(coin).Exec(ctx)
	if err != nil {
		return nil, err
	}
	return coin, nil
}
