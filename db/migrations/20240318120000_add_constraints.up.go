package migrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {

		if db.Dialect().Name().String() != "pg" {
			fmt.Printf("\033[1;31m%s\033[0m", "You are not using PostgreSQL. DB level checks can not be enabled!\n")
			return nil
		}
		sql := `
			-- supply and pricing invariants, enforced at the DB level as a
			-- second line of defense behind the service checks
				alter table assets
				ADD CONSTRAINT check_positive_supply
				CHECK (total_supply > 0);

				alter table assets
				ADD CONSTRAINT check_positive_price
				CHECK (list_price > 0);

				alter table assets
				ADD CONSTRAINT check_available_supply_bounds
				CHECK (available_supply >= 0 AND available_supply <= total_supply);

				alter table assets
				ADD CONSTRAINT check_accrued_balance
				CHECK (accrued_balance >= 0);

				alter table coins
				ADD CONSTRAINT check_coin_value
				CHECK (value >= 0);
		`
		if _, err := db.Exec(sql); err != nil {
			return err
		}
		return nil
	}, nil)
}
