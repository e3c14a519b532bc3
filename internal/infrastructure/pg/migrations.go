package pg

import (
	"context"
)

const createExchangeRatesTable = `
CREATE TABLE IF NOT EXISTS exchange_rates (
	title      TEXT PRIMARY KEY,
	rate       DOUBLE PRECISION NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Migrate создаёт таблицу exchange_rates, если её ещё нет.
func Migrate(ctx context.Context, db *DB) error {
	_, err := db.ExecContext(ctx, createExchangeRatesTable)
	return err
}
