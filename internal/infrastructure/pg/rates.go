package pg

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/alikebabay/cake-price/internal/domain"
	"github.com/alikebabay/cake-price/internal/ports"
)

var _ ports.RateStore = (*RateRepo)(nil)

// RateRepo реализует ports.RateStore для PostgreSQL. Одна строка на код валюты,
// обновление — атомарный upsert через ON CONFLICT.
type RateRepo struct {
	db  *DB
	log *slog.Logger
}

// NewRateRepo возвращает репозиторий курсов.
func NewRateRepo(db *DB, log *slog.Logger) *RateRepo {
	return &RateRepo{db: db, log: log}
}

// IsCached проверяет наличие записи по коду.
func (r *RateRepo) IsCached(ctx context.Context, code string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		`SELECT 1 FROM exchange_rates WHERE title = $1 LIMIT 1`,
		strings.ToUpper(code)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.log.Debug("IsCached failed", "code", code, "error", err)
		return false, err
	}
	return true, nil
}

// Get возвращает запись по коду или (nil, nil), если её нет.
// updated_at читается как TIMESTAMPTZ и приводится к UTC на границе адаптера.
func (r *RateRepo) Get(ctx context.Context, code string) (*domain.CachedRate, error) {
	var rate domain.CachedRate
	err := r.db.QueryRowContext(ctx,
		`SELECT title, rate, updated_at FROM exchange_rates WHERE title = $1`,
		strings.ToUpper(code)).Scan(&rate.Code, &rate.Amount, &rate.ObservedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Debug("Get failed", "code", code, "error", err)
		return nil, err
	}
	rate.ObservedAt = rate.ObservedAt.UTC()
	return &rate, nil
}

// Put создаёт или перезаписывает запись, проставляя updated_at = NOW().
func (r *RateRepo) Put(ctx context.Context, code string, amount float64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO exchange_rates (title, rate, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (title) DO UPDATE SET
			rate = excluded.rate,
			updated_at = NOW()`,
		strings.ToUpper(code), amount)
	if err != nil {
		r.log.Debug("Put failed", "code", code, "error", err)
		return err
	}
	return nil
}

// Ping проверяет доступность БД (readiness).
func (r *RateRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
