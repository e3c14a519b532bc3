package click

import (
	"context"
	"fmt"

	"github.com/alikebabay/cake-price/internal/domain"
	"github.com/alikebabay/cake-price/internal/ports"
)

var _ ports.QuoteAnalytics = (*QuoteWriter)(nil)

const quotesAnalyticsFull = "default.quotes_analytics"

// QuoteWriter записывает события котировок в ClickHouse в формате, удобном
// для аналитики (доля stale-ответов, частота запросов по валютам и т.д.).
type QuoteWriter struct {
	db *Client
}

// NewQuoteWriter создаёт писатель котировок для аналитики.
func NewQuoteWriter(db *Client) *QuoteWriter {
	return &QuoteWriter{db: db}
}

// EnsureTable создаёт таблицу котировок для аналитики в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *QuoteWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			code String,
			amount Float64,
			state String,
			observed_at DateTime64(3),
			served_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (served_at, code)
		PARTITION BY toYYYYMM(served_at)`,
		quotesAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WriteQuote реализует ports.QuoteAnalytics: пишет одно событие в ClickHouse.
func (w *QuoteWriter) WriteQuote(ctx context.Context, ev domain.QuoteEvent) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (code, amount, state, observed_at, served_at) VALUES (?, ?, ?, ?, ?)",
		quotesAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.Code, ev.Amount, string(ev.State), ev.ObservedAt, ev.ServedAt)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}
