package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"github.com/alikebabay/cake-price/internal/domain"
)

// QuoteAnalytics — запись отданных курсов в хранилище для аналитики (например, ClickHouse).
type QuoteAnalytics interface {
	WriteQuote(ctx context.Context, ev domain.QuoteEvent) error
}
