package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"github.com/alikebabay/cake-price/internal/domain"
)

// RateService — контракт бизнес-логики сервиса: отдать цену торта и/или зарплату
// в тортах по уже разрезолвленным идентификаторам, обработать событие из брокера.
// Serve всегда возвращает готовый текст для чата; единственная ошибка —
// нарушение входного контракта (оба идентификатора пустые).
type RateService interface {
	Serve(ctx context.Context, currencyCode, countryISO3 string) (string, error)
	HandleQuoteEvent(ctx context.Context, ev domain.QuoteEvent) error
}
