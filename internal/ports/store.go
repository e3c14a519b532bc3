package ports

//go:generate mockgen -source=store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"

	"github.com/alikebabay/cake-price/internal/domain"
)

// RateStore — контракт кэша курсов. Ключ — код валюты (ISO 4217, верхний регистр),
// значение — материализованная цена торта. Put — атомарный по ключу upsert,
// всегда проставляет ObservedAt = now. Бэкенд выбирается один раз при старте.
type RateStore interface {
	IsCached(ctx context.Context, code string) (bool, error)
	// Get возвращает (nil, nil), если записи нет.
	Get(ctx context.Context, code string) (*domain.CachedRate, error)
	Put(ctx context.Context, code string, amount float64) error
	Ping(ctx context.Context) error
}

// WageStore — контракт хранилища зарплат. Ключ — (iso3, year, unit).
type WageStore interface {
	// Get возвращает (nil, nil), если записи нет.
	Get(ctx context.Context, iso3 string, year int, unit string) (*domain.WageRecord, error)
	// Upsert дописывает производные поля в существующую запись (или создаёт новую).
	Upsert(ctx context.Context, iso3 string, year int, unit string, patch domain.WagePatch) error
}
