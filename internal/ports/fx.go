package ports

//go:generate mockgen -source=fx.go -destination=../mocks/fx_mock.go -package=mocks

import "context"

// FXClient — контракт получения живого курса от внешнего провайдера.
// FetchRate возвращает цену торта в валюте code и ok=false при любом сбое
// (сеть, не-200, нет ключа в ответе, битый JSON). Ошибок наружу не отдаёт —
// сбой для вызывающего кода всегда обычное значение.
type FXClient interface {
	FetchRate(ctx context.Context, code string) (amount float64, ok bool)
}
