package domain

import (
	"errors"
	"time"
)

// ErrEmptyQuery возвращается, когда диспетчеру не передали ни валюту, ни страну.
// Такой запрос должен был отсеяться раньше — на этапе резолвинга алиасов.
var ErrEmptyQuery = errors.New("empty query: no currency and no country")

// ErrInvalidComputation возвращается калькулятором зарплат при некорректных входных данных
// (отрицательная зарплата, нулевой или отрицательный курс).
var ErrInvalidComputation = errors.New("invalid computation")

// QuoteState — терминальное состояние одного обращения к кэшу курсов.
type QuoteState string

const (
	// QuoteHitFresh — запись в кэше есть и не старше TTL.
	QuoteHitFresh QuoteState = "hit_fresh"
	// QuoteRefreshed — запись была старше TTL, курс успешно обновлён из API.
	QuoteRefreshed QuoteState = "hit_stale_refreshed"
	// QuoteStaleServed — запись старше TTL, API недоступен, отдали устаревший кэш.
	QuoteStaleServed QuoteState = "hit_stale_served"
	// QuoteCreated — записи не было, курс получен из API и сохранён.
	QuoteCreated QuoteState = "created"
	// QuoteUnavailable — записи не было и API недоступен; данных нет.
	QuoteUnavailable QuoteState = "fetch_failed_no_cache"
)

// CachedRate — закэшированная материализованная цена торта в валюте Code:
// Amount единиц Code эквивалентны базовой сумме (цене торта в KZT).
// Уникальна по Code, при обновлении перезаписывается на месте.
type CachedRate struct {
	Code       string
	Amount     float64
	ObservedAt time.Time
}

// Quote — результат одного обращения к кэшу курсов: запись плюс состояние.
type Quote struct {
	Code       string
	Amount     float64
	ObservedAt time.Time
	State      QuoteState
}

// QuoteEvent — событие «курс отдан пользователю» для брокера и аналитики.
type QuoteEvent struct {
	Code       string     `json:"code"`
	Amount     float64    `json:"amount"`
	State      QuoteState `json:"state"`
	ObservedAt time.Time  `json:"observed_at"`
	ServedAt   time.Time  `json:"served_at"`
}
