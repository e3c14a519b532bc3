package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alikebabay/cake-price/internal/domain"
	"github.com/alikebabay/cake-price/internal/ports"
)

var _ ports.RateStore = (*RateRepo)(nil)

const keyPrefix = "rate:"

// rateValue — значение под ключом "rate:USD". Время хранится строкой RFC3339
// и разбирается в time.Time на границе адаптера.
type rateValue struct {
	Rate      float64 `json:"rate"`
	UpdatedAt string  `json:"updated_at"`
}

// RateRepo реализует ports.RateStore для Redis. SET перезаписывает значение
// атомарно, TTL на ключи не вешается: политику свежести считает диспетчер.
type RateRepo struct {
	cli *Client
	log *slog.Logger
}

// NewRateRepo возвращает репозиторий курсов.
func NewRateRepo(cli *Client, log *slog.Logger) *RateRepo {
	return &RateRepo{cli: cli, log: log}
}

func rateKey(code string) string {
	return keyPrefix + strings.ToUpper(code)
}

// IsCached проверяет наличие ключа.
func (r *RateRepo) IsCached(ctx context.Context, code string) (bool, error) {
	n, err := r.cli.Exists(ctx, rateKey(code)).Result()
	if err != nil {
		r.log.Debug("IsCached failed", "code", code, "error", err)
		return false, err
	}
	return n > 0, nil
}

// Get возвращает запись по коду или (nil, nil), если ключа нет.
func (r *RateRepo) Get(ctx context.Context, code string) (*domain.CachedRate, error) {
	s, err := r.cli.Get(ctx, rateKey(code)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		r.log.Debug("Get failed", "code", code, "error", err)
		return nil, err
	}
	var val rateValue
	if err := json.Unmarshal([]byte(s), &val); err != nil {
		r.log.Debug("Get parse failed", "code", code, "error", err)
		return nil, fmt.Errorf("rate parse value: %w", err)
	}
	observed, err := time.Parse(time.RFC3339Nano, val.UpdatedAt)
	if err != nil {
		r.log.Debug("Get parse timestamp failed", "code", code, "error", err)
		return nil, fmt.Errorf("rate parse timestamp: %w", err)
	}
	return &domain.CachedRate{
		Code:       strings.ToUpper(code),
		Amount:     val.Rate,
		ObservedAt: observed.UTC(),
	}, nil
}

// Put создаёт или перезаписывает значение, проставляя updated_at = now.
func (r *RateRepo) Put(ctx context.Context, code string, amount float64) error {
	val := rateValue{Rate: amount, UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano)}
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	if err := r.cli.Set(ctx, rateKey(code), b, 0).Err(); err != nil {
		r.log.Debug("Put failed", "code", code, "error", err)
		return err
	}
	return nil
}

// Ping проверяет соединение (для readiness).
func (r *RateRepo) Ping(ctx context.Context) error {
	return r.cli.Ping(ctx)
}
