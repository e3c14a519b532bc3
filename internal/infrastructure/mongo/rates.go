package mongo

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/alikebabay/cake-price/internal/domain"
	"github.com/alikebabay/cake-price/internal/ports"
)

var _ ports.RateStore = (*RateRepo)(nil)

// rateDoc — документ в коллекции exchange_rates. _id — код валюты в верхнем
// регистре, поэтому ReplaceOne с upsert атомарен по ключу.
type rateDoc struct {
	Code      string    `bson:"_id"`
	Rate      float64   `bson:"rate"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// RateRepo реализует ports.RateStore для MongoDB.
type RateRepo struct {
	client *Client
	log    *slog.Logger
}

// NewRateRepo возвращает репозиторий курсов.
func NewRateRepo(client *Client, log *slog.Logger) *RateRepo {
	return &RateRepo{client: client, log: log}
}

// IsCached проверяет наличие документа по коду.
func (r *RateRepo) IsCached(ctx context.Context, code string) (bool, error) {
	n, err := r.client.RatesColl().CountDocuments(ctx,
		bson.M{"_id": strings.ToUpper(code)},
		options.Count().SetLimit(1))
	if err != nil {
		r.log.Debug("IsCached failed", "code", code, "error", err)
		return false, err
	}
	return n > 0, nil
}

// Get возвращает запись по коду или (nil, nil), если её нет. BSON-дата
// приводится к UTC сразу на границе адаптера.
func (r *RateRepo) Get(ctx context.Context, code string) (*domain.CachedRate, error) {
	var doc rateDoc
	err := r.client.RatesColl().FindOne(ctx, bson.M{"_id": strings.ToUpper(code)}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Debug("Get failed", "code", code, "error", err)
		return nil, err
	}
	return &domain.CachedRate{
		Code:       doc.Code,
		Amount:     doc.Rate,
		ObservedAt: doc.UpdatedAt.UTC(),
	}, nil
}

// Put создаёт или перезаписывает документ целиком, проставляя updated_at = now.
func (r *RateRepo) Put(ctx context.Context, code string, amount float64) error {
	code = strings.ToUpper(code)
	doc := rateDoc{Code: code, Rate: amount, UpdatedAt: time.Now().UTC()}
	_, err := r.client.RatesColl().ReplaceOne(ctx,
		bson.M{"_id": code}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		r.log.Debug("Put failed", "code", code, "error", err)
		return err
	}
	return nil
}

// Ping проверяет доступность БД (readiness).
func (r *RateRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx, nil)
}
