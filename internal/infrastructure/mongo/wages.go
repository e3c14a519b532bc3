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

var _ ports.WageStore = (*WageRepo)(nil)

// wageDoc — документ в коллекции wages. _id — составной ключ "ISO3_год_валюта"
// (domain.WageKey). Записи создаёт внешний процесс загрузки; сервис читает их
// и дописывает производные поля.
type wageDoc struct {
	ID          string        `bson:"_id"`
	ISO3        string        `bson:"iso3"`
	Year        int           `bson:"year"`
	Unit        string        `bson:"unit"`
	CountryName string        `bson:"country,omitempty"`
	Value       float64       `bson:"value"`
	CakeSalary  float64       `bson:"cake_salary,omitempty"`
	SalaryKZT   float64       `bson:"salary_kzt,omitempty"`
	Source      wageSourceDoc `bson:"source,omitempty"`
	IngestedAt  time.Time     `bson:"ingested_at,omitempty"`
	UpdatedAt   time.Time     `bson:"updated_at,omitempty"`
}

type wageSourceDoc struct {
	Name string `bson:"name,omitempty"`
	URL  string `bson:"url,omitempty"`
	Year int    `bson:"year,omitempty"`
}

// WageRepo реализует ports.WageStore для MongoDB.
type WageRepo struct {
	client *Client
	log    *slog.Logger
}

// NewWageRepo возвращает репозиторий зарплат.
func NewWageRepo(client *Client, log *slog.Logger) *WageRepo {
	return &WageRepo{client: client, log: log}
}

// Get возвращает запись по ключу (iso3, year, unit) или (nil, nil), если её нет.
func (r *WageRepo) Get(ctx context.Context, iso3 string, year int, unit string) (*domain.WageRecord, error) {
	key := domain.WageKey(strings.ToUpper(iso3), year, strings.ToUpper(unit))
	var doc wageDoc
	err := r.client.WagesColl().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		r.log.Debug("wage Get failed", "key", key, "error", err)
		return nil, err
	}
	return docToRecord(doc), nil
}

// Upsert дописывает производные поля в запись. Если записи под каноническим
// ключом нет, один раз пробуем найти её устаревшим путём — по названию страны
// (см. findLegacyByCountryName); не нашли — создаём новую под каноническим ключом.
func (r *WageRepo) Upsert(ctx context.Context, iso3 string, year int, unit string, patch domain.WagePatch) error {
	iso3 = strings.ToUpper(iso3)
	unit = strings.ToUpper(unit)
	key := domain.WageKey(iso3, year, unit)

	updatedAt := patch.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	set := bson.M{
		"cake_salary": patch.CakeSalary,
		"salary_kzt":  patch.SalaryKZT,
		"updated_at":  updatedAt,
	}

	res, err := r.client.WagesColl().UpdateByID(ctx, key, bson.M{"$set": set})
	if err != nil {
		r.log.Debug("wage Upsert failed", "key", key, "error", err)
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	if legacyID, ok := r.findLegacyByCountryName(ctx, iso3, year, unit); ok {
		_, err := r.client.WagesColl().UpdateByID(ctx, legacyID, bson.M{"$set": set})
		if err != nil {
			r.log.Debug("wage legacy Upsert failed", "key", legacyID, "error", err)
			return err
		}
		return nil
	}

	set["iso3"] = iso3
	set["year"] = year
	set["unit"] = unit
	_, err = r.client.WagesColl().UpdateByID(ctx, key,
		bson.M{"$set": set}, options.UpdateOne().SetUpsert(true))
	if err != nil {
		r.log.Debug("wage Upsert insert failed", "key", key, "error", err)
		return err
	}
	return nil
}

// findLegacyByCountryName ищет документ, заведённый до перехода на составной
// ключ: _id тогда был названием страны, а поля iso3/year/unit уже заполнялись.
//
// Deprecated: миграционный шов для старых документов, не часть контракта
// WageStore. Выпилить после перезаливки коллекции wages.
func (r *WageRepo) findLegacyByCountryName(ctx context.Context, iso3 string, year int, unit string) (string, bool) {
	var doc struct {
		ID string `bson:"_id"`
	}
	err := r.client.WagesColl().FindOne(ctx,
		bson.M{"iso3": iso3, "year": year, "unit": unit}).Decode(&doc)
	if err != nil {
		return "", false
	}
	// Канонический ключ обработан выше; сюда попадают только старые _id.
	if doc.ID == domain.WageKey(iso3, year, unit) {
		return "", false
	}
	return doc.ID, true
}

func docToRecord(doc wageDoc) *domain.WageRecord {
	return &domain.WageRecord{
		ISO3:        doc.ISO3,
		Year:        doc.Year,
		Unit:        doc.Unit,
		CountryName: doc.CountryName,
		Salary:      doc.Value,
		CakeSalary:  doc.CakeSalary,
		SalaryKZT:   doc.SalaryKZT,
		Source: domain.WageSource{
			Name: doc.Source.Name,
			URL:  doc.Source.URL,
			Year: doc.Source.Year,
		},
		IngestedAt: doc.IngestedAt.UTC(),
		UpdatedAt:  doc.UpdatedAt.UTC(),
	}
}
