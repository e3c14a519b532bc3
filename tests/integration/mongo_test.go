package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/alikebabay/cake-price/internal/domain"
	"github.com/alikebabay/cake-price/internal/infrastructure/mongo"
	"github.com/alikebabay/cake-price/tests/integration/testutil"
)

// mongoContainer — контейнер MongoDB, инициализируется в TestMain.
var mongoContainer *testutil.MongoContainer

// setupMongo подключается к тестовой MongoDB и чистит коллекции.
func setupMongo(t *testing.T) *mongo.Client {
	t.Helper()

	ctx := context.Background()

	client, err := mongo.New(ctx, &mongo.Config{
		URI:             mongoContainer.URI(),
		Database:        "testdb",
		RatesCollection: "exchange_rates",
		WagesCollection: "wages",
	})
	require.NoError(t, err, "не удалось подключиться к MongoDB")

	for _, coll := range []string{"exchange_rates", "wages"} {
		if err := client.DB().Collection(coll).Drop(ctx); err != nil {
			t.Logf("drop %s: %v (игнорируем)", coll, err)
		}
	}

	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	return client
}

// =============================================================================
// Тесты MongoDB репозитория курсов
// =============================================================================

func TestMongoRates_PutAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := mongo.NewRateRepo(setupMongo(t), newTestLogger())
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	require.NoError(t, repo.Put(ctx, "usd", 1295.5))

	got, err := repo.Get(ctx, "USD")
	require.NoError(t, err)
	require.NotNil(t, got, "запись должна существовать")

	assert.Equal(t, "USD", got.Code, "код хранится в верхнем регистре")
	assert.Equal(t, 1295.5, got.Amount)
	assert.True(t, got.ObservedAt.After(before), "ObservedAt проставляется при записи")
	assert.Equal(t, time.UTC, got.ObservedAt.Location(), "время приводится к UTC")
}

func TestMongoRates_Get_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := mongo.NewRateRepo(setupMongo(t), newTestLogger())
	ctx := context.Background()

	got, err := repo.Get(ctx, "AMD")
	require.NoError(t, err, "отсутствие документа — не ошибка")
	assert.Nil(t, got)
}

func TestMongoRates_Overwrite(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	client := setupMongo(t)
	repo := mongo.NewRateRepo(client, newTestLogger())
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "USD", 1100))
	require.NoError(t, repo.Put(ctx, "USD", 1200))

	got, err := repo.Get(ctx, "USD")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1200.0, got.Amount, "документ перезаписывается целиком")

	count, err := client.RatesColl().CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "одна валюта — один документ")
}

func TestMongoRates_ConcurrentPut(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	client := setupMongo(t)
	repo := mongo.NewRateRepo(client, newTestLogger())
	ctx := context.Background()

	// Две промашки по одному ключу дают два параллельных Put: победить должен
	// ровно один, целиком, без половинчатых документов
	const workers = 8
	amounts := make([]float64, workers)
	for i := range amounts {
		amounts[i] = 1000 + float64(i)
	}

	errCh := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(a float64) {
			defer wg.Done()
			errCh <- repo.Put(ctx, "USD", a)
		}(amounts[i])
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err, "каждый Put завершается успешно")
	}

	count, err := client.RatesColl().CountDocuments(ctx, bson.M{"_id": "USD"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "после гонки ровно один документ")

	got, err := repo.Get(ctx, "USD")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Contains(t, amounts, got.Amount, "итог — одно из записанных значений целиком")
	assert.False(t, got.ObservedAt.IsZero(), "ObservedAt проставлен")
}

func TestMongoRates_IsCached(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := mongo.NewRateRepo(setupMongo(t), newTestLogger())
	ctx := context.Background()

	ok, err := repo.IsCached(ctx, "RUB")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Put(ctx, "RUB", 108000))

	ok, err = repo.IsCached(ctx, "rub")
	require.NoError(t, err)
	assert.True(t, ok)
}

// =============================================================================
// Тесты MongoDB репозитория зарплат
// =============================================================================

func TestMongoWages_Get_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := mongo.NewWageRepo(setupMongo(t), newTestLogger())
	ctx := context.Background()

	got, err := repo.Get(ctx, "KAZ", 2024, "USD")
	require.NoError(t, err, "отсутствие записи — не ошибка")
	assert.Nil(t, got)
}

func TestMongoWages_UpsertPatchesSeededRecord(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	client := setupMongo(t)
	repo := mongo.NewWageRepo(client, newTestLogger())
	ctx := context.Background()

	// Запись, как её заводит загрузчик данных UNECE
	_, err := client.WagesColl().InsertOne(ctx, bson.M{
		"_id":     "KAZ_2024_USD",
		"iso3":    "KAZ",
		"year":    2024,
		"unit":    "USD",
		"country": "Казахстан",
		"value":   1000.0,
		"source":  bson.M{"name": "UNECE", "url": "https://w3.unece.org", "year": 2024},
	})
	require.NoError(t, err)

	err = repo.Upsert(ctx, "kaz", 2024, "usd", domain.WagePatch{
		CakeSalary: 0.75,
		SalaryKZT:  450000,
		UpdatedAt:  time.Now().UTC(),
	})
	require.NoError(t, err, "Upsert должен дописать производные поля")

	got, err := repo.Get(ctx, "KAZ", 2024, "USD")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 1000.0, got.Salary, "исходная зарплата не трогается")
	assert.Equal(t, "Казахстан", got.CountryName, "название страны не трогается")
	assert.Equal(t, "UNECE", got.Source.Name, "источник не трогается")
	assert.InEpsilon(t, 0.75, got.CakeSalary, 1e-9)
	assert.InEpsilon(t, 450000.0, got.SalaryKZT, 1e-9)
	assert.False(t, got.UpdatedAt.IsZero(), "updated_at проставлен")
}

func TestMongoWages_UpsertLegacyNameKeyedRecord(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	client := setupMongo(t)
	repo := mongo.NewWageRepo(client, newTestLogger())
	ctx := context.Background()

	// Документ, заведённый до перехода на составной ключ: _id — название страны
	_, err := client.WagesColl().InsertOne(ctx, bson.M{
		"_id":   "Армения",
		"iso3":  "ARM",
		"year":  2024,
		"unit":  "USD",
		"value": 700.0,
	})
	require.NoError(t, err)

	err = repo.Upsert(ctx, "ARM", 2024, "USD", domain.WagePatch{
		CakeSalary: 0.5,
		SalaryKZT:  300000,
	})
	require.NoError(t, err)

	// Патч лёг в старый документ, нового под каноническим ключом не появилось
	count, err := client.WagesColl().CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "дубликат под новым ключом не создаётся")

	var doc bson.M
	err = client.WagesColl().FindOne(ctx, bson.M{"_id": "Армения"}).Decode(&doc)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.5, doc["cake_salary"].(float64), 1e-9)
}

func TestMongoWages_UpsertCreatesWhenMissing(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	client := setupMongo(t)
	repo := mongo.NewWageRepo(client, newTestLogger())
	ctx := context.Background()

	err := repo.Upsert(ctx, "GEO", 2024, "USD", domain.WagePatch{
		CakeSalary: 0.4,
		SalaryKZT:  240000,
	})
	require.NoError(t, err)

	got, err := repo.Get(ctx, "GEO", 2024, "USD")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "GEO", got.ISO3)
	assert.Equal(t, 2024, got.Year)
	assert.Equal(t, "USD", got.Unit)
	assert.InEpsilon(t, 0.4, got.CakeSalary, 1e-9)
}
