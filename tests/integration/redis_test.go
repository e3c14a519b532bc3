package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alikebabay/cake-price/internal/infrastructure/redis"
	"github.com/alikebabay/cake-price/tests/integration/testutil"
)

// redisContainer — контейнер Redis, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var redisContainer *testutil.RedisContainer

// setupRedisRates подключается к тестовому Redis и очищает его.
func setupRedisRates(t *testing.T) *redis.RateRepo {
	t.Helper()

	client, err := redis.New(&redis.Config{
		Host:     redisContainer.Host,
		Port:     redisContainer.Port,
		Password: "",
		DB:       0,
	})
	require.NoError(t, err, "не удалось подключиться к Redis")

	// Очищаем Redis перед каждым тестом
	err = client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return redis.NewRateRepo(client, newTestLogger())
}

// =============================================================================
// Тесты Redis репозитория курсов
// =============================================================================

func TestRedisRates_PutAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupRedisRates(t)
	ctx := context.Background()

	before := time.Now().UTC().Add(-time.Second)
	err := repo.Put(ctx, "usd", 1295.5)
	require.NoError(t, err, "Put должен успешно сохранить")

	got, err := repo.Get(ctx, "USD")
	require.NoError(t, err, "Get должен успешно получить")
	require.NotNil(t, got, "запись должна существовать")

	assert.Equal(t, "USD", got.Code, "код хранится в верхнем регистре")
	assert.Equal(t, 1295.5, got.Amount)
	assert.True(t, got.ObservedAt.After(before), "ObservedAt проставляется при записи")
}

func TestRedisRates_Get_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupRedisRates(t)
	ctx := context.Background()

	got, err := repo.Get(ctx, "AMD")
	require.NoError(t, err, "отсутствие ключа — не ошибка")
	assert.Nil(t, got, "записи быть не должно")
}

func TestRedisRates_IsCached(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupRedisRates(t)
	ctx := context.Background()

	ok, err := repo.IsCached(ctx, "RUB")
	require.NoError(t, err)
	assert.False(t, ok, "до Put ключа нет")

	require.NoError(t, repo.Put(ctx, "RUB", 108000))

	ok, err = repo.IsCached(ctx, "rub")
	require.NoError(t, err)
	assert.True(t, ok, "после Put ключ есть, регистр кода не важен")
}

func TestRedisRates_Overwrite(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupRedisRates(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, "USD", 1100))
	require.NoError(t, repo.Put(ctx, "USD", 1200))

	got, err := repo.Get(ctx, "USD")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1200.0, got.Amount, "SET перезаписывает значение атомарно")
}

func TestRedisRates_ConcurrentPut(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupRedisRates(t)
	ctx := context.Background()

	// Две промашки по одному ключу дают два параллельных Put: победить должен
	// ровно один, целиком. Успешный разбор JSON в Get подтверждает, что
	// значение не порвано на части
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

	got, err := repo.Get(ctx, "USD")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Contains(t, amounts, got.Amount, "итог — одно из записанных значений целиком")
	assert.False(t, got.ObservedAt.IsZero(), "ObservedAt проставлен")
}

func TestRedisRates_FloatPrecision(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	repo := setupRedisRates(t)
	ctx := context.Background()

	// Материализованные цены бывают и крошечными (BTC), и огромными (UZS)
	testCases := []float64{
		0.1 + 0.2,
		1295.4503,
		1e-10,
		7.6e9,
	}

	for _, expected := range testCases {
		require.NoError(t, repo.Put(ctx, "XXX", expected))

		got, err := repo.Get(ctx, "XXX")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, expected, got.Amount, "значение %v должно сохраняться точно", expected)
	}
}
