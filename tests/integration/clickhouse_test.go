package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alikebabay/cake-price/internal/domain"
	"github.com/alikebabay/cake-price/internal/infrastructure/click"
	"github.com/alikebabay/cake-price/tests/integration/testutil"
)

// clickContainer — контейнер ClickHouse, инициализируется в TestMain.
var clickContainer *testutil.ClickHouseContainer

// setupClickWriter подключается к тестовому ClickHouse и создаёт таблицу.
func setupClickWriter(t *testing.T) (*click.QuoteWriter, *click.Client) {
	t.Helper()

	ctx := context.Background()

	client, err := click.New(&click.Config{
		Host:     clickContainer.Host,
		Port:     clickContainer.Port,
		Database: clickContainer.Database,
		Username: clickContainer.User,
		Password: clickContainer.Password,
	})
	require.NoError(t, err, "не удалось подключиться к ClickHouse")

	writer := click.NewQuoteWriter(client)

	err = writer.EnsureTable(ctx)
	require.NoError(t, err, "не удалось создать таблицу")

	_, err = client.DB().ExecContext(ctx, "TRUNCATE TABLE default.quotes_analytics")
	require.NoError(t, err, "не удалось очистить таблицу")

	t.Cleanup(func() {
		client.Close()
	})

	return writer, client
}

// =============================================================================
// Тест ClickHouse writer
// =============================================================================

func TestClickWriter_WriteQuote(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, client := setupClickWriter(t)
	ctx := context.Background()

	now := time.Now().UTC()
	ev := domain.QuoteEvent{
		Code:       "USD",
		Amount:     1295.5,
		State:      domain.QuoteCreated,
		ObservedAt: now,
		ServedAt:   now,
	}

	err := writer.WriteQuote(ctx, ev)
	require.NoError(t, err, "WriteQuote должен успешно записать")

	var count uint64
	err = client.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM default.quotes_analytics WHERE code = 'USD' AND state = 'created'").Scan(&count)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "событие должно лежать в таблице")
}

func TestClickWriter_EnsureTableIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	writer, _ := setupClickWriter(t)
	ctx := context.Background()

	// Повторный вызов на существующей таблице не падает
	err := writer.EnsureTable(ctx)
	assert.NoError(t, err)
}
