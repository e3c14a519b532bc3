package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alikebabay/cake-price/internal/alias"
	apihttp "github.com/alikebabay/cake-price/internal/api/http"
	"github.com/alikebabay/cake-price/internal/api/http/controllers/quote"
	"github.com/alikebabay/cake-price/internal/api/http/controllers/system"
	"github.com/alikebabay/cake-price/internal/infrastructure/click"
	"github.com/alikebabay/cake-price/internal/infrastructure/fx"
	"github.com/alikebabay/cake-price/internal/infrastructure/kafka"
	"github.com/alikebabay/cake-price/internal/infrastructure/mongo"
	"github.com/alikebabay/cake-price/internal/infrastructure/pg"
	"github.com/alikebabay/cake-price/internal/infrastructure/redis"
	"github.com/alikebabay/cake-price/internal/pkg/logger"
	"github.com/alikebabay/cake-price/internal/ports"
	"github.com/alikebabay/cake-price/internal/usecase/dispatcher"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (подключения открываются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// rateStore подключает выбранный бэкенд кэша курсов. Закрытие — через
// возвращённый close. Mongo переиспользует уже открытый клиент зарплат.
func (a *App) rateStore(ctx context.Context, mc *mongo.Client, log *slog.Logger) (ports.RateStore, func(), error) {
	switch a.cfg.Storage.Backend {
	case "pg":
		db, err := pg.New(&a.cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("db: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return pg.NewRateRepo(db, log), func() { db.Close() }, nil
	case "mongo":
		return mongo.NewRateRepo(mc, log), func() {}, nil
	case "redis":
		rdb, err := redis.New(&a.cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("redis: %w", err)
		}
		return redis.NewRateRepo(rdb, log), func() { _ = rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", a.cfg.Storage.Backend)
	}
}

// Run подключает хранилища, инициализирует зависимости и запускает HTTP-сервер (блокирующий вызов).
func (a *App) Run() error {
	log := logger.New()
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Mongo держит зарплаты всегда, независимо от выбранного бэкенда курсов.
	mc, err := mongo.New(ctx, &a.cfg.Mongo)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer func() { _ = mc.Disconnect(context.Background()) }()

	rates, closeRates, err := a.rateStore(ctx, mc, log)
	if err != nil {
		return err
	}
	defer closeRates()

	wages := mongo.NewWageRepo(mc, log)
	fxClient := fx.New(&a.cfg.FX, a.cfg.Cake.PriceKZT, log)

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()
	writer := click.NewQuoteWriter(ch)
	if err := writer.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse ensure table: %w", err)
	}

	uc := dispatcher.New(rates, wages, fxClient, producer, writer, dispatcher.Config{
		CakePriceKZT:      a.cfg.Cake.PriceKZT,
		BaseCurrency:      a.cfg.Cake.BaseCurrency,
		ReferenceCurrency: a.cfg.Cake.ReferenceCurrency,
		TTL:               time.Duration(a.cfg.Cake.TTLHours) * time.Hour,
		WageYear:          a.cfg.Cake.WageYear,
		WageUnit:          a.cfg.Cake.WageUnit,
	}, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(rates, log),
		quote.New(uc, alias.NewResolver(), log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "storage", a.cfg.Storage.Backend)

	return srv.Start(ctx)
}
