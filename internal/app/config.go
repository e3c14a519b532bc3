package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/alikebabay/cake-price/internal/api/http"
	"github.com/alikebabay/cake-price/internal/infrastructure/click"
	"github.com/alikebabay/cake-price/internal/infrastructure/fx"
	"github.com/alikebabay/cake-price/internal/infrastructure/kafka"
	"github.com/alikebabay/cake-price/internal/infrastructure/mongo"
	"github.com/alikebabay/cake-price/internal/infrastructure/pg"
	"github.com/alikebabay/cake-price/internal/infrastructure/redis"
)

const AppName = "CAKEBOT"

// CakeConfig — параметры предметной области. Переменные: CAKEBOT_CAKE_*.
// Цена торта в тенге — константа конфигурации, не рыночная величина.
type CakeConfig struct {
	PriceKZT          float64 `envconfig:"PRICE_KZT" default:"600000"`
	BaseCurrency      string  `envconfig:"BASE_CURRENCY" default:"KZT"`
	ReferenceCurrency string  `envconfig:"REFERENCE_CURRENCY" default:"USD"`
	TTLHours          int     `envconfig:"TTL_HOURS" default:"24"`
	WageYear          int     `envconfig:"WAGE_YEAR" default:"2024"`
	WageUnit          string  `envconfig:"WAGE_UNIT" default:"USD"`
}

// StorageConfig — выбор бэкенда кэша курсов: pg, mongo или redis.
// Выбирается один раз при старте; зарплаты всегда в Mongo.
type StorageConfig struct {
	Backend string `envconfig:"BACKEND" default:"pg"`
}

// Config — конфиг приложения. Заполняется через envconfig с префиксом CAKEBOT.
type Config struct {
	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
	FX         fx.Config         `envconfig:"FX"`
	Cake       CakeConfig        `envconfig:"CAKE"`
	Storage    StorageConfig     `envconfig:"STORAGE"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
