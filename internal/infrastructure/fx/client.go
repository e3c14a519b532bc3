package fx

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Config — настройки клиента курсов валют. Переменные: CAKEBOT_FX_*.
// URL отдаёт курсы относительно базовой валюты (KZT) одним документом.
type Config struct {
	URL        string `envconfig:"URL" default:"https://open.er-api.com/v6/latest/KZT"`
	TimeoutSec int    `envconfig:"TIMEOUT_SEC" default:"5"`
}

// ratesResponse — интересующая часть ответа open.er-api.com.
type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Client реализует ports.FXClient поверх HTTP API курсов. Материализует цену:
// возвращает не курс, а basePrice, пересчитанный в запрошенную валюту.
type Client struct {
	url       string
	basePrice float64
	http      *http.Client
	log       *slog.Logger
}

// New создаёт клиент. basePrice — цена торта в базовой валюте (KZT).
func New(cfg *Config, basePrice float64, log *slog.Logger) *Client {
	if cfg == nil {
		cfg = &Config{}
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		url:       cfg.URL,
		basePrice: basePrice,
		http:      &http.Client{Timeout: timeout},
		log:       log,
	}
}

// FetchRate возвращает цену торта в валюте code и ok=true при успехе.
// Любой сбой (сеть, не-200, кривой JSON, неизвестный код) — (0, false):
// решение, что делать дальше, принимает вызывающий.
func (c *Client) FetchRate(ctx context.Context, code string) (float64, bool) {
	code = strings.ToUpper(code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		c.log.Warn("fx request build failed", "error", err)
		return 0, false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("fx request failed", "code", code, "error", err)
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("fx unexpected status", "code", code, "status", resp.StatusCode)
		return 0, false
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Warn("fx decode failed", "code", code, "error", err)
		return 0, false
	}

	rate, ok := body.Rates[code]
	if !ok || rate <= 0 {
		c.log.Warn("fx rate missing", "code", code)
		return 0, false
	}
	return c.basePrice * rate, true
}
