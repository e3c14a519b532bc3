// Package dispatcher — ядро сервиса: cache-aside выдача курсов с TTL и
// деградацией на устаревший кэш, плюс зарплатный сегмент поверх тех же котировок.
package dispatcher

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/alikebabay/cake-price/internal/ports"
)

// Config — параметры диспетчера. Значения приходят из конфига приложения
// и не меняются за время жизни процесса.
type Config struct {
	// CakePriceKZT — базовая сумма: цена одного торта в базовой валюте.
	CakePriceKZT float64
	// BaseCurrency — валюта базовой суммы (KZT). Запрос этой валюты отвечается
	// константой без I/O.
	BaseCurrency string
	// ReferenceCurrency — валюта зарплатных записей (USD).
	ReferenceCurrency string
	// TTL — максимальный возраст записи кэша до попытки обновления.
	TTL time.Duration
	// WageYear и WageUnit — ключ зарплатных записей текущего источника.
	WageYear int
	WageUnit string
}

// UseCase — диспетчер курсов, реализует ports.RateService.
type UseCase struct {
	rates     ports.RateStore
	wages     ports.WageStore
	fx        ports.FXClient
	broker    ports.Producer
	analytics ports.QuoteAnalytics
	cfg       Config
	log       *slog.Logger
}

// New создаёт диспетчер. broker и analytics могут быть nil — тогда события
// не публикуются (урезанная конфигурация, например в тестах).
func New(rates ports.RateStore, wages ports.WageStore, fx ports.FXClient,
	broker ports.Producer, analytics ports.QuoteAnalytics, cfg Config, log *slog.Logger) *UseCase {
	if log == nil {
		log = slog.Default()
	}
	return &UseCase{rates: rates, wages: wages, fx: fx, broker: broker, analytics: analytics, cfg: cfg, log: log}
}

// money форматирует сумму с разделителями тысяч: money(1333333.575, 2) → "1,333,333.58".
func money(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	frac := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}
	var b strings.Builder
	pre := len(intPart) % 3
	if pre > 0 {
		b.WriteString(intPart[:pre])
	}
	for i := pre; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// tsFmt — формат отметок времени в ответах пользователю.
const tsFmt = "2006-01-02 15:04:05"
