package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alikebabay/cake-price/internal/domain"
	"github.com/alikebabay/cake-price/internal/usecase/salary"
)

// Serve — точка входа диспетчера: по уже разрезолвленным идентификаторам собирает
// текст ответа. Валютный и зарплатный сегменты независимы, работают с разными
// ключами и выполняются параллельно; сбой одного не мешает другому — каждый
// сегмент всегда отдаёт либо данные, либо свой текст отказа.
func (u *UseCase) Serve(ctx context.Context, currencyCode, countryISO3 string) (string, error) {
	currencyCode = strings.ToUpper(strings.TrimSpace(currencyCode))
	countryISO3 = strings.ToUpper(strings.TrimSpace(countryISO3))
	if currencyCode == "" && countryISO3 == "" {
		return "", domain.ErrEmptyQuery
	}

	var (
		wg       sync.WaitGroup
		currText string
		salText  string
	)
	if currencyCode != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			currText = u.currencySegment(ctx, currencyCode)
		}()
	}
	if countryISO3 != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			salText = u.salarySegment(ctx, countryISO3)
		}()
	}
	wg.Wait()

	parts := make([]string, 0, 2)
	for _, p := range []string{currText, salText} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n\n"), nil
}

// currencySegment отвечает на «сколько стоит торт в валюте code».
func (u *UseCase) currencySegment(ctx context.Context, code string) string {
	// Базовая валюта — константа, без БД и сети.
	if code == u.cfg.BaseCurrency {
		return fmt.Sprintf("Кэш • 1 торт = %s %s (константа)", money(u.cfg.CakePriceKZT, 2), u.cfg.BaseCurrency)
	}

	q, ok := u.quoteFor(ctx, code)
	if !ok {
		return "⚠️ Сервис недоступен, кэша нет."
	}

	base := money(u.cfg.CakePriceKZT, 0)
	switch q.State {
	case domain.QuoteHitFresh:
		return fmt.Sprintf("Кэш • %s %s = %s %s (обновлено: %s)",
			base, u.cfg.BaseCurrency, money(q.Amount, 2), q.Code, q.ObservedAt.Format(tsFmt))
	case domain.QuoteRefreshed:
		return fmt.Sprintf("Обновил • %s %s = %s %s (обновлено: %s)",
			base, u.cfg.BaseCurrency, money(q.Amount, 2), q.Code, q.ObservedAt.Format(tsFmt))
	case domain.QuoteCreated:
		return fmt.Sprintf("Создал • %s %s = %s %s (обновлено: %s)",
			base, u.cfg.BaseCurrency, money(q.Amount, 2), q.Code, q.ObservedAt.Format(tsFmt))
	case domain.QuoteStaleServed:
		return fmt.Sprintf("⚠️ Сервис недоступен. Показываю кэш %s %s (обновлено: %s)",
			money(q.Amount, 2), q.Code, q.ObservedAt.Format(tsFmt))
	}
	// Недостижимо: quoteFor с ok=true возвращает только состояния выше.
	return "⚠️ Сервис недоступен, кэша нет."
}

// quoteFor — cache-aside ядро. Возвращает котировку и ok=false только в случае
// «кэша нет и API недоступен». Состояния терминальны для одного вызова:
// hit_fresh, hit_stale_refreshed, hit_stale_served, created, fetch_failed_no_cache.
// Две параллельные промашки по одному ключу дадут два фетча и два Put —
// последний победит; это допустимо, суммы идемпотентны с точностью провайдера.
func (u *UseCase) quoteFor(ctx context.Context, code string) (domain.Quote, bool) {
	cached, err := u.rates.Get(ctx, code)
	if err != nil {
		// Сбой чтения трактуем как промах: дальше обычный путь через API.
		u.log.Warn("rate store get failed", "code", code, "error", err)
		cached = nil
	}

	if cached != nil {
		age := time.Since(cached.ObservedAt)
		if age <= u.cfg.TTL {
			return u.emit(ctx, domain.Quote{
				Code: cached.Code, Amount: cached.Amount, ObservedAt: cached.ObservedAt,
				State: domain.QuoteHitFresh,
			}), true
		}
		// Старше TTL — одна синхронная попытка обновления.
		if amount, ok := u.fx.FetchRate(ctx, code); ok {
			now := time.Now()
			if err := u.rates.Put(ctx, code, amount); err != nil {
				u.log.Warn("rate store put failed", "code", code, "error", err)
			}
			return u.emit(ctx, domain.Quote{
				Code: code, Amount: amount, ObservedAt: now,
				State: domain.QuoteRefreshed,
			}), true
		}
		// API недоступен — отдаём устаревший кэш как есть. Это штатная деградация.
		return u.emit(ctx, domain.Quote{
			Code: cached.Code, Amount: cached.Amount, ObservedAt: cached.ObservedAt,
			State: domain.QuoteStaleServed,
		}), true
	}

	amount, ok := u.fx.FetchRate(ctx, code)
	if !ok {
		// Промах и API недоступен: данных нет, в хранилище ничего не пишем.
		return u.emit(ctx, domain.Quote{Code: code, State: domain.QuoteUnavailable}), false
	}
	now := time.Now()
	if err := u.rates.Put(ctx, code, amount); err != nil {
		u.log.Warn("rate store put failed", "code", code, "error", err)
	}
	return u.emit(ctx, domain.Quote{
		Code: code, Amount: amount, ObservedAt: now,
		State: domain.QuoteCreated,
	}), true
}

// emit публикует событие о выданной котировке в брокер (best effort) и
// возвращает котировку как есть.
func (u *UseCase) emit(ctx context.Context, q domain.Quote) domain.Quote {
	if u.broker == nil {
		return q
	}
	ev := domain.QuoteEvent{
		Code:       q.Code,
		Amount:     q.Amount,
		State:      q.State,
		ObservedAt: q.ObservedAt,
		ServedAt:   time.Now(),
	}
	value, err := json.Marshal(ev)
	if err != nil {
		u.log.Warn("quote event marshal", "code", q.Code, "error", err)
		return q
	}
	if err := u.broker.Send(ctx, []byte(q.Code), value); err != nil {
		u.log.Warn("broker send", "code", q.Code, "error", err)
	}
	return q
}

// salarySegment отвечает на «сколько тортов зарабатывают в стране iso3».
// Котировка референсной валюты берётся тем же cache-aside путём, что и в
// валютном сегменте.
func (u *UseCase) salarySegment(ctx context.Context, iso3 string) string {
	q, ok := u.quoteFor(ctx, u.cfg.ReferenceCurrency)
	if !ok {
		return fmt.Sprintf("⚠️ Курс %s недоступен — зарплату в тортах не рассчитать.", u.cfg.ReferenceCurrency)
	}

	wage, err := u.wages.Get(ctx, iso3, u.cfg.WageYear, u.cfg.WageUnit)
	if err != nil {
		u.log.Warn("wage store get failed", "iso3", iso3, "error", err)
		return "⚠️ Данные по зарплатам временно недоступны."
	}
	if wage == nil {
		return fmt.Sprintf("💼 Зарплата в %s недоступна.", iso3)
	}

	// q.Amount — цена торта в референсной валюте; курс KZT за единицу
	// восстанавливается делением базовой суммы на неё.
	kztPerUnit := u.cfg.CakePriceKZT / q.Amount
	res, err := salary.Compute(wage.Salary, kztPerUnit, u.cfg.CakePriceKZT)
	if err != nil {
		u.log.Warn("salary compute failed", "iso3", iso3, "salary", wage.Salary, "amount", q.Amount, "error", err)
		return "❌ Не удалось рассчитать зарплату в тортах."
	}

	// Производные поля дописываем обратно best effort: ответ пользователю
	// не зависит от успеха записи.
	patch := domain.WagePatch{CakeSalary: res.CakeSalary, SalaryKZT: res.SalaryKZT, UpdatedAt: res.ComputedAt}
	if err := u.wages.Upsert(ctx, iso3, u.cfg.WageYear, u.cfg.WageUnit, patch); err != nil {
		u.log.Warn("wage upsert failed", "iso3", iso3, "error", err)
	}

	return u.salaryCard(wage, q, res)
}

// salaryCard собирает текстовую карточку зарплаты и торта.
func (u *UseCase) salaryCard(wage *domain.WageRecord, q domain.Quote, res salary.Result) string {
	country := wage.CountryName
	if country == "" {
		country = wage.ISO3
	}

	lines := []string{
		fmt.Sprintf("🇰🇿 Казахский торт в %s стоит %s %s", country, money(q.Amount, 2), q.Code),
		fmt.Sprintf("💰 Обновлено: %s", q.ObservedAt.Format(tsFmt)),
		fmt.Sprintf("💼 Жители %s зарабатывают %s тортов в месяц", country, money(res.CakeSalary, 2)),
		fmt.Sprintf("👛 Средняя зарплата: %s %s", money(res.SalaryKZT, 0), u.cfg.BaseCurrency),
		fmt.Sprintf("• %s %s", money(wage.Salary, 1), wage.Unit),
	}

	src := wage.Source
	if src.Name == "" {
		src.Name = "неизвестный источник"
	}
	srcYear := src.Year
	if srcYear == 0 {
		srcYear = wage.Year
	}
	srcLine := fmt.Sprintf("📊 %s, %d", src.Name, srcYear)
	if src.URL != "" {
		srcLine = fmt.Sprintf("📊 [%s, %d](%s)", src.Name, srcYear, src.URL)
	}
	if updated := latest(wage.IngestedAt, wage.UpdatedAt); !updated.IsZero() {
		srcLine += fmt.Sprintf(" (обновлено: %s)", updated.Format(tsFmt))
	}
	lines = append(lines, srcLine)

	return strings.Join(lines, "\n")
}

func latest(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

// HandleQuoteEvent вызывается консьюмером брокера: пишет событие в аналитику.
func (u *UseCase) HandleQuoteEvent(ctx context.Context, ev domain.QuoteEvent) error {
	if err := u.analytics.WriteQuote(ctx, ev); err != nil {
		u.log.Warn("analytics write", "code", ev.Code, "error", err)
		return err
	}
	u.log.Info("quote stored to click", "code", ev.Code, "state", ev.State, "amount", ev.Amount)
	return nil
}
