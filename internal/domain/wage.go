package domain

import (
	"fmt"
	"time"
)

// WageSource — метаданные источника данных о зарплате (например UNECE).
type WageSource struct {
	Name string
	URL  string
	Year int
}

// WageRecord — запись о средней зарплате страны за год в валюте Unit.
// Ключ — (ISO3, Year, Unit). Создаётся внешним процессом загрузки,
// сервис её читает и дописывает производные поля через upsert.
type WageRecord struct {
	ISO3        string
	Year        int
	Unit        string
	CountryName string
	// Salary — средняя зарплата в валюте Unit (как пришла от источника).
	Salary float64
	// CakeSalary и SalaryKZT — производные поля, пересчитываются при каждом запросе.
	// Могут быть устаревшими, если последний upsert не прошёл — это допустимо.
	CakeSalary float64
	SalaryKZT  float64
	Source     WageSource
	IngestedAt time.Time
	UpdatedAt  time.Time
}

// WagePatch — производные поля, дописываемые в запись после расчёта.
type WagePatch struct {
	CakeSalary float64
	SalaryKZT  float64
	UpdatedAt  time.Time
}

// WageKey — составной ключ документа зарплаты, например "KAZ_2024_USD".
func WageKey(iso3 string, year int, unit string) string {
	return fmt.Sprintf("%s_%d_%s", iso3, year, unit)
}
