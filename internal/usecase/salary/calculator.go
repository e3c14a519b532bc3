// Package salary — чистый расчёт зарплаты в тортах. Без I/O, все данные приходят
// параметрами от диспетчера.
package salary

import (
	"math"
	"time"

	"github.com/alikebabay/cake-price/internal/domain"
)

// Result — производные поля зарплатной записи.
type Result struct {
	// CakeSalary — сколько тортов можно купить на месячную зарплату.
	CakeSalary float64
	// SalaryKZT — зарплата, пересчитанная в тенге.
	SalaryKZT float64
	ComputedAt time.Time
}

// Compute считает зарплату в тортах и в тенге.
//
//	salary      — зарплата в референсной валюте (обычно USD);
//	kztPerUnit  — сколько тенге стоит одна единица референсной валюты;
//	cakePriceKZT — цена торта в тенге.
//
// Цена торта в референсной валюте = cakePriceKZT / kztPerUnit, число тортов =
// salary / (cakePriceKZT / kztPerUnit). Возвращает domain.ErrInvalidComputation
// при отрицательной зарплате или некорректном курсе — вызывающая сторона
// превращает это в текст отказа зарплатного сегмента, дальше ошибка не идёт.
func Compute(salary, kztPerUnit, cakePriceKZT float64) (Result, error) {
	if math.IsNaN(salary) || salary < 0 {
		return Result{}, domain.ErrInvalidComputation
	}
	if math.IsNaN(kztPerUnit) || math.IsInf(kztPerUnit, 0) || kztPerUnit <= 0 {
		return Result{}, domain.ErrInvalidComputation
	}
	if math.IsNaN(cakePriceKZT) || cakePriceKZT <= 0 {
		return Result{}, domain.ErrInvalidComputation
	}
	return Result{
		CakeSalary: salary / (cakePriceKZT / kztPerUnit),
		SalaryKZT:  salary * kztPerUnit,
		ComputedAt: time.Now(),
	}, nil
}
