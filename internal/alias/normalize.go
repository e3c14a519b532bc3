// Package alias разрешает свободный текст пользователя (название валюты, символ,
// ISO-код или название страны, латиница и кириллица вперемешку) в канонические
// коды: валюта — ISO 4217, страна — ISO 3166-1 alpha-3.
package alias

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// Для валют: оставляем буквы, цифры и валютные символы, остальное выбрасываем.
	currencyJunkRe = regexp.MustCompile(`[^A-ZА-Я0-9$₽¥₼€£]+`)
	// Для стран: названия содержат пробелы и уточнения в скобках,
	// поэтому мусор заменяем пробелом, а не вырезаем.
	countryJunkRe = regexp.MustCompile(`[^A-ZА-Я0-9() ]+`)
	spacesRe      = regexp.MustCompile(`\s+`)
	isoCodeRe     = regexp.MustCompile(`^[A-Z]{3}$`)
)

// normBase — общая часть нормализации: NFKC, трим, верхний регистр, Ё → Е.
func normBase(raw string) string {
	s := norm.NFKC.String(strings.TrimSpace(raw))
	s = strings.ToUpper(s)
	return strings.ReplaceAll(s, "Ё", "Е")
}

// NormalizeCurrency приводит ввод к ключу словаря валют: "  доллар!" → "ДОЛЛАР".
func NormalizeCurrency(raw string) string {
	return currencyJunkRe.ReplaceAllString(normBase(raw), "")
}

// NormalizeCountry приводит ввод к ключу словаря стран: пробельные серии
// схлопываются в один пробел, скобки сохраняются.
func NormalizeCountry(raw string) string {
	s := countryJunkRe.ReplaceAllString(normBase(raw), " ")
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}
