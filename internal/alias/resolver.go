package alias

// Resolver — неизменяемые таблицы соответствий, построенные один раз при старте.
type Resolver struct {
	byCurrency     map[string]string // нормализованный алиас → код ISO 4217
	byCountry      map[string]string // нормализованное название → ISO3
	homeByCurrency map[string]string // валюта → домашняя страна
	currencyByISO3 map[string]string // страна → дефолтная валюта
}

// NewResolver строит таблицы из статических словарей.
func NewResolver() *Resolver {
	r := &Resolver{
		byCurrency:     make(map[string]string),
		byCountry:      make(map[string]string),
		homeByCurrency: make(map[string]string, len(currencyHome)),
		currencyByISO3: make(map[string]string),
	}
	for code, aliases := range currencyAliases {
		r.byCurrency[code] = code // код указывает сам на себя: USD → USD
		for _, a := range aliases {
			r.byCurrency[NormalizeCurrency(a)] = code
		}
	}
	for iso3, names := range countryAliases {
		for _, n := range names {
			r.byCountry[NormalizeCountry(n)] = iso3
		}
	}
	for code, iso3 := range currencyHome {
		r.homeByCurrency[code] = iso3
		r.currencyByISO3[iso3] = code
	}
	for _, iso3 := range euroMembers {
		r.currencyByISO3[iso3] = "EUR"
	}
	return r
}

// ResolveCurrency ищет код валюты по нормализованному ключу. Если алиаса нет,
// но ключ — ровно три латинские буквы, принимаем его как ISO-код буквально.
func (r *Resolver) ResolveCurrency(key string) (string, bool) {
	if code, ok := r.byCurrency[key]; ok {
		return code, true
	}
	if isoCodeRe.MatchString(key) {
		return key, true
	}
	return "", false
}

// ResolveCountry ищет ISO3 по нормализованному названию страны. Только точное
// совпадение по таблице, без нечёткого поиска.
func (r *Resolver) ResolveCountry(key string) (string, bool) {
	iso3, ok := r.byCountry[key]
	return iso3, ok
}

// HomeCountry возвращает домашнюю страну валюты (USD → USA).
func (r *Resolver) HomeCountry(code string) (string, bool) {
	iso3, ok := r.homeByCurrency[code]
	return iso3, ok
}

// DefaultCurrency возвращает дефолтную валюту страны (KAZ → KZT).
func (r *Resolver) DefaultCurrency(iso3 string) (string, bool) {
	code, ok := r.currencyByISO3[iso3]
	return code, ok
}

// Resolve разбирает сырой ввод пользователя. Сначала пробуем валюту (при
// совпадении с обеими таблицами валюта всегда побеждает), затем страну;
// недостающую половину достраиваем по таблицам домашних стран и дефолтных
// валют. ("", "") — сигнал «ввод не распознан», вызывающая сторона должна
// переспросить пользователя.
func (r *Resolver) Resolve(raw string) (currencyCode, countryISO3 string) {
	if code, ok := r.ResolveCurrency(NormalizeCurrency(raw)); ok {
		iso3, _ := r.HomeCountry(code)
		return code, iso3
	}
	if iso3, ok := r.ResolveCountry(NormalizeCountry(raw)); ok {
		code, _ := r.DefaultCurrency(iso3)
		return code, iso3
	}
	return "", ""
}
