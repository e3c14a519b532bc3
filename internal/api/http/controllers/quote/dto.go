package quote

// QuoteRequest — запрос цены торта (для POST /api/v1/quote).
// Query — свободный текст пользователя: валюта или страна на русском
// или английском, символ валюты, ISO-код.
type QuoteRequest struct {
	Query string `json:"query" binding:"required"`
}

// QuoteResponse — ответ с готовым текстом для чата и разрезолвленными кодами.
type QuoteResponse struct {
	Text        string `json:"text"`
	Currency    string `json:"currency,omitempty"`
	CountryISO3 string `json:"country_iso3,omitempty"`
	Message     string `json:"message,omitempty"`
}
