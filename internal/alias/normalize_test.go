package alias

import "testing"

func TestNormalizeCurrency(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "нижний регистр и пробелы",
			raw:  "  доллар  ",
			want: "ДОЛЛАР",
		},
		{
			name: "ё сворачивается в е",
			raw:  "ёвро",
			want: "ЕВРО",
		},
		{
			name: "знаки препинания выбрасываются",
			raw:  "доллар!!!",
			want: "ДОЛЛАР",
		},
		{
			name: "валютный символ сохраняется",
			raw:  " $ ",
			want: "$",
		},
		{
			name: "символ евро сохраняется",
			raw:  "€",
			want: "€",
		},
		{
			name: "латиница в нижнем регистре",
			raw:  "usd",
			want: "USD",
		},
		{
			name: "смешанный мусор",
			raw:  "руб.\t",
			want: "РУБ",
		},
		{
			name: "цифры сохраняются",
			raw:  "тг 2024",
			want: "ТГ2024",
		},
		{
			name: "пустая строка",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCurrency(tt.raw); got != tt.want {
				t.Errorf("NormalizeCurrency(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeCountry(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "пробелы схлопываются",
			raw:  "  соединенные    штаты  ",
			want: "СОЕДИНЕННЫЕ ШТАТЫ",
		},
		{
			name: "скобки сохраняются",
			raw:  "korea (republic of)",
			want: "KOREA (REPUBLIC OF)",
		},
		{
			name: "ё сворачивается в е",
			raw:  "зелёная страна",
			want: "ЗЕЛЕНАЯ СТРАНА",
		},
		{
			name: "мусор заменяется пробелом",
			raw:  "россия, федерация",
			want: "РОССИЯ ФЕДЕРАЦИЯ",
		},
		{
			name: "одно слово",
			raw:  "казахстан",
			want: "КАЗАХСТАН",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeCountry(tt.raw); got != tt.want {
				t.Errorf("NormalizeCountry(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
