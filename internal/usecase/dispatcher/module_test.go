package dispatcher

import "testing"

func TestMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		want     string
	}{
		{
			name:     "миллионы с копейками",
			value:    1333333.575,
			decimals: 2,
			want:     "1,333,333.58",
		},
		{
			name:     "ровно тысяча",
			value:    1000,
			decimals: 0,
			want:     "1,000",
		},
		{
			name:     "меньше тысячи",
			value:    450.5,
			decimals: 2,
			want:     "450.50",
		},
		{
			name:     "доли единицы",
			value:    0.75,
			decimals: 2,
			want:     "0.75",
		},
		{
			name:     "цена торта",
			value:    600000,
			decimals: 0,
			want:     "600,000",
		},
		{
			name:     "отрицательное значение",
			value:    -45929.12,
			decimals: 2,
			want:     "-45,929.12",
		},
		{
			name:     "ноль",
			value:    0,
			decimals: 2,
			want:     "0.00",
		},
		{
			name:     "шесть знаков без дробной части",
			value:    123456,
			decimals: 0,
			want:     "123,456",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := money(tt.value, tt.decimals); got != tt.want {
				t.Errorf("money(%v, %d) = %q, want %q", tt.value, tt.decimals, got, tt.want)
			}
		})
	}
}
