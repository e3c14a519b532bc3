package alias

// Статические словари алиасов. Собираются в мапы один раз при создании Resolver
// и дальше не меняются.

// currencyAliases — код ISO 4217 → варианты написания (символы, русские и
// английские названия, частые формы склонений). Сам код добавляется как алиас
// автоматически при построении.
var currencyAliases = map[string][]string{
	"USD": {"$", "ДОЛЛАР", "ДОЛЛАРЫ", "ДОЛЛАРОВ", "ДОЛАР", "БАКС", "БАКСЫ", "БАКСОВ", "DOLLAR", "DOLLARS"},
	"EUR": {"€", "ЕВРО", "EURO", "EUROS"},
	"RUB": {"₽", "РУБЛЬ", "РУБЛИ", "РУБЛЕЙ", "РУБ", "RUBLE", "ROUBLE", "RUBLES"},
	"KZT": {"ТЕНГЕ", "ТГ", "TENGE"},
	"UAH": {"ГРИВНА", "ГРИВНЫ", "ГРИВЕН", "ГРН", "HRYVNIA"},
	"BYN": {"БЕЛРУБЛЬ", "БЕЛОРУССКИЙРУБЛЬ", "ЗАЙЧИК", "ЗАЙЧИКИ"},
	"KGS": {"СОМ", "СОМЫ", "СОМОВ", "SOM"},
	"UZS": {"СУМ", "СУМЫ", "СУМОВ", "SUM", "SOUM"},
	"CNY": {"ЮАНЬ", "ЮАНИ", "ЮАНЕЙ", "YUAN", "RENMINBI", "RMB"},
	"GBP": {"£", "ФУНТ", "ФУНТЫ", "ФУНТОВ", "СТЕРЛИНГ", "POUND", "STERLING"},
	"JPY": {"¥", "ИЕНА", "ИЕНЫ", "ИЕН", "ЙЕНА", "YEN"},
	"TRY": {"ЛИРА", "ЛИРЫ", "ЛИР", "LIRA"},
	"AZN": {"₼", "МАНАТ", "МАНАТЫ", "МАНАТОВ", "MANAT"},
	"AMD": {"ДРАМ", "ДРАМЫ", "ДРАМОВ", "DRAM"},
	"GEL": {"ЛАРИ", "LARI"},
	"KRW": {"ВОНА", "ВОНЫ", "ВОН", "WON"},
	"INR": {"РУПИЯ", "РУПИИ", "РУПИЙ", "RUPEE", "RUPEES"},
	"AED": {"ДИРХАМ", "ДИРХАМЫ", "ДИРХАМОВ", "DIRHAM"},
	"CHF": {"ФРАНК", "ФРАНКИ", "ФРАНКОВ", "FRANC"},
	"PLN": {"ЗЛОТЫЙ", "ЗЛОТЫЕ", "ЗЛОТЫХ", "ZLOTY"},
	"CZK": {"КРОНА", "КРОНЫ", "КРОН", "KORUNA"},
	"TJS": {"СОМОНИ", "SOMONI"},
	"TMT": {"ТУРКМЕНМАНАТ"},
	"MDL": {"ЛЕЙ", "ЛЕИ", "ЛЕЕВ", "LEU"},
	"ILS": {"ШЕКЕЛЬ", "ШЕКЕЛИ", "ШЕКЕЛЕЙ", "SHEKEL"},
	"CAD": {"КАНАДСКИЙДОЛЛАР"},
	"AUD": {"АВСТРАЛИЙСКИЙДОЛЛАР"},
	"BRL": {"РЕАЛ", "РЕАЛЫ", "РЕАЛОВ", "REAL"},
	"SEK": {"ШВЕДСКАЯКРОНА"},
	"NOK": {"НОРВЕЖСКАЯКРОНА"},
}

// countryAliases — код ISO 3166-1 alpha-3 → варианты названия страны
// (нормализованные по правилам NormalizeCountry, т.е. с пробелами).
var countryAliases = map[string][]string{
	"KAZ": {"КАЗАХСТАН", "РЕСПУБЛИКА КАЗАХСТАН", "KAZAKHSTAN"},
	"USA": {"США", "АМЕРИКА", "СОЕДИНЕННЫЕ ШТАТЫ", "СОЕДИНЕННЫЕ ШТАТЫ АМЕРИКИ", "UNITED STATES", "UNITED STATES OF AMERICA", "USA"},
	"RUS": {"РОССИЯ", "РОССИЙСКАЯ ФЕДЕРАЦИЯ", "РФ", "RUSSIA", "RUSSIAN FEDERATION"},
	"UKR": {"УКРАИНА", "UKRAINE"},
	"BLR": {"БЕЛАРУСЬ", "БЕЛОРУССИЯ", "BELARUS"},
	"KGZ": {"КИРГИЗИЯ", "КЫРГЫЗСТАН", "KYRGYZSTAN"},
	"UZB": {"УЗБЕКИСТАН", "UZBEKISTAN"},
	"TJK": {"ТАДЖИКИСТАН", "TAJIKISTAN"},
	"TKM": {"ТУРКМЕНИСТАН", "TURKMENISTAN"},
	"CHN": {"КИТАЙ", "КНР", "CHINA", "CHINA (MAINLAND)"},
	"DEU": {"ГЕРМАНИЯ", "ФРГ", "GERMANY"},
	"FRA": {"ФРАНЦИЯ", "FRANCE"},
	"ITA": {"ИТАЛИЯ", "ITALY"},
	"ESP": {"ИСПАНИЯ", "SPAIN"},
	"NLD": {"НИДЕРЛАНДЫ", "ГОЛЛАНДИЯ", "NETHERLANDS"},
	"GBR": {"ВЕЛИКОБРИТАНИЯ", "АНГЛИЯ", "БРИТАНИЯ", "UNITED KINGDOM", "GREAT BRITAIN", "UK"},
	"JPN": {"ЯПОНИЯ", "JAPAN"},
	"TUR": {"ТУРЦИЯ", "ТУРЦИЯ (ТУРКИЕ)", "TURKEY", "TURKIYE"},
	"AZE": {"АЗЕРБАЙДЖАН", "AZERBAIJAN"},
	"ARM": {"АРМЕНИЯ", "ARMENIA"},
	"GEO": {"ГРУЗИЯ", "GEORGIA"},
	"KOR": {"КОРЕЯ", "ЮЖНАЯ КОРЕЯ", "РЕСПУБЛИКА КОРЕЯ", "KOREA", "SOUTH KOREA", "KOREA (REPUBLIC OF)"},
	"IND": {"ИНДИЯ", "INDIA"},
	"ARE": {"ОАЭ", "ЭМИРАТЫ", "ОБЪЕДИНЕННЫЕ АРАБСКИЕ ЭМИРАТЫ", "UNITED ARAB EMIRATES", "UAE"},
	"CHE": {"ШВЕЙЦАРИЯ", "SWITZERLAND"},
	"POL": {"ПОЛЬША", "POLAND"},
	"CZE": {"ЧЕХИЯ", "CZECHIA", "CZECH REPUBLIC"},
	"MDA": {"МОЛДОВА", "МОЛДАВИЯ", "MOLDOVA", "MOLDOVA (REPUBLIC OF)"},
	"ISR": {"ИЗРАИЛЬ", "ISRAEL"},
	"CAN": {"КАНАДА", "CANADA"},
	"AUS": {"АВСТРАЛИЯ", "AUSTRALIA"},
	"BRA": {"БРАЗИЛИЯ", "BRAZIL"},
	"SWE": {"ШВЕЦИЯ", "SWEDEN"},
	"NOR": {"НОРВЕГИЯ", "NORWAY"},
}

// currencyHome — валюта → «домашняя» страна. Используется, чтобы по валюте
// достроить страну для зарплатного сегмента (тенге → KAZ). У EUR одной домашней
// страны нет, поэтому его здесь нет.
var currencyHome = map[string]string{
	"USD": "USA",
	"KZT": "KAZ",
	"RUB": "RUS",
	"UAH": "UKR",
	"BYN": "BLR",
	"KGS": "KGZ",
	"UZS": "UZB",
	"TJS": "TJK",
	"TMT": "TKM",
	"CNY": "CHN",
	"GBP": "GBR",
	"JPY": "JPN",
	"TRY": "TUR",
	"AZN": "AZE",
	"AMD": "ARM",
	"GEL": "GEO",
	"KRW": "KOR",
	"INR": "IND",
	"AED": "ARE",
	"CHF": "CHE",
	"PLN": "POL",
	"CZK": "CZE",
	"MDL": "MDA",
	"ILS": "ISR",
	"CAD": "CAN",
	"AUD": "AUS",
	"BRL": "BRA",
	"SEK": "SWE",
	"NOK": "NOR",
}

// euroMembers — страны, для которых дефолтная валюта EUR (обратной записи
// в currencyHome у них нет).
var euroMembers = []string{"DEU", "FRA", "ITA", "ESP", "NLD"}
