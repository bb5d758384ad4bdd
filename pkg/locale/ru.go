package locale

import "github.com/dmitrymomot/fakedata/pkg/sample"

// RU is the built-in Russian dataset. Names and words are Cyrillic on
// purpose: identifier-producing generators (usernames, domains) must run
// them through transliteration, and the tests lean on that.
var RU = &Dataset{
	Code: "ru",

	FirstNames: []sample.Weighted[string]{
		{Value: "Александр", Weight: 5}, {Value: "Елена", Weight: 5},
		{Value: "Дмитрий", Weight: 4}, {Value: "Ольга", Weight: 4},
		{Value: "Сергей", Weight: 4}, {Value: "Наталья", Weight: 4},
		{Value: "Андрей", Weight: 3}, {Value: "Татьяна", Weight: 3},
		{Value: "Алексей", Weight: 3}, {Value: "Ирина", Weight: 3},
		{Value: "Михаил", Weight: 2}, {Value: "Светлана", Weight: 2},
		{Value: "Иван", Weight: 2}, {Value: "Анна", Weight: 2},
		{Value: "Владимир", Weight: 2}, {Value: "Мария", Weight: 2},
		{Value: "Николай", Weight: 1}, {Value: "Юлия", Weight: 1},
		{Value: "Павел", Weight: 1}, {Value: "Екатерина", Weight: 1},
		{Value: "Юрий", Weight: 1}, {Value: "Жанна", Weight: 1},
	},

	LastNames: []string{
		"Иванов", "Смирнов", "Кузнецов", "Попов", "Васильев",
		"Петров", "Соколов", "Михайлов", "Новиков", "Федоров",
		"Морозов", "Волков", "Алексеев", "Лебедев", "Семенов",
		"Егоров", "Павлов", "Козлов", "Степанов", "Николаев",
	},

	CityPrefixes: []string{"Верхний", "Нижний", "Новый", "Старый", "Северный", "Южный"},
	CityBases: []string{
		"Волго", "Ново", "Бело", "Красно", "Зелено",
		"Камен", "Озер", "Реч", "Лесо", "Горно",
	},
	CitySuffixes: []string{"град", "город", "горск", "озерск", "поль", "во", "ино"},

	StreetSuffixes: []string{
		"улица", "проспект", "переулок", "бульвар", "шоссе", "набережная",
	},

	BuildingNumberFormats: []string{"#", "##", "###"},
	ZipFormats:            []string{"######"},
	PhoneFormats:          []string{"+7 (###) ###-##-##", "8-###-###-##-##"},

	TLDs:             []string{"ru", "su", "com", "org"},
	FreeEmailDomains: []string{"yandex.ru", "mail.ru", "rambler.ru", "gmail.com"},

	Words: []string{
		"река", "гора", "лес", "поле", "море", "звезда",
		"солнце", "ветер", "камень", "птица", "волна", "туман",
		"рассвет", "мост", "дорога", "башня", "сад", "остров",
	},
}

func init() {
	MustRegister(RU)
}
