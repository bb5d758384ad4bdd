package translit

// table maps lowercase runes that have no Unicode decomposition to their
// conventional Latin spelling. Uppercase input is resolved through its
// lowercase entry with the case restored by the caller. Multi-letter
// romanizations follow BGN/PCGN conventions for Cyrillic.
var table = map[rune]string{
	// Russian
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "yo", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "y", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "yu", 'я': "ya",

	// Ukrainian and Belarusian additions
	'є': "ye", 'і': "i", 'ї': "yi", 'ґ': "g", 'ў': "u",

	// Latin letters without decompositions
	'ß': "ss", 'æ': "ae", 'œ': "oe", 'ø': "o",
	'đ': "d", 'ð': "d", 'þ': "th", 'ł': "l", 'ħ': "h",
	'ŋ': "ng", 'ı': "i",
}
