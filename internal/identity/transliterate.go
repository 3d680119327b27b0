package identity

// cyrillicLookalikes maps lowercase Cyrillic letters to the Latin characters
// players typically substitute when typing a name on a Latin keyboard. The
// mapping is intentionally lossy ("н" → "h", "и" → "n"): it matches how the
// names are *read*, not how they are romanized, so that a search for "HoBa"
// finds the player "Нова". Extend this table when adding scripts; do not
// replace existing entries, saved searches depend on them.
var cyrillicLookalikes = map[rune]string{
	'а': "a",
	'б': "b",
	'в': "b",
	'г': "r",
	'д': "a",
	'е': "e",
	'ё': "e",
	'ж': "x",
	'з': "3",
	'и': "n",
	'й': "n",
	'к': "k",
	'л': "n",
	'м': "m",
	'н': "h",
	'о': "o",
	'п': "n",
	'р': "p",
	'с': "c",
	'т': "t",
	'у': "y",
	'ф': "o",
	'х': "x",
	'ц': "u",
	'ч': "y",
	'ш': "w",
	'щ': "w",
	'ы': "b",
	'э': "e",
	'ю': "o",
	'я': "r",
}

// Transliterate replaces every mapped Cyrillic rune in s with its Latin
// look-alike. Unmapped runes pass through unchanged.
func Transliterate(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if latin, ok := cyrillicLookalikes[r]; ok {
			out = append(out, latin...)
			continue
		}
		out = append(out, string(r)...)
	}
	return string(out)
}
