package stringutil

import "strings"

var symbolNames = map[rune]string{
	'₹': "Rs.",
	'€': "EUR ",
	'£': "GBP ",
	'¥': "JPY ",
	'₩': "KRW ",
	'₱': "PHP ",
	'₫': "VND ",
}

// ASCII rewrites s for output devices limited to 7-bit text: known currency
// symbols are spelled out and any other non-ASCII rune is replaced by "?".
func ASCII(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r < 0x80:
			b.WriteRune(r)
		case symbolNames[r] != "":
			b.WriteString(symbolNames[r])
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
