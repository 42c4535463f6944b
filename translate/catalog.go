package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
)

// german holds the translated diagnostics, keyed by their en-US format.
var german = map[string]string{
	"Invalid %v '%v': must end with b, d, or h (binary/decimal/hex). Example: 1011b, 11d, 0ah": "Ungültiger Wert für %v '%v': muss auf b, d oder h enden (binär/dezimal/hex). Beispiel: 1011b, 11d, 0ah",
	"Bad numeric format in '%v'":                      "Ungültiges Zahlenformat in '%v'",
	"%v '%v' out of range for %v-bit value (0..%v)":   "%v '%v' außerhalb des Bereichs für %v-Bit-Wert (0..%v)",
	"Missing operand for %v":                          "Fehlender Operand für %v",
	"Missing literal after %v":                        "Fehlendes Literal nach %v",
	"Unrecognized opcode or token: '%v'":              "Unbekannter Opcode oder Token: '%v'",
	"line %v '%v' %v":                                 "Zeile %v '%v' %v",
}

// supported languages; the first is the fallback.
var supported = []language.Tag{language.English, language.German}

var messages = newCatalog()

var matcher = language.NewMatcher(supported)

func newCatalog() *catalog.Builder {
	builder := catalog.NewBuilder(catalog.Fallback(supported[0]))
	for key, msg := range german {
		builder.SetString(language.English, key, key)
		builder.SetString(language.German, key, msg)
	}
	return builder
}
