package inventory

import (
	"strings"
	"unicode"
)

// NormalizeTagCode canonicaliza el código de una etiqueta RFID: elimina todo espacio
// en blanco y pasa a mayúsculas. No valida formato hexadecimal ni longitud.
// Se aplica una sola vez, en el borde del gateway de mutaciones.
func NormalizeTagCode(raw string) string {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	return strings.ToUpper(stripped)
}
