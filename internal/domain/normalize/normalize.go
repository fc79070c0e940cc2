// Package normalize define la normalización canónica de nombres
// (papelerías, proveedores): recorte de espacios, eliminación de
// diacríticos y paso a mayúsculas con reglas del español.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	upper = cases.Upper(language.Spanish)
	// NFD descompone los caracteres acentuados y runes.Remove descarta las
	// marcas combinantes (Mn); NFC recompone el resto.
	deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Nombre normaliza un nombre: "  Papelería Ángel " -> "PAPELERIA ANGEL".
// El resultado es la forma canónica bajo la que aplica la unicidad
// por (usuario, nombre).
func Nombre(s string) string {
	s = strings.TrimSpace(s)
	if out, _, err := transform.String(deaccent, s); err == nil {
		s = out
	}
	return upper.String(s)
}
