package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docuexpress/docuexpress-api/internal/domain/normalize"
)

func TestNombre_RecortaYMayusculas(t *testing.T) {
	assert.Equal(t, "PAPELERIA LOCA", normalize.Nombre("  papeleria loca "))
}

func TestNombre_EliminaDiacriticos(t *testing.T) {
	assert.Equal(t, "PAPELERIA ANGEL", normalize.Nombre("Papelería Ángel"))
	assert.Equal(t, "CANON", normalize.Nombre("cañon")) // ñ pierde la virgulilla
}

func TestNombre_Idempotente(t *testing.T) {
	una := normalize.Nombre("Papelería Ángel")
	assert.Equal(t, una, normalize.Nombre(una))
}

func TestNombre_Vacio(t *testing.T) {
	assert.Equal(t, "", normalize.Nombre("   "))
}
