package papeleria_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docuexpress/docuexpress-api/internal/domain/papeleria"
)

func estado(e papeleria.Estado) *papeleria.Estado { return &e }

func TestResolve(t *testing.T) {
	cases := []struct {
		name      string
		existente *papeleria.Estado
		want      papeleria.Accion
	}{
		{"ausente crea", nil, papeleria.Crear},
		{"inactiva reactiva", estado(papeleria.Inactiva), papeleria.Reactivar},
		{"activa rechaza", estado(papeleria.Activa), papeleria.Rechazar},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := papeleria.Resolve(tc.existente)
			assert.Equal(t, tc.want, got.Accion)
			if tc.want == papeleria.Rechazar {
				assert.NotEmpty(t, got.Motivo, "el rechazo debe llevar motivo")
			}
		})
	}
}
