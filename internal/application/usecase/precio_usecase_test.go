package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docuexpress/docuexpress-api/internal/application/dto"
	"github.com/docuexpress/docuexpress-api/internal/domain/entity"
	"github.com/docuexpress/docuexpress-api/internal/domain/repository"
	"github.com/docuexpress/docuexpress-api/pkg/logger"
)

// fakePapelerias solo implementa GetByID; el resto del puerto no se toca en
// estas pruebas.
type fakePapelerias struct {
	repository.PapeleriaRepository
	papeleria *entity.Papeleria
}

func (f *fakePapelerias) GetByID(ctx context.Context, id, userID string) (*entity.Papeleria, error) {
	if f.papeleria != nil && f.papeleria.ID == id {
		return f.papeleria, nil
	}
	return nil, nil
}

type fakePrecios struct {
	repository.PrecioRepository
	guardados map[string]decimal.Decimal
}

func (f *fakePrecios) SetBulk(ctx context.Context, papeleriaID string, precios map[string]decimal.Decimal) error {
	f.guardados = precios
	return nil
}

func (f *fakePrecios) CountForPapeleria(ctx context.Context, papeleriaID string) (int, error) {
	return len(f.guardados), nil
}

func precioUseCaseDePrueba(precios *fakePrecios) *PrecioUseCase {
	papelerias := &fakePapelerias{papeleria: &entity.Papeleria{ID: "p1", UserID: "u1", Nombre: "CENTRO", IsActive: true}}
	return NewPrecioUseCase(precios, nil, papelerias, nil, logger.New(logger.Config{Level: "error"}))
}

// Un solo valor inválido aborta el guardado completo: la respuesta lista los
// errores uno por trámite y no se persiste nada.
func TestSetPreciosErroresEstructuradosSinGuardar(t *testing.T) {
	precios := &fakePrecios{}
	uc := precioUseCaseDePrueba(precios)

	resp, err := uc.SetPrecios(context.Background(), "p1", "u1", dto.SetPreciosRequest{
		Precios: map[string]string{
			"CURP": "abc",
			"RFC":  "-10",
			"ACTA": "45",
		},
	})
	require.NoError(t, err)

	require.Len(t, resp.Errores, 2)
	assert.Contains(t, resp.Errores[0], "CURP")
	assert.Contains(t, resp.Errores[1], "RFC")
	assert.Equal(t, 0, resp.Guardados)
	assert.Nil(t, precios.guardados, "no debe llegar nada al repositorio")
}

func TestSetPreciosGuardaValidos(t *testing.T) {
	precios := &fakePrecios{}
	uc := precioUseCaseDePrueba(precios)

	resp, err := uc.SetPrecios(context.Background(), "p1", "u1", dto.SetPreciosRequest{
		Precios: map[string]string{
			"CURP": "25.50",
			"RFC":  "", // en blanco: se omite sin error
		},
	})
	require.NoError(t, err)

	assert.Empty(t, resp.Errores)
	assert.Equal(t, 1, resp.Guardados)
	assert.Equal(t, 1, resp.TotalConfigurados)
	assert.True(t, precios.guardados["CURP"].Equal(decimal.RequireFromString("25.50")))
}

func TestSetPreciosPapeleriaInexistente(t *testing.T) {
	uc := precioUseCaseDePrueba(&fakePrecios{})

	_, err := uc.SetPrecios(context.Background(), "otra", "u1", dto.SetPreciosRequest{
		Precios: map[string]string{"CURP": "25"},
	})
	require.Error(t, err)
}

func TestParseMontosOmiteBlancos(t *testing.T) {
	validos, errores := parseMontos(map[string]string{
		"CURP":               "25.50",
		"RFC":                "",
		"ACTA DE NACIMIENTO": "   ",
		"ACTA DE MATRIMONIO": "80",
	})

	require.Empty(t, errores)
	require.Len(t, validos, 2)
	assert.True(t, validos["CURP"].Equal(decimal.RequireFromString("25.50")))
	assert.True(t, validos["ACTA DE MATRIMONIO"].Equal(decimal.NewFromInt(80)))
}

func TestParseMontosRecolectaTodosLosErrores(t *testing.T) {
	// Un valor inválido no corta la validación: se reportan todos juntos.
	validos, errores := parseMontos(map[string]string{
		"CURP":               "abc",
		"RFC":                "-10",
		"ACTA DE NACIMIENTO": "45",
	})

	require.Len(t, errores, 2)
	assert.Contains(t, errores[0], "CURP")
	assert.Contains(t, errores[1], "RFC")
	// los válidos se parsean igual, aunque el guardado se aborte después
	assert.Len(t, validos, 1)
}

func TestParseMontosNormalizaNombres(t *testing.T) {
	validos, errores := parseMontos(map[string]string{
		"acta de defunción": "60",
	})

	require.Empty(t, errores)
	_, ok := validos["ACTA DE DEFUNCION"]
	assert.True(t, ok)
}

func TestParseMontosVacio(t *testing.T) {
	validos, errores := parseMontos(nil)
	assert.Empty(t, validos)
	assert.Empty(t, errores)
}
