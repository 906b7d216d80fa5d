package domain_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/domain"
)

func TestErrores_ClasificanConErrorsIs(t *testing.T) {
	cases := []struct {
		err  error
		kind error
	}{
		{domain.Validation("x"), domain.ErrValidation},
		{domain.Reference("x"), domain.ErrReference},
		{domain.Conflict("x"), domain.ErrConflict},
		{domain.NotFound("x"), domain.ErrNotFound},
		{domain.Authorization("x"), domain.ErrAuthorization},
	}
	for _, tc := range cases {
		assert.ErrorIs(t, tc.err, tc.kind)
	}
}

func TestStorage_EnvuelveCausa(t *testing.T) {
	cause := fmt.Errorf("conexión rechazada")
	err := domain.Storage(cause, "Error de almacenamiento.")
	require.ErrorIs(t, err, domain.ErrStorage)
	assert.ErrorIs(t, err, cause, "la causa queda accesible para los logs")
	assert.Equal(t, "Error de almacenamiento.", domain.Message(err))
}

func TestStorage_CancelacionSeClasificaAparte(t *testing.T) {
	err := domain.Storage(context.Canceled, "Error de almacenamiento.")
	assert.ErrorIs(t, err, domain.ErrCanceled)
	assert.NotErrorIs(t, err, domain.ErrStorage)
	assert.Equal(t, "Operación cancelada.", domain.Message(err))

	err = domain.Storage(fmt.Errorf("query: %w", context.DeadlineExceeded), "Error de almacenamiento.")
	assert.ErrorIs(t, err, domain.ErrCanceled)
}

func TestMessage_TextoParaElUsuario(t *testing.T) {
	assert.Equal(t, "El cliente ya existe.", domain.Message(domain.Conflict("El cliente ya existe.")))
	assert.Equal(t, "", domain.Message(nil))
	assert.Equal(t, domain.ErrStorage.Error(), domain.Message(errors.New("pánico del driver")),
		"errores ajenos al dominio no filtran su texto")
}
