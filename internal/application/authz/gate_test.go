package authz_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/internal/application/authz"
	"github.com/jhoicas/gestion-api/internal/domain"
)

// fakeLevels fuente de niveles en memoria para los tests de la puerta.
type fakeLevels struct {
	levels map[string]int
	err    error
}

func (f *fakeLevels) GetLevel(_ context.Context, username string) (int, bool, error) {
	if f.err != nil {
		return 0, false, f.err
	}
	level, ok := f.levels[username]
	return level, ok, nil
}

func newGate(levels map[string]int) *authz.Gate {
	return authz.NewGate(&fakeLevels{levels: levels})
}

func TestGate_AdminPuedeCrearUsuarios(t *testing.T) {
	gate := newGate(map[string]int{"admin": 1})
	err := gate.Authorize(context.Background(), "admin", authz.ModuleUsers, authz.ActionCreate)
	assert.NoError(t, err, "nivel 1 debe poder administrar usuarios")
}

func TestGate_OperadorBloqueadoEnUsuarios(t *testing.T) {
	gate := newGate(map[string]int{"operador": 3})
	err := gate.Authorize(context.Background(), "operador", authz.ModuleUsers, authz.ActionRead)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAuthorization)
	assert.Equal(t, authz.MsgInsufficientLevel, domain.Message(err))
}

func TestGate_OperadorPuedeLeerClientes(t *testing.T) {
	gate := newGate(map[string]int{"operador": 3})
	err := gate.Authorize(context.Background(), "operador", authz.ModuleClients, authz.ActionRead)
	assert.NoError(t, err, "leer clientes requiere nivel 3, el operador lo tiene")
}

func TestGate_OperadorBloqueadoAlCrearClientes(t *testing.T) {
	gate := newGate(map[string]int{"operador": 3})
	err := gate.Authorize(context.Background(), "operador", authz.ModuleClients, authz.ActionCreate)
	assert.ErrorIs(t, err, domain.ErrAuthorization)
}

func TestGate_SupervisorNoBorraProductos(t *testing.T) {
	// Borrar productos exige nivel 1; el supervisor (2) queda fuera.
	gate := newGate(map[string]int{"supervisor": 2})
	err := gate.Authorize(context.Background(), "supervisor", authz.ModuleProducts, authz.ActionDelete)
	assert.ErrorIs(t, err, domain.ErrAuthorization)

	err = gate.Authorize(context.Background(), "supervisor", authz.ModuleProducts, authz.ActionUpdate)
	assert.NoError(t, err, "modificar productos requiere nivel 2")
}

func TestGate_UsuarioVacioDenegado(t *testing.T) {
	gate := newGate(map[string]int{"admin": 1})
	err := gate.Authorize(context.Background(), "", authz.ModuleClients, authz.ActionRead)
	require.ErrorIs(t, err, domain.ErrAuthorization)
	assert.Equal(t, authz.MsgNoUser, domain.Message(err))
}

func TestGate_UsuarioInexistenteDenegado(t *testing.T) {
	gate := newGate(map[string]int{"admin": 1})
	err := gate.Authorize(context.Background(), "fantasma", authz.ModuleClients, authz.ActionRead)
	require.ErrorIs(t, err, domain.ErrAuthorization)
	assert.Equal(t, authz.MsgUserNotFound, domain.Message(err))
}

func TestGate_AccionDesconocidaDenegada(t *testing.T) {
	gate := newGate(map[string]int{"admin": 1})
	err := gate.Authorize(context.Background(), "admin", "backups", authz.ActionRead)
	require.ErrorIs(t, err, domain.ErrAuthorization)
	assert.Equal(t, authz.MsgUnknownAction, domain.Message(err))
}

func TestGate_ErrorDeAlmacenSePropaga(t *testing.T) {
	boom := errors.New("conexión caída")
	gate := authz.NewGate(&fakeLevels{err: boom})
	err := gate.Authorize(context.Background(), "admin", authz.ModuleClients, authz.ActionRead)
	assert.ErrorIs(t, err, boom, "las fallas de la fuente de niveles no deben convertirse en denegación")
}

func TestMinLevel_TablaDePermisos(t *testing.T) {
	cases := []struct {
		module string
		action authz.Action
		want   int
	}{
		{authz.ModuleUsers, authz.ActionCreate, 1},
		{authz.ModuleClients, authz.ActionRead, 3},
		{authz.ModuleClients, authz.ActionDelete, 2},
		{authz.ModuleProducts, authz.ActionDelete, 1},
		{authz.ModuleInventories, authz.ActionUpdate, 2},
		{authz.ModuleSales, authz.ActionReport, 3},
		{authz.ModuleReports, authz.ActionRead, 3},
	}
	for _, tc := range cases {
		got, ok := authz.MinLevel(tc.module, tc.action)
		require.True(t, ok, "%s/%s debe estar en la tabla", tc.module, tc.action)
		assert.Equal(t, tc.want, got, "%s/%s", tc.module, tc.action)
	}

	_, ok := authz.MinLevel(authz.ModuleReports, authz.ActionDelete)
	assert.False(t, ok, "reports no tiene acción delete")
}
