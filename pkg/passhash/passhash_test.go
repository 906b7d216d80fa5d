package passhash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-api/pkg/passhash"
)

// El salt debe tener 16 bytes de entropía (32 hex) y ser distinto cada vez.
func TestNewSalt_LongitudYUnicidad(t *testing.T) {
	h := passhash.New(0)
	s1, err := h.NewSalt()
	require.NoError(t, err)
	s2, err := h.NewSalt()
	require.NoError(t, err)

	assert.Len(t, s1, passhash.SaltBytes*2)
	assert.NotEqual(t, s1, s2)
}

// El digest heredado es hex de 64 caracteres y nunca igual a la clave en claro.
func TestHash_FormatoHeredado(t *testing.T) {
	h := passhash.New(0)
	digest := h.Hash("abc123", "Secreta123")

	assert.Len(t, digest, 64)
	assert.NotEqual(t, "Secreta123", digest)
	// Determinista: mismo salt y clave producen el mismo digest.
	assert.Equal(t, digest, h.Hash("abc123", "Secreta123"))
	// Salt distinto cambia el digest.
	assert.NotEqual(t, digest, h.Hash("otroSalt", "Secreta123"))
}

func TestVerify_CorrectaEIncorrecta(t *testing.T) {
	h := passhash.New(0)
	salt, err := h.NewSalt()
	require.NoError(t, err)
	stored := h.Hash(salt, "Secreta123")

	assert.True(t, h.Verify(salt, "Secreta123", stored))
	assert.False(t, h.Verify(salt, "equivocada", stored))
	assert.False(t, h.Verify("saltEquivocado", "Secreta123", stored))
}

// El modo estirado mantiene formato (64 hex) pero no es compatible con el
// heredado: mismo salt y clave producen digests distintos.
func TestHash_ModoPBKDF2(t *testing.T) {
	legacy := passhash.New(0)
	stretched := passhash.New(10000)

	d1 := legacy.Hash("abc123", "Secreta123")
	d2 := stretched.Hash("abc123", "Secreta123")

	assert.Len(t, d2, 64)
	assert.NotEqual(t, d1, d2)
	assert.True(t, stretched.Verify("abc123", "Secreta123", d2))
	assert.False(t, stretched.Verify("abc123", "Secreta123", d1))
}
