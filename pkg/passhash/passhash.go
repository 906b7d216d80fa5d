// Package passhash implementa el esquema de claves del sistema: digest hex de
// salt+clave con salt aleatorio por usuario. El formato almacenado (64 hex)
// es el heredado de la base existente; HASH_ITERATIONS > 0 activa PBKDF2 con
// el mismo salt y longitud de salida (los hashes estirados no son
// intercambiables con los heredados).
package passhash

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// SaltBytes bytes de entropía del salt (se almacena como hex de 32 chars).
const SaltBytes = 16

// Hasher calcula y verifica digests de clave.
type Hasher struct {
	iterations int // 0 = digest simple (formato heredado)
}

// New construye el hasher. iterations <= 0 usa SHA-256 de una pasada sobre
// salt+clave; iterations > 0 usa PBKDF2-SHA256 con ese número de rondas.
func New(iterations int) *Hasher {
	return &Hasher{iterations: iterations}
}

// NewSalt genera un salt aleatorio y lo devuelve en hex.
func (h *Hasher) NewSalt() (string, error) {
	buf := make([]byte, SaltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generar salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Hash calcula el digest hex (64 caracteres) de la clave con el salt dado.
func (h *Hasher) Hash(salt, password string) string {
	if h.iterations > 0 {
		key := pbkdf2.Key([]byte(password), []byte(salt), h.iterations, sha256.Size, sha256.New)
		return hex.EncodeToString(key)
	}
	sum := sha256.Sum256([]byte(salt + password))
	return hex.EncodeToString(sum[:])
}

// Verify recalcula el digest con el salt almacenado y compara en tiempo
// constante contra el hash almacenado.
func (h *Hasher) Verify(salt, password, storedHash string) bool {
	computed := h.Hash(salt, password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
