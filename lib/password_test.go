package lib

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPin(t *testing.T) {
	hash, err := HashPin("4821")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"))

	ok, err := VerifyPin("4821", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPinRejectsWrongPin(t *testing.T) {
	hash, err := HashPin("4821")
	require.NoError(t, err)

	ok, err := VerifyPin("0000", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPinSaltsEveryHash(t *testing.T) {
	first, err := HashPin("4821")
	require.NoError(t, err)
	second, err := HashPin("4821")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPinRejectsMalformedHash(t *testing.T) {
	_, err := VerifyPin("4821", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)

	_, err = VerifyPin("4821", "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA")
	assert.ErrorIs(t, err, ErrInvalidHash)
}

func TestSecureCompare(t *testing.T) {
	assert.True(t, SecureCompare([]byte("same"), []byte("same")))
	assert.False(t, SecureCompare([]byte("same"), []byte("other")))
	assert.False(t, SecureCompare([]byte("same"), []byte("samesame")))
}
