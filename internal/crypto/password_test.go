package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	encoded, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))
	// PHC-формат: $argon2id$v=..$m=..,t=..,p=..$salt$hash
	assert.Len(t, strings.Split(encoded, "$"), 6)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := HashPassword("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)

	// Случайная соль: одинаковые пароли дают разные хеши
	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("correct-horse-battery")
	require.NoError(t, err)

	assert.NoError(t, VerifyPassword("correct-horse-battery", encoded))
	assert.Error(t, VerifyPassword("wrong-password", encoded))
}

func TestVerifyPassword_InvalidFormat(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "garbage", encoded: "not-a-hash"},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
		{name: "missing parts", encoded: "$argon2id$v=19$m=65536,t=1,p=4"},
		{name: "bad salt encoding", encoded: "$argon2id$v=19$m=65536,t=1,p=4$!!!$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword("any-password", tt.encoded)
			assert.Error(t, err)
		})
	}
}

func TestGenerateSalt(t *testing.T) {
	first, err := GenerateSalt()
	require.NoError(t, err)
	assert.Len(t, first, SaltSize)

	second, err := GenerateSalt()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
