package cryptox_test

import (
	"strings"
	"testing"

	"github.com/aussiebroadwan/checklists/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	h := cryptox.NewHasher("test-pepper")

	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "password123"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"minimum length", "abcdef"},
		{"unicode password", "пароль密码🔒"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := h.Hash(tt.password)
			require.NoError(t, err)
			require.NotEqual(t, tt.password, hash)

			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "v=19", parts[2])
			require.Equal(t, "m=19456,t=2,p=1", parts[3])
			require.NotEmpty(t, parts[4])
			require.NotEmpty(t, parts[5])

			require.NoError(t, h.Verify(tt.password, hash))
		})
	}
}

func TestHash_UniqueSalts(t *testing.T) {
	h := cryptox.NewHasher("test-pepper")

	hash1, err := h.Hash("samepassword")
	require.NoError(t, err)
	hash2, err := h.Hash("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2)
	require.NoError(t, h.Verify("samepassword", hash1))
	require.NoError(t, h.Verify("samepassword", hash2))
}

func TestVerify_WrongPassword(t *testing.T) {
	h := cryptox.NewHasher("test-pepper")
	hash, err := h.Hash("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{
		"wrong-password",
		"Correct-Password",
		"correct-password ",
		"",
		strings.Repeat("x", 10000),
	} {
		require.ErrorIs(t, h.Verify(wrong, hash), cryptox.ErrMismatch, "password %q", wrong)
	}
}

func TestVerify_PepperMustMatch(t *testing.T) {
	hash, err := cryptox.NewHasher("pepper-one").Hash("password123")
	require.NoError(t, err)

	require.NoError(t, cryptox.NewHasher("pepper-one").Verify("password123", hash))
	require.ErrorIs(t, cryptox.NewHasher("pepper-two").Verify("password123", hash), cryptox.ErrMismatch)
}

func TestVerify_MalformedHash(t *testing.T) {
	h := cryptox.NewHasher("test-pepper")

	tests := []struct {
		name string
		hash string
	}{
		{"empty hash", ""},
		{"plaintext", "password123"},
		{"wrong algorithm", "$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing parts", "$argon2id$v=19$m=19456"},
		{"malformed parameters", "$argon2id$v=19$invalid$c2FsdA$aGFzaA"},
		{"invalid base64 salt", "$argon2id$v=19$m=19456,t=2,p=1$!!!invalid!!!$aGFzaA"},
		{"invalid base64 hash", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!invalid!!!"},
		{"empty hash part", "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$"},
		{"wrong version", "$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
		{"missing version", "$argon2id$m=19456,t=2,p=1$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, h.Verify("password123", tt.hash), cryptox.ErrMalformedHash)
		})
	}
}
