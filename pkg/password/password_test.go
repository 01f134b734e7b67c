package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify_Success(t *testing.T) {
	t.Parallel()

	hash, err := Hash("secret123")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$"))
	assert.True(t, Verify("secret123", hash))
}

func TestHash_DistinctSalts(t *testing.T) {
	t.Parallel()

	h1, err := Hash("same-password")
	require.NoError(t, err)
	h2, err := Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, Verify("same-password", h1))
	assert.True(t, Verify("same-password", h2))
}

func TestVerify_Mismatch(t *testing.T) {
	t.Parallel()

	hash, err := Hash("secret123")
	require.NoError(t, err)
	assert.False(t, Verify("secret124", hash))
	assert.False(t, Verify("", hash))
}

func TestVerify_MalformedHash(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"not a hash", "hunter2"},
		{"wrong scheme", "$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"wrong version", "$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA"},
		{"bad params", "$argon2id$v=19$m=0,t=0,p=0$c2FsdA$aGFzaA"},
		{"bad base64", "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA"},
		{"oversized memory", "$argon2id$v=19$m=99999999,t=3,p=2$c2FsdEsalt12345$aGFzaGhhc2hoYXNoaGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, Verify("secret123", tt.encoded))
		})
	}
}
