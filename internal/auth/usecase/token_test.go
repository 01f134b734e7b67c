package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authdomain "saypal-backend/internal/auth/domain"
)

func TestTokenCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	codec, err := newTokenCodec("test-secret", "HS512")
	require.NoError(t, err)

	tests := []struct {
		name      string
		kind      tokenKind
		forceTOTP bool
	}{
		{"access", kindAccess, false},
		{"access gated", kindAccess, true},
		{"refresh", kindRefresh, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := codec.encode("user-123", tt.kind, tt.forceTOTP, time.Hour)
			require.NoError(t, err)

			claims, err := codec.decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, "user-123", claims.Subject)
			assert.Equal(t, tt.kind == kindRefresh, claims.Refresh)
			assert.Equal(t, tt.forceTOTP, claims.ForceTOTP)
		})
	}
}

func TestTokenCodec_ExpiredToken(t *testing.T) {
	t.Parallel()

	codec, err := newTokenCodec("test-secret", "HS512")
	require.NoError(t, err)

	encoded, err := codec.encode("user-123", kindAccess, false, -1*time.Second)
	require.NoError(t, err)

	_, err = codec.decode(encoded)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestTokenCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := newTokenCodec("right-secret", "HS512")
	require.NoError(t, err)
	verifier, err := newTokenCodec("wrong-secret", "HS512")
	require.NoError(t, err)

	encoded, err := signer.encode("user-123", kindRefresh, false, time.Hour)
	require.NoError(t, err)

	_, err = verifier.decode(encoded)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestTokenCodec_AlgorithmMismatch(t *testing.T) {
	t.Parallel()

	hs256, err := newTokenCodec("shared-secret", "HS256")
	require.NoError(t, err)
	hs512, err := newTokenCodec("shared-secret", "HS512")
	require.NoError(t, err)

	encoded, err := hs256.encode("user-123", kindAccess, false, time.Hour)
	require.NoError(t, err)

	// Same secret, different algorithm: must not verify.
	_, err = hs512.decode(encoded)
	assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
}

func TestTokenCodec_Malformed(t *testing.T) {
	t.Parallel()

	codec, err := newTokenCodec("test-secret", "HS512")
	require.NoError(t, err)

	for _, bad := range []string{"", "not.a.jwt", "a.b"} {
		_, err := codec.decode(bad)
		assert.ErrorIs(t, err, authdomain.ErrInvalidToken)
	}
}

func TestNewTokenCodec_RejectsNonHMAC(t *testing.T) {
	t.Parallel()

	for _, alg := range []string{"RS256", "none", "ES384", ""} {
		_, err := newTokenCodec("test-secret", alg)
		assert.Error(t, err, "algorithm %q", alg)
	}
}
