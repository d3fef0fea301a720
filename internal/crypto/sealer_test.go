package crypto

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap Argon2id parameters keep the tests fast
func newTestSealer(t *testing.T, passphrase string) *sealer {
	t.Helper()
	s, err := newSealer(passphrase, 1, 8*1024, 1)
	require.NoError(t, err)
	return s
}

func TestNewSealer_EmptyPassphrase(t *testing.T) {
	_, err := NewSealer("")
	assert.ErrorIs(t, err, ErrEmptyPassphrase)
}

func TestSeal_OpenRoundTrip(t *testing.T) {
	s := newTestSealer(t, "correct horse battery staple")
	plaintext := []byte(`{"version":1,"items":[]}`)

	blob, err := s.Seal(plaintext)
	require.NoError(t, err)

	assert.True(t, IsSealed(blob))
	assert.False(t, bytes.Contains(blob, plaintext))
	assert.Len(t, blob, len(sealedMagic)+saltSize+nonceSize+len(plaintext)+16)

	got, err := s.Open(blob)
	require.NoError(t, err)
	assert.Equal(t, plaintext, got)
}

func TestSeal_FreshSaltEveryTime(t *testing.T) {
	s := newTestSealer(t, "pw")

	b1, err := s.Seal([]byte("same"))
	require.NoError(t, err)
	b2, err := s.Seal([]byte("same"))
	require.NoError(t, err)

	assert.NotEqual(t, b1, b2)
}

func TestOpen_Failures(t *testing.T) {
	s := newTestSealer(t, "right")
	blob, err := s.Seal([]byte("payload"))
	require.NoError(t, err)

	tampered := bytes.Clone(blob)
	tampered[len(tampered)-1] ^= 0xFF

	swappedSalt := bytes.Clone(blob)
	swappedSalt[len(sealedMagic)] ^= 0xFF

	tests := []struct {
		name    string
		sealer  *sealer
		blob    []byte
		wantErr error
	}{
		{name: "plain json", sealer: s, blob: []byte(`{"items":[]}`), wantErr: ErrNotSealed},
		{name: "header only", sealer: s, blob: []byte("ISS1short"), wantErr: ErrCiphertextTooShort},
		{name: "wrong passphrase", sealer: newTestSealer(t, "wrong"), blob: blob, wantErr: ErrDecryptionFailed},
		{name: "tampered ciphertext", sealer: s, blob: tampered, wantErr: ErrDecryptionFailed},
		{name: "tampered salt", sealer: s, blob: swappedSalt, wantErr: ErrDecryptionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.sealer.Open(tt.blob)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
