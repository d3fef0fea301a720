// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize  = 16
	nonceSize = 12
	keySize   = 32
)

// sealedMagic prefixes every sealed blob.
var sealedMagic = []byte("ISS1")

// sealer is the private implementation of [Sealer].
type sealer struct {
	passphrase []byte

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewSealer constructs a [Sealer] with the Argon2id parameters recommended
// by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewSealer(passphrase string) (Sealer, error) {
	return newSealer(passphrase, 1, 64*1024, 4)
}

func newSealer(passphrase string, argonTime, argonMemory uint32, argonThreads uint8) (*sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyPassphrase
	}
	return &sealer{
		passphrase:   []byte(passphrase),
		argonTime:    argonTime,
		argonMemory:  argonMemory,
		argonThreads: argonThreads,
	}, nil
}

// IsSealed reports whether blob carries the sealed magic prefix.
func IsSealed(blob []byte) bool {
	return bytes.HasPrefix(blob, sealedMagic)
}

// Seal implements [Sealer].
func (s *sealer) Seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := s.newGCM(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	blob := make([]byte, 0, len(sealedMagic)+saltSize+nonceSize+len(plaintext)+gcm.Overhead())
	blob = append(blob, sealedMagic...)
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	// magic and salt are bound as additional data
	aad := bytes.Clone(blob[:len(sealedMagic)+saltSize])
	return gcm.Seal(blob, nonce, plaintext, aad), nil
}

// Open implements [Sealer].
func (s *sealer) Open(blob []byte) ([]byte, error) {
	if !IsSealed(blob) {
		return nil, ErrNotSealed
	}

	headerLen := len(sealedMagic) + saltSize + nonceSize
	if len(blob) < headerLen {
		return nil, ErrCiphertextTooShort
	}

	salt := blob[len(sealedMagic) : len(sealedMagic)+saltSize]
	nonce := blob[len(sealedMagic)+saltSize : headerLen]

	gcm, err := s.newGCM(salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, blob[headerLen:], blob[:len(sealedMagic)+saltSize])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	return plaintext, nil
}

func (s *sealer) newGCM(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(s.passphrase, salt, s.argonTime, s.argonMemory, s.argonThreads, keySize)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
