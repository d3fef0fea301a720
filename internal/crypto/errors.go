package crypto

import "errors"

var (
	// ErrNotSealed is returned by Open when the blob does not start with
	// the sealed magic prefix.
	ErrNotSealed = errors.New("blob is not sealed")

	// ErrCiphertextTooShort is returned when a sealed blob is shorter than
	// its fixed header.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrDecryptionFailed is returned when the GCM tag does not verify.
	// Almost always a wrong passphrase.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEmptyPassphrase is returned by NewSealer for an empty passphrase.
	ErrEmptyPassphrase = errors.New("empty passphrase")
)
