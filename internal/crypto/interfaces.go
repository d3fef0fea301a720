package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/sealer_mock.go -package=mock

// Sealer encrypts snapshot blobs before they leave the device.
//
// Sealed layout:
//
//	magic "ISS1" (4) ‖ salt (16) ‖ nonce (12) ‖ AES-256-GCM ciphertext
//
// The key is derived from the passphrase and the per-blob salt with
// Argon2id, so equal snapshots never produce equal blobs.
type Sealer interface {
	// Seal encrypts plaintext into a self-describing sealed blob.
	Seal(plaintext []byte) ([]byte, error)

	// Open reverses Seal. It fails with ErrNotSealed when blob lacks the
	// magic prefix and with ErrDecryptionFailed on a wrong passphrase or
	// tampered content.
	Open(blob []byte) ([]byte, error)
}
