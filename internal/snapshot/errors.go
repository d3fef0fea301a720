package snapshot

import "errors"

var (
	// ErrInvalidSnapshot is returned by Decode for empty, malformed or
	// inconsistent blobs (duplicate or empty ids).
	ErrInvalidSnapshot = errors.New("invalid snapshot")

	// ErrUnsupportedVersion is returned by Decode for an envelope version
	// this build does not understand.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrSealedSnapshot is returned by Decode for a sealed blob when no
	// passphrase is configured.
	ErrSealedSnapshot = errors.New("snapshot is sealed but no passphrase is configured")
)
