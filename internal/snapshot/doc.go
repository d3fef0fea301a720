// Package snapshot converts the whole local item collection to and from a
// single opaque blob.
//
// A blob is a JSON [models.Snapshot] envelope, optionally sealed with a
// [crypto.Sealer] when a passphrase is configured.
package snapshot
