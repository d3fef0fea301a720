// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the remote snapshot stores the sync coordinator
// publishes to and reads from.
//
// The abstraction is [BlobStore]: an opaque blob goes in, a key comes out,
// and the key gets the same blob back. Three implementations ship with the
// package, selected by Remote.Backend:
//
//   - "http": a REST blob service reached through resty, authenticated with a
//     bearer token and protected by an HMAC integrity header;
//   - "s3": an S3-compatible bucket through aws-sdk-go-v2;
//   - "local": a plain directory, for offline use and tests.
//
// Transport failures are mapped to the sentinels in errors.go
// ([ErrNotFound], [ErrUnauthorized], [ErrUnavailable]) so callers can use
// [errors.Is] regardless of the backend.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-item-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// BlobStore stores immutable snapshot blobs under generated keys.
type BlobStore interface {
	// Upload stores blob and returns the key it can be fetched with. Every
	// call produces a new key.
	Upload(ctx context.Context, blob []byte, creds models.Credentials) (string, error)

	// Download returns the blob stored under key. It fails with
	// [ErrNotFound] when no such blob exists.
	Download(ctx context.Context, key string, creds models.Credentials) ([]byte, error)
}
