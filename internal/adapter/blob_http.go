// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-item-sync/internal/config"
	"github.com/MKhiriev/go-item-sync/internal/logger"
	"github.com/MKhiriev/go-item-sync/internal/utils"
	"github.com/MKhiriev/go-item-sync/models"
	"github.com/go-resty/resty/v2"
)

const (
	blobsPath = "/api/blobs/"

	// hashHeader carries the hex HMAC-SHA256 of the request or response body.
	hashHeader = "HashSHA256"
)

type httpBlobStore struct {
	client *utils.HTTPClient

	hashKey string
	prefix  string
	keys    keyGenerator
	now     func() time.Time

	logger *logger.Logger
}

// NewHTTPBlobStore constructs the REST implementation of [BlobStore].
// Blobs are stored with PUT /api/blobs/{key} and fetched with
// GET /api/blobs/{key}. When hashKey is set every upload carries a
// HashSHA256 header, and downloads that carry one are verified.
//
// Returns an error if remoteCfg.Endpoint is empty or not a valid URL.
func NewHTTPBlobStore(remoteCfg config.ClientRemote, hashKey string, logger *logger.Logger) (BlobStore, error) {
	baseURL, err := normalizeBaseURL(remoteCfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid remote endpoint: %w", err)
	}

	return &httpBlobStore{
		client:  utils.NewHTTPClient(baseURL, remoteCfg.RequestTimeout),
		hashKey: hashKey,
		prefix:  remoteCfg.Prefix,
		keys:    utils.NewUUIDGenerator(),
		now:     time.Now,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Upload implements [BlobStore].
func (h *httpBlobStore) Upload(ctx context.Context, blob []byte, creds models.Credentials) (string, error) {
	key := joinKey(h.prefix, h.keys.Generate())

	req, err := h.authedRequest(ctx, creds)
	if err != nil {
		return "", err
	}
	if h.hashKey != "" {
		req.SetHeader(hashHeader, utils.HashString(blob, h.hashKey))
	}

	resp, err := req.
		SetHeader("Content-Type", "application/octet-stream").
		SetBody(blob).
		Put(blobsPath + url.PathEscape(key))
	if err != nil {
		return "", fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.logger.Debug().Str("func", "httpBlobStore.Upload").Str("key", key).Int("bytes", len(blob)).Msg("blob uploaded")
	return key, nil
}

// Download implements [BlobStore].
func (h *httpBlobStore) Download(ctx context.Context, key string, creds models.Credentials) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	req, err := h.authedRequest(ctx, creds)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get(blobsPath + url.PathEscape(key))
	if err != nil {
		return nil, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	blob := resp.Body()
	if sig := resp.Header().Get(hashHeader); sig != "" && h.hashKey != "" {
		if !utils.VerifyHashString(blob, h.hashKey, sig) {
			return nil, fmt.Errorf("%w: key %s", ErrIntegrity, key)
		}
	}

	return blob, nil
}

func (h *httpBlobStore) authedRequest(ctx context.Context, creds models.Credentials) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)

	token := strings.TrimSpace(creds.Token)
	if token == "" {
		return req, nil
	}
	if err := utils.CheckTokenExpiry(token, h.now()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	return req.SetHeader("Authorization", "Bearer "+token), nil
}
