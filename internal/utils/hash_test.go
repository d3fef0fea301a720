// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

const testHashKey = "test-secret-key"

func TestHashString_MatchesHMAC(t *testing.T) {
	data := []byte(`{"version":1,"items":[]}`)

	h := hmac.New(sha256.New, []byte(testHashKey))
	h.Write(data)
	expected := hex.EncodeToString(h.Sum(nil))

	if got := HashString(data, testHashKey); got != expected {
		t.Fatalf("unexpected hash value\nwant: %s\ngot:  %s", expected, got)
	}
}

func TestHashString_DifferentKeys(t *testing.T) {
	data := []byte("snapshot")
	if HashString(data, "k1") == HashString(data, "k2") {
		t.Fatal("different keys must produce different signatures")
	}
}

func TestVerifyHashString(t *testing.T) {
	data := []byte("snapshot")
	sig := HashString(data, testHashKey)

	tests := []struct {
		name string
		data []byte
		key  string
		sig  string
		want bool
	}{
		{name: "valid", data: data, key: testHashKey, sig: sig, want: true},
		{name: "tampered data", data: []byte("snapshoT"), key: testHashKey, sig: sig},
		{name: "wrong key", data: data, key: "other", sig: sig},
		{name: "not hex", data: data, key: testHashKey, sig: "zz"},
		{name: "empty signature", data: data, key: testHashKey, sig: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyHashString(tt.data, tt.key, tt.sig); got != tt.want {
				t.Errorf("VerifyHashString() = %v, want %v", got, tt.want)
			}
		})
	}
}
