/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package encoding provides the string and binary encodings used by AnonCreds W3C documents:
// base58 identifiers, base64url payloads, message-pack serialization and the multibase
// "encoded object" format carried in proof values.
package encoding

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcutil/base58"
)

// ErrInvalidBase58 is returned when a string is not valid base58.
var ErrInvalidBase58 = errors.New("invalid base58 string")

// EncodeBase58 encodes data with the bitcoin base58 alphabet.
func EncodeBase58(data []byte) string {
	return base58.Encode(data)
}

// DecodeBase58 decodes a bitcoin base58 string.
func DecodeBase58(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}

	// base58.Decode signals a bad character by returning an empty slice
	decoded := base58.Decode(s)
	if len(decoded) == 0 {
		return nil, ErrInvalidBase58
	}

	return decoded, nil
}

// EncodeBase64URL encodes data as unpadded base64url.
func EncodeBase64URL(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeBase64URL decodes base64url, with or without padding.
func DecodeBase64URL(s string) ([]byte, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
	if err != nil {
		return nil, fmt.Errorf("decode base64url: %w", err)
	}

	return decoded, nil
}
