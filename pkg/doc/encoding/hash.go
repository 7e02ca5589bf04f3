/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoding

import (
	"crypto/sha256"
	"encoding/hex"
)

// SHA256 hashes the concatenation of parts.
func SHA256(parts ...[]byte) []byte {
	h := sha256.New()

	for _, p := range parts {
		h.Write(p) //nolint:errcheck
	}

	return h.Sum(nil)
}

// HashHex returns the hex encoded SHA256 of the concatenation of parts.
func HashHex(parts ...[]byte) string {
	return hex.EncodeToString(SHA256(parts...))
}
