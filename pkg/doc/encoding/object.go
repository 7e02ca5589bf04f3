/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoding

import (
	"errors"
	"fmt"

	"github.com/multiformats/go-multibase"
)

// ErrUnsupportedEncoding is returned when an encoded object does not use the base64url multibase header.
var ErrUnsupportedEncoding = errors.New("unsupported encoded object header")

// EncodeObject serializes v with message-pack and returns it as a multibase base64url string ("u" header).
func EncodeObject(v interface{}) (string, error) {
	data, err := MsgPackEncode(v)
	if err != nil {
		return "", fmt.Errorf("encode object: %w", err)
	}

	encoded, err := multibase.Encode(multibase.Base64url, data)
	if err != nil {
		return "", fmt.Errorf("encode object: %w", err)
	}

	return encoded, nil
}

// DecodeObject reverses EncodeObject into out.
func DecodeObject(s string, out interface{}) error {
	enc, data, err := multibase.Decode(s)
	if err != nil {
		return fmt.Errorf("decode object: %w", err)
	}

	if enc != multibase.Base64url {
		return fmt.Errorf("decode object: %w", ErrUnsupportedEncoding)
	}

	if err := MsgPackDecode(data, out); err != nil {
		return fmt.Errorf("decode object: %w", err)
	}

	return nil
}
