/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoding

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// structTag makes message-pack reuse the json field names of the encoded types.
const structTag = "json"

// MsgPackEncode serializes v into message-pack.
func MsgPackEncode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer

	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag(structTag)

	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("msgpack encode: %w", err)
	}

	return buf.Bytes(), nil
}

// MsgPackDecode deserializes message-pack data into out.
func MsgPackDecode(data []byte, out interface{}) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag(structTag)

	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("msgpack decode: %w", err)
	}

	return nil
}
