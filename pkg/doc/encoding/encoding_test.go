/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package encoding

import (
	"errors"
	"testing"

	"github.com/multiformats/go-multibase"
	"github.com/stretchr/testify/require"
)

type sampleObject struct {
	Name   string   `json:"name"`
	Values []int    `json:"values"`
	Tags   []string `json:"tags,omitempty"`
}

func TestBase58(t *testing.T) {
	t.Run("encode and decode", func(t *testing.T) {
		encoded := EncodeBase58([]byte("hello world"))
		require.Equal(t, "StV1DL6CwTryKyV", encoded)

		decoded, err := DecodeBase58(encoded)
		require.NoError(t, err)
		require.Equal(t, []byte("hello world"), decoded)
	})

	t.Run("empty string", func(t *testing.T) {
		decoded, err := DecodeBase58("")
		require.NoError(t, err)
		require.Empty(t, decoded)
	})

	t.Run("invalid alphabet", func(t *testing.T) {
		_, err := DecodeBase58("0OIl")
		require.True(t, errors.Is(err, ErrInvalidBase58))
	})
}

func TestBase64URL(t *testing.T) {
	require.Equal(t, "aGVsbG8", EncodeBase64URL([]byte("hello")))

	for _, s := range []string{"aGVsbG8", "aGVsbG8="} {
		decoded, err := DecodeBase64URL(s)
		require.NoError(t, err)
		require.Equal(t, []byte("hello"), decoded)
	}

	_, err := DecodeBase64URL("a*b")
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode base64url")
}

func TestMsgPack(t *testing.T) {
	in := sampleObject{Name: "degree", Values: []int{1, 2, 3}}

	data, err := MsgPackEncode(in)
	require.NoError(t, err)

	var out sampleObject
	require.NoError(t, MsgPackDecode(data, &out))
	require.Equal(t, in, out)

	t.Run("json tags name the fields", func(t *testing.T) {
		var raw map[string]interface{}
		require.NoError(t, MsgPackDecode(data, &raw))
		require.Contains(t, raw, "name")
		require.Contains(t, raw, "values")
		require.NotContains(t, raw, "tags")
	})

	t.Run("decode garbage", func(t *testing.T) {
		err := MsgPackDecode([]byte{0xc1}, &out)
		require.Error(t, err)
		require.Contains(t, err.Error(), "msgpack decode")
	})
}

func TestEncodedObject(t *testing.T) {
	in := sampleObject{Name: "proof", Values: []int{42}, Tags: []string{"a"}}

	encoded, err := EncodeObject(in)
	require.NoError(t, err)
	require.Equal(t, byte('u'), encoded[0])

	var out sampleObject
	require.NoError(t, DecodeObject(encoded, &out))
	require.Equal(t, in, out)

	t.Run("other multibase header", func(t *testing.T) {
		data, err := MsgPackEncode(in)
		require.NoError(t, err)

		other, err := multibase.Encode(multibase.Base58BTC, data)
		require.NoError(t, err)

		err = DecodeObject(other, &out)
		require.True(t, errors.Is(err, ErrUnsupportedEncoding))
	})

	t.Run("not multibase", func(t *testing.T) {
		err := DecodeObject("", &out)
		require.Error(t, err)
	})

	t.Run("unencodable value", func(t *testing.T) {
		_, err := EncodeObject(make(chan int))
		require.Error(t, err)
	})
}

func TestHash(t *testing.T) {
	const abc = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"

	require.Equal(t, abc, HashHex([]byte("abc")))
	require.Equal(t, abc, HashHex([]byte("a"), []byte("bc")))
	require.Len(t, SHA256(), 32)
}
