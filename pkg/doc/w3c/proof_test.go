/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package w3c

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type subProof struct {
	CredDefID string   `json:"cred_def_id"`
	Revealed  []string `json:"revealed_attrs"`
}

type aggregatedProof struct {
	CHash    string     `json:"c_hash"`
	SubProof []subProof `json:"sub_proofs"`
}

func TestDefaultPresentationProof(t *testing.T) {
	proof := DefaultPresentationProof()

	require.Equal(t, PresentationProofType, proof.Type)
	require.Empty(t, proof.Challenge)
	require.Empty(t, proof.ProofValue)
}

func TestNewPresentationProof(t *testing.T) {
	payload := aggregatedProof{
		CHash: "12345",
		SubProof: []subProof{
			{CredDefID: sampleCredDefID, Revealed: []string{"name"}},
		},
	}

	proof, err := NewPresentationProof(sampleChallenge, payload)
	require.NoError(t, err)
	require.Equal(t, PresentationProofType, proof.Type)
	require.Equal(t, sampleChallenge, proof.Challenge)
	require.True(t, strings.HasPrefix(proof.ProofValue, "u"))

	var decoded aggregatedProof
	require.NoError(t, proof.DecodeProofValue(&decoded))
	require.Equal(t, payload, decoded)

	t.Run("payload that cannot be encoded", func(t *testing.T) {
		_, err := NewPresentationProof(sampleChallenge, make(chan int))
		require.Error(t, err)
		require.Contains(t, err.Error(), "encode presentation proof value")
	})
}

func TestPresentationProof_DecodeProofValue(t *testing.T) {
	t.Run("empty value", func(t *testing.T) {
		proof := DefaultPresentationProof()

		var out aggregatedProof
		require.True(t, errors.Is(proof.DecodeProofValue(&out), ErrEmptyProofValue))
	})

	t.Run("not a multibase value", func(t *testing.T) {
		proof := PresentationProof{Type: PresentationProofType, ProofValue: "!!"}

		var out aggregatedProof

		err := proof.DecodeProofValue(&out)
		require.Error(t, err)
		require.Contains(t, err.Error(), "decode presentation proof value")
	})
}
