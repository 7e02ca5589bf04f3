/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package w3c

import (
	"errors"
	"fmt"

	"github.com/hyperledger/anoncreds-w3c-go/pkg/doc/encoding"
)

// PresentationProofType is the type of an AnonCreds presentation proof.
const PresentationProofType = "AnonCredsPresentationProofv1"

// ErrEmptyProofValue is returned when decoding a proof that carries no value.
var ErrEmptyProofValue = errors.New("presentation proof value is empty")

// PresentationProof binds the presented credentials together. Challenge and ProofValue are
// produced and consumed by the proving subsystem; this package never interprets them.
type PresentationProof struct {
	Type       string `json:"type"`
	Challenge  string `json:"challenge"`
	ProofValue string `json:"proofValue"`
}

// DefaultPresentationProof returns the placeholder proof of a freshly built presentation.
func DefaultPresentationProof() PresentationProof {
	return PresentationProof{Type: PresentationProofType}
}

// NewPresentationProof creates a proof for the given challenge (the verifier nonce) with payload
// stored as an encoded object in ProofValue.
func NewPresentationProof(challenge string, payload interface{}) (PresentationProof, error) {
	proof := PresentationProof{
		Type:      PresentationProofType,
		Challenge: challenge,
	}

	if err := proof.EncodeProofValue(payload); err != nil {
		return PresentationProof{}, err
	}

	return proof, nil
}

// EncodeProofValue stores payload in ProofValue using the multibase encoded-object format.
func (p *PresentationProof) EncodeProofValue(payload interface{}) error {
	value, err := encoding.EncodeObject(payload)
	if err != nil {
		return fmt.Errorf("encode presentation proof value: %w", err)
	}

	p.ProofValue = value

	return nil
}

// DecodeProofValue decodes ProofValue into out.
func (p *PresentationProof) DecodeProofValue(out interface{}) error {
	if p.ProofValue == "" {
		return ErrEmptyProofValue
	}

	if err := encoding.DecodeObject(p.ProofValue, out); err != nil {
		return fmt.Errorf("decode presentation proof value: %w", err)
	}

	return nil
}
