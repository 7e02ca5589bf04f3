/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package w3c

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingW3CContext is returned when @context lacks the W3C credentials context.
	ErrMissingW3CContext = errors.New("missing w3c context")

	// ErrMissingAnonCredsContext is returned when @context lacks the AnonCreds context.
	ErrMissingAnonCredsContext = errors.New("missing w3c anoncreds context")

	// ErrMissingW3CPresentationType is returned when type lacks VerifiablePresentation.
	ErrMissingW3CPresentationType = errors.New("missing w3c presentation type")

	// ErrMissingAnonCredsPresentationType is returned when type lacks AnonCredsPresentation.
	ErrMissingAnonCredsPresentationType = errors.New("missing w3c anoncreds presentation type")
)

// W3CPresentation is an AnonCreds presentation in W3C form.
// It is not safe for concurrent use; hand it off to another goroutine only as a whole.
type W3CPresentation struct {
	Context              Contexts          `json:"@context"`
	Type                 Types             `json:"type"`
	VerifiableCredential []W3CCredential   `json:"verifiableCredential"`
	Proof                PresentationProof `json:"proof"`
}

// rawPresentation drops the methods of W3CPresentation to avoid MarshalJSON recursion.
type rawPresentation W3CPresentation

// NewW3CPresentation creates a presentation with the AnonCreds contexts and types, no credentials
// and a placeholder proof. It passes Validate as is.
func NewW3CPresentation() *W3CPresentation {
	return &W3CPresentation{
		Context:              AnonCredsContexts(),
		Type:                 AnonCredsPresentationTypes(),
		VerifiableCredential: []W3CCredential{},
		Proof:                DefaultPresentationProof(),
	}
}

// AddVerifiableCredential appends a credential. The credential is not validated.
func (vp *W3CPresentation) AddVerifiableCredential(cred W3CCredential) {
	vp.VerifiableCredential = append(vp.VerifiableCredential, cred)
}

// SetProof replaces the presentation proof.
func (vp *W3CPresentation) SetProof(proof PresentationProof) {
	vp.Proof = proof
}

// Validate checks the presentation carries the contexts and types of the AnonCreds W3C profile.
// Only the first missing identifier is reported. Credentials and proof are not inspected, and
// identifiers beyond the required ones are accepted.
func (vp *W3CPresentation) Validate() error {
	if !vp.Context.Contains(W3CContext) {
		return ErrMissingW3CContext
	}

	if !vp.Context.Contains(W3CAnonCredsContext) {
		return ErrMissingAnonCredsContext
	}

	if !vp.Type.Contains(W3CPresentationType) {
		return ErrMissingW3CPresentationType
	}

	if !vp.Type.Contains(W3CAnonCredsPresentationType) {
		return ErrMissingAnonCredsPresentationType
	}

	return nil
}

// MarshalJSON converts the presentation to JSON. @context, type and verifiableCredential are always
// written as arrays.
func (vp W3CPresentation) MarshalJSON() ([]byte, error) {
	raw := rawPresentation(vp)

	if raw.Context == nil {
		raw.Context = Contexts{}
	}

	if raw.Type == nil {
		raw.Type = Types{}
	}

	if raw.VerifiableCredential == nil {
		raw.VerifiableCredential = []W3CCredential{}
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("JSON marshalling of verifiable presentation: %w", err)
	}

	return data, nil
}

//go:generate mockgen -destination ../../internal/gomocks/doc/w3c/mocks.gen.go -package w3c . ProofVerifier

// ProofVerifier checks the cryptographic proof of a presentation. Implementations belong to the
// proving subsystem.
type ProofVerifier interface {
	VerifyPresentationProof(vp *W3CPresentation) error
}

// presentationOpts holds options for the Verifiable Presentation decoding.
type presentationOpts struct {
	disabledSchemaValidation bool
	skipStructureValidation  bool
	validateCredentials      bool
	proofVerifier            ProofVerifier
}

// PresentationOpt is the Verifiable Presentation decoding option.
type PresentationOpt func(opts *presentationOpts)

// WithDisabledSchemaValidation skips the JSON schema check of the raw document.
func WithDisabledSchemaValidation() PresentationOpt {
	return func(opts *presentationOpts) {
		opts.disabledSchemaValidation = true
	}
}

// WithSkippedStructureValidation skips the context and type checks done by Validate.
func WithSkippedStructureValidation() PresentationOpt {
	return func(opts *presentationOpts) {
		opts.skipStructureValidation = true
	}
}

// WithCredentialValidation validates every enclosed credential as well.
func WithCredentialValidation() PresentationOpt {
	return func(opts *presentationOpts) {
		opts.validateCredentials = true
	}
}

// WithProofVerifier verifies the presentation proof once the structure checks pass.
func WithProofVerifier(v ProofVerifier) PresentationOpt {
	return func(opts *presentationOpts) {
		opts.proofVerifier = v
	}
}

// ParsePresentation decodes an AnonCreds W3C presentation from JSON and checks it according to opts.
// A missing context or type is reported with its sentinel before the JSON schema is checked.
func ParsePresentation(vpData []byte, opts ...PresentationOpt) (*W3CPresentation, error) {
	vpOpts := &presentationOpts{}

	for _, opt := range opts {
		opt(vpOpts)
	}

	vp := &W3CPresentation{}

	err := json.Unmarshal(vpData, vp)
	if err != nil {
		return nil, fmt.Errorf("JSON unmarshalling of verifiable presentation: %w", err)
	}

	if !vpOpts.skipStructureValidation {
		if err = vp.Validate(); err != nil {
			return nil, fmt.Errorf("verifiable presentation: %w", err)
		}
	}

	if !vpOpts.disabledSchemaValidation {
		if err = validateSchema(vpData); err != nil {
			return nil, err
		}
	}

	if vpOpts.validateCredentials {
		for i := range vp.VerifiableCredential {
			if err = vp.VerifiableCredential[i].Validate(); err != nil {
				return nil, fmt.Errorf("verifiable credential [%d]: %w", i, err)
			}
		}
	}

	if vpOpts.proofVerifier != nil {
		if err = vpOpts.proofVerifier.VerifyPresentationProof(vp); err != nil {
			return nil, fmt.Errorf("proof verification: %w", err)
		}
	}

	return vp, nil
}
