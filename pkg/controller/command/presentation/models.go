/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentation

import (
	"encoding/json"

	"github.com/hyperledger/anoncreds-w3c-go/pkg/doc/w3c"
)

// NewPresentationResponse model
//
// This is used for returning a new AnonCreds W3C presentation.
type NewPresentationResponse struct {
	Presentation *w3c.W3CPresentation `json:"presentation"`
}

// ValidatePresentationRequest model
//
// This is used for validating the structure of a presentation.
type ValidatePresentationRequest struct {
	Presentation json.RawMessage `json:"presentation"`

	// also validate every enclosed credential
	ValidateCredentials bool `json:"validateCredentials,omitempty"`
}

// CanonicalizePresentationRequest model
//
// This is used for computing the canonical form of a presentation.
type CanonicalizePresentationRequest struct {
	Presentation json.RawMessage `json:"presentation"`
}

// CanonicalizePresentationResponse model
//
// This is used for returning the N-Quads form of a presentation and its SHA-256 digest.
type CanonicalizePresentationResponse struct {
	Canonical string `json:"canonical"`
	Digest    string `json:"digest"`
}

// QueryPresentationRequest model
//
// This is used for evaluating a JSONPath expression against a presentation.
type QueryPresentationRequest struct {
	Presentation json.RawMessage `json:"presentation"`
	Path         string          `json:"path"`
}

// QueryPresentationResponse model
//
// This is used for returning the value selected by a JSONPath expression.
type QueryPresentationResponse struct {
	Result interface{} `json:"result"`
}
