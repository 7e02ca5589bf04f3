/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package w3c

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

const (
	// CredentialSchemaType is the credentialSchema type of AnonCreds W3C credentials.
	CredentialSchemaType = "AnonCredsDefinition"

	subjectIDKey = "id"
)

var (
	// ErrMissingW3CCredentialType is returned when a credential type set lacks VerifiableCredential.
	ErrMissingW3CCredentialType = errors.New("missing w3c credential type")

	// ErrMissingAnonCredsCredentialType is returned when a credential type set lacks AnonCredsCredential.
	ErrMissingAnonCredsCredentialType = errors.New("missing w3c anoncreds credential type")

	errSubjectIDNotString = errors.New("credentialSubject id must be a string")
)

// W3CCredential is an AnonCreds credential in W3C form. Presentations carry it as is; its own
// shape is checked by Validate, never by W3CPresentation.Validate.
type W3CCredential struct {
	Context           Contexts          `json:"@context"`
	Type              Types             `json:"type"`
	ID                URI               `json:"id,omitempty"`
	Issuer            string            `json:"issuer"`
	IssuanceDate      string            `json:"issuanceDate,omitempty"`
	CredentialSubject CredentialSubject `json:"credentialSubject"`
	CredentialSchema  CredentialSchema  `json:"credentialSchema"`
	Proof             CredentialProof   `json:"proof"`
}

// CredentialSubject holds the optional subject id and the credential attributes, which are
// flattened into the same JSON object on the wire.
type CredentialSubject struct {
	ID         URI
	Attributes map[string]interface{}
}

// CredentialSchema references the ledger objects a credential was issued against.
type CredentialSchema struct {
	Type               string `json:"type"`
	Definition         string `json:"definition"`
	Schema             string `json:"schema"`
	RevocationRegistry string `json:"revocationRegistry,omitempty"`
	Encoding           string `json:"encoding,omitempty"`
}

// CredentialProof is the proof embedded into a credential. Its values are produced by the proving subsystem.
type CredentialProof struct {
	Type       string `json:"type"`
	Signature  string `json:"signature,omitempty"`
	ProofValue string `json:"proofValue,omitempty"`
}

// NewW3CCredential creates a credential of the given issuer with the AnonCreds contexts and types.
func NewW3CCredential(issuer string) *W3CCredential {
	return &W3CCredential{
		Context:      AnonCredsContexts(),
		Type:         AnonCredsCredentialTypes(),
		Issuer:       issuer,
		IssuanceDate: time.Now().UTC().Format(time.RFC3339),
		CredentialSubject: CredentialSubject{
			Attributes: map[string]interface{}{},
		},
		CredentialSchema: CredentialSchema{Type: CredentialSchemaType},
	}
}

// SetAttribute sets a credential subject attribute. Raw AnonCreds attribute values are strings;
// other values survive a JSON round trip only as their generic JSON form (numbers become float64).
func (c *W3CCredential) SetAttribute(name string, value interface{}) {
	if c.CredentialSubject.Attributes == nil {
		c.CredentialSubject.Attributes = map[string]interface{}{}
	}

	c.CredentialSubject.Attributes[name] = value
}

// Validate checks the credential carries the AnonCreds contexts and types.
func (c *W3CCredential) Validate() error {
	if !c.Context.Contains(W3CContext) {
		return ErrMissingW3CContext
	}

	if !c.Context.Contains(W3CAnonCredsContext) {
		return ErrMissingAnonCredsContext
	}

	if !c.Type.Contains(W3CCredentialType) {
		return ErrMissingW3CCredentialType
	}

	if !c.Type.Contains(W3CAnonCredsCredentialType) {
		return ErrMissingAnonCredsCredentialType
	}

	return nil
}

// DecodeAttributes decodes the credential subject attributes into out, matching on json tags.
// Raw AnonCreds values are strings, so weak typing is enabled to fill numeric fields.
func (c *W3CCredential) DecodeAttributes(out interface{}) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("create attributes decoder: %w", err)
	}

	if err := decoder.Decode(c.CredentialSubject.Attributes); err != nil {
		return fmt.Errorf("decode credential attributes: %w", err)
	}

	return nil
}

// MarshalJSON writes the subject id and attributes as a single object.
func (s CredentialSubject) MarshalJSON() ([]byte, error) {
	raw := make(map[string]interface{}, len(s.Attributes)+1)

	for k, v := range s.Attributes {
		raw[k] = v
	}

	if s.ID != "" {
		raw[subjectIDKey] = s.ID
	}

	return json.Marshal(raw)
}

// UnmarshalJSON splits the subject object into id and attributes.
func (s *CredentialSubject) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("unmarshal credentialSubject: %w", err)
	}

	var subject CredentialSubject

	for k, v := range raw {
		if k == subjectIDKey {
			id, ok := v.(string)
			if !ok {
				return errSubjectIDNotString
			}

			subject.ID = URI(id)

			continue
		}

		if subject.Attributes == nil {
			subject.Attributes = make(map[string]interface{}, len(raw))
		}

		subject.Attributes[k] = v
	}

	*s = subject

	return nil
}
