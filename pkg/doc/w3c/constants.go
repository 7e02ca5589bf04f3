/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package w3c

import "github.com/hyperledger/anoncreds-w3c-go/pkg/doc/ldcontext/embed"

// Identifiers of the AnonCreds W3C profile. External verifiers match on these exact strings, so they must not change.
const (
	// W3CContext is the base W3C verifiable credentials JSON-LD context.
	W3CContext URI = embed.W3CCredentialsContextURL

	// W3CAnonCredsContext is the AnonCreds specific JSON-LD context.
	W3CAnonCredsContext URI = embed.AnonCredsW3CContextURL

	// W3CCredentialType is the base W3C verifiable credential type.
	W3CCredentialType = "VerifiableCredential"

	// W3CAnonCredsCredentialType is the AnonCreds credential type.
	W3CAnonCredsCredentialType = "AnonCredsCredential"

	// W3CPresentationType is the base W3C verifiable presentation type.
	W3CPresentationType = "VerifiablePresentation"

	// W3CAnonCredsPresentationType is the AnonCreds presentation type.
	W3CAnonCredsPresentationType = "AnonCredsPresentation"
)

// AnonCredsContexts returns the @context set every AnonCreds W3C credential and presentation starts with.
func AnonCredsContexts() Contexts {
	return Contexts{W3CContext, W3CAnonCredsContext}
}

// AnonCredsCredentialTypes returns the type set of an AnonCreds W3C credential.
func AnonCredsCredentialTypes() Types {
	return Types{W3CCredentialType, W3CAnonCredsCredentialType}
}

// AnonCredsPresentationTypes returns the type set of an AnonCreds W3C presentation.
func AnonCredsPresentationTypes() Types {
	return Types{W3CPresentationType, W3CAnonCredsPresentationType}
}
