/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package embed holds the JSON-LD contexts of the AnonCreds W3C profile embedded into the binary,
// so documents can be processed without fetching contexts over the network.
package embed

import (
	_ "embed" //nolint:gci // required for go:embed
	"encoding/json"
)

// URLs the embedded contexts are referenced by.
const (
	W3CCredentialsContextURL = "https://www.w3.org/2018/credentials/v1"
	AnonCredsW3CContextURL   = "https://raw.githubusercontent.com/hyperledger/anoncreds-spec/main/data/anoncreds-w3c-context.json" //nolint:lll
)

// Document is a JSON-LD context document with the URL it is referenced by.
type Document struct {
	URL     string          `json:"url,omitempty"`
	Content json.RawMessage `json:"content,omitempty"`
}

// nolint:gochecknoglobals // required for go:embed
var (
	//go:embed third_party/w3.org/credentials_v1.jsonld
	w3orgCredentials []byte
	//go:embed third_party/anoncreds-spec/anoncreds-w3c-context.jsonld
	anonCredsW3C []byte
)

// Contexts contains JSON-LD contexts embedded into a Go binary.
var Contexts = []Document{ //nolint:gochecknoglobals
	{
		URL:     W3CCredentialsContextURL,
		Content: w3orgCredentials,
	},
	{
		URL:     AnonCredsW3CContextURL,
		Content: anonCredsW3C,
	},
}
