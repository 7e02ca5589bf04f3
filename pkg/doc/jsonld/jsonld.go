/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package jsonld provides the JSON-LD document loader used to process AnonCreds W3C documents.
package jsonld

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/piprate/json-gold/ld"

	"github.com/hyperledger/anoncreds-w3c-go/pkg/doc/ldcontext/embed"
)

type loaderOpts struct {
	httpClient    *http.Client
	extraContexts []embed.Document
}

// Opt configures the document loader.
type Opt func(opts *loaderOpts)

// WithRemoteContexts allows contexts that are not embedded to be fetched with the given client.
func WithRemoteContexts(client *http.Client) Opt {
	return func(opts *loaderOpts) {
		opts.httpClient = client
	}
}

// WithExtraContexts preloads contexts in addition to the embedded ones.
func WithExtraContexts(docs ...embed.Document) Opt {
	return func(opts *loaderOpts) {
		opts.extraContexts = append(opts.extraContexts, docs...)
	}
}

// NewDocumentLoader creates a caching document loader preloaded with the embedded contexts.
// Network access is disabled unless WithRemoteContexts is given.
// The returned loader caches remote documents without locking; do not share it between goroutines
// when remote contexts are enabled.
func NewDocumentLoader(opts ...Opt) (*ld.CachingDocumentLoader, error) {
	loaderOpts := &loaderOpts{httpClient: httpclient()}

	for _, opt := range opts {
		opt(loaderOpts)
	}

	loader := ld.NewCachingDocumentLoader(ld.NewRFC7324CachingDocumentLoader(loaderOpts.httpClient))

	contexts := append(append([]embed.Document{}, embed.Contexts...), loaderOpts.extraContexts...)

	for _, c := range contexts {
		doc, err := ld.DocumentFromReader(bytes.NewReader(c.Content))
		if err != nil {
			return nil, fmt.Errorf("read context document %s: %w", c.URL, err)
		}

		loader.AddDocument(c.URL, doc)
	}

	return loader, nil
}

type disabledNetworkTransport struct{}

func (*disabledNetworkTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("network is disabled [%s]", r.URL)
}

func httpclient() *http.Client {
	return &http.Client{
		Transport: &disabledNetworkTransport{},
	}
}
