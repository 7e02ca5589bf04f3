/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package w3c

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/piprate/json-gold/ld"

	"github.com/hyperledger/anoncreds-w3c-go/pkg/doc/jsonld"
)

const (
	canonicalFormat    = "application/n-quads"
	canonicalAlgorithm = "URDNA2015"
)

type canonicalizationOpts struct {
	documentLoader ld.DocumentLoader
}

// CanonicalizationOpt configures Canonicalize.
type CanonicalizationOpt func(opts *canonicalizationOpts)

// WithDocumentLoader sets the loader used to resolve @context URLs.
func WithDocumentLoader(loader ld.DocumentLoader) CanonicalizationOpt {
	return func(opts *canonicalizationOpts) {
		opts.documentLoader = loader
	}
}

// Canonicalize returns the URDNA2015 N-Quads form of the presentation, the byte string a proof
// over the presentation is computed on. By default only the embedded contexts can be resolved.
func (vp *W3CPresentation) Canonicalize(opts ...CanonicalizationOpt) ([]byte, error) {
	canonOpts := &canonicalizationOpts{}

	for _, opt := range opts {
		opt(canonOpts)
	}

	if canonOpts.documentLoader == nil {
		loader, err := jsonld.NewDocumentLoader()
		if err != nil {
			return nil, err
		}

		canonOpts.documentLoader = loader
	}

	doc, err := vp.toMap()
	if err != nil {
		return nil, err
	}

	ldOptions := ld.NewJsonLdOptions("")
	ldOptions.ProcessingMode = ld.JsonLd_1_1
	ldOptions.Algorithm = canonicalAlgorithm
	ldOptions.Format = canonicalFormat
	ldOptions.ProduceGeneralizedRdf = true
	ldOptions.DocumentLoader = canonOpts.documentLoader

	view, err := ld.NewJsonLdProcessor().Normalize(doc, ldOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to normalize JSON-LD document: %w", err)
	}

	result, ok := view.(string)
	if !ok {
		return nil, fmt.Errorf("failed to normalize JSON-LD document, invalid view")
	}

	return []byte(result), nil
}

// Query evaluates a JSONPath expression against the JSON form of the presentation,
// e.g. "$.verifiableCredential[0].credentialSubject.name".
func (vp *W3CPresentation) Query(path string) (interface{}, error) {
	doc, err := vp.toMap()
	if err != nil {
		return nil, err
	}

	value, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("query verifiable presentation %q: %w", path, err)
	}

	return value, nil
}

func (vp *W3CPresentation) toMap() (map[string]interface{}, error) {
	data, err := json.Marshal(vp)
	if err != nil {
		return nil, err
	}

	var doc map[string]interface{}

	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("JSON unmarshalling of verifiable presentation: %w", err)
	}

	return doc, nil
}
