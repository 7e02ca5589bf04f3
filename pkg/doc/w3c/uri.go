/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package w3c

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// URI identifies a JSON-LD context or vocabulary term. Two URIs are equal only if their strings are equal.
type URI string

func (u URI) String() string {
	return string(u)
}

// Contexts is the ordered @context array of a credential or presentation.
type Contexts []URI

// Contains reports whether uri is one of the contexts.
func (c Contexts) Contains(uri URI) bool {
	for _, ctx := range c {
		if ctx == uri {
			return true
		}
	}

	return false
}

// UnmarshalJSON accepts either a single context string or an array of them.
func (c *Contexts) UnmarshalJSON(data []byte) error {
	values, err := stringOrArray(data)
	if err != nil {
		return fmt.Errorf("unmarshal @context: %w", err)
	}

	if values == nil {
		*c = nil

		return nil
	}

	contexts := make(Contexts, len(values))
	for i, v := range values {
		contexts[i] = URI(v)
	}

	*c = contexts

	return nil
}

// Types is the ordered type array of a credential or presentation. Duplicates are kept as is.
type Types []string

// Contains reports whether t is one of the types.
func (t Types) Contains(typ string) bool {
	for _, v := range t {
		if v == typ {
			return true
		}
	}

	return false
}

// UnmarshalJSON accepts either a single type string or an array of them.
func (t *Types) UnmarshalJSON(data []byte) error {
	values, err := stringOrArray(data)
	if err != nil {
		return fmt.Errorf("unmarshal type: %w", err)
	}

	*t = values

	return nil
}

func stringOrArray(data []byte) ([]string, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		return []string{single}, nil
	}

	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("expected string or array of strings: %w", err)
	}

	return values, nil
}
