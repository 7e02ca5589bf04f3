/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package w3c

import (
	"errors"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

const presentationSchema = `
{
  "required": [
    "@context",
    "type",
    "verifiableCredential",
    "proof"
  ],
  "properties": {
    "@context": {
      "oneOf": [
        {
          "type": "array",
          "items": {
            "type": "string"
          }
        },
        {
          "type": "string"
        },
        {
          "type": "null"
        }
      ]
    },
    "type": {
      "oneOf": [
        {
          "type": "array",
          "items": {
            "type": "string"
          }
        },
        {
          "type": "string"
        },
        {
          "type": "null"
        }
      ]
    },
    "verifiableCredential": {
      "type": "array",
      "items": {
        "type": "object"
      }
    },
    "proof": {
      "$ref": "#/definitions/proof"
    }
  },
  "definitions": {
    "proof": {
      "type": "object",
      "required": [
        "type"
      ],
      "properties": {
        "type": {
          "type": "string"
        },
        "challenge": {
          "type": "string"
        },
        "proofValue": {
          "type": "string"
        }
      }
    }
  }
}
`

//nolint:gochecknoglobals
var presentationSchemaLoader = gojsonschema.NewStringLoader(presentationSchema)

func validateSchema(data []byte) error {
	result, err := gojsonschema.Validate(presentationSchemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validation of verifiable presentation: %w", err)
	}

	if !result.Valid() {
		return errors.New(describeSchemaValidationError(result, "verifiable presentation"))
	}

	return nil
}

func describeSchemaValidationError(result *gojsonschema.Result, what string) string {
	errMsg := what + " is not valid:\n"
	for _, desc := range result.Errors() {
		errMsg += fmt.Sprintf("- %s\n", desc)
	}

	return errMsg
}
