/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentation

import (
	"github.com/hyperledger/anoncreds-w3c-go/pkg/controller/command/presentation"
)

// newPresentationRes model
//
// swagger:response newPresentationRes
type newPresentationRes struct { //nolint:unused
	// in: body
	presentation.NewPresentationResponse
}

// validatePresentationReq model
//
// swagger:parameters validatePresentationReq
type validatePresentationReq struct { //nolint:unused
	// in: body
	Params presentation.ValidatePresentationRequest
}

// canonicalizePresentationReq model
//
// swagger:parameters canonicalizePresentationReq
type canonicalizePresentationReq struct { //nolint:unused
	// in: body
	Params presentation.CanonicalizePresentationRequest
}

// canonicalizePresentationRes model
//
// swagger:response canonicalizePresentationRes
type canonicalizePresentationRes struct { //nolint:unused
	// in: body
	presentation.CanonicalizePresentationResponse
}

// queryPresentationReq model
//
// swagger:parameters queryPresentationReq
type queryPresentationReq struct { //nolint:unused
	// in: body
	Params presentation.QueryPresentationRequest
}

// queryPresentationRes model
//
// swagger:response queryPresentationRes
type queryPresentationRes struct { //nolint:unused
	// in: body
	presentation.QueryPresentationResponse
}
