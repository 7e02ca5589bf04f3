/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentation

import (
	"net/http"

	"github.com/hyperledger/anoncreds-w3c-go/pkg/controller/command/presentation"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/controller/internal/cmdutil"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/controller/rest"
)

// constants for the presentation operations.
const (
	PresentationOperationID      = "/presentations"
	NewPresentationPath          = PresentationOperationID + "/template"
	ValidatePresentationPath     = PresentationOperationID + "/validate"
	CanonicalizePresentationPath = PresentationOperationID + "/canonicalize"
	QueryPresentationPath        = PresentationOperationID + "/query"
)

// Operation contains REST operations provided by the presentation API.
type Operation struct {
	handlers []rest.Handler
	command  *presentation.Command
}

// New returns a new instance of the presentation REST controller.
func New(opts ...presentation.Option) *Operation {
	o := &Operation{command: presentation.New(opts...)}
	o.registerHandler()

	return o
}

// GetRESTHandlers get all controller API handler available for this service.
func (o *Operation) GetRESTHandlers() []rest.Handler {
	return o.handlers
}

func (o *Operation) registerHandler() {
	o.handlers = []rest.Handler{
		cmdutil.NewHTTPHandler(NewPresentationPath, http.MethodGet, o.NewPresentation),
		cmdutil.NewHTTPHandler(ValidatePresentationPath, http.MethodPost, o.ValidatePresentation),
		cmdutil.NewHTTPHandler(CanonicalizePresentationPath, http.MethodPost, o.CanonicalizePresentation),
		cmdutil.NewHTTPHandler(QueryPresentationPath, http.MethodPost, o.QueryPresentation),
	}
}

// NewPresentation swagger:route GET /presentations/template presentation newPresentationReq
//
// Returns a new AnonCreds W3C presentation without credentials.
//
// Responses:
//    default: genericError
//    200: newPresentationRes
func (o *Operation) NewPresentation(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.NewPresentation, rw, req.Body)
}

// ValidatePresentation swagger:route POST /presentations/validate presentation validatePresentationReq
//
// Validates the contexts and types of an AnonCreds W3C presentation.
//
// Responses:
//    default: genericError
func (o *Operation) ValidatePresentation(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.ValidatePresentation, rw, req.Body)
}

// CanonicalizePresentation swagger:route POST /presentations/canonicalize presentation canonicalizePresentationReq
//
// Returns the URDNA2015 N-Quads form of a presentation with its SHA-256 digest.
//
// Responses:
//    default: genericError
//    200: canonicalizePresentationRes
func (o *Operation) CanonicalizePresentation(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.CanonicalizePresentation, rw, req.Body)
}

// QueryPresentation swagger:route POST /presentations/query presentation queryPresentationReq
//
// Evaluates a JSONPath expression against a presentation.
//
// Responses:
//    default: genericError
//    200: queryPresentationRes
func (o *Operation) QueryPresentation(rw http.ResponseWriter, req *http.Request) {
	rest.Execute(o.command.QueryPresentation, rw, req.Body)
}
