/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package controller

import (
	"net/http"

	"github.com/hyperledger/anoncreds-w3c-go/pkg/controller/command"
	presentationcmd "github.com/hyperledger/anoncreds-w3c-go/pkg/controller/command/presentation"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/controller/rest"
	presentationrest "github.com/hyperledger/anoncreds-w3c-go/pkg/controller/rest/presentation"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/doc/w3c"
)

type allOpts struct {
	remoteContextsClient *http.Client
	proofVerifier        w3c.ProofVerifier
}

// Opt represents a controller option.
type Opt func(opts *allOpts)

// WithRemoteContexts is an option allowing JSON-LD contexts that are not embedded to be fetched with client.
func WithRemoteContexts(client *http.Client) Opt {
	return func(opts *allOpts) {
		opts.remoteContextsClient = client
	}
}

// WithProofVerifier is an option for verifying presentation proofs during validation.
func WithProofVerifier(verifier w3c.ProofVerifier) Opt {
	return func(opts *allOpts) {
		opts.proofVerifier = verifier
	}
}

// GetRESTHandlers returns all REST handlers provided by controller.
func GetRESTHandlers(opts ...Opt) []rest.Handler {
	restAPIOpts := &allOpts{}
	// Apply options
	for _, opt := range opts {
		opt(restAPIOpts)
	}

	// presentation REST operation
	presentationOp := presentationrest.New(restAPIOpts.presentationOpts()...)

	var allHandlers []rest.Handler
	allHandlers = append(allHandlers, presentationOp.GetRESTHandlers()...)

	return allHandlers
}

// GetCommandHandlers returns all command handlers provided by controller.
func GetCommandHandlers(opts ...Opt) []command.Handler {
	cmdOpts := &allOpts{}
	// Apply options
	for _, opt := range opts {
		opt(cmdOpts)
	}

	// presentation command operation
	presentationCmd := presentationcmd.New(cmdOpts.presentationOpts()...)

	var allHandlers []command.Handler
	allHandlers = append(allHandlers, presentationCmd.GetHandlers()...)

	return allHandlers
}

func (o *allOpts) presentationOpts() []presentationcmd.Option {
	var opts []presentationcmd.Option

	if o.remoteContextsClient != nil {
		opts = append(opts, presentationcmd.WithRemoteContexts(o.remoteContextsClient))
	}

	if o.proofVerifier != nil {
		opts = append(opts, presentationcmd.WithProofVerifier(o.proofVerifier))
	}

	return opts
}
