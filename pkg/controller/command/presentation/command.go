/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hyperledger/aries-framework-go/component/log"

	"github.com/hyperledger/anoncreds-w3c-go/pkg/controller/command"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/controller/internal/cmdutil"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/doc/encoding"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/doc/jsonld"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/doc/w3c"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/internal/logutil"
)

var logger = log.New("anoncreds-w3c/command/presentation")

// Error codes.
const (
	// InvalidRequestErrorCode is typically a code for invalid requests.
	InvalidRequestErrorCode = command.Code(iota + command.Presentation)

	// ValidatePresentationErrorCode for validate presentation error.
	ValidatePresentationErrorCode

	// CanonicalizePresentationErrorCode for canonicalize presentation error.
	CanonicalizePresentationErrorCode

	// QueryPresentationErrorCode for query presentation error.
	QueryPresentationErrorCode
)

// constants for the presentation controller's methods.
const (
	// command name.
	CommandName = "presentation"

	// command methods.
	NewPresentationCommandMethod          = "NewPresentation"
	ValidatePresentationCommandMethod     = "ValidatePresentation"
	CanonicalizePresentationCommandMethod = "CanonicalizePresentation"
	QueryPresentationCommandMethod        = "QueryPresentation"

	// error messages.
	errEmptyPresentation = "presentation is mandatory"
	errEmptyPath         = "path is mandatory"

	// log constants.
	digestString = "digest"
	pathString   = "path"
)

type options struct {
	httpClient *http.Client
	verifier   w3c.ProofVerifier
}

// Option configures the presentation command.
type Option func(opts *options)

// WithRemoteContexts lets canonicalization fetch JSON-LD contexts that are not embedded.
func WithRemoteContexts(client *http.Client) Option {
	return func(opts *options) {
		opts.httpClient = client
	}
}

// WithProofVerifier verifies the proof of every validated presentation.
func WithProofVerifier(verifier w3c.ProofVerifier) Option {
	return func(opts *options) {
		opts.verifier = verifier
	}
}

// Command contains command operations provided by the presentation controller.
type Command struct {
	httpClient *http.Client
	verifier   w3c.ProofVerifier
}

// New returns new presentation controller command instance.
func New(opts ...Option) *Command {
	cmdOpts := &options{}

	for _, opt := range opts {
		opt(cmdOpts)
	}

	return &Command{
		httpClient: cmdOpts.httpClient,
		verifier:   cmdOpts.verifier,
	}
}

// GetHandlers returns list of all commands supported by this controller command.
func (o *Command) GetHandlers() []command.Handler {
	return []command.Handler{
		cmdutil.NewCommandHandler(CommandName, NewPresentationCommandMethod, o.NewPresentation),
		cmdutil.NewCommandHandler(CommandName, ValidatePresentationCommandMethod, o.ValidatePresentation),
		cmdutil.NewCommandHandler(CommandName, CanonicalizePresentationCommandMethod, o.CanonicalizePresentation),
		cmdutil.NewCommandHandler(CommandName, QueryPresentationCommandMethod, o.QueryPresentation),
	}
}

// NewPresentation returns a presentation with the AnonCreds contexts and types, no credentials and
// a placeholder proof.
func (o *Command) NewPresentation(rw io.Writer, _ io.Reader) command.Error {
	command.WriteNillableResponse(rw, &NewPresentationResponse{
		Presentation: w3c.NewW3CPresentation(),
	}, logger)

	logutil.LogDebug(logger, CommandName, NewPresentationCommandMethod, "success")

	return nil
}

// ValidatePresentation checks a presentation against the AnonCreds W3C profile.
func (o *Command) ValidatePresentation(rw io.Writer, req io.Reader) command.Error {
	request := ValidatePresentationRequest{}

	if err := decodeRequest(req, &request); err != nil {
		logutil.LogInfo(logger, CommandName, ValidatePresentationCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	if len(request.Presentation) == 0 {
		logutil.LogDebug(logger, CommandName, ValidatePresentationCommandMethod, errEmptyPresentation)

		return command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyPresentation))
	}

	opts := []w3c.PresentationOpt{}

	if request.ValidateCredentials {
		opts = append(opts, w3c.WithCredentialValidation())
	}

	if o.verifier != nil {
		opts = append(opts, w3c.WithProofVerifier(o.verifier))
	}

	if _, err := w3c.ParsePresentation(request.Presentation, opts...); err != nil {
		logutil.LogInfo(logger, CommandName, ValidatePresentationCommandMethod, err.Error())

		return command.NewValidationError(ValidatePresentationErrorCode, err)
	}

	command.WriteNillableResponse(rw, nil, logger)

	logutil.LogDebug(logger, CommandName, ValidatePresentationCommandMethod, "success")

	return nil
}

// CanonicalizePresentation returns the URDNA2015 N-Quads form of a valid presentation and its
// hex encoded SHA-256 digest.
func (o *Command) CanonicalizePresentation(rw io.Writer, req io.Reader) command.Error {
	request := CanonicalizePresentationRequest{}

	if err := decodeRequest(req, &request); err != nil {
		logutil.LogInfo(logger, CommandName, CanonicalizePresentationCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	vp, cmdErr := parsePresentation(request.Presentation, CanonicalizePresentationCommandMethod)
	if cmdErr != nil {
		return cmdErr
	}

	loader, err := jsonld.NewDocumentLoader(o.loaderOpts()...)
	if err != nil {
		logutil.LogError(logger, CommandName, CanonicalizePresentationCommandMethod, err.Error())

		return command.NewExecuteError(CanonicalizePresentationErrorCode, err)
	}

	canonical, err := vp.Canonicalize(w3c.WithDocumentLoader(loader))
	if err != nil {
		logutil.LogInfo(logger, CommandName, CanonicalizePresentationCommandMethod, err.Error())

		return command.NewValidationError(CanonicalizePresentationErrorCode, err)
	}

	digest := encoding.HashHex(canonical)

	command.WriteNillableResponse(rw, &CanonicalizePresentationResponse{
		Canonical: string(canonical),
		Digest:    digest,
	}, logger)

	logutil.LogDebug(logger, CommandName, CanonicalizePresentationCommandMethod, "success",
		logutil.CreateKeyValueString(digestString, digest))

	return nil
}

// QueryPresentation evaluates a JSONPath expression against a valid presentation.
func (o *Command) QueryPresentation(rw io.Writer, req io.Reader) command.Error {
	request := QueryPresentationRequest{}

	if err := decodeRequest(req, &request); err != nil {
		logutil.LogInfo(logger, CommandName, QueryPresentationCommandMethod, err.Error())

		return command.NewValidationError(InvalidRequestErrorCode, err)
	}

	if request.Path == "" {
		logutil.LogDebug(logger, CommandName, QueryPresentationCommandMethod, errEmptyPath)

		return command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyPath))
	}

	vp, cmdErr := parsePresentation(request.Presentation, QueryPresentationCommandMethod)
	if cmdErr != nil {
		return cmdErr
	}

	result, err := vp.Query(request.Path)
	if err != nil {
		logutil.LogInfo(logger, CommandName, QueryPresentationCommandMethod, err.Error(),
			logutil.CreateKeyValueString(pathString, request.Path))

		return command.NewValidationError(QueryPresentationErrorCode, err)
	}

	command.WriteNillableResponse(rw, &QueryPresentationResponse{Result: result}, logger)

	logutil.LogDebug(logger, CommandName, QueryPresentationCommandMethod, "success",
		logutil.CreateKeyValueString(pathString, request.Path))

	return nil
}

func (o *Command) loaderOpts() []jsonld.Opt {
	if o.httpClient == nil {
		return nil
	}

	return []jsonld.Opt{jsonld.WithRemoteContexts(o.httpClient)}
}

func decodeRequest(req io.Reader, v interface{}) error {
	if req == nil {
		return errors.New("request body is empty")
	}

	if err := json.NewDecoder(req).Decode(v); err != nil {
		return fmt.Errorf("request decode : %w", err)
	}

	return nil
}

func parsePresentation(data json.RawMessage, action string) (*w3c.W3CPresentation, command.Error) {
	if len(data) == 0 {
		logutil.LogDebug(logger, CommandName, action, errEmptyPresentation)

		return nil, command.NewValidationError(InvalidRequestErrorCode, errors.New(errEmptyPresentation))
	}

	vp, err := w3c.ParsePresentation(data)
	if err != nil {
		logutil.LogInfo(logger, CommandName, action, err.Error())

		return nil, command.NewValidationError(ValidatePresentationErrorCode, err)
	}

	return vp, nil
}
