/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package presentation_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	presentationcmd "github.com/hyperledger/anoncreds-w3c-go/pkg/controller/command/presentation"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/controller/rest"
	presentationrest "github.com/hyperledger/anoncreds-w3c-go/pkg/controller/rest/presentation"
	"github.com/hyperledger/anoncreds-w3c-go/pkg/doc/w3c"
)

func TestNew(t *testing.T) {
	op := presentationrest.New()
	require.NotNil(t, op)
	require.Len(t, op.GetRESTHandlers(), 4)
}

func TestOperation_NewPresentation(t *testing.T) {
	op := presentationrest.New()

	handler := lookupHandler(t, op, presentationrest.NewPresentationPath, http.MethodGet)
	respBody, code := sendRequestToHandler(t, handler, nil, presentationrest.NewPresentationPath)

	require.Equal(t, http.StatusOK, code)

	response := struct {
		Presentation json.RawMessage `json:"presentation"`
	}{}
	require.NoError(t, json.Unmarshal(respBody.Bytes(), &response))

	vp, err := w3c.ParsePresentation(response.Presentation)
	require.NoError(t, err)
	require.Equal(t, w3c.AnonCredsPresentationTypes(), vp.Type)
}

func TestOperation_ValidatePresentation(t *testing.T) {
	op := presentationrest.New()
	handler := lookupHandler(t, op, presentationrest.ValidatePresentationPath, http.MethodPost)

	t.Run("valid", func(t *testing.T) {
		body := requestBody(t, presentationcmd.ValidatePresentationRequest{Presentation: templatePresentation(t)})

		respBody, code := sendRequestToHandler(t, handler, body, presentationrest.ValidatePresentationPath)
		require.Equal(t, http.StatusOK, code)
		require.JSONEq(t, `{}`, respBody.String())
	})

	t.Run("missing anoncreds type", func(t *testing.T) {
		vp := w3c.NewW3CPresentation()
		vp.Type = w3c.Types{w3c.W3CPresentationType}

		data, err := json.Marshal(vp)
		require.NoError(t, err)

		body := requestBody(t, presentationcmd.ValidatePresentationRequest{Presentation: data})

		respBody, code := sendRequestToHandler(t, handler, body, presentationrest.ValidatePresentationPath)
		require.Equal(t, http.StatusBadRequest, code)

		errBody := struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}{}
		require.NoError(t, json.Unmarshal(respBody.Bytes(), &errBody))
		require.Equal(t, int(presentationcmd.ValidatePresentationErrorCode), errBody.Code)
		require.Contains(t, errBody.Message, w3c.ErrMissingAnonCredsPresentationType.Error())
	})

	t.Run("invalid request body", func(t *testing.T) {
		_, code := sendRequestToHandler(t, handler, bytes.NewBufferString("{"), presentationrest.ValidatePresentationPath)
		require.Equal(t, http.StatusBadRequest, code)
	})
}

func TestOperation_CanonicalizePresentation(t *testing.T) {
	op := presentationrest.New()
	handler := lookupHandler(t, op, presentationrest.CanonicalizePresentationPath, http.MethodPost)

	body := requestBody(t, presentationcmd.CanonicalizePresentationRequest{Presentation: templatePresentation(t)})

	respBody, code := sendRequestToHandler(t, handler, body, presentationrest.CanonicalizePresentationPath)
	require.Equal(t, http.StatusOK, code)

	response := presentationcmd.CanonicalizePresentationResponse{}
	require.NoError(t, json.Unmarshal(respBody.Bytes(), &response))
	require.NotEmpty(t, response.Canonical)
	require.Len(t, response.Digest, 64)
}

func TestOperation_QueryPresentation(t *testing.T) {
	op := presentationrest.New()
	handler := lookupHandler(t, op, presentationrest.QueryPresentationPath, http.MethodPost)

	body := requestBody(t, presentationcmd.QueryPresentationRequest{
		Presentation: templatePresentation(t),
		Path:         "$.proof.type",
	})

	respBody, code := sendRequestToHandler(t, handler, body, presentationrest.QueryPresentationPath)
	require.Equal(t, http.StatusOK, code)

	response := presentationcmd.QueryPresentationResponse{}
	require.NoError(t, json.Unmarshal(respBody.Bytes(), &response))
	require.Equal(t, w3c.PresentationProofType, response.Result)
}

func templatePresentation(t *testing.T) json.RawMessage {
	t.Helper()

	data, err := json.Marshal(w3c.NewW3CPresentation())
	require.NoError(t, err)

	return data
}

func requestBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewBuffer(data)
}

func lookupHandler(t *testing.T, op *presentationrest.Operation, path, method string) rest.Handler {
	t.Helper()

	handlers := op.GetRESTHandlers()
	require.NotEmpty(t, handlers)

	for _, h := range handlers {
		if h.Path() == path && h.Method() == method {
			return h
		}
	}

	require.Fail(t, "unable to find handler")

	return nil
}

func sendRequestToHandler(t *testing.T, handler rest.Handler, requestBody io.Reader, path string) (*bytes.Buffer, int) {
	t.Helper()

	// prepare request
	req, err := http.NewRequestWithContext(context.Background(), handler.Method(), path, requestBody)
	require.NoError(t, err)

	// prepare router
	router := mux.NewRouter()

	router.HandleFunc(handler.Path(), handler.Handle()).Methods(handler.Method())

	// create a ResponseRecorder (which satisfies http.ResponseWriter) to record the response.
	rr := httptest.NewRecorder()

	// serve http on given response and request
	router.ServeHTTP(rr, req)

	return rr.Body, rr.Code
}
