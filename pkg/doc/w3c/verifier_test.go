/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package w3c_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/hyperledger/anoncreds-w3c-go/pkg/doc/w3c"
	mockw3c "github.com/hyperledger/anoncreds-w3c-go/pkg/internal/gomocks/doc/w3c"
)

func TestParsePresentation_WithProofVerifier(t *testing.T) {
	data, err := json.Marshal(w3c.NewW3CPresentation())
	require.NoError(t, err)

	t.Run("proof verified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		verifier := mockw3c.NewMockProofVerifier(ctrl)
		verifier.EXPECT().VerifyPresentationProof(gomock.Any()).
			DoAndReturn(func(vp *w3c.W3CPresentation) error {
				require.NoError(t, vp.Validate())
				return nil
			}).Times(1)

		vp, err := w3c.ParsePresentation(data, w3c.WithProofVerifier(verifier))
		require.NoError(t, err)
		require.NotNil(t, vp)
	})

	t.Run("proof rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		verifier := mockw3c.NewMockProofVerifier(ctrl)
		verifier.EXPECT().VerifyPresentationProof(gomock.Any()).Return(errors.New("bad proof")).Times(1)

		vp, err := w3c.ParsePresentation(data, w3c.WithProofVerifier(verifier))
		require.EqualError(t, err, "proof verification: bad proof")
		require.Nil(t, vp)
	})

	t.Run("verifier is not called for a malformed presentation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		vp := w3c.NewW3CPresentation()
		vp.Type = w3c.Types{w3c.W3CPresentationType}

		malformed, err := json.Marshal(vp)
		require.NoError(t, err)

		verifier := mockw3c.NewMockProofVerifier(ctrl)

		_, err = w3c.ParsePresentation(malformed, w3c.WithProofVerifier(verifier))
		require.True(t, errors.Is(err, w3c.ErrMissingAnonCredsPresentationType))
	})
}
