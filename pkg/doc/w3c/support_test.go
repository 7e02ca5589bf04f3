/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package w3c

const (
	sampleIssuer     = "did:sov:NcYxiDXkpYi6ov5FcYDi1e"
	sampleSchemaID   = "did:sov:NcYxiDXkpYi6ov5FcYDi1e:2:gvt:1.0"
	sampleCredDefID  = "did:sov:NcYxiDXkpYi6ov5FcYDi1e:3:CL:1:tag"
	sampleIssuedAt   = "2023-11-15T10:00:00Z"
	sampleChallenge  = "182453895158932070575246"
	sampleProofValue = "ueyJzdWJfcHJvb2ZzIjpbXX0"

	credentialProofType = "AnonCredsCredentialProofv1"
)

func newTestCredential(name string) W3CCredential {
	cred := NewW3CCredential(sampleIssuer)
	cred.IssuanceDate = sampleIssuedAt
	cred.CredentialSubject.ID = "did:example:" + URI(name)
	cred.SetAttribute("name", name)
	cred.SetAttribute("age", "28")
	cred.CredentialSchema.Definition = sampleCredDefID
	cred.CredentialSchema.Schema = sampleSchemaID
	cred.Proof = CredentialProof{
		Type:       credentialProofType,
		ProofValue: sampleProofValue,
	}

	return *cred
}

func newTestPresentation() *W3CPresentation {
	vp := NewW3CPresentation()
	vp.AddVerifiableCredential(newTestCredential("alice"))
	vp.AddVerifiableCredential(newTestCredential("bob"))
	vp.SetProof(PresentationProof{
		Type:       PresentationProofType,
		Challenge:  sampleChallenge,
		ProofValue: sampleProofValue,
	})

	return vp
}

func withoutContext(contexts Contexts, uri URI) Contexts {
	var result Contexts

	for _, c := range contexts {
		if c != uri {
			result = append(result, c)
		}
	}

	return result
}

func withoutType(types Types, typ string) Types {
	var result Types

	for _, t := range types {
		if t != typ {
			result = append(result, t)
		}
	}

	return result
}
