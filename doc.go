/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package anoncredsw3c builds and validates AnonCreds presentations in the W3C Verifiable
// Presentation data model.
//
// Packages for end developer usage
//
// pkg/doc/w3c: The presentation and credential data model. NewW3CPresentation creates a presentation
// carrying the AnonCreds contexts and types, Validate checks a presentation against them and
// ParsePresentation decodes and checks one received from a holder.
//
// pkg/doc/encoding: Base58, base64url, message-pack and multibase encoded-object helpers used for
// proof values.
//
// pkg/controller/rest/presentation: The presentation operations exposed through a REST API.
//
// Basic workflow
//
//      1) Create a presentation with w3c.NewW3CPresentation.
//      2) Add the derived credentials with AddVerifiableCredential.
//      3) Set the proof produced by the proving subsystem with SetProof.
//      4) Send the JSON form to the verifier, which calls w3c.ParsePresentation.
package anoncredsw3c
