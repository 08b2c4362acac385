/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package model defines the data structures for constructing outbound SAML messages.
package model

import "github.com/asgardeo/samlgate/internal/saml/constants"

// MessageKind identifies the kind of SAML protocol message being encoded.
type MessageKind string

const (
	// MessageKindAuthnRequest is an authentication request sent to an identity provider.
	MessageKindAuthnRequest MessageKind = "AuthnRequest"
	// MessageKindLogoutRequest is a logout request sent to a federation peer.
	MessageKindLogoutRequest MessageKind = "LogoutRequest"
	// MessageKindLogoutResponse is a logout response returned to a federation peer.
	MessageKindLogoutResponse MessageKind = "LogoutResponse"
)

// ParameterName returns the redirect binding query parameter name that carries
// a message of this kind. Requests travel as SAMLRequest and responses as SAMLResponse.
func (k MessageKind) ParameterName() string {
	if k == MessageKindLogoutResponse {
		return constants.ParamSAMLResponse
	}
	return constants.ParamSAMLRequest
}

// MessageContext is the result of building one outbound protocol message.
type MessageContext struct {
	// ID is the message identifier carried in the message's ID attribute.
	ID string `json:"id"`
	// Context holds the final redirect URL of the encoded message.
	Context string `json:"context"`
}

// SigningSettings holds the key material and algorithm used to sign a redirect URL.
type SigningSettings struct {
	// Algorithm is the XML signature algorithm URI.
	Algorithm string
	// PrivateKeyPEM is the PEM encoded private key.
	PrivateKeyPEM []byte
	// KeyPassphrase optionally decrypts an encrypted private key.
	KeyPassphrase string
}

// EncodingRequest carries the normalized inputs to the redirect query encoder.
// It is constructed immediately before encoding and discarded after use.
type EncodingRequest struct {
	BaseURL    string
	Kind       MessageKind
	Signed     bool
	RawXML     string
	RelayState string
	Signing    SigningSettings
}

// SessionInfo carries the subject session details required to build a logout request.
type SessionInfo struct {
	// NameID is the subject's name identifier established during login.
	NameID string
	// SessionIndex identifies the session being terminated.
	SessionIndex string
}

// TemplateTransform is a caller supplied function that renders a custom
// message template. It must return the message identifier and the raw XML
// document; its output is trusted as-is.
type TemplateTransform func(template string) (id string, rawXML string, err error)
