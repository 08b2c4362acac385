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

// Package constants defines the wire names, namespaces and algorithm
// identifiers used by the SAML redirect binding.
package constants

// SAMLVersion is the protocol version emitted in all outbound messages.
const SAMLVersion = "2.0"

// Query parameter wire names for the redirect binding. These are fixed and
// case-sensitive per the SAML 2.0 bindings specification.
const (
	// ParamSAMLRequest carries an AuthnRequest or LogoutRequest payload.
	ParamSAMLRequest = "SAMLRequest"
	// ParamSAMLResponse carries a LogoutResponse payload.
	ParamSAMLResponse = "SAMLResponse"
	// ParamRelayState carries the opaque caller supplied relay state token.
	ParamRelayState = "RelayState"
	// ParamSigAlg carries the signature algorithm URI of a signed message.
	ParamSigAlg = "SigAlg"
	// ParamSignature carries the computed signature value of a signed message.
	ParamSignature = "Signature"
)

// XML namespaces of the SAML 2.0 protocol and assertion schemas.
const (
	NamespaceProtocol  = "urn:oasis:names:tc:SAML:2.0:protocol"
	NamespaceAssertion = "urn:oasis:names:tc:SAML:2.0:assertion"
)

// Binding URIs.
const (
	BindingHTTPRedirect = "urn:oasis:names:tc:SAML:2.0:bindings:HTTP-Redirect"
	BindingHTTPPost     = "urn:oasis:names:tc:SAML:2.0:bindings:HTTP-POST"
)

// StatusSuccess is the top level success status code.
const StatusSuccess = "urn:oasis:names:tc:SAML:2.0:status:Success"

// NameID format URIs.
const (
	NameIDFormatUnspecified  = "urn:oasis:names:tc:SAML:1.1:nameid-format:unspecified"
	NameIDFormatEmailAddress = "urn:oasis:names:tc:SAML:1.1:nameid-format:emailAddress"
	NameIDFormatPersistent   = "urn:oasis:names:tc:SAML:2.0:nameid-format:persistent"
	NameIDFormatTransient    = "urn:oasis:names:tc:SAML:2.0:nameid-format:transient"
	NameIDFormatEntity       = "urn:oasis:names:tc:SAML:2.0:nameid-format:entity"
)

// supportedNameIDFormats lists all the NameID formats recognized for outbound requests.
var supportedNameIDFormats = []string{
	NameIDFormatUnspecified,
	NameIDFormatEmailAddress,
	NameIDFormatPersistent,
	NameIDFormatTransient,
	NameIDFormatEntity,
}

// IsSupportedNameIDFormat reports whether the given NameID format is recognized.
func IsSupportedNameIDFormat(format string) bool {
	for _, supported := range supportedNameIDFormats {
		if format == supported {
			return true
		}
	}
	return false
}

// XML signature algorithm URIs supported for the redirect binding.
const (
	AlgorithmRSASHA1   = "http://www.w3.org/2000/09/xmldsig#rsa-sha1"
	AlgorithmRSASHA256 = "http://www.w3.org/2001/04/xmldsig-more#rsa-sha256"
	AlgorithmRSASHA384 = "http://www.w3.org/2001/04/xmldsig-more#rsa-sha384"
	AlgorithmRSASHA512 = "http://www.w3.org/2001/04/xmldsig-more#rsa-sha512"
)

// ISO8601UTCFormat is the layout used for the IssueInstant attribute.
const ISO8601UTCFormat = "2006-01-02T15:04:05Z"

// signatureAlgorithmAliases maps configuration shorthand names to algorithm URIs.
var signatureAlgorithmAliases = map[string]string{
	"rsa-sha1":   AlgorithmRSASHA1,
	"rsa-sha256": AlgorithmRSASHA256,
	"rsa-sha384": AlgorithmRSASHA384,
	"rsa-sha512": AlgorithmRSASHA512,
}

// ResolveSignatureAlgorithm returns the algorithm URI for the given value,
// accepting either an algorithm URI or a configuration shorthand. The second
// return value reports whether the value was recognized.
func ResolveSignatureAlgorithm(value string) (string, bool) {
	switch value {
	case AlgorithmRSASHA1, AlgorithmRSASHA256, AlgorithmRSASHA384, AlgorithmRSASHA512:
		return value, true
	}
	if uri, ok := signatureAlgorithmAliases[value]; ok {
		return uri, true
	}
	return "", false
}
