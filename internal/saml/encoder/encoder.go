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

// Package encoder implements the SAML HTTP-Redirect binding message encoding:
// raw deflate compression, base64 encoding, percent-encoding and, when
// required, the detached query string signature.
package encoder

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"

	"github.com/asgardeo/samlgate/internal/saml/constants"
	"github.com/asgardeo/samlgate/internal/saml/model"
	"github.com/asgardeo/samlgate/internal/system/crypto/signer"
)

// Encode transforms a raw XML document into a redirect URL per the SAML 2.0
// HTTP-Redirect binding. The document is deflated, base64 encoded and
// percent-encoded, then assembled with the RelayState and, when requested,
// the SigAlg and Signature parameters onto the destination URL.
func Encode(req *model.EncodingRequest) (string, error) {
	payload, err := deflateAndEncode(req.RawXML)
	if err != nil {
		return "", fmt.Errorf("failed to compress message: %w", err)
	}
	encodedPayload := escapeQueryValue(payload)

	paramName := req.Kind.ParameterName()
	qb := newQueryBuilder(req.BaseURL)
	qb.Append(paramName, encodedPayload)

	if !req.Signed {
		if req.RelayState != "" {
			qb.Append(constants.ParamRelayState, escapeQueryValue(req.RelayState))
		}
		return qb.String(), nil
	}

	if err := attachSignature(qb, paramName, encodedPayload, req); err != nil {
		return "", err
	}
	return qb.String(), nil
}

// deflateAndEncode compresses the document with a raw (no zlib header)
// deflate stream and encodes the result as base64 text. Both stages are
// mandated by the binding; substituting full zlib deflate breaks
// interoperability with other implementations.
func deflateAndEncode(rawXML string) (string, error) {
	var buf bytes.Buffer
	writer, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return "", err
	}
	if _, err := writer.Write([]byte(rawXML)); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// attachSignature appends the SigAlg, RelayState and Signature parameters.
// The signed octet string is exactly
//
//	<paramName>=<payload>&SigAlg=<alg>[&RelayState=<relayState>]
//
// with every value percent-encoded, since the receiving party reconstructs
// the same octet string from the raw query string it receives. The RelayState
// segment is present if and only if a relay state was supplied.
func attachSignature(qb *queryBuilder, paramName, encodedPayload string, req *model.EncodingRequest) error {
	encodedAlg := escapeQueryValue(req.Signing.Algorithm)

	signingInput := paramName + "=" + encodedPayload + "&" + constants.ParamSigAlg + "=" + encodedAlg
	qb.Append(constants.ParamSigAlg, encodedAlg)

	if req.RelayState != "" {
		encodedRelayState := escapeQueryValue(req.RelayState)
		signingInput += "&" + constants.ParamRelayState + "=" + encodedRelayState
		qb.Append(constants.ParamRelayState, encodedRelayState)
	}

	privateKey, err := signer.LoadPrivateKey(req.Signing.PrivateKeyPEM, req.Signing.KeyPassphrase)
	if err != nil {
		return fmt.Errorf("failed to load signing key: %w", err)
	}

	signature, err := signer.Sign([]byte(signingInput), privateKey, req.Signing.Algorithm)
	if err != nil {
		return fmt.Errorf("failed to sign redirect message: %w", err)
	}

	qb.Append(constants.ParamSignature, escapeQueryValue(base64.StdEncoding.EncodeToString(signature)))
	return nil
}

// escapeQueryValue percent-encodes a query parameter value. Spaces are encoded
// as %20 rather than the form-encoding "+" that url.QueryEscape produces, so
// values such as RelayState match what SAML peers emit and verify against.
func escapeQueryValue(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
