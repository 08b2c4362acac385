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

package model

import (
	"errors"

	"github.com/asgardeo/samlgate/internal/saml/constants"
	"github.com/asgardeo/samlgate/internal/system/utils"
)

// Endpoint represents a protocol endpoint published in a federation entity's metadata.
type Endpoint struct {
	Binding          string
	Location         string
	ResponseLocation string
}

// EntityMetadata is a read-only view into a federation entity's metadata.
// Instances are immutable once constructed and safe for concurrent reads.
type EntityMetadata struct {
	EntityID                  string
	SingleSignOnServices      []Endpoint
	SingleLogoutServices      []Endpoint
	AssertionConsumerServices []Endpoint
	WantLogoutRequestsSigned  bool
	WantLogoutResponsesSigned bool
}

// SingleSignOnEndpoint returns the single sign-on endpoint location for the
// given binding, or an empty string when the entity publishes none.
func (m *EntityMetadata) SingleSignOnEndpoint(binding string) string {
	return lookupEndpoint(m.SingleSignOnServices, binding, false)
}

// SingleLogoutEndpoint returns the single logout endpoint location for the given binding.
func (m *EntityMetadata) SingleLogoutEndpoint(binding string) string {
	return lookupEndpoint(m.SingleLogoutServices, binding, false)
}

// SingleLogoutResponseEndpoint returns the endpoint logout responses should be
// sent to: the ResponseLocation when published, falling back to the Location.
func (m *EntityMetadata) SingleLogoutResponseEndpoint(binding string) string {
	return lookupEndpoint(m.SingleLogoutServices, binding, true)
}

// AssertionConsumerEndpoint returns the assertion consumer service location for the given binding.
func (m *EntityMetadata) AssertionConsumerEndpoint(binding string) string {
	return lookupEndpoint(m.AssertionConsumerServices, binding, false)
}

// lookupEndpoint returns the location of the first endpoint matching the binding.
func lookupEndpoint(endpoints []Endpoint, binding string, preferResponseLocation bool) string {
	for _, endpoint := range endpoints {
		if endpoint.Binding != binding {
			continue
		}
		if preferResponseLocation && endpoint.ResponseLocation != "" {
			return endpoint.ResponseLocation
		}
		return endpoint.Location
	}
	return ""
}

// EntitySettings is a read-only view into an entity's operational configuration
// for constructing outbound messages.
type EntitySettings struct {
	// LoginRequestTemplate optionally overrides the default login request template.
	LoginRequestTemplate string
	// LogoutRequestTemplate optionally overrides the default logout request template.
	LogoutRequestTemplate string
	// LogoutResponseTemplate optionally overrides the default logout response template.
	LogoutResponseTemplate string
	// Transform is an optional caller supplied custom template renderer.
	Transform TemplateTransform
	// GenerateID produces a fresh unique message identifier per call.
	GenerateID func() string
	// NameIDFormat is the requested NameID format for login requests.
	NameIDFormat string
	// SignatureAlgorithm is the XML signature algorithm URI used when signing.
	SignatureAlgorithm string
	// PrivateKeyPEM is the PEM encoded signing key.
	PrivateKeyPEM []byte
	// KeyPassphrase optionally decrypts an encrypted signing key.
	KeyPassphrase string
	// SignLoginRequests marks outbound authentication requests as signed.
	SignLoginRequests bool
}

// Validate checks the settings view for construction time consistency.
func (s *EntitySettings) Validate() error {
	if s.SignatureAlgorithm == "" {
		return errors.New("signature algorithm is not configured")
	}
	return nil
}

// IDGenerator returns the configured identifier generator, falling back to the
// default SAML message ID generator when none is configured.
func (s *EntitySettings) IDGenerator() func() string {
	if s.GenerateID != nil {
		return s.GenerateID
	}
	return utils.GenerateSAMLMessageID
}

// RequestedNameIDFormat returns the configured NameID format, falling back to
// the emailAddress format when the configured value is unrecognized.
func (s *EntitySettings) RequestedNameIDFormat() string {
	if constants.IsSupportedNameIDFormat(s.NameIDFormat) {
		return s.NameIDFormat
	}
	return constants.NameIDFormatEmailAddress
}

// SigningSettings materializes the signing settings view for the encoder.
func (s *EntitySettings) SigningSettings() SigningSettings {
	return SigningSettings{
		Algorithm:     s.SignatureAlgorithm,
		PrivateKeyPEM: s.PrivateKeyPEM,
		KeyPassphrase: s.KeyPassphrase,
	}
}
