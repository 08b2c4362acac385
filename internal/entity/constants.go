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

package entity

// EntityRole represents the federation role of a registered entity.
type EntityRole string

const (
	// EntityRoleIdentityProvider represents an identity provider entity.
	EntityRoleIdentityProvider EntityRole = "IDP"
	// EntityRoleServiceProvider represents a service provider entity.
	EntityRoleServiceProvider EntityRole = "SP"
)

// supportedEntityRoles lists all the supported entity roles.
var supportedEntityRoles = []EntityRole{
	EntityRoleIdentityProvider,
	EntityRoleServiceProvider,
}

// Property names for the entity endpoint declarations.
const (
	propSSORedirectURL = "sso_redirect_url"
	propSSOPostURL     = "sso_post_url"
	propSLORedirectURL = "slo_redirect_url"
	propSLOResponseURL = "slo_response_url"
	propACSPostURL     = "acs_post_url"
)

// Property names for the entity message construction settings.
const (
	propSignLoginRequests         = "sign_login_requests"
	propWantLogoutRequestsSigned  = "want_logout_requests_signed"
	propWantLogoutResponsesSigned = "want_logout_responses_signed"
	propSignatureAlgorithm        = "signature_algorithm"
	propNameIDFormat              = "name_id_format"
	propSigningKey                = "signing_key"
	propSigningKeyPassphrase      = "signing_key_passphrase"
	propLoginRequestTemplate      = "login_request_template"
	propLogoutRequestTemplate     = "logout_request_template"
	propLogoutResponseTemplate    = "logout_response_template"
)

// supportedEntityProperties lists all the supported entity properties.
var supportedEntityProperties = []string{
	propSSORedirectURL,
	propSSOPostURL,
	propSLORedirectURL,
	propSLOResponseURL,
	propACSPostURL,
	propSignLoginRequests,
	propWantLogoutRequestsSigned,
	propWantLogoutResponsesSigned,
	propSignatureAlgorithm,
	propNameIDFormat,
	propSigningKey,
	propSigningKeyPassphrase,
	propLoginRequestTemplate,
	propLogoutRequestTemplate,
	propLogoutResponseTemplate,
}
