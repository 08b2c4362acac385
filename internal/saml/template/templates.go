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

package template

// Default message templates for the three outbound message kinds. The
// {{InResponseToAttribute}} placeholder of the logout response template is
// substituted with a complete attribute fragment, or with an empty string when
// the originating request identifier is unknown.
const (
	// LoginRequest is the default AuthnRequest template.
	LoginRequest = `<samlp:AuthnRequest xmlns:samlp="urn:oasis:names:tc:SAML:2.0:protocol" xmlns:saml="urn:oasis:names:tc:SAML:2.0:assertion" ID="{{ID}}" Version="2.0" IssueInstant="{{IssueInstant}}" Destination="{{Destination}}" ProtocolBinding="urn:oasis:names:tc:SAML:2.0:bindings:HTTP-POST" AssertionConsumerServiceURL="{{AssertionConsumerServiceURL}}"><saml:Issuer>{{Issuer}}</saml:Issuer><samlp:NameIDPolicy Format="{{NameIDFormat}}" AllowCreate="{{AllowCreate}}"/></samlp:AuthnRequest>`

	// LogoutRequest is the default LogoutRequest template.
	LogoutRequest = `<samlp:LogoutRequest xmlns:samlp="urn:oasis:names:tc:SAML:2.0:protocol" xmlns:saml="urn:oasis:names:tc:SAML:2.0:assertion" ID="{{ID}}" Version="2.0" IssueInstant="{{IssueInstant}}" Destination="{{Destination}}"><saml:Issuer>{{Issuer}}</saml:Issuer><saml:NameID Format="{{NameIDFormat}}">{{NameID}}</saml:NameID><samlp:SessionIndex>{{SessionIndex}}</samlp:SessionIndex></samlp:LogoutRequest>`

	// LogoutResponse is the default LogoutResponse template.
	LogoutResponse = `<samlp:LogoutResponse xmlns:samlp="urn:oasis:names:tc:SAML:2.0:protocol" xmlns:saml="urn:oasis:names:tc:SAML:2.0:assertion" ID="{{ID}}" Version="2.0" IssueInstant="{{IssueInstant}}" Destination="{{Destination}}"{{InResponseToAttribute}}><saml:Issuer>{{Issuer}}</saml:Issuer><samlp:Status><samlp:StatusCode Value="{{StatusCode}}"/></samlp:Status></samlp:LogoutResponse>`
)
