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

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	testCases := []struct {
		name     string
		template string
		values   map[string]string
		expected string
	}{
		{
			name:     "SingleSubstitution",
			template: `<a ID="{{ID}}"/>`,
			values:   map[string]string{"ID": "_abc"},
			expected: `<a ID="_abc"/>`,
		},
		{
			name:     "MultipleSubstitutions",
			template: `{{A}}-{{B}}-{{A}}`,
			values:   map[string]string{"A": "1", "B": "2"},
			expected: `1-2-1`,
		},
		{
			name:     "UnresolvedPlaceholderLeftIntact",
			template: `<a ID="{{ID}}" Destination="{{Destination}}"/>`,
			values:   map[string]string{"ID": "_abc"},
			expected: `<a ID="_abc" Destination="{{Destination}}"/>`,
		},
		{
			name:     "NoValues",
			template: `<a ID="{{ID}}"/>`,
			values:   nil,
			expected: `<a ID="{{ID}}"/>`,
		},
		{
			name:     "EmptyValueSubstituted",
			template: `<a x="{{X}}"/>`,
			values:   map[string]string{"X": ""},
			expected: `<a x=""/>`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Render(tc.template, tc.values))
		})
	}
}

func TestDefaultTemplatesAreWellFormed(t *testing.T) {
	values := map[string]string{
		"ID":                          "_id",
		"Destination":                 "https://idp.example.com/sso",
		"Issuer":                      "https://sp.example.com",
		"IssueInstant":                "2025-01-01T00:00:00Z",
		"NameIDFormat":                "urn:oasis:names:tc:SAML:1.1:nameid-format:emailAddress",
		"AllowCreate":                 "true",
		"AssertionConsumerServiceURL": "https://sp.example.com/acs",
		"NameID":                      "user@example.com",
		"SessionIndex":                "session-1",
		"InResponseToAttribute":       ` InResponseTo="_req"`,
		"StatusCode":                  "urn:oasis:names:tc:SAML:2.0:status:Success",
	}

	testCases := []struct {
		name     string
		template string
		rootTag  string
	}{
		{"LoginRequest", LoginRequest, "AuthnRequest"},
		{"LogoutRequest", LogoutRequest, "LogoutRequest"},
		{"LogoutResponse", LogoutResponse, "LogoutResponse"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rendered := Render(tc.template, values)
			assert.NotContains(t, rendered, "{{")

			doc := etree.NewDocument()
			assert.NoError(t, doc.ReadFromString(rendered))
			assert.Equal(t, tc.rootTag, doc.Root().Tag)
			assert.Equal(t, "_id", doc.Root().SelectAttrValue("ID", ""))
			assert.Equal(t, "2.0", doc.Root().SelectAttrValue("Version", ""))
		})
	}
}
