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

package handler

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/samlgate/internal/entity"
	"github.com/asgardeo/samlgate/internal/saml/model"
	"github.com/asgardeo/samlgate/internal/system/error/apierror"
	"github.com/asgardeo/samlgate/internal/system/error/serviceerror"
)

// stubEntityService returns canned views for registered entityIDs.
type stubEntityService struct {
	metadata map[string]*model.EntityMetadata
	settings map[string]*model.EntitySettings
}

func (s *stubEntityService) CreateEntity(_ *entity.EntityDTO) (*entity.EntityDTO,
	*serviceerror.ServiceError) {
	return nil, &entity.ErrorInternalServerError
}

func (s *stubEntityService) GetEntityList() ([]entity.BasicEntityDTO, *serviceerror.ServiceError) {
	return nil, nil
}

func (s *stubEntityService) GetEntity(_ string) (*entity.EntityDTO, *serviceerror.ServiceError) {
	return nil, &entity.ErrorEntityNotFound
}

func (s *stubEntityService) GetEntityByEntityID(_ string) (*entity.EntityDTO,
	*serviceerror.ServiceError) {
	return nil, &entity.ErrorEntityNotFound
}

func (s *stubEntityService) UpdateEntity(_ string, _ *entity.EntityDTO) (*entity.EntityDTO,
	*serviceerror.ServiceError) {
	return nil, &entity.ErrorEntityNotFound
}

func (s *stubEntityService) DeleteEntity(_ string) *serviceerror.ServiceError {
	return nil
}

func (s *stubEntityService) GetEntityMetadata(entityID string) (*model.EntityMetadata,
	*serviceerror.ServiceError) {
	if metadata, ok := s.metadata[entityID]; ok {
		return metadata, nil
	}
	return nil, &entity.ErrorEntityNotFound
}

func (s *stubEntityService) GetEntitySettings(entityID string) (*model.EntitySettings,
	*serviceerror.ServiceError) {
	if settings, ok := s.settings[entityID]; ok {
		return settings, nil
	}
	return nil, &entity.ErrorEntityNotFound
}

// stubMessageService records the build arguments and returns a fixed context.
type stubMessageService struct {
	msgCtx       *model.MessageContext
	svcErr       *serviceerror.ServiceError
	inResponseTo string
	session      *model.SessionInfo
	relayState   string
}

func (s *stubMessageService) BuildLoginRequestContext(_, _ *model.EntityMetadata,
	_ *model.EntitySettings, relayState string) (*model.MessageContext, *serviceerror.ServiceError) {
	s.relayState = relayState
	return s.msgCtx, s.svcErr
}

func (s *stubMessageService) BuildLogoutRequestContext(_, _ *model.EntityMetadata,
	_ *model.EntitySettings, session *model.SessionInfo, relayState string) (*model.MessageContext,
	*serviceerror.ServiceError) {
	s.session = session
	s.relayState = relayState
	return s.msgCtx, s.svcErr
}

func (s *stubMessageService) BuildLogoutResponseContext(_, _ *model.EntityMetadata,
	_ *model.EntitySettings, inResponseTo, relayState string) (*model.MessageContext,
	*serviceerror.ServiceError) {
	s.inResponseTo = inResponseTo
	s.relayState = relayState
	return s.msgCtx, s.svcErr
}

type SAMLHandlerTestSuite struct {
	suite.Suite
	entityService  *stubEntityService
	messageService *stubMessageService
	handler        *SAMLHandler
}

func TestSAMLHandlerSuite(t *testing.T) {
	suite.Run(t, new(SAMLHandlerTestSuite))
}

func (suite *SAMLHandlerTestSuite) SetupTest() {
	metadata := &model.EntityMetadata{EntityID: "https://sp.example.com"}
	settings := &model.EntitySettings{}

	suite.entityService = &stubEntityService{
		metadata: map[string]*model.EntityMetadata{
			"https://sp.example.com":  metadata,
			"https://idp.example.com": {EntityID: "https://idp.example.com"},
		},
		settings: map[string]*model.EntitySettings{
			"https://sp.example.com":  settings,
			"https://idp.example.com": settings,
		},
	}
	suite.messageService = &stubMessageService{
		msgCtx: &model.MessageContext{
			ID:      "_message-1",
			Context: "https://idp.example.com/sso?SAMLRequest=payload",
		},
	}
	suite.handler = &SAMLHandler{
		entityService:  suite.entityService,
		messageService: suite.messageService,
	}
}

func (suite *SAMLHandlerTestSuite) decodeErrorResponse(rr *httptest.ResponseRecorder) apierror.ErrorResponse {
	var errResp apierror.ErrorResponse
	err := json.NewDecoder(rr.Body).Decode(&errResp)
	assert.NoError(suite.T(), err)
	return errResp
}

func (suite *SAMLHandlerTestSuite) TestHandleLoginRequest() {
	req := httptest.NewRequest(http.MethodGet,
		"/saml/login?sp="+url.QueryEscape("https://sp.example.com")+
			"&idp="+url.QueryEscape("https://idp.example.com")+"&relayState=state-1", nil)
	rr := httptest.NewRecorder()

	suite.handler.HandleLoginRequest(rr, req)

	assert.Equal(suite.T(), http.StatusFound, rr.Code)
	assert.Equal(suite.T(), "https://idp.example.com/sso?SAMLRequest=payload",
		rr.Header().Get("Location"))
	assert.Equal(suite.T(), "state-1", suite.messageService.relayState)
}

func (suite *SAMLHandlerTestSuite) TestHandleLoginRequestMissingParameters() {
	testCases := []struct {
		name   string
		target string
	}{
		{"MissingSP", "/saml/login?idp=" + url.QueryEscape("https://idp.example.com")},
		{"MissingIDP", "/saml/login?sp=" + url.QueryEscape("https://sp.example.com")},
		{"MissingBoth", "/saml/login"},
	}

	for _, tc := range testCases {
		suite.T().Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rr := httptest.NewRecorder()

			suite.handler.HandleLoginRequest(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			errResp := suite.decodeErrorResponse(rr)
			assert.Equal(t, "SRB-1400", errResp.Code)
		})
	}
}

func (suite *SAMLHandlerTestSuite) TestHandleLoginRequestUnknownEntity() {
	req := httptest.NewRequest(http.MethodGet,
		"/saml/login?sp="+url.QueryEscape("https://sp.example.com")+
			"&idp="+url.QueryEscape("https://unknown.example.com"), nil)
	rr := httptest.NewRecorder()

	suite.handler.HandleLoginRequest(rr, req)

	assert.Equal(suite.T(), http.StatusNotFound, rr.Code)
	errResp := suite.decodeErrorResponse(rr)
	assert.Equal(suite.T(), entity.ErrorEntityNotFound.Code, errResp.Code)
}

func (suite *SAMLHandlerTestSuite) TestHandleLoginRequestBuildFailure() {
	suite.messageService.msgCtx = nil
	suite.messageService.svcErr = &serviceerror.ServiceError{
		Code:  "SRB-1501",
		Type:  serviceerror.ServerErrorType,
		Error: "Redirect construction failed",
	}

	req := httptest.NewRequest(http.MethodGet,
		"/saml/login?sp="+url.QueryEscape("https://sp.example.com")+
			"&idp="+url.QueryEscape("https://idp.example.com"), nil)
	rr := httptest.NewRecorder()

	suite.handler.HandleLoginRequest(rr, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, rr.Code)
}

func (suite *SAMLHandlerTestSuite) TestHandleLogoutRequest() {
	req := httptest.NewRequest(http.MethodGet,
		"/saml/logout?initiator="+url.QueryEscape("https://sp.example.com")+
			"&target="+url.QueryEscape("https://idp.example.com")+
			"&nameId=user%40example.com&sessionIndex=_session-1", nil)
	rr := httptest.NewRecorder()

	suite.handler.HandleLogoutRequest(rr, req)

	assert.Equal(suite.T(), http.StatusFound, rr.Code)
	assert.NotNil(suite.T(), suite.messageService.session)
	assert.Equal(suite.T(), "user@example.com", suite.messageService.session.NameID)
	assert.Equal(suite.T(), "_session-1", suite.messageService.session.SessionIndex)
}

func (suite *SAMLHandlerTestSuite) TestHandleLogoutRequestMissingParameters() {
	req := httptest.NewRequest(http.MethodGet,
		"/saml/logout?initiator="+url.QueryEscape("https://sp.example.com"), nil)
	rr := httptest.NewRecorder()

	suite.handler.HandleLogoutRequest(rr, req)

	assert.Equal(suite.T(), http.StatusBadRequest, rr.Code)
}

func (suite *SAMLHandlerTestSuite) TestHandleLogoutResponseWithInResponseTo() {
	req := httptest.NewRequest(http.MethodGet,
		"/saml/logout/response?initiator="+url.QueryEscape("https://idp.example.com")+
			"&target="+url.QueryEscape("https://sp.example.com")+"&inResponseTo=_request-1", nil)
	rr := httptest.NewRecorder()

	suite.handler.HandleLogoutResponse(rr, req)

	assert.Equal(suite.T(), http.StatusFound, rr.Code)
	assert.Equal(suite.T(), "_request-1", suite.messageService.inResponseTo)
}

func (suite *SAMLHandlerTestSuite) TestHandleLogoutResponseWithInboundRequest() {
	inbound := deflateAndEncode(suite.T(),
		`<samlp:LogoutRequest xmlns:samlp="urn:oasis:names:tc:SAML:2.0:protocol" ID="_inbound-42" `+
			`Version="2.0"/>`)

	req := httptest.NewRequest(http.MethodGet,
		"/saml/logout/response?initiator="+url.QueryEscape("https://idp.example.com")+
			"&target="+url.QueryEscape("https://sp.example.com")+
			"&SAMLRequest="+url.QueryEscape(inbound), nil)
	rr := httptest.NewRecorder()

	suite.handler.HandleLogoutResponse(rr, req)

	assert.Equal(suite.T(), http.StatusFound, rr.Code)
	assert.Equal(suite.T(), "_inbound-42", suite.messageService.inResponseTo)
}

func (suite *SAMLHandlerTestSuite) TestHandleLogoutResponseWithUndecodablePayload() {
	req := httptest.NewRequest(http.MethodGet,
		"/saml/logout/response?initiator="+url.QueryEscape("https://idp.example.com")+
			"&target="+url.QueryEscape("https://sp.example.com")+
			"&SAMLRequest=not-base64%21", nil)
	rr := httptest.NewRecorder()

	suite.handler.HandleLogoutResponse(rr, req)

	assert.Equal(suite.T(), http.StatusBadRequest, rr.Code)
	errResp := suite.decodeErrorResponse(rr)
	assert.Equal(suite.T(), "The SAMLRequest query parameter could not be decoded", errResp.Description)
}

func (suite *SAMLHandlerTestSuite) TestHandleLogoutResponseWithoutInResponseTo() {
	req := httptest.NewRequest(http.MethodGet,
		"/saml/logout/response?initiator="+url.QueryEscape("https://idp.example.com")+
			"&target="+url.QueryEscape("https://sp.example.com"), nil)
	rr := httptest.NewRecorder()

	suite.handler.HandleLogoutResponse(rr, req)

	assert.Equal(suite.T(), http.StatusFound, rr.Code)
	assert.Empty(suite.T(), suite.messageService.inResponseTo)
}

func TestExtractInboundRequestID(t *testing.T) {
	t.Run("ValidPayload", func(t *testing.T) {
		payload := deflateAndEncode(t,
			`<samlp:LogoutRequest xmlns:samlp="urn:oasis:names:tc:SAML:2.0:protocol" ID="_req-7"/>`)

		requestID, err := extractInboundRequestID(payload)
		assert.NoError(t, err)
		assert.Equal(t, "_req-7", requestID)
	})

	t.Run("NotBase64", func(t *testing.T) {
		_, err := extractInboundRequestID("%%%")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "base64")
	})

	t.Run("NotDeflated", func(t *testing.T) {
		_, err := extractInboundRequestID(base64.StdEncoding.EncodeToString([]byte("plain text")))
		assert.Error(t, err)
	})

	t.Run("MissingID", func(t *testing.T) {
		payload := deflateAndEncode(t,
			`<samlp:LogoutRequest xmlns:samlp="urn:oasis:names:tc:SAML:2.0:protocol"/>`)

		_, err := extractInboundRequestID(payload)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no message identifier")
	})
}

// deflateAndEncode produces a redirect binding payload from raw XML.
func deflateAndEncode(t *testing.T, rawXML string) string {
	var buf bytes.Buffer
	writer, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		t.Fatalf("Failed to create deflate writer: %v", err)
	}
	if _, err := writer.Write([]byte(rawXML)); err != nil {
		t.Fatalf("Failed to deflate payload: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close deflate writer: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}
