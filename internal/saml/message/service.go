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

// Package message provides the builders that assemble outbound SAML messages
// and hand them to the redirect encoder.
package message

import (
	"time"

	"github.com/asgardeo/samlgate/internal/saml/constants"
	"github.com/asgardeo/samlgate/internal/saml/encoder"
	"github.com/asgardeo/samlgate/internal/saml/model"
	"github.com/asgardeo/samlgate/internal/saml/template"
	"github.com/asgardeo/samlgate/internal/system/error/serviceerror"
	"github.com/asgardeo/samlgate/internal/system/log"
)

const loggerComponentName = "MessageService"

// MessageServiceInterface defines the builders for the outbound message kinds.
type MessageServiceInterface interface {
	BuildLoginRequestContext(idp, sp *model.EntityMetadata, settings *model.EntitySettings,
		relayState string) (*model.MessageContext, *serviceerror.ServiceError)
	BuildLogoutRequestContext(initiator, target *model.EntityMetadata, settings *model.EntitySettings,
		session *model.SessionInfo, relayState string) (*model.MessageContext, *serviceerror.ServiceError)
	BuildLogoutResponseContext(initiator, target *model.EntityMetadata, settings *model.EntitySettings,
		inResponseTo, relayState string) (*model.MessageContext, *serviceerror.ServiceError)
}

type messageService struct {
	messageStore messageStoreInterface
}

// GetMessageService returns the message service.
func GetMessageService() MessageServiceInterface {
	return &messageService{
		messageStore: newMessageStore(),
	}
}

// BuildLoginRequestContext builds an authentication request addressed to the
// identity provider's single sign-on endpoint and returns the redirect context.
func (ms *messageService) BuildLoginRequestContext(idp, sp *model.EntityMetadata,
	settings *model.EntitySettings, relayState string) (*model.MessageContext, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if idp == nil || sp == nil || settings == nil {
		return nil, &ErrorMissingMetadataDeclaration
	}

	destination := idp.SingleSignOnEndpoint(constants.BindingHTTPRedirect)
	if destination == "" {
		logger.Debug("Identity provider publishes no redirect single sign-on endpoint",
			log.String(log.LoggerKeyEntityID, idp.EntityID))
		return nil, &ErrorMissingProtocolEndpoint
	}

	var id, rawXML string
	if settings.LoginRequestTemplate != "" && settings.Transform != nil {
		var svcErr *serviceerror.ServiceError
		id, rawXML, svcErr = applyTransform(logger, settings.Transform, settings.LoginRequestTemplate)
		if svcErr != nil {
			return nil, svcErr
		}
	} else {
		id = settings.IDGenerator()()
		tmpl := settings.LoginRequestTemplate
		if tmpl == "" {
			tmpl = template.LoginRequest
		}
		rawXML = template.Render(tmpl, map[string]string{
			"ID":                          id,
			"Destination":                 destination,
			"Issuer":                      sp.EntityID,
			"IssueInstant":                issueInstant(),
			"NameIDFormat":                settings.RequestedNameIDFormat(),
			"AllowCreate":                 "true",
			"AssertionConsumerServiceURL": sp.AssertionConsumerEndpoint(constants.BindingHTTPPost),
		})
	}

	return ms.encode(logger, &model.EncodingRequest{
		BaseURL:    destination,
		Kind:       model.MessageKindAuthnRequest,
		Signed:     settings.SignLoginRequests,
		RawXML:     rawXML,
		RelayState: relayState,
		Signing:    settings.SigningSettings(),
	}, id, sp.EntityID)
}

// BuildLogoutRequestContext builds a logout request addressed to the target
// entity's single logout endpoint and returns the redirect context.
func (ms *messageService) BuildLogoutRequestContext(initiator, target *model.EntityMetadata,
	settings *model.EntitySettings, session *model.SessionInfo,
	relayState string) (*model.MessageContext, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if initiator == nil || target == nil || settings == nil {
		return nil, &ErrorMissingMetadataDeclaration
	}
	if session == nil || session.NameID == "" || session.SessionIndex == "" {
		return nil, &ErrorMissingSessionContext
	}

	destination := target.SingleLogoutEndpoint(constants.BindingHTTPRedirect)
	if destination == "" {
		logger.Debug("Target entity publishes no redirect single logout endpoint",
			log.String(log.LoggerKeyEntityID, target.EntityID))
		return nil, &ErrorMissingProtocolEndpoint
	}

	var id, rawXML string
	if settings.LogoutRequestTemplate != "" && settings.Transform != nil {
		var svcErr *serviceerror.ServiceError
		id, rawXML, svcErr = applyTransform(logger, settings.Transform, settings.LogoutRequestTemplate)
		if svcErr != nil {
			return nil, svcErr
		}
	} else {
		id = settings.IDGenerator()()
		tmpl := settings.LogoutRequestTemplate
		if tmpl == "" {
			tmpl = template.LogoutRequest
		}
		rawXML = template.Render(tmpl, map[string]string{
			"ID":           id,
			"Destination":  destination,
			"Issuer":       initiator.EntityID,
			"IssueInstant": issueInstant(),
			"NameIDFormat": settings.RequestedNameIDFormat(),
			"NameID":       session.NameID,
			"SessionIndex": session.SessionIndex,
		})
	}

	return ms.encode(logger, &model.EncodingRequest{
		BaseURL:    destination,
		Kind:       model.MessageKindLogoutRequest,
		Signed:     target.WantLogoutRequestsSigned,
		RawXML:     rawXML,
		RelayState: relayState,
		Signing:    settings.SigningSettings(),
	}, id, initiator.EntityID)
}

// BuildLogoutResponseContext builds a logout response addressed to the target
// entity's single logout response endpoint and returns the redirect context.
// inResponseTo carries the identifier of the logout request being answered and
// may be empty for responses to requests whose identifier is unknown.
func (ms *messageService) BuildLogoutResponseContext(initiator, target *model.EntityMetadata,
	settings *model.EntitySettings, inResponseTo,
	relayState string) (*model.MessageContext, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if initiator == nil || target == nil || settings == nil {
		return nil, &ErrorMissingMetadataDeclaration
	}

	destination := target.SingleLogoutResponseEndpoint(constants.BindingHTTPRedirect)
	if destination == "" {
		logger.Debug("Target entity publishes no redirect single logout endpoint",
			log.String(log.LoggerKeyEntityID, target.EntityID))
		return nil, &ErrorMissingProtocolEndpoint
	}

	var id, rawXML string
	if settings.LogoutResponseTemplate != "" && settings.Transform != nil {
		var svcErr *serviceerror.ServiceError
		id, rawXML, svcErr = applyTransform(logger, settings.Transform, settings.LogoutResponseTemplate)
		if svcErr != nil {
			return nil, svcErr
		}
	} else {
		id = settings.IDGenerator()()
		inResponseToAttr := ""
		if inResponseTo != "" {
			inResponseToAttr = ` InResponseTo="` + inResponseTo + `"`
		}
		tmpl := settings.LogoutResponseTemplate
		if tmpl == "" {
			tmpl = template.LogoutResponse
		}
		rawXML = template.Render(tmpl, map[string]string{
			"ID":                    id,
			"Destination":           destination,
			"Issuer":                initiator.EntityID,
			"IssueInstant":          issueInstant(),
			"InResponseToAttribute": inResponseToAttr,
			"StatusCode":            constants.StatusSuccess,
		})
	}

	return ms.encode(logger, &model.EncodingRequest{
		BaseURL:    destination,
		Kind:       model.MessageKindLogoutResponse,
		Signed:     target.WantLogoutResponsesSigned,
		RawXML:     rawXML,
		RelayState: relayState,
		Signing:    settings.SigningSettings(),
	}, id, initiator.EntityID)
}

func (ms *messageService) encode(logger *log.Logger, req *model.EncodingRequest, id,
	issuer string) (*model.MessageContext, *serviceerror.ServiceError) {
	redirectURL, err := encoder.Encode(req)
	if err != nil {
		logger.Error("Failed to construct the redirect URL", log.Error(err),
			log.String(log.LoggerKeyMessageID, id))
		return nil, &ErrorRedirectConstructionFailed
	}

	// Auditing is advisory. A failed record never blocks the redirect.
	auditErr := ms.messageStore.RecordMessage(messageRecord{
		MessageID:   id,
		MessageType: req.Kind,
		Issuer:      issuer,
		Destination: req.BaseURL,
		Signed:      req.Signed,
		IssuedAt:    time.Now(),
	})
	if auditErr != nil {
		logger.Warn("Failed to record the issued message", log.Error(auditErr),
			log.String(log.LoggerKeyMessageID, id))
	}

	return &model.MessageContext{
		ID:      id,
		Context: redirectURL,
	}, nil
}

// applyTransform invokes a caller supplied template transform and validates
// that it returned both a message identifier and a rendered message.
func applyTransform(logger *log.Logger, transform model.TemplateTransform,
	tmpl string) (string, string, *serviceerror.ServiceError) {
	id, rawXML, err := transform(tmpl)
	if err != nil {
		logger.Debug("Custom template transform returned an error", log.Error(err))
		return "", "", &ErrorTemplateTransformFailed
	}
	if id == "" || rawXML == "" {
		return "", "", &ErrorTemplateTransformContract
	}
	return id, rawXML, nil
}

func issueInstant() string {
	return time.Now().UTC().Format(constants.ISO8601UTCFormat)
}
