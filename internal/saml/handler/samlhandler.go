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

// Package handler provides the HTTP handlers that initiate outbound SAML flows.
package handler

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/beevik/etree"

	"github.com/asgardeo/samlgate/internal/entity"
	"github.com/asgardeo/samlgate/internal/saml/message"
	"github.com/asgardeo/samlgate/internal/saml/model"
	serverconst "github.com/asgardeo/samlgate/internal/system/constants"
	"github.com/asgardeo/samlgate/internal/system/error/apierror"
	"github.com/asgardeo/samlgate/internal/system/error/serviceerror"
	"github.com/asgardeo/samlgate/internal/system/log"
	sysutils "github.com/asgardeo/samlgate/internal/system/utils"
)

const loggerComponentName = "SAMLHandler"

// SAMLHandler handles the outbound SAML flow initiation requests.
type SAMLHandler struct {
	entityService  entity.EntityServiceInterface
	messageService message.MessageServiceInterface
}

// NewSAMLHandler creates a new instance of SAMLHandler.
func NewSAMLHandler(entityService entity.EntityServiceInterface) *SAMLHandler {
	return &SAMLHandler{
		entityService:  entityService,
		messageService: message.GetMessageService(),
	}
}

// HandleLoginRequest initiates a login flow: it builds an authentication
// request for the given service provider and redirects the user agent to the
// identity provider's single sign-on endpoint.
func (sh *SAMLHandler) HandleLoginRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	spEntityID := sysutils.SanitizeString(r.URL.Query().Get("sp"))
	idpEntityID := sysutils.SanitizeString(r.URL.Query().Get("idp"))
	relayState := r.URL.Query().Get("relayState")

	if spEntityID == "" || idpEntityID == "" {
		writeBadRequestResponse(w, "Both the sp and idp query parameters are required", logger)
		return
	}

	idpMetadata, svcErr := sh.entityService.GetEntityMetadata(idpEntityID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	spMetadata, svcErr := sh.entityService.GetEntityMetadata(spEntityID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	spSettings, svcErr := sh.entityService.GetEntitySettings(spEntityID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	msgCtx, svcErr := sh.messageService.BuildLoginRequestContext(idpMetadata, spMetadata,
		spSettings, relayState)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	logger.Debug("Redirecting login request", log.String(log.LoggerKeyMessageID, msgCtx.ID),
		log.String(log.LoggerKeyEntityID, spEntityID))

	w.Header().Set(serverconst.LocationHeaderName, msgCtx.Context)
	w.WriteHeader(http.StatusFound)
}

// HandleLogoutRequest initiates a logout flow: it builds a logout request for
// the subject session and redirects the user agent to the target entity's
// single logout endpoint.
func (sh *SAMLHandler) HandleLogoutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	initiatorEntityID := sysutils.SanitizeString(r.URL.Query().Get("initiator"))
	targetEntityID := sysutils.SanitizeString(r.URL.Query().Get("target"))
	relayState := r.URL.Query().Get("relayState")
	session := &model.SessionInfo{
		NameID:       sysutils.SanitizeString(r.URL.Query().Get("nameId")),
		SessionIndex: sysutils.SanitizeString(r.URL.Query().Get("sessionIndex")),
	}

	if initiatorEntityID == "" || targetEntityID == "" {
		writeBadRequestResponse(w, "Both the initiator and target query parameters are required", logger)
		return
	}

	initiatorMetadata, svcErr := sh.entityService.GetEntityMetadata(initiatorEntityID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	targetMetadata, svcErr := sh.entityService.GetEntityMetadata(targetEntityID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	initiatorSettings, svcErr := sh.entityService.GetEntitySettings(initiatorEntityID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	msgCtx, svcErr := sh.messageService.BuildLogoutRequestContext(initiatorMetadata, targetMetadata,
		initiatorSettings, session, relayState)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	logger.Debug("Redirecting logout request", log.String(log.LoggerKeyMessageID, msgCtx.ID),
		log.String(log.LoggerKeyEntityID, initiatorEntityID))

	w.Header().Set(serverconst.LocationHeaderName, msgCtx.Context)
	w.WriteHeader(http.StatusFound)
}

// HandleLogoutResponse answers an inbound logout request: it builds a logout
// response referencing the inbound request identifier and redirects the user
// agent to the requesting entity's single logout response endpoint. The
// inbound request may be supplied verbatim through the SAMLRequest query
// parameter, in which case its identifier is extracted from the payload.
func (sh *SAMLHandler) HandleLogoutResponse(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	initiatorEntityID := sysutils.SanitizeString(r.URL.Query().Get("initiator"))
	targetEntityID := sysutils.SanitizeString(r.URL.Query().Get("target"))
	relayState := r.URL.Query().Get("relayState")
	inResponseTo := sysutils.SanitizeString(r.URL.Query().Get("inResponseTo"))

	if initiatorEntityID == "" || targetEntityID == "" {
		writeBadRequestResponse(w, "Both the initiator and target query parameters are required", logger)
		return
	}

	if inResponseTo == "" {
		if inboundRequest := r.URL.Query().Get("SAMLRequest"); inboundRequest != "" {
			requestID, err := extractInboundRequestID(inboundRequest)
			if err != nil {
				logger.Debug("Failed to extract the inbound request identifier", log.Error(err))
				writeBadRequestResponse(w, "The SAMLRequest query parameter could not be decoded", logger)
				return
			}
			inResponseTo = requestID
		}
	}

	initiatorMetadata, svcErr := sh.entityService.GetEntityMetadata(initiatorEntityID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	targetMetadata, svcErr := sh.entityService.GetEntityMetadata(targetEntityID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}
	initiatorSettings, svcErr := sh.entityService.GetEntitySettings(initiatorEntityID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	msgCtx, svcErr := sh.messageService.BuildLogoutResponseContext(initiatorMetadata, targetMetadata,
		initiatorSettings, inResponseTo, relayState)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	logger.Debug("Redirecting logout response", log.String(log.LoggerKeyMessageID, msgCtx.ID),
		log.String(log.LoggerKeyEntityID, initiatorEntityID))

	w.Header().Set(serverconst.LocationHeaderName, msgCtx.Context)
	w.WriteHeader(http.StatusFound)
}

// extractInboundRequestID decodes a redirect binding payload and returns the
// ID attribute of the carried protocol message.
func extractInboundRequestID(payload string) (string, error) {
	deflated, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", fmt.Errorf("failed to base64 decode the payload: %w", err)
	}

	reader := flate.NewReader(bytes.NewReader(deflated))
	rawXML, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to inflate the payload: %w", err)
	}
	if closeErr := reader.Close(); closeErr != nil {
		return "", fmt.Errorf("failed to inflate the payload: %w", closeErr)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawXML); err != nil {
		return "", fmt.Errorf("failed to parse the payload: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return "", fmt.Errorf("payload carries no XML document")
	}

	requestID := strings.TrimSpace(root.SelectAttrValue("ID", ""))
	if requestID == "" {
		return "", fmt.Errorf("payload carries no message identifier")
	}
	return requestID, nil
}

// writeBadRequestResponse writes a bad request error response with the given description.
func writeBadRequestResponse(w http.ResponseWriter, description string, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusBadRequest)

	errResp := apierror.ErrorResponse{
		Code:        "SRB-1400",
		Message:     "Invalid request",
		Description: description,
	}
	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// writeServiceErrorResponse writes the appropriate HTTP error response based on the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)

	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	} else {
		statusCode = http.StatusInternalServerError
	}
	w.WriteHeader(statusCode)

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
	}
	if encodeErr := json.NewEncoder(w).Encode(errResp); encodeErr != nil {
		logger.Error("Error encoding error response", log.Error(encodeErr))
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}

// getClientErrorStatusCode returns the appropriate HTTP status code for client errors.
func getClientErrorStatusCode(errorCode string) int {
	switch errorCode {
	case entity.ErrorEntityNotFound.Code:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
