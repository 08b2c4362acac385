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

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/asgardeo/samlgate/internal/system/cmodels"
	serverconst "github.com/asgardeo/samlgate/internal/system/constants"
	"github.com/asgardeo/samlgate/internal/system/error/apierror"
	"github.com/asgardeo/samlgate/internal/system/error/serviceerror"
	"github.com/asgardeo/samlgate/internal/system/log"
	sysutils "github.com/asgardeo/samlgate/internal/system/utils"
)

// entityHandler is the handler for federation entity management operations.
type entityHandler struct {
	entityService EntityServiceInterface
}

// newEntityHandler creates a new instance of entityHandler.
func newEntityHandler(entityService EntityServiceInterface) *entityHandler {
	return &entityHandler{
		entityService: entityService,
	}
}

// HandleEntityPostRequest handles the create entity request.
func (eh *entityHandler) HandleEntityPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityHandler"))

	createRequest, err := sysutils.DecodeJSONBody[entityRequest](r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, ErrorInvalidRequestFormat, logger)
		return
	}

	properties, err := getSanitizedProperties(createRequest.Properties)
	if err != nil {
		logger.Error("Failed to sanitize properties", log.Error(err))
		writeServiceErrorResponse(w, &ErrorInternalServerError, logger)
		return
	}

	entityDTO := &EntityDTO{
		EntityID:    sysutils.SanitizeString(createRequest.EntityID),
		Name:        sysutils.SanitizeString(createRequest.Name),
		Description: sysutils.SanitizeString(createRequest.Description),
		Role:        EntityRole(sysutils.SanitizeString(createRequest.Role)),
		Properties:  properties,
	}
	createdEntity, svcErr := eh.entityService.CreateEntity(entityDTO)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	response, err := getEntityResponse(*createdEntity)
	if err != nil {
		logger.Error("Failed to convert entity to response", log.Error(err),
			log.String(log.LoggerKeyEntityID, createdEntity.EntityID))
		writeServiceErrorResponse(w, &ErrorInternalServerError, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusCreated)

	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// HandleEntityListRequest handles the list entities request.
func (eh *entityHandler) HandleEntityListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityHandler"))

	entityList, svcErr := eh.entityService.GetEntityList()
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	entityListResponse := make([]basicEntityResponse, 0, len(entityList))
	for _, entity := range entityList {
		entityListResponse = append(entityListResponse, basicEntityResponse{
			ID:          entity.ID,
			EntityID:    entity.EntityID,
			Name:        entity.Name,
			Description: entity.Description,
			Role:        string(entity.Role),
		})
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(entityListResponse); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// HandleEntityGetRequest handles the get entity request.
func (eh *entityHandler) HandleEntityGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityHandler"))

	id := r.PathValue("id")
	if strings.TrimSpace(id) == "" {
		writeErrorResponse(w, http.StatusBadRequest, ErrorInvalidEntityInternalID, logger)
		return
	}

	entity, svcErr := eh.entityService.GetEntity(id)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	response, err := getEntityResponse(*entity)
	if err != nil {
		logger.Error("Failed to convert entity to response", log.Error(err),
			log.String(log.LoggerKeyEntityID, entity.EntityID))
		writeServiceErrorResponse(w, &ErrorInternalServerError, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// HandleEntityPutRequest handles the update entity request.
func (eh *entityHandler) HandleEntityPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityHandler"))

	id := r.PathValue("id")
	if strings.TrimSpace(id) == "" {
		writeErrorResponse(w, http.StatusBadRequest, ErrorInvalidEntityInternalID, logger)
		return
	}

	updateRequest, err := sysutils.DecodeJSONBody[entityRequest](r)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, ErrorInvalidRequestFormat, logger)
		return
	}

	properties, err := getSanitizedProperties(updateRequest.Properties)
	if err != nil {
		logger.Error("Failed to sanitize properties", log.Error(err))
		writeServiceErrorResponse(w, &ErrorInternalServerError, logger)
		return
	}

	entityDTO := &EntityDTO{
		EntityID:    sysutils.SanitizeString(updateRequest.EntityID),
		Name:        sysutils.SanitizeString(updateRequest.Name),
		Description: sysutils.SanitizeString(updateRequest.Description),
		Role:        EntityRole(sysutils.SanitizeString(updateRequest.Role)),
		Properties:  properties,
	}
	entityDTO.ID = id

	entity, svcErr := eh.entityService.UpdateEntity(id, entityDTO)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	response, err := getEntityResponse(*entity)
	if err != nil {
		logger.Error("Failed to convert entity to response", log.Error(err),
			log.String(log.LoggerKeyEntityID, entity.EntityID))
		writeServiceErrorResponse(w, &ErrorInternalServerError, logger)
		return
	}

	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		logger.Error("Error encoding response", log.Error(encodeErr))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}

// HandleEntityDeleteRequest handles the delete entity request.
func (eh *entityHandler) HandleEntityDeleteRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityHandler"))

	id := r.PathValue("id")
	if strings.TrimSpace(id) == "" {
		writeErrorResponse(w, http.StatusBadRequest, ErrorInvalidEntityInternalID, logger)
		return
	}

	svcErr := eh.entityService.DeleteEntity(id)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr, logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeErrorResponse writes an error response with the given status code.
func writeErrorResponse(w http.ResponseWriter, statusCode int, svcErr serviceerror.ServiceError,
	logger *log.Logger) {
	w.Header().Set(serverconst.ContentTypeHeaderName, serverconst.ContentTypeJSON)
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

// writeServiceErrorResponse writes the appropriate HTTP error response based on the service error.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError, logger *log.Logger) {
	var statusCode int
	if svcErr.Type == serviceerror.ClientErrorType {
		statusCode = getClientErrorStatusCode(svcErr.Code)
	} else {
		statusCode = http.StatusInternalServerError
	}
	writeErrorResponse(w, statusCode, *svcErr, logger)
}

// getClientErrorStatusCode returns the appropriate HTTP status code for client errors.
func getClientErrorStatusCode(errorCode string) int {
	switch errorCode {
	case ErrorEntityNotFound.Code:
		return http.StatusNotFound
	case ErrorEntityAlreadyExists.Code:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// getSanitizedProperties sanitizes a slice of PropertyDTOs and converts them to Properties.
func getSanitizedProperties(propDTOs []cmodels.PropertyDTO) ([]cmodels.Property, error) {
	properties := make([]cmodels.Property, 0, len(propDTOs))
	for _, propDTO := range propDTOs {
		sanitizedDTO := cmodels.PropertyDTO{
			Name:     sysutils.SanitizeString(propDTO.Name),
			Value:    sysutils.SanitizeString(propDTO.Value),
			IsSecret: propDTO.IsSecret,
		}
		property, err := sanitizedDTO.ToProperty()
		if err != nil {
			return nil, err
		}
		properties = append(properties, *property)
	}
	return properties, nil
}

// getEntityResponse constructs the response for a federation entity.
func getEntityResponse(entity EntityDTO) (entityResponse, error) {
	returnEntity := entityResponse{
		ID:          entity.ID,
		EntityID:    entity.EntityID,
		Name:        entity.Name,
		Description: entity.Description,
		Role:        string(entity.Role),
	}

	// Convert Property to PropertyDTO and mask secret properties in the response.
	entityProperties := make([]cmodels.PropertyDTO, 0, len(entity.Properties))
	for _, property := range entity.Properties {
		if property.IsSecret() {
			maskedProperty := &cmodels.PropertyDTO{
				Name:     property.GetName(),
				Value:    "******",
				IsSecret: property.IsSecret(),
			}
			entityProperties = append(entityProperties, *maskedProperty)
		} else {
			propertyDTO, err := property.ToPropertyDTO()
			if err != nil {
				return entityResponse{}, fmt.Errorf("failed to convert property %s: %w",
					property.GetName(), err)
			}
			entityProperties = append(entityProperties, *propertyDTO)
		}
	}
	returnEntity.Properties = entityProperties

	return returnEntity, nil
}
