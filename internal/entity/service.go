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

// Package entity provides the implementation for federation entity management operations.
package entity

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	samlconst "github.com/asgardeo/samlgate/internal/saml/constants"
	samlmodel "github.com/asgardeo/samlgate/internal/saml/model"
	"github.com/asgardeo/samlgate/internal/system/cmodels"
	"github.com/asgardeo/samlgate/internal/system/config"
	"github.com/asgardeo/samlgate/internal/system/error/serviceerror"
	"github.com/asgardeo/samlgate/internal/system/log"
	"github.com/asgardeo/samlgate/internal/system/utils"
)

// EntityServiceInterface defines the interface for the entity service.
type EntityServiceInterface interface {
	CreateEntity(entity *EntityDTO) (*EntityDTO, *serviceerror.ServiceError)
	GetEntityList() ([]BasicEntityDTO, *serviceerror.ServiceError)
	GetEntity(id string) (*EntityDTO, *serviceerror.ServiceError)
	GetEntityByEntityID(entityID string) (*EntityDTO, *serviceerror.ServiceError)
	UpdateEntity(id string, entity *EntityDTO) (*EntityDTO, *serviceerror.ServiceError)
	DeleteEntity(id string) *serviceerror.ServiceError
	GetEntityMetadata(entityID string) (*samlmodel.EntityMetadata, *serviceerror.ServiceError)
	GetEntitySettings(entityID string) (*samlmodel.EntitySettings, *serviceerror.ServiceError)
}

// entityService is the default implementation of the EntityServiceInterface.
type entityService struct {
	entityStore entityStoreInterface
}

// NewEntityService creates a new instance of the entity service.
func NewEntityService() EntityServiceInterface {
	return &entityService{
		entityStore: newEntityStore(),
	}
}

// CreateEntity registers a new federation entity.
func (es *entityService) CreateEntity(entity *EntityDTO) (*EntityDTO, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	if svcErr := es.validateEntity(entity); svcErr != nil {
		return nil, svcErr
	}

	// Check if an entity with the same entityID already exists
	existingEntity, err := es.entityStore.GetEntityByEntityID(entity.EntityID)
	if err != nil && !errors.Is(err, ErrEntityNotFound) {
		logger.Error("Failed to check existing entity by entityID", log.Error(err),
			log.String(log.LoggerKeyEntityID, entity.EntityID))
		return nil, &ErrorInternalServerError
	}
	if existingEntity != nil {
		return nil, &ErrorEntityAlreadyExists
	}

	entity.ID = utils.GenerateUUID()
	err = es.entityStore.CreateEntity(*entity)
	if err != nil {
		logger.Error("Failed to create entity", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return entity, nil
}

// GetEntityList retrieves the list of all registered entities.
func (es *entityService) GetEntityList() ([]BasicEntityDTO, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	entities, err := es.entityStore.GetEntityList()
	if err != nil {
		logger.Error("Failed to get entity list", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return entities, nil
}

// GetEntity retrieves an entity by its internal ID.
func (es *entityService) GetEntity(id string) (*EntityDTO, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	if strings.TrimSpace(id) == "" {
		return nil, &ErrorInvalidEntityInternalID
	}

	entity, err := es.entityStore.GetEntity(id)
	if err != nil {
		if errors.Is(err, ErrEntityNotFound) {
			return nil, &ErrorEntityNotFound
		}
		logger.Error("Failed to get entity", log.String("id", id), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return entity, nil
}

// GetEntityByEntityID retrieves an entity by its SAML entityID.
func (es *entityService) GetEntityByEntityID(entityID string) (*EntityDTO, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	if strings.TrimSpace(entityID) == "" {
		return nil, &ErrorInvalidEntityID
	}

	entity, err := es.entityStore.GetEntityByEntityID(entityID)
	if err != nil {
		if errors.Is(err, ErrEntityNotFound) {
			return nil, &ErrorEntityNotFound
		}
		logger.Error("Failed to get entity by entityID", log.String(log.LoggerKeyEntityID, entityID),
			log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return entity, nil
}

// UpdateEntity updates an existing federation entity.
func (es *entityService) UpdateEntity(id string, entity *EntityDTO) (*EntityDTO, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	if strings.TrimSpace(id) == "" {
		return nil, &ErrorInvalidEntityInternalID
	}
	if svcErr := es.validateEntity(entity); svcErr != nil {
		return nil, svcErr
	}

	existingEntity, err := es.entityStore.GetEntity(id)
	if err != nil {
		if errors.Is(err, ErrEntityNotFound) {
			return nil, &ErrorEntityNotFound
		}
		logger.Error("Failed to get entity for update", log.String("id", id), log.Error(err))
		return nil, &ErrorInternalServerError
	}

	// If the entityID is being updated, check whether another entity already claims it
	if existingEntity.EntityID != entity.EntityID {
		existingByEntityID, err := es.entityStore.GetEntityByEntityID(entity.EntityID)
		if err != nil && !errors.Is(err, ErrEntityNotFound) {
			logger.Error("Failed to check existing entity by entityID", log.Error(err),
				log.String(log.LoggerKeyEntityID, entity.EntityID))
			return nil, &ErrorInternalServerError
		}
		if existingByEntityID != nil {
			return nil, &ErrorEntityAlreadyExists
		}
	}

	entity.ID = id
	err = es.entityStore.UpdateEntity(entity)
	if err != nil {
		logger.Error("Failed to update entity", log.Error(err), log.String("id", id))
		return nil, &ErrorInternalServerError
	}

	return entity, nil
}

// DeleteEntity deletes a federation entity by its internal ID.
func (es *entityService) DeleteEntity(id string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	if strings.TrimSpace(id) == "" {
		return &ErrorInvalidEntityInternalID
	}

	_, err := es.entityStore.GetEntity(id)
	if err != nil {
		if errors.Is(err, ErrEntityNotFound) {
			return nil
		}
		logger.Error("Failed to get entity for deletion", log.Error(err), log.String("id", id))
		return &ErrorInternalServerError
	}

	err = es.entityStore.DeleteEntity(id)
	if err != nil {
		logger.Error("Failed to delete entity", log.Error(err), log.String("id", id))
		return &ErrorInternalServerError
	}

	return nil
}

// GetEntityMetadata materializes the metadata view of a registered entity.
func (es *entityService) GetEntityMetadata(entityID string) (*samlmodel.EntityMetadata,
	*serviceerror.ServiceError) {
	entity, svcErr := es.GetEntityByEntityID(entityID)
	if svcErr != nil {
		return nil, svcErr
	}
	return buildEntityMetadata(entity)
}

// GetEntitySettings materializes the message construction settings view of a registered entity.
func (es *entityService) GetEntitySettings(entityID string) (*samlmodel.EntitySettings,
	*serviceerror.ServiceError) {
	entity, svcErr := es.GetEntityByEntityID(entityID)
	if svcErr != nil {
		return nil, svcErr
	}
	return buildEntitySettings(entity)
}

// validateEntity validates the entity details.
func (es *entityService) validateEntity(entity *EntityDTO) *serviceerror.ServiceError {
	if entity == nil {
		return &ErrorEntityNil
	}
	if strings.TrimSpace(entity.EntityID) == "" {
		return &ErrorInvalidEntityID
	}

	if strings.TrimSpace(string(entity.Role)) == "" {
		return &ErrorInvalidEntityRole
	}
	if !slices.Contains(supportedEntityRoles, entity.Role) {
		return &ErrorInvalidEntityRole
	}

	return validateEntityProperties(entity.Properties)
}

// validateEntityProperties validates the entity properties.
func validateEntityProperties(properties []cmodels.Property) *serviceerror.ServiceError {
	if len(properties) == 0 {
		return nil
	}
	for _, property := range properties {
		if strings.TrimSpace(property.GetName()) == "" {
			return serviceerror.CustomServiceError(ErrorInvalidEntityProperty,
				"property names cannot be empty")
		}
		propertyValue, err := property.GetValue()
		if err != nil {
			return serviceerror.CustomServiceError(ErrorInvalidEntityProperty,
				fmt.Sprintf("failed to get value for property '%s': %v", property.GetName(), err))
		}
		if strings.TrimSpace(propertyValue) == "" {
			return serviceerror.CustomServiceError(ErrorInvalidEntityProperty,
				fmt.Sprintf("property value cannot be empty for property '%s'", property.GetName()))
		}
		if !slices.Contains(supportedEntityProperties, property.GetName()) {
			return serviceerror.CustomServiceError(ErrorUnsupportedEntityProperty,
				fmt.Sprintf("property '%s' is not supported", property.GetName()))
		}
	}
	return nil
}

// buildEntityMetadata constructs the metadata view from the stored entity.
func buildEntityMetadata(entity *EntityDTO) (*samlmodel.EntityMetadata, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	values, svcErr := propertyValues(entity.Properties)
	if svcErr != nil {
		logger.Error("Failed to read entity properties",
			log.String(log.LoggerKeyEntityID, entity.EntityID))
		return nil, svcErr
	}

	metadata := &samlmodel.EntityMetadata{
		EntityID:                  entity.EntityID,
		WantLogoutRequestsSigned:  utils.NumStringToBool(values[propWantLogoutRequestsSigned]),
		WantLogoutResponsesSigned: utils.NumStringToBool(values[propWantLogoutResponsesSigned]),
	}

	if location := values[propSSORedirectURL]; location != "" {
		metadata.SingleSignOnServices = append(metadata.SingleSignOnServices, samlmodel.Endpoint{
			Binding:  samlconst.BindingHTTPRedirect,
			Location: location,
		})
	}
	if location := values[propSSOPostURL]; location != "" {
		metadata.SingleSignOnServices = append(metadata.SingleSignOnServices, samlmodel.Endpoint{
			Binding:  samlconst.BindingHTTPPost,
			Location: location,
		})
	}
	if location := values[propSLORedirectURL]; location != "" {
		metadata.SingleLogoutServices = append(metadata.SingleLogoutServices, samlmodel.Endpoint{
			Binding:          samlconst.BindingHTTPRedirect,
			Location:         location,
			ResponseLocation: values[propSLOResponseURL],
		})
	}
	if location := values[propACSPostURL]; location != "" {
		metadata.AssertionConsumerServices = append(metadata.AssertionConsumerServices, samlmodel.Endpoint{
			Binding:  samlconst.BindingHTTPPost,
			Location: location,
		})
	}

	return metadata, nil
}

// buildEntitySettings constructs the message construction settings view from the stored entity.
func buildEntitySettings(entity *EntityDTO) (*samlmodel.EntitySettings, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityService"))

	values, svcErr := propertyValues(entity.Properties)
	if svcErr != nil {
		logger.Error("Failed to read entity properties",
			log.String(log.LoggerKeyEntityID, entity.EntityID))
		return nil, svcErr
	}

	samlConfig := config.GetSamlGateRuntime().Config.SAML

	algorithm := values[propSignatureAlgorithm]
	if algorithm == "" {
		algorithm = samlConfig.DefaultSignatureAlgorithm
	}
	algorithmURI, ok := samlconst.ResolveSignatureAlgorithm(algorithm)
	if !ok {
		return nil, serviceerror.CustomServiceError(ErrorInvalidEntityProperty,
			fmt.Sprintf("unrecognized signature algorithm '%s'", algorithm))
	}

	nameIDFormat := values[propNameIDFormat]
	if nameIDFormat == "" {
		nameIDFormat = samlConfig.DefaultNameIDFormat
	}

	settings := &samlmodel.EntitySettings{
		LoginRequestTemplate:   values[propLoginRequestTemplate],
		LogoutRequestTemplate:  values[propLogoutRequestTemplate],
		LogoutResponseTemplate: values[propLogoutResponseTemplate],
		NameIDFormat:           nameIDFormat,
		SignatureAlgorithm:     algorithmURI,
		PrivateKeyPEM:          []byte(values[propSigningKey]),
		KeyPassphrase:          values[propSigningKeyPassphrase],
		SignLoginRequests:      utils.NumStringToBool(values[propSignLoginRequests]),
	}

	if err := settings.Validate(); err != nil {
		logger.Error("Entity settings failed validation", log.Error(err),
			log.String(log.LoggerKeyEntityID, entity.EntityID))
		return nil, serviceerror.CustomServiceError(ErrorInvalidEntityProperty, err.Error())
	}

	return settings, nil
}

// propertyValues resolves all property values, decrypting secrets.
func propertyValues(properties []cmodels.Property) (map[string]string, *serviceerror.ServiceError) {
	values := make(map[string]string, len(properties))
	for _, property := range properties {
		value, err := property.GetValue()
		if err != nil {
			return nil, serviceerror.CustomServiceError(ErrorInvalidEntityProperty,
				fmt.Sprintf("failed to get value for property '%s': %v", property.GetName(), err))
		}
		values[property.GetName()] = value
	}
	return values, nil
}
