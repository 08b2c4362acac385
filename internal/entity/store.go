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
	"errors"
	"fmt"
	"strings"

	"github.com/asgardeo/samlgate/internal/system/cmodels"
	dbmodel "github.com/asgardeo/samlgate/internal/system/database/model"
	"github.com/asgardeo/samlgate/internal/system/database/provider"
	"github.com/asgardeo/samlgate/internal/system/log"
	sysutils "github.com/asgardeo/samlgate/internal/system/utils"
)

// entityStoreInterface defines the interface for entity store operations.
type entityStoreInterface interface {
	CreateEntity(entity EntityDTO) error
	GetEntityList() ([]BasicEntityDTO, error)
	GetEntity(id string) (*EntityDTO, error)
	GetEntityByEntityID(entityID string) (*EntityDTO, error)
	UpdateEntity(entity *EntityDTO) error
	DeleteEntity(id string) error
}

// entityStore is the default implementation of entityStoreInterface.
type entityStore struct {
	dbProvider provider.DBProviderInterface
}

// newEntityStore creates a new instance of the entity store.
func newEntityStore() entityStoreInterface {
	return &entityStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// CreateEntity handles the entity creation in the database.
func (s *entityStore) CreateEntity(entity EntityDTO) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	_, err = tx.Exec(queryCreateEntity.Query, entity.ID, entity.EntityID, entity.Name,
		entity.Description, entity.Role)
	if err != nil {
		retErr := fmt.Errorf("failed to execute query: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	if len(entity.Properties) > 0 {
		if err := insertEntityProperties(tx, entity.ID, entity.Properties); err != nil {
			retErr := err
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
			}
			return retErr
		}
	}

	if err = tx.Commit(); err != nil {
		retErr := fmt.Errorf("failed to commit transaction: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	return nil
}

// GetEntityList retrieves a list of entities from the database.
func (s *entityStore) GetEntityList() ([]BasicEntityDTO, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetEntityList)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	entityList := make([]BasicEntityDTO, 0)
	for _, row := range results {
		entity, err := buildEntityFromResultRow(row)
		if err != nil {
			return nil, fmt.Errorf("failed to build entity from result row: %w", err)
		}
		entityList = append(entityList, *entity)
	}

	return entityList, nil
}

// GetEntity retrieves a specific entity by its internal ID from the database.
func (s *entityStore) GetEntity(id string) (*EntityDTO, error) {
	return s.getEntity(queryGetEntityByID, id)
}

// GetEntityByEntityID retrieves a specific entity by its SAML entityID from the database.
func (s *entityStore) GetEntityByEntityID(entityID string) (*EntityDTO, error) {
	return s.getEntity(queryGetEntityByEntityID, entityID)
}

// getEntity retrieves an entity based on the provided query and identifier.
func (s *entityStore) getEntity(query dbmodel.DBQuery, identifier string) (*EntityDTO, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, ErrEntityNotFound
	}
	if len(results) != 1 {
		return nil, fmt.Errorf("unexpected number of results: %d", len(results))
	}

	basicEntity, err := buildEntityFromResultRow(results[0])
	if err != nil {
		return nil, fmt.Errorf("failed to build entity from result row: %w", err)
	}

	entity := &EntityDTO{
		ID:          basicEntity.ID,
		EntityID:    basicEntity.EntityID,
		Name:        basicEntity.Name,
		Description: basicEntity.Description,
		Role:        basicEntity.Role,
	}

	properties, err := s.getEntityProperties(entity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entity properties: %w", err)
	}
	entity.Properties = properties

	return entity, nil
}

// getEntityProperties retrieves the properties of a specific entity by its internal ID.
func (s *entityStore) getEntityProperties(id string) ([]cmodels.Property, error) {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetEntityProperties, id)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	return buildEntityPropertiesFromResultSet(results)
}

// UpdateEntity updates the entity in the database.
func (s *entityStore) UpdateEntity(entity *EntityDTO) error {
	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	tx, err := dbClient.BeginTx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(queryUpdateEntityByID.Query, entity.ID, entity.EntityID, entity.Name,
		entity.Description, entity.Role); err != nil {
		retErr := fmt.Errorf("failed to execute query: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	// Replace the existing properties for the entity.
	if _, err := tx.Exec(queryDeleteEntityProperties.Query, entity.ID); err != nil {
		retErr := fmt.Errorf("failed to execute query for deleting existing properties: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	if len(entity.Properties) > 0 {
		if err := insertEntityProperties(tx, entity.ID, entity.Properties); err != nil {
			retErr := err
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
			}
			return retErr
		}
	}

	if err = tx.Commit(); err != nil {
		retErr := fmt.Errorf("failed to commit transaction: %w", err)
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			retErr = errors.Join(retErr, fmt.Errorf("failed to rollback transaction: %w", rollbackErr))
		}
		return retErr
	}

	return nil
}

// DeleteEntity deletes the entity from the database.
func (s *entityStore) DeleteEntity(id string) error {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "EntityStore"))

	dbClient, err := s.dbProvider.GetDBClient("identity")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	rowsAffected, err := dbClient.Execute(queryDeleteEntityByID, id)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	if rowsAffected == 0 {
		logger.Debug("entity not found with id: " + id)
	}

	return nil
}

// insertEntityProperties inserts the given properties for an entity within the transaction.
func insertEntityProperties(tx dbmodel.TxInterface, entityPK string, properties []cmodels.Property) error {
	queryValues := make([]string, 0, len(properties))
	for _, property := range properties {
		if property.GetName() == "" {
			return fmt.Errorf("property name cannot be empty")
		}
		queryValues = append(queryValues, fmt.Sprintf("('%s', '%s', '%s', '%s', '%s')",
			entityPK, property.GetName(), property.GetStorageValue(),
			sysutils.BoolToNumString(property.IsSecret()),
			sysutils.BoolToNumString(property.IsEncrypted())))
	}

	propertyInsertQuery := queryInsertEntityProperties
	propertyInsertQuery.Query = fmt.Sprintf(propertyInsertQuery.Query, strings.Join(queryValues, ", "))

	if _, err := tx.Exec(propertyInsertQuery.Query); err != nil {
		return fmt.Errorf("failed to execute query for inserting properties: %w", err)
	}
	return nil
}

func buildEntityFromResultRow(row map[string]interface{}) (*BasicEntityDTO, error) {
	id, ok := row["id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse id as string")
	}

	entityID, ok := row["entity_id"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse entity_id as string")
	}

	name, ok := row["name"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse name as string")
	}

	description, ok := row["description"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse description as string")
	}

	role, ok := row["role"].(string)
	if !ok {
		return nil, fmt.Errorf("failed to parse role as string")
	}

	return &BasicEntityDTO{
		ID:          id,
		EntityID:    entityID,
		Name:        name,
		Description: description,
		Role:        EntityRole(role),
	}, nil
}

// buildEntityPropertiesFromResultSet builds a slice of properties from the result set.
func buildEntityPropertiesFromResultSet(results []map[string]interface{}) ([]cmodels.Property, error) {
	properties := make([]cmodels.Property, 0, len(results))

	for _, row := range results {
		propertyName, ok := row["property_name"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse property_name as string")
		}

		propertyValue, ok := row["property_value"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse property_value as string")
		}

		isSecretStr, ok := row["is_secret"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse is_secret as string")
		}
		isSecret := sysutils.NumStringToBool(isSecretStr)

		isEncryptedStr, ok := row["is_encrypted"].(string)
		if !ok {
			return nil, fmt.Errorf("failed to parse is_encrypted as string")
		}
		isEncrypted := sysutils.NumStringToBool(isEncryptedStr)

		property := cmodels.NewRawProperty(propertyName, propertyValue, isSecret, isEncrypted)
		properties = append(properties, *property)
	}

	return properties, nil
}
