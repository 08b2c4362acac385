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
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/samlgate/internal/system/cmodels"
	"github.com/asgardeo/samlgate/internal/system/database/client"
	dbmodel "github.com/asgardeo/samlgate/internal/system/database/model"
	"github.com/asgardeo/samlgate/tests/mocks/databasemock"
)

type EntityStoreTestSuite struct {
	suite.Suite
	dbClient   *databasemock.MockDBClient
	dbProvider *databasemock.MockDBProvider
	store      entityStoreInterface
}

func TestEntityStoreSuite(t *testing.T) {
	suite.Run(t, new(EntityStoreTestSuite))
}

func (suite *EntityStoreTestSuite) SetupTest() {
	suite.dbClient = &databasemock.MockDBClient{}
	suite.dbProvider = &databasemock.MockDBProvider{
		MockGetDBClient: func(dbName string) (client.DBClientInterface, error) {
			return suite.dbClient, nil
		},
	}
	suite.store = &entityStore{dbProvider: suite.dbProvider}
}

func (suite *EntityStoreTestSuite) entityRow() map[string]interface{} {
	return map[string]interface{}{
		"id":          "e1",
		"entity_id":   "https://sp.example.com",
		"name":        "Example SP",
		"description": "Test service provider",
		"role":        "SP",
	}
}

func (suite *EntityStoreTestSuite) TestCreateEntity() {
	tx := &databasemock.MockTx{}
	suite.dbClient.MockBeginTx = func() (dbmodel.TxInterface, error) {
		return tx, nil
	}

	entity := EntityDTO{
		ID:          "e1",
		EntityID:    "https://sp.example.com",
		Name:        "Example SP",
		Role:        EntityRoleServiceProvider,
		Properties: []cmodels.Property{
			*cmodels.NewProperty(propACSPostURL, "https://sp.example.com/acs", false),
		},
	}
	err := suite.store.CreateEntity(entity)
	assert.NoError(suite.T(), err)

	// One insert for the entity row, one for the property batch.
	assert.Len(suite.T(), tx.ExecCalls, 2)
	assert.Equal(suite.T(), []any{"e1", "https://sp.example.com", "Example SP", "",
		EntityRoleServiceProvider}, tx.ExecCalls[0].Args)
	assert.Contains(suite.T(), tx.ExecCalls[1].Query, "https://sp.example.com/acs")
	assert.Equal(suite.T(), 1, tx.CommitCalls)
	assert.Equal(suite.T(), 0, tx.RollbackCalls)
}

func (suite *EntityStoreTestSuite) TestCreateEntityRollsBackOnFailure() {
	tx := &databasemock.MockTx{
		MockExec: func(query string, args ...any) (sql.Result, error) {
			return nil, errors.New("constraint violation")
		},
	}
	suite.dbClient.MockBeginTx = func() (dbmodel.TxInterface, error) {
		return tx, nil
	}

	err := suite.store.CreateEntity(EntityDTO{ID: "e1", EntityID: "https://sp.example.com"})
	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), 1, tx.RollbackCalls)
	assert.Equal(suite.T(), 0, tx.CommitCalls)
}

func (suite *EntityStoreTestSuite) TestGetEntity() {
	suite.dbClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		switch query.ID {
		case queryGetEntityByID.ID:
			return []map[string]interface{}{suite.entityRow()}, nil
		case queryGetEntityProperties.ID:
			return []map[string]interface{}{{
				"property_name":  propACSPostURL,
				"property_value": "https://sp.example.com/acs",
				"is_secret":      "0",
				"is_encrypted":   "0",
			}}, nil
		default:
			return nil, errors.New("unexpected query: " + query.ID)
		}
	}

	entity, err := suite.store.GetEntity("e1")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "https://sp.example.com", entity.EntityID)
	assert.Equal(suite.T(), EntityRoleServiceProvider, entity.Role)
	assert.Len(suite.T(), entity.Properties, 1)
	assert.Equal(suite.T(), propACSPostURL, entity.Properties[0].GetName())
	assert.False(suite.T(), entity.Properties[0].IsSecret())
}

func (suite *EntityStoreTestSuite) TestGetEntityNotFound() {
	suite.dbClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{}, nil
	}

	entity, err := suite.store.GetEntity("missing")
	assert.Nil(suite.T(), entity)
	assert.ErrorIs(suite.T(), err, ErrEntityNotFound)
}

func (suite *EntityStoreTestSuite) TestGetEntityByEntityID() {
	suite.dbClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		switch query.ID {
		case queryGetEntityByEntityID.ID:
			assert.Equal(suite.T(), []interface{}{"https://sp.example.com"}, args)
			return []map[string]interface{}{suite.entityRow()}, nil
		case queryGetEntityProperties.ID:
			return []map[string]interface{}{}, nil
		default:
			return nil, errors.New("unexpected query: " + query.ID)
		}
	}

	entity, err := suite.store.GetEntityByEntityID("https://sp.example.com")
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "e1", entity.ID)
	assert.Empty(suite.T(), entity.Properties)
}

func (suite *EntityStoreTestSuite) TestGetEntityList() {
	suite.dbClient.MockQuery = func(query dbmodel.DBQuery,
		args ...interface{}) ([]map[string]interface{}, error) {
		return []map[string]interface{}{suite.entityRow()}, nil
	}

	entities, err := suite.store.GetEntityList()
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), entities, 1)
	assert.Equal(suite.T(), "Example SP", entities[0].Name)
}

func (suite *EntityStoreTestSuite) TestDeleteEntity() {
	suite.dbClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		return 1, nil
	}

	err := suite.store.DeleteEntity("e1")
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), suite.dbClient.ExecuteCalls, 1)
}

func (suite *EntityStoreTestSuite) TestDeleteEntityZeroRowsIsNotAnError() {
	suite.dbClient.MockExecute = func(query dbmodel.DBQuery, args ...interface{}) (int64, error) {
		return 0, nil
	}

	err := suite.store.DeleteEntity("missing")
	assert.NoError(suite.T(), err)
}

func (suite *EntityStoreTestSuite) TestDBClientFailurePropagates() {
	suite.dbProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return nil, errors.New("connection refused")
	}

	_, err := suite.store.GetEntity("e1")
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to get database client")
}
