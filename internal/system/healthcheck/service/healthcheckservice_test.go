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

package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/asgardeo/samlgate/internal/system/database/client"
	dbmodel "github.com/asgardeo/samlgate/internal/system/database/model"
	"github.com/asgardeo/samlgate/internal/system/healthcheck/model"
	"github.com/asgardeo/samlgate/tests/mocks/databasemock"
)

type HealthCheckServiceTestSuite struct {
	suite.Suite
	dbProvider *databasemock.MockDBProvider
	service    *HealthCheckService
}

func TestHealthCheckServiceSuite(t *testing.T) {
	suite.Run(t, new(HealthCheckServiceTestSuite))
}

func (suite *HealthCheckServiceTestSuite) SetupTest() {
	suite.dbProvider = &databasemock.MockDBProvider{}
	suite.service = &HealthCheckService{DBProvider: suite.dbProvider}
}

func (suite *HealthCheckServiceTestSuite) healthyClient() *databasemock.MockDBClient {
	return &databasemock.MockDBClient{
		MockQuery: func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
			return []map[string]interface{}{}, nil
		},
	}
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessAllUp() {
	suite.dbProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		return suite.healthyClient(), nil
	}

	status := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusUp, status.Status)
	assert.Len(suite.T(), status.ServiceStatus, 2)
	assert.Equal(suite.T(), "IdentityDB", status.ServiceStatus[0].ServiceName)
	assert.Equal(suite.T(), model.StatusUp, status.ServiceStatus[0].Status)
	assert.Equal(suite.T(), "RuntimeDB", status.ServiceStatus[1].ServiceName)
	assert.Equal(suite.T(), model.StatusUp, status.ServiceStatus[1].Status)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessIdentityDBDown() {
	suite.dbProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		if dbName == "identity" {
			return nil, errors.New("connection refused")
		}
		return suite.healthyClient(), nil
	}

	status := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, status.Status)
	assert.Equal(suite.T(), model.StatusDown, status.ServiceStatus[0].Status)
	assert.Equal(suite.T(), model.StatusUp, status.ServiceStatus[1].Status)
}

func (suite *HealthCheckServiceTestSuite) TestCheckReadinessRuntimeDBQueryFails() {
	failingClient := &databasemock.MockDBClient{
		MockQuery: func(query dbmodel.DBQuery, args ...interface{}) ([]map[string]interface{}, error) {
			return nil, errors.New("no such table: SAML_MESSAGE")
		},
	}
	suite.dbProvider.MockGetDBClient = func(dbName string) (client.DBClientInterface, error) {
		if dbName == "runtime" {
			return failingClient, nil
		}
		return suite.healthyClient(), nil
	}

	status := suite.service.CheckReadiness()

	assert.Equal(suite.T(), model.StatusDown, status.Status)
	assert.Equal(suite.T(), model.StatusUp, status.ServiceStatus[0].Status)
	assert.Equal(suite.T(), model.StatusDown, status.ServiceStatus[1].Status)
}
