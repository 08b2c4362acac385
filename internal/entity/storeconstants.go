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

import dbmodel "github.com/asgardeo/samlgate/internal/system/database/model"

var (
	// queryCreateEntity is the query to create a new entity.
	queryCreateEntity = dbmodel.DBQuery{
		ID:    "ENQ-ENT_MGT-01",
		Query: "INSERT INTO SAML_ENTITY (ID, ENTITY_ID, NAME, DESCRIPTION, ROLE) VALUES ($1, $2, $3, $4, $5)",
	}
	// queryGetEntityByID is the query to get an entity by its internal ID.
	queryGetEntityByID = dbmodel.DBQuery{
		ID:    "ENQ-ENT_MGT-02",
		Query: "SELECT ID, ENTITY_ID, NAME, DESCRIPTION, ROLE FROM SAML_ENTITY WHERE ID = $1",
	}
	// queryGetEntityList is the query to get a list of entities.
	queryGetEntityList = dbmodel.DBQuery{
		ID:    "ENQ-ENT_MGT-03",
		Query: "SELECT ID, ENTITY_ID, NAME, DESCRIPTION, ROLE FROM SAML_ENTITY",
	}
	// queryUpdateEntityByID is the query to update an entity by its internal ID.
	queryUpdateEntityByID = dbmodel.DBQuery{
		ID:    "ENQ-ENT_MGT-04",
		Query: "UPDATE SAML_ENTITY SET ENTITY_ID = $2, NAME = $3, DESCRIPTION = $4, ROLE = $5 WHERE ID = $1",
	}
	// queryDeleteEntityByID is the query to delete an entity by its internal ID.
	queryDeleteEntityByID = dbmodel.DBQuery{
		ID:    "ENQ-ENT_MGT-05",
		Query: "DELETE FROM SAML_ENTITY WHERE ID = $1",
	}
	// queryGetEntityByEntityID is the query to get an entity by its SAML entityID.
	queryGetEntityByEntityID = dbmodel.DBQuery{
		ID:    "ENQ-ENT_MGT-06",
		Query: "SELECT ID, ENTITY_ID, NAME, DESCRIPTION, ROLE FROM SAML_ENTITY WHERE ENTITY_ID = $1",
	}
	// queryInsertEntityProperties is the query to insert properties for a specific entity.
	queryInsertEntityProperties = dbmodel.DBQuery{
		ID:    "ENQ-ENT_MGT-07",
		Query: "INSERT INTO SAML_ENTITY_PROPERTY (ENTITY_PK, PROPERTY_NAME, PROPERTY_VALUE, IS_SECRET, IS_ENCRYPTED) VALUES %s",
	}
	// queryGetEntityProperties is the query to get properties for a specific entity.
	queryGetEntityProperties = dbmodel.DBQuery{
		ID:    "ENQ-ENT_MGT-08",
		Query: "SELECT PROPERTY_NAME, PROPERTY_VALUE, IS_SECRET, IS_ENCRYPTED FROM SAML_ENTITY_PROPERTY WHERE ENTITY_PK = $1",
	}
	// queryDeleteEntityProperties is the query to delete all properties for a specific entity.
	queryDeleteEntityProperties = dbmodel.DBQuery{
		ID:    "ENQ-ENT_MGT-09",
		Query: "DELETE FROM SAML_ENTITY_PROPERTY WHERE ENTITY_PK = $1",
	}
)
