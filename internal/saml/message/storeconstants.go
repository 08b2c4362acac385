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

package message

import dbmodel "github.com/asgardeo/samlgate/internal/system/database/model"

var (
	// queryRecordMessage is the query to record an issued message.
	queryRecordMessage = dbmodel.DBQuery{
		ID: "SRQ-MSG_AUD-01",
		Query: "INSERT INTO SAML_MESSAGE (MESSAGE_ID, MESSAGE_TYPE, ISSUER, DESTINATION, SIGNED, " +
			"ISSUED_AT) VALUES ($1, $2, $3, $4, $5, $6)",
	}
)
