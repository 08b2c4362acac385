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

import (
	"fmt"
	"time"

	"github.com/asgardeo/samlgate/internal/saml/constants"
	"github.com/asgardeo/samlgate/internal/saml/model"
	"github.com/asgardeo/samlgate/internal/system/database/provider"
	"github.com/asgardeo/samlgate/internal/system/utils"
)

// messageRecord captures the audit attributes of an issued message.
type messageRecord struct {
	MessageID   string
	MessageType model.MessageKind
	Issuer      string
	Destination string
	Signed      bool
	IssuedAt    time.Time
}

// messageStoreInterface records issued messages for audit purposes.
type messageStoreInterface interface {
	RecordMessage(record messageRecord) error
}

// messageStore is the default implementation of the messageStoreInterface.
type messageStore struct {
	dbProvider provider.DBProviderInterface
}

// newMessageStore creates a new instance of messageStore.
func newMessageStore() messageStoreInterface {
	return &messageStore{
		dbProvider: provider.GetDBProvider(),
	}
}

// RecordMessage inserts an audit row for an issued message.
func (ms *messageStore) RecordMessage(record messageRecord) error {
	dbClient, err := ms.dbProvider.GetDBClient("runtime")
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryRecordMessage, record.MessageID, string(record.MessageType),
		record.Issuer, record.Destination, utils.BoolToNumString(record.Signed),
		record.IssuedAt.UTC().Format(constants.ISO8601UTCFormat))
	if err != nil {
		return fmt.Errorf("failed to record issued message: %w", err)
	}

	return nil
}
