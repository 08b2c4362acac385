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

import "github.com/asgardeo/samlgate/internal/system/cmodels"

// EntityDTO represents the data transfer object for a registered federation entity.
type EntityDTO struct {
	ID          string
	EntityID    string
	Name        string
	Description string
	Role        EntityRole
	Properties  []cmodels.Property
}

// BasicEntityDTO represents a basic data transfer object for a registered federation entity.
type BasicEntityDTO struct {
	ID          string
	EntityID    string
	Name        string
	Description string
	Role        EntityRole
}

// entityRequest represents the request payload for creating or updating an entity.
type entityRequest struct {
	EntityID    string                `json:"entityId"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Role        string                `json:"role"`
	Properties  []cmodels.PropertyDTO `json:"properties,omitempty"`
}

// entityResponse represents the response payload for an entity.
type entityResponse struct {
	ID          string                `json:"id"`
	EntityID    string                `json:"entityId"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Role        string                `json:"role"`
	Properties  []cmodels.PropertyDTO `json:"properties,omitempty"`
}

// basicEntityResponse represents a basic response payload for an entity.
type basicEntityResponse struct {
	ID          string `json:"id"`
	EntityID    string `json:"entityId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Role        string `json:"role"`
}
