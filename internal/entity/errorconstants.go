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

	"github.com/asgardeo/samlgate/internal/system/error/serviceerror"
)

// ErrEntityNotFound is returned when the entity is not found in the system.
var ErrEntityNotFound = errors.New("entity not found")

// Client errors for entity management operations.
var (
	// ErrorEntityNotFound is the error returned when an entity is not found.
	ErrorEntityNotFound = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1001",
		Error:            "Entity not found",
		ErrorDescription: "The requested entity could not be found",
	}
	// ErrorInvalidEntityInternalID is the error returned when an invalid entity ID is provided.
	ErrorInvalidEntityInternalID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1002",
		Error:            "Invalid entity ID",
		ErrorDescription: "The provided entity ID is invalid or empty",
	}
	// ErrorInvalidEntityID is the error returned when an invalid SAML entityID is provided.
	ErrorInvalidEntityID = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1003",
		Error:            "Invalid entityID",
		ErrorDescription: "The provided SAML entityID is invalid or empty",
	}
	// ErrorInvalidEntityRole is the error returned when an invalid entity role is provided.
	ErrorInvalidEntityRole = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1004",
		Error:            "Invalid entity role",
		ErrorDescription: "The provided entity role is invalid or empty",
	}
	// ErrorEntityAlreadyExists is the error returned when an entity with the same entityID already exists.
	ErrorEntityAlreadyExists = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1005",
		Error:            "Entity already exists",
		ErrorDescription: "An entity with the same entityID already exists",
	}
	// ErrorInvalidEntityProperty is the error returned when an invalid entity property is provided.
	ErrorInvalidEntityProperty = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1006",
		Error:            "Invalid entity property",
		ErrorDescription: "One or more entity properties are invalid or empty",
	}
	// ErrorUnsupportedEntityProperty is the error returned when an unsupported entity property is provided.
	ErrorUnsupportedEntityProperty = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1007",
		Error:            "Unsupported entity property",
		ErrorDescription: "One or more entity properties are not supported",
	}
	// ErrorEntityNil is the error returned when the entity object is nil.
	ErrorEntityNil = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1008",
		Error:            "Entity cannot be null",
		ErrorDescription: "The entity object cannot be null or empty",
	}
	// ErrorInvalidRequestFormat is the error returned when the request format is invalid.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "ENT-1009",
		Error:            "Invalid request format",
		ErrorDescription: "The request body is malformed or contains invalid data",
	}
)

// Server errors for entity management operations.
var (
	// ErrorInternalServerError is the error returned when an internal server error occurs.
	ErrorInternalServerError = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "ENT-5000",
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the request",
	}
)
