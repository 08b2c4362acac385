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

import "github.com/asgardeo/samlgate/internal/system/error/serviceerror"

// Client errors for outbound message construction.
var (
	// ErrorMissingMetadataDeclaration is the error returned when a required metadata view is absent.
	ErrorMissingMetadataDeclaration = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SRB-1001",
		Error:            "Missing metadata declaration",
		ErrorDescription: "missing declaration of metadata",
	}
	// ErrorMissingProtocolEndpoint is the error returned when the destination
	// entity publishes no endpoint for the redirect binding.
	ErrorMissingProtocolEndpoint = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SRB-1002",
		Error:            "Missing protocol endpoint",
		ErrorDescription: "The destination entity does not publish an endpoint for the redirect binding",
	}
	// ErrorMissingSessionContext is the error returned when a logout request is
	// built without the subject's NameID or session index.
	ErrorMissingSessionContext = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SRB-1003",
		Error:            "Missing session context",
		ErrorDescription: "A logout request requires the subject NameID and session index",
	}
	// ErrorTemplateTransformFailed is the error returned when a caller supplied
	// template transform returns an error.
	ErrorTemplateTransformFailed = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SRB-1004",
		Error:            "Template transform failed",
		ErrorDescription: "The custom template transform returned an error",
	}
	// ErrorTemplateTransformContract is the error returned when a caller supplied
	// template transform returns a result missing the identifier or the context.
	ErrorTemplateTransformContract = serviceerror.ServiceError{
		Type:             serviceerror.ClientErrorType,
		Code:             "SRB-1005",
		Error:            "Template transform contract violation",
		ErrorDescription: "The custom template transform must return both a message identifier and a context",
	}
)

// Server errors for outbound message construction.
var (
	// ErrorRedirectConstructionFailed is the error returned when encoding or
	// signing the redirect URL fails.
	ErrorRedirectConstructionFailed = serviceerror.ServiceError{
		Type:             serviceerror.ServerErrorType,
		Code:             "SRB-1501",
		Error:            "Redirect URL construction failed",
		ErrorDescription: "Failed to encode or sign the redirect message",
	}
)
