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

package services

import (
	"net/http"

	"github.com/asgardeo/samlgate/internal/entity"
	"github.com/asgardeo/samlgate/internal/saml/handler"
	"github.com/asgardeo/samlgate/internal/system/server"
)

// SAMLService defines the service for handling outbound SAML flow initiation requests.
type SAMLService struct {
	ServerOpsService server.ServerOperationServiceInterface
	samlHandler      *handler.SAMLHandler
}

// NewSAMLService creates a new instance of SAMLService.
func NewSAMLService(mux *http.ServeMux, entityService entity.EntityServiceInterface) ServiceInterface {
	instance := &SAMLService{
		ServerOpsService: server.NewServerOperationService(),
		samlHandler:      handler.NewSAMLHandler(entityService),
	}
	instance.RegisterRoutes(mux)

	return instance
}

// RegisterRoutes registers the routes for the SAMLService.
func (s *SAMLService) RegisterRoutes(mux *http.ServeMux) {
	opts := server.RequestWrapOptions{
		Cors: &server.Cors{
			AllowedMethods:   "GET",
			AllowedHeaders:   "Content-Type, Authorization",
			AllowCredentials: true,
		},
	}
	s.ServerOpsService.WrapHandleFunction(mux, "GET /saml/login", &opts,
		s.samlHandler.HandleLoginRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "OPTIONS /saml/login", &opts,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

	s.ServerOpsService.WrapHandleFunction(mux, "GET /saml/logout", &opts,
		s.samlHandler.HandleLogoutRequest)
	s.ServerOpsService.WrapHandleFunction(mux, "OPTIONS /saml/logout", &opts,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

	s.ServerOpsService.WrapHandleFunction(mux, "GET /saml/logout/response", &opts,
		s.samlHandler.HandleLogoutResponse)
	s.ServerOpsService.WrapHandleFunction(mux, "OPTIONS /saml/logout/response", &opts,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
}
