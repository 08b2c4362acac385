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
	"net/http"

	"github.com/asgardeo/samlgate/internal/system/middleware"
)

// Initialize initializes the entity service and registers its routes.
func Initialize(mux *http.ServeMux) EntityServiceInterface {
	entityService := NewEntityService()
	entityHandler := newEntityHandler(entityService)
	registerRoutes(mux, entityHandler)
	return entityService
}

// registerRoutes registers the routes for federation entity management operations.
func registerRoutes(mux *http.ServeMux, entityHandler *entityHandler) {
	opts1 := middleware.CORSOptions{
		AllowedMethods:   "GET, POST",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("POST /entities", entityHandler.HandleEntityPostRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("GET /entities", entityHandler.HandleEntityListRequest, opts1))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /entities",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts1))

	opts2 := middleware.CORSOptions{
		AllowedMethods:   "GET, PUT, DELETE",
		AllowedHeaders:   "Content-Type, Authorization",
		AllowCredentials: true,
	}
	mux.HandleFunc(middleware.WithCORS("GET /entities/{id}",
		entityHandler.HandleEntityGetRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("PUT /entities/{id}",
		entityHandler.HandleEntityPutRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("DELETE /entities/{id}",
		entityHandler.HandleEntityDeleteRequest, opts2))
	mux.HandleFunc(middleware.WithCORS("OPTIONS /entities/{id}",
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}, opts2))
}
