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

// Package server provides server wide operations and utilities.
package server

import (
	"net/http"

	"github.com/asgardeo/samlgate/internal/system/cache"
	"github.com/asgardeo/samlgate/internal/system/config"
	"github.com/asgardeo/samlgate/internal/system/log"
	"github.com/asgardeo/samlgate/internal/system/utils"
)

const allowedOriginsCacheKey = "allowedOrigins"

// Cors holds the CORS options applied to a wrapped handler.
type Cors struct {
	AllowedMethods   string
	AllowedHeaders   string
	AllowCredentials bool
}

// RequestWrapOptions holds the options used when wrapping a handler function.
type RequestWrapOptions struct {
	Cors *Cors
}

// ServerOperationServiceInterface defines the interface for server operations.
type ServerOperationServiceInterface interface {
	WrapHandleFunction(mux *http.ServeMux, pattern string, requestWrapOptions *RequestWrapOptions,
		handlerFunc http.HandlerFunc)
}

// ServerOperationService implements the ServerOperationServiceInterface.
type ServerOperationService struct {
	OriginCache cache.CacheInterface[[]string]
}

// NewServerOperationService creates a new instance of ServerOperationService.
func NewServerOperationService() ServerOperationServiceInterface {
	return &ServerOperationService{
		OriginCache: cache.GetCache[[]string]("originCache"),
	}
}

// WrapHandleFunction registers a handler function on the mux with the configured
// request options applied.
func (s *ServerOperationService) WrapHandleFunction(mux *http.ServeMux, pattern string,
	requestWrapOptions *RequestWrapOptions, handlerFunc http.HandlerFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		s.addAllowedOriginHeaders(w, r, requestWrapOptions)
		handlerFunc(w, r)
	})
}

// addAllowedOriginHeaders sets the CORS headers on the response when the request
// origin is in the configured allow list.
func (s *ServerOperationService) addAllowedOriginHeaders(w http.ResponseWriter, r *http.Request,
	requestWrapOptions *RequestWrapOptions) {
	requestOrigin := r.Header.Get("Origin")
	if requestOrigin == "" {
		return
	}

	allowedOrigins := s.getAllowedOrigins()
	allowedOrigin := utils.GetAllowedOrigin(allowedOrigins, requestOrigin)
	if allowedOrigin == "" {
		return
	}

	w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
	if requestWrapOptions == nil || requestWrapOptions.Cors == nil {
		return
	}

	if requestWrapOptions.Cors.AllowedMethods != "" {
		w.Header().Set("Access-Control-Allow-Methods", requestWrapOptions.Cors.AllowedMethods)
	}
	if requestWrapOptions.Cors.AllowedHeaders != "" {
		w.Header().Set("Access-Control-Allow-Headers", requestWrapOptions.Cors.AllowedHeaders)
	}
	if requestWrapOptions.Cors.AllowCredentials {
		w.Header().Set("Access-Control-Allow-Credentials", "true")
	}
}

// getAllowedOrigins retrieves the configured allowed origins, consulting the
// origin cache first.
func (s *ServerOperationService) getAllowedOrigins() []string {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ServerOperationService"))

	if s.OriginCache != nil {
		if origins, found := s.OriginCache.Get(cache.CacheKey{Key: allowedOriginsCacheKey}); found {
			return origins
		}
	}

	origins := config.GetSamlGateRuntime().Config.CORS.AllowedOrigins
	if len(origins) == 0 {
		logger.Debug("No allowed origins configured")
		return []string{}
	}

	if s.OriginCache != nil {
		if err := s.OriginCache.Set(cache.CacheKey{Key: allowedOriginsCacheKey}, origins); err != nil {
			logger.Warn("Failed to cache allowed origins", log.Error(err))
		}
	}

	return origins
}
