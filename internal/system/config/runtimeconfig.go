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

package config

import "sync"

// SamlGateRuntime holds the runtime configuration for the SamlGate server.
type SamlGateRuntime struct {
	SamlGateHome string `yaml:"samlgate_home"`
	Config       Config `yaml:"config"`
}

var (
	runtimeConfig *SamlGateRuntime
	once          sync.Once
)

// InitializeSamlGateRuntime initializes the SamlGateRuntime configuration.
func InitializeSamlGateRuntime(samlGateHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &SamlGateRuntime{
			SamlGateHome: samlGateHome,
			Config:       *config,
		}
	})

	return nil
}

// GetSamlGateRuntime returns the SamlGateRuntime configuration.
func GetSamlGateRuntime() *SamlGateRuntime {
	if runtimeConfig == nil {
		panic("SamlGateRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetSamlGateRuntime resets the SamlGateRuntime.
// This should only be used in tests to reset the singleton state.
func ResetSamlGateRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
