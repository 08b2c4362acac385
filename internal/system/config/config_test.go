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

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	tempDir, err := os.MkdirTemp("", "config-test")
	if err != nil {
		suite.T().Fatalf("Failed to create temp directory: %v", err)
	}
	suite.tempDir = tempDir
}

func (suite *ConfigTestSuite) TearDownTest() {
	if err := os.RemoveAll(suite.tempDir); err != nil {
		suite.T().Logf("Failed to remove temp directory: %v", err)
	}
}

func (suite *ConfigTestSuite) writeConfigFile(content string) string {
	path := filepath.Join(suite.tempDir, "deployment.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		suite.T().Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func (suite *ConfigTestSuite) TestLoadConfig() {
	path := suite.writeConfigFile(`
server:
  hostname: "localhost"
  port: 8090
  http_only: true

security:
  cert_file: "repository/resources/security/server.cert"
  key_file: "repository/resources/security/server.key"

cors:
  allowed_origins:
    - "https://portal.example.com"

database:
  identity:
    type: "postgres"
    hostname: "localhost"
    port: 5432
    name: "samlgatedb"
    username: "samlgate"
    password: "secret"
    sslmode: "disable"
  runtime:
    type: "sqlite"
    path: "repository/database/runtimedb.db"
    options: "journal_mode=WAL"

cache:
  disabled: false
  eviction_policy: "LRU"
  properties:
    - name: "originCache"
      size: 100
      ttl: 600

saml:
  default_signature_algorithm: "rsa-sha256"
  default_name_id_format: "urn:oasis:names:tc:SAML:1.1:nameid-format:emailAddress"
`)

	cfg, err := LoadConfig(path)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), cfg)
	assert.Equal(suite.T(), "localhost", cfg.Server.Hostname)
	assert.Equal(suite.T(), 8090, cfg.Server.Port)
	assert.True(suite.T(), cfg.Server.HTTPOnly)
	assert.Equal(suite.T(), []string{"https://portal.example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(suite.T(), "postgres", cfg.Database.Identity.Type)
	assert.Equal(suite.T(), "samlgatedb", cfg.Database.Identity.Name)
	assert.Equal(suite.T(), "sqlite", cfg.Database.Runtime.Type)
	assert.Equal(suite.T(), "repository/database/runtimedb.db", cfg.Database.Runtime.Path)
	assert.Len(suite.T(), cfg.Cache.Properties, 1)
	assert.Equal(suite.T(), "originCache", cfg.Cache.Properties[0].Name)
	assert.Equal(suite.T(), "rsa-sha256", cfg.SAML.DefaultSignatureAlgorithm)
	assert.Equal(suite.T(), "urn:oasis:names:tc:SAML:1.1:nameid-format:emailAddress",
		cfg.SAML.DefaultNameIDFormat)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	cfg, err := LoadConfig(filepath.Join(suite.tempDir, "missing.yaml"))

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	path := suite.writeConfigFile("server:\n  hostname: [unclosed")

	cfg, err := LoadConfig(path)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), cfg)
}

type RuntimeConfigTestSuite struct {
	suite.Suite
}

func TestRuntimeConfigSuite(t *testing.T) {
	suite.Run(t, new(RuntimeConfigTestSuite))
}

func (suite *RuntimeConfigTestSuite) SetupTest() {
	ResetSamlGateRuntime()
}

func (suite *RuntimeConfigTestSuite) TearDownTest() {
	ResetSamlGateRuntime()
}

func (suite *RuntimeConfigTestSuite) TestInitializeAndGet() {
	cfg := &Config{Server: ServerConfig{Hostname: "localhost", Port: 8090}}

	err := InitializeSamlGateRuntime("/opt/samlgate", cfg)
	assert.NoError(suite.T(), err)

	runtime := GetSamlGateRuntime()
	assert.Equal(suite.T(), "/opt/samlgate", runtime.SamlGateHome)
	assert.Equal(suite.T(), 8090, runtime.Config.Server.Port)
}

func (suite *RuntimeConfigTestSuite) TestInitializeIsIdempotent() {
	err := InitializeSamlGateRuntime("/opt/samlgate", &Config{})
	assert.NoError(suite.T(), err)

	// A second initialization does not replace the existing runtime.
	err = InitializeSamlGateRuntime("/other/home", &Config{})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "/opt/samlgate", GetSamlGateRuntime().SamlGateHome)
}

func (suite *RuntimeConfigTestSuite) TestGetWithoutInitializePanics() {
	assert.Panics(suite.T(), func() {
		GetSamlGateRuntime()
	})
}
