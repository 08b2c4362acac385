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

// Package cmodels provides common data models used across SamlGate modules.
package cmodels

import (
	"fmt"

	"github.com/asgardeo/samlgate/internal/system/crypto"
)

// Property represents a generic property with name, value and secrecy attributes.
type Property struct {
	name        string
	value       string
	isSecret    bool
	isEncrypted bool
}

// NewProperty creates a new property with a plaintext value.
func NewProperty(name, value string, isSecret bool) *Property {
	return &Property{
		name:     name,
		value:    value,
		isSecret: isSecret,
	}
}

// NewRawProperty creates a property from its stored representation.
func NewRawProperty(name, value string, isSecret, isEncrypted bool) *Property {
	return &Property{
		name:        name,
		value:       value,
		isSecret:    isSecret,
		isEncrypted: isEncrypted,
	}
}

// GetName returns the property name.
func (p *Property) GetName() string {
	return p.name
}

// IsSecret returns whether the property holds a secret value.
func (p *Property) IsSecret() bool {
	return p.isSecret
}

// IsEncrypted returns whether the property value is encrypted.
func (p *Property) IsEncrypted() bool {
	return p.isEncrypted
}

// GetStorageValue returns the value in the form that is persisted.
func (p *Property) GetStorageValue() string {
	return p.value
}

// GetValue returns the decrypted value if it's a secret, otherwise returns the plain value.
func (p *Property) GetValue() (string, error) {
	if !p.isSecret || !p.isEncrypted {
		return p.value, nil
	}

	cryptoService := crypto.GetCryptoService()
	decryptedValue, err := cryptoService.DecryptString(p.value)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt secret property %s: %w", p.name, err)
	}

	return decryptedValue, nil
}

// Encrypt encrypts the value if it's a secret property.
func (p *Property) Encrypt() error {
	if !p.isSecret || p.value == "" || p.isEncrypted {
		return nil
	}

	cryptoService := crypto.GetCryptoService()
	encryptedValue, err := cryptoService.EncryptString(p.value)
	if err != nil {
		return fmt.Errorf("failed to encrypt secret property %s: %w", p.name, err)
	}

	p.value = encryptedValue
	p.isEncrypted = true
	return nil
}

// PropertyDTO represents the serializable form of a property.
type PropertyDTO struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	IsSecret bool   `json:"is_secret"`
}

// ToProperty converts the DTO into a Property, encrypting secret values.
func (d *PropertyDTO) ToProperty() (*Property, error) {
	property := NewProperty(d.Name, d.Value, d.IsSecret)
	if err := property.Encrypt(); err != nil {
		return nil, err
	}
	return property, nil
}

// ToPropertyDTO converts the property into its DTO form with the decrypted value.
func (p *Property) ToPropertyDTO() (*PropertyDTO, error) {
	value, err := p.GetValue()
	if err != nil {
		return nil, err
	}
	return &PropertyDTO{
		Name:     p.name,
		Value:    value,
		IsSecret: p.isSecret,
	}, nil
}
