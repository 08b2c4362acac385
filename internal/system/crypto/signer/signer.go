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

// Package signer provides signature computation over raw octet strings using PEM encoded private keys.
package signer

import (
	"crypto"
	"crypto/rsa"
	_ "crypto/sha1"
	_ "crypto/sha256"
	_ "crypto/sha512"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/asgardeo/samlgate/internal/saml/constants"
)

// hashForAlgorithm maps XML signature algorithm URIs to the corresponding hash functions.
var hashForAlgorithm = map[string]crypto.Hash{
	constants.AlgorithmRSASHA1:   crypto.SHA1,
	constants.AlgorithmRSASHA256: crypto.SHA256,
	constants.AlgorithmRSASHA384: crypto.SHA384,
	constants.AlgorithmRSASHA512: crypto.SHA512,
}

// LoadPrivateKey parses a PEM encoded RSA private key. PKCS#1 and PKCS#8
// encodings are supported; an optional passphrase decrypts encrypted PKCS#1 blocks.
func LoadPrivateKey(keyData []byte, passphrase string) (*rsa.PrivateKey, error) {
	if len(keyData) == 0 {
		return nil, errors.New("private key material is empty")
	}

	// Decode the PEM block.
	block, _ := pem.Decode(keyData)
	if block == nil {
		return nil, errors.New("failed to decode PEM block containing private key")
	}

	blockBytes := block.Bytes
	//nolint:staticcheck // Legacy encrypted PEM keys are still in circulation for SAML signing.
	if x509.IsEncryptedPEMBlock(block) {
		if passphrase == "" {
			return nil, errors.New("private key is encrypted but no passphrase was provided")
		}
		//nolint:staticcheck // See above.
		decrypted, err := x509.DecryptPEMBlock(block, []byte(passphrase))
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt private key: %w", err)
		}
		blockBytes = decrypted
	}

	// Handle PKCS1 and PKCS8 private keys.
	switch block.Type {
	case "RSA PRIVATE KEY":
		privateKey, err := x509.ParsePKCS1PrivateKey(blockBytes)
		if err != nil {
			return nil, err
		}
		return privateKey, nil
	case "PRIVATE KEY":
		key, err := x509.ParsePKCS8PrivateKey(blockBytes)
		if err != nil {
			return nil, err
		}
		privateKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("not an RSA private key")
		}
		return privateKey, nil
	default:
		return nil, errors.New("unsupported private key type: " + block.Type)
	}
}

// Sign computes a signature over the exact input octet string using the given
// private key and signature algorithm URI.
func Sign(input []byte, privateKey *rsa.PrivateKey, algorithm string) ([]byte, error) {
	if privateKey == nil {
		return nil, errors.New("private key not loaded")
	}

	hash, ok := hashForAlgorithm[algorithm]
	if !ok {
		return nil, errors.New("unsupported signature algorithm: " + algorithm)
	}

	hasher := hash.New()
	hasher.Write(input)
	hashed := hasher.Sum(nil)

	signature, err := rsa.SignPKCS1v15(nil, privateKey, hash, hashed)
	if err != nil {
		return nil, err
	}

	return signature, nil
}
