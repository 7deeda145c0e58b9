/*
Copyright 2024 Alexandre Mahdhaoui

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package tlsutil builds the TLS configurations of the management API: the chmigrated server
// and the clients calling it (peers and the CLI).
package tlsutil

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

var (
	// ErrCertNotFound is returned when the certificate file does not exist.
	ErrCertNotFound = errors.New("certificate file not found")
	// ErrKeyNotFound is returned when the key file does not exist.
	ErrKeyNotFound = errors.New("key file not found")
	// ErrCANotFound is returned when the CA file does not exist.
	ErrCANotFound = errors.New("CA file not found")
	// ErrInvalidClientAuth is returned when the clientAuth value is not valid.
	ErrInvalidClientAuth = errors.New("invalid clientAuth value")
	// ErrLoadCertFailed is returned when loading the certificate fails.
	ErrLoadCertFailed = errors.New("failed to load certificate")
	// ErrLoadCAFailed is returned when loading the CA file fails.
	ErrLoadCAFailed = errors.New("failed to load CA file")
	// ErrParseCAFailed is returned when parsing the CA certificate fails.
	ErrParseCAFailed = errors.New("failed to parse CA certificate")
	// ErrIncompleteKeyPair is returned when only one of the certificate and key is set.
	ErrIncompleteKeyPair = errors.New("certificate and key must be set together")
)

// ServerConfig configures the TLS listener of chmigrated.
type ServerConfig struct {
	// Enabled enables TLS for the server.
	Enabled bool `json:"enabled"`
	// ClientAuth is the client authentication policy: "none", "request" or "require".
	ClientAuth string `json:"clientAuth"`
	// CertPath is the path to the server certificate file.
	CertPath string `json:"certPath"`
	// KeyPath is the path to the server private key file.
	KeyPath string `json:"keyPath"`
	// CAPath is the path to the CA certificate verifying client certificates.
	CAPath string `json:"caPath"`
}

// ClientConfig configures the TLS connections to a chmigrated.
type ClientConfig struct {
	// CAPath verifies the server certificate. The system pool is used when empty.
	CAPath string
	// CertPath and KeyPath are the client certificate presented to servers requiring one.
	CertPath string
	KeyPath  string
	// ServerName overrides the name verified in the server certificate.
	ServerName string
}

// Empty reports whether no field of c is set.
func (c ClientConfig) Empty() bool {
	return c == ClientConfig{}
}

// BuildServerConfig builds the tls.Config of the API server. It returns nil, nil when TLS
// is disabled.
func BuildServerConfig(config ServerConfig) (*tls.Config, error) {
	if !config.Enabled {
		return nil, nil
	}

	clientAuthType, err := parseClientAuth(config.ClientAuth)
	if err != nil {
		return nil, err
	}

	cert, err := loadKeyPair(config.CertPath, config.KeyPath)
	if err != nil {
		return nil, err
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{cert},
		MinVersion:   tls.VersionTLS12,
		ClientAuth:   clientAuthType,
	}

	if clientAuthType != tls.NoClientCert {
		if tlsConfig.ClientCAs, err = loadCAPool(config.CAPath); err != nil {
			return nil, err
		}
	}

	return tlsConfig, nil
}

// BuildClientConfig builds the tls.Config of an API client.
func BuildClientConfig(config ClientConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{
		MinVersion: tls.VersionTLS12,
		ServerName: config.ServerName,
	}

	if config.CAPath != "" {
		pool, err := loadCAPool(config.CAPath)
		if err != nil {
			return nil, err
		}
		tlsConfig.RootCAs = pool
	}

	if config.CertPath == "" && config.KeyPath == "" {
		return tlsConfig, nil
	}

	if config.CertPath == "" || config.KeyPath == "" {
		return nil, ErrIncompleteKeyPair
	}

	cert, err := loadKeyPair(config.CertPath, config.KeyPath)
	if err != nil {
		return nil, err
	}
	tlsConfig.Certificates = []tls.Certificate{cert}

	return tlsConfig, nil
}

func loadKeyPair(certPath, keyPath string) (tls.Certificate, error) {
	if _, err := os.Stat(certPath); os.IsNotExist(err) {
		return tls.Certificate{}, fmt.Errorf("%w: %s", ErrCertNotFound, certPath)
	}

	if _, err := os.Stat(keyPath); os.IsNotExist(err) {
		return tls.Certificate{}, fmt.Errorf("%w: %s", ErrKeyNotFound, keyPath)
	}

	cert, err := tls.LoadX509KeyPair(certPath, keyPath)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("%w: %v", ErrLoadCertFailed, err)
	}

	return cert, nil
}

func loadCAPool(caPath string) (*x509.CertPool, error) {
	if _, err := os.Stat(caPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrCANotFound, caPath)
	}

	caBytes, err := os.ReadFile(caPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCAFailed, err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(caBytes) {
		return nil, ErrParseCAFailed
	}

	return pool, nil
}

// parseClientAuth maps a clientAuth string to tls.ClientAuthType.
func parseClientAuth(clientAuth string) (tls.ClientAuthType, error) {
	switch clientAuth {
	case "", "none":
		return tls.NoClientCert, nil
	case "request":
		return tls.VerifyClientCertIfGiven, nil
	case "require":
		return tls.RequireAndVerifyClientCert, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid values: none, request, require)", ErrInvalidClientAuth, clientAuth)
	}
}
