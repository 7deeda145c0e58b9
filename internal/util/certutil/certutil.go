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

// Package certutil issues short-lived certificates for the management API of a host pool:
// one CA, a serving certificate per chmigrated and client certificates for the peers and
// the CLI. It is meant for lab pools and tests.
package certutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"net"
	"os"
	"path/filepath"
	"time"
)

var (
	// ErrGenerateKey is returned when a private key cannot be generated.
	ErrGenerateKey = errors.New("failed to generate private key")
	// ErrSignCertificate is returned when a certificate cannot be signed.
	ErrSignCertificate = errors.New("failed to sign certificate")
	// ErrWriteFiles is returned when a key pair cannot be written.
	ErrWriteFiles = errors.New("failed to write key pair")
)

// DefaultValidity is the lifetime of the certificates issued by a CA.
const DefaultValidity = 24 * time.Hour

const organization = "chmigrate"

// ------------------------------------------------------- CA ------------------------------------------------------- //

// CA is a certificate authority.
type CA struct {
	key      *ecdsa.PrivateKey
	pool     *x509.CertPool
	rootCert *x509.Certificate
	validity time.Duration
}

// NewCA creates a self-signed CA issuing certificates valid for validity, DefaultValidity
// when zero.
func NewCA(validity time.Duration) (*CA, error) {
	if validity <= 0 {
		validity = DefaultValidity
	}

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, errors.Join(err, ErrGenerateKey)
	}

	serial, err := newSerial()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	template := &x509.Certificate{
		Subject:               pkix.Name{Organization: []string{organization}, CommonName: "chmigrate CA"},
		SerialNumber:          serial,
		NotBefore:             now.Add(-time.Hour),
		NotAfter:              now.Add(validity),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
		BasicConstraintsValid: true,
	}

	raw, err := x509.CreateCertificate(rand.Reader, template, template, key.Public(), key)
	if err != nil {
		return nil, errors.Join(err, ErrSignCertificate)
	}

	root, err := x509.ParseCertificate(raw)
	if err != nil {
		return nil, errors.Join(err, ErrSignCertificate)
	}

	pool := x509.NewCertPool()
	pool.AddCert(root)

	return &CA{
		key:      key,
		pool:     pool,
		rootCert: root,
		validity: validity,
	}, nil
}

// Pool returns a pool holding the root certificate.
func (ca *CA) Pool() *x509.CertPool {
	return ca.pool
}

// Cert returns the root certificate in PEM format.
func (ca *CA) Cert() []byte {
	return certToPEM(ca.rootCert)
}

// ------------------------------------------------ CertifiedKeypair ------------------------------------------------ //

// KeyPair is a PEM encoded private key and the certificate issued for it.
type KeyPair struct {
	Key  []byte
	Cert []byte
}

// NewServerKeyPair issues a serving certificate for hosts. Entries parsing as IP addresses
// become IP SANs, the others DNS SANs.
func (ca *CA) NewServerKeyPair(hosts ...string) (KeyPair, error) {
	template := &x509.Certificate{
		Subject:     pkix.Name{Organization: []string{organization}},
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}

	for _, h := range hosts {
		if ip := net.ParseIP(h); ip != nil {
			template.IPAddresses = append(template.IPAddresses, ip)
			continue
		}
		template.DNSNames = append(template.DNSNames, h)
	}

	if len(hosts) > 0 {
		template.Subject.CommonName = hosts[0]
	}

	return ca.issue(template)
}

// NewClientKeyPair issues a client certificate for commonName.
func (ca *CA) NewClientKeyPair(commonName string) (KeyPair, error) {
	return ca.issue(&x509.Certificate{
		Subject:     pkix.Name{Organization: []string{organization}, CommonName: commonName},
		ExtKeyUsage: []x509.ExtKeyUsage{x509.ExtKeyUsageClientAuth},
	})
}

func (ca *CA) issue(template *x509.Certificate) (KeyPair, error) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return KeyPair{}, errors.Join(err, ErrGenerateKey)
	}

	serial, err := newSerial()
	if err != nil {
		return KeyPair{}, err
	}

	now := time.Now()
	template.SerialNumber = serial
	template.NotBefore = now.Add(-time.Hour)
	template.NotAfter = now.Add(ca.validity)
	template.KeyUsage = x509.KeyUsageDigitalSignature

	raw, err := x509.CreateCertificate(rand.Reader, template, ca.rootCert, key.Public(), ca.key)
	if err != nil {
		return KeyPair{}, errors.Join(err, ErrSignCertificate)
	}

	kb, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return KeyPair{}, errors.Join(fmt.Errorf("marshaling private key: %w", err), ErrGenerateKey)
	}

	return KeyPair{
		Key:  pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: kb}),
		Cert: pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: raw}),
	}, nil
}

// WriteFiles writes the key pair to dir as <name>.key and <name>.crt and returns their paths.
// The key is only readable by its owner.
func (kp KeyPair) WriteFiles(dir, name string) (keyPath, certPath string, err error) {
	keyPath = filepath.Join(dir, name+".key")
	certPath = filepath.Join(dir, name+".crt")

	if err := os.WriteFile(keyPath, kp.Key, 0o600); err != nil {
		return "", "", errors.Join(err, ErrWriteFiles)
	}

	if err := os.WriteFile(certPath, kp.Cert, 0o644); err != nil { //nolint:gosec // certificates are public
		return "", "", errors.Join(err, ErrWriteFiles)
	}

	return keyPath, certPath, nil
}

func newSerial() (*big.Int, error) {
	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 127))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("generating serial number: %w", err), ErrSignCertificate)
	}
	return serial, nil
}

func certToPEM(cert *x509.Certificate) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw})
}
