// Package tls turns the tls section of the config file into a client
// configuration for backends that serve their own certificates.
package tls

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"os"
)

// Settings is the tls section of the config file.
type Settings struct {
	// CAFile is a PEM bundle used instead of the system roots.
	CAFile   string `yaml:"ca_file,omitempty"`
	CertFile string `yaml:"cert_file,omitempty"`
	KeyFile  string `yaml:"key_file,omitempty"`
	// ServerName overrides the name checked against the certificate, for
	// devices reached by IP address.
	ServerName         string `yaml:"server_name,omitempty"`
	InsecureSkipVerify bool   `yaml:"insecure_skip_verify,omitempty"`
}

// ErrIncompleteKeyPair is returned when only one of cert and key is set.
var ErrIncompleteKeyPair = errors.New("cert_file and key_file must be set together")

// IsZero reports whether no TLS settings are configured.
func (s Settings) IsZero() bool {
	return s == Settings{}
}

// Build returns the client configuration, or nil when nothing is set.
func (s Settings) Build() (*tls.Config, error) {
	if s.IsZero() {
		return nil, nil
	}
	if (s.CertFile == "") != (s.KeyFile == "") {
		return nil, ErrIncompleteKeyPair
	}

	cfg := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ServerName:         s.ServerName,
		InsecureSkipVerify: s.InsecureSkipVerify,
	}

	if s.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(s.CertFile, s.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("loading client cert: %w", err)
		}
		cfg.Certificates = []tls.Certificate{cert}
	}

	if s.CAFile != "" {
		pem, err := os.ReadFile(s.CAFile)
		if err != nil {
			return nil, fmt.Errorf("reading CA file: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in %s", s.CAFile)
		}
		cfg.RootCAs = pool
	}

	return cfg, nil
}
