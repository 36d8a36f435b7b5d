package tls

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// writeKeyPair creates a self-signed cert and key in dir.
func writeKeyPair(t *testing.T, dir string) (certPath, keyPath string) {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("generating key: %v", err)
	}
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "edge-device"},
		NotBefore:    time.Now(),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}
	certDER, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("creating cert: %v", err)
	}
	keyDER, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		t.Fatalf("marshaling key: %v", err)
	}

	certPath = writePEM(t, filepath.Join(dir, "cert.pem"), "CERTIFICATE", certDER)
	keyPath = writePEM(t, filepath.Join(dir, "key.pem"), "EC PRIVATE KEY", keyDER)
	return certPath, keyPath
}

func writePEM(t *testing.T, path, typ string, der []byte) string {
	t.Helper()
	data := pem.EncodeToMemory(&pem.Block{Type: typ, Bytes: der})
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBuild(t *testing.T) {
	dir := t.TempDir()
	certPath, keyPath := writeKeyPair(t, dir)
	badPEM := filepath.Join(dir, "bad.pem")
	os.WriteFile(badPEM, []byte("not a valid PEM"), 0600)

	tests := []struct {
		name    string
		s       Settings
		wantNil bool
		wantErr bool
		check   func(t *testing.T, s Settings)
	}{
		{name: "empty", s: Settings{}, wantNil: true},
		{name: "skip verify", s: Settings{InsecureSkipVerify: true}},
		{name: "server name", s: Settings{ServerName: "edge.local"}},
		{name: "client cert", s: Settings{CertFile: certPath, KeyFile: keyPath}},
		{name: "ca file", s: Settings{CAFile: certPath}},
		{name: "cert without key", s: Settings{CertFile: certPath}, wantErr: true},
		{name: "missing cert", s: Settings{CertFile: "/nonexistent/cert.pem", KeyFile: "/nonexistent/key.pem"}, wantErr: true},
		{name: "missing ca", s: Settings{CAFile: "/nonexistent/ca.pem"}, wantErr: true},
		{name: "invalid ca pem", s: Settings{CAFile: badPEM}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := tt.s.Build()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.wantNil {
				if cfg != nil {
					t.Error("expected nil config")
				}
				return
			}
			if cfg.InsecureSkipVerify != tt.s.InsecureSkipVerify || cfg.ServerName != tt.s.ServerName {
				t.Errorf("config = %+v", cfg)
			}
			if tt.s.CertFile != "" && len(cfg.Certificates) != 1 {
				t.Errorf("expected 1 client certificate, got %d", len(cfg.Certificates))
			}
			if tt.s.CAFile != "" && cfg.RootCAs == nil {
				t.Error("expected RootCAs to be set")
			}
		})
	}
}

func TestBuild_IncompleteKeyPairIsTyped(t *testing.T) {
	_, err := Settings{KeyFile: "key.pem"}.Build()
	if !errors.Is(err, ErrIncompleteKeyPair) {
		t.Errorf("got %v, want ErrIncompleteKeyPair", err)
	}
}

func TestBuild_TrustsDeviceCertificate(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	caPath := writePEM(t, filepath.Join(t.TempDir(), "device.pem"), "CERTIFICATE", srv.Certificate().Raw)

	plain := &http.Client{Timeout: 5 * time.Second}
	if _, err := plain.Get(srv.URL); err == nil {
		t.Fatal("expected an untrusted certificate error without a CA file")
	}

	cfg, err := Settings{CAFile: caPath}.Build()
	if err != nil {
		t.Fatal(err)
	}
	trusted := &http.Client{Timeout: 5 * time.Second, Transport: &http.Transport{TLSClientConfig: cfg}}
	resp, err := trusted.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET with device CA failed: %v", err)
	}
	resp.Body.Close()
}

func TestIsZero(t *testing.T) {
	if !(Settings{}).IsZero() {
		t.Error("zero value should be zero")
	}
	if (Settings{ServerName: "edge.local"}).IsZero() {
		t.Error("server name alone should count as configured")
	}
}
