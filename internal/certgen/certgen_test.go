package certgen

import (
	"crypto/ecdsa"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeCA stores a fresh CA under dir and returns it.
func writeCA(t *testing.T, dir string) *CA {
	t.Helper()
	ca, p, err := NewCA("Test CA")
	if err != nil {
		t.Fatalf("NewCA error: %v", err)
	}
	if err := p.Write(dir, "ca"); err != nil {
		t.Fatalf("write CA: %v", err)
	}
	return ca
}

func parseCert(t *testing.T, certPEM []byte) *x509.Certificate {
	t.Helper()
	block, _ := pem.Decode(certPEM)
	if block == nil || block.Type != "CERTIFICATE" {
		t.Fatalf("cert PEM invalid")
	}
	cert, err := x509.ParseCertificate(block.Bytes)
	if err != nil {
		t.Fatalf("parse cert: %v", err)
	}
	return cert
}

func TestNewCA(t *testing.T) {
	ca, p, err := NewCA("GramUdyog Dev CA")
	if err != nil {
		t.Fatalf("NewCA error: %v", err)
	}
	if !ca.Cert.IsCA || !ca.Cert.BasicConstraintsValid {
		t.Error("CA certificate should be a valid CA")
	}
	if ca.Cert.KeyUsage&x509.KeyUsageCertSign == 0 {
		t.Errorf("CA KeyUsage = %v; want CertSign", ca.Cert.KeyUsage)
	}
	if got := parseCert(t, p.Cert); got.Subject.CommonName != "GramUdyog Dev CA" {
		t.Errorf("CommonName = %q", got.Subject.CommonName)
	}
}

func TestLoadCA_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	want := writeCA(t, dir)

	got, err := LoadCA(filepath.Join(dir, "ca.crt"), filepath.Join(dir, "ca.key"))
	if err != nil {
		t.Fatalf("LoadCA error: %v", err)
	}
	if !got.Cert.Equal(want.Cert) {
		t.Error("certificate mismatch")
	}
	key, ok := got.Key.(*ecdsa.PrivateKey)
	if !ok {
		t.Fatalf("key type = %T; want *ecdsa.PrivateKey", got.Key)
	}
	if !key.PublicKey.Equal(want.Key.Public()) {
		t.Error("public key mismatch")
	}
}

func TestLoadCA_Errors(t *testing.T) {
	dir := t.TempDir()
	writeCA(t, dir)
	caCert := filepath.Join(dir, "ca.crt")
	caKey := filepath.Join(dir, "ca.key")

	garbage := filepath.Join(dir, "garbage.pem")
	if err := os.WriteFile(garbage, []byte("not pem"), 0o600); err != nil {
		t.Fatal(err)
	}

	ca, _ := LoadCA(caCert, caKey)
	leaf, err := ca.Issue("localhost", nil, ServerAuth)
	if err != nil {
		t.Fatal(err)
	}
	if err := leaf.Write(dir, "leaf"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		cert     string
		key      string
		wantText string
	}{
		{"missing cert", "/no/such/file.pem", caKey, "read ca cert"},
		{"missing key", caCert, "/no/such/key.pem", "read ca key"},
		{"bad cert", garbage, caKey, "invalid CA cert PEM"},
		{"bad key", caCert, garbage, "invalid CA key PEM"},
		{"leaf cert", filepath.Join(dir, "leaf.crt"), caKey, "not a CA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCA(tt.cert, tt.key)
			if err == nil || !strings.Contains(err.Error(), tt.wantText) {
				t.Errorf("got %v; want error containing %q", err, tt.wantText)
			}
		})
	}
}

func TestIssue_ServerCertificate(t *testing.T) {
	ca, _, err := NewCA("Test CA")
	if err != nil {
		t.Fatal(err)
	}

	p, err := ca.Issue("localhost", []string{"localhost", "127.0.0.1"}, ServerAuth)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	cert := parseCert(t, p.Cert)

	if len(cert.DNSNames) != 1 || cert.DNSNames[0] != "localhost" {
		t.Errorf("DNSNames = %v; want [localhost]", cert.DNSNames)
	}
	if len(cert.IPAddresses) != 1 || !cert.IPAddresses[0].Equal(net.ParseIP("127.0.0.1")) {
		t.Errorf("IPAddresses = %v; want [127.0.0.1]", cert.IPAddresses)
	}

	roots := x509.NewCertPool()
	roots.AddCert(ca.Cert)
	if _, err := cert.Verify(x509.VerifyOptions{
		Roots:     roots,
		DNSName:   "localhost",
		KeyUsages: []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}); err != nil {
		t.Errorf("verify server cert: %v", err)
	}

	if _, err := tls.X509KeyPair(p.Cert, p.Key); err != nil {
		t.Errorf("key pair: %v", err)
	}
}

func TestIssue_ClientCertificate(t *testing.T) {
	ca, _, err := NewCA("Test CA")
	if err != nil {
		t.Fatal(err)
	}

	p, err := ca.Issue("gramudyog-cli", nil, ClientAuth)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	cert := parseCert(t, p.Cert)
	if cert.Subject.CommonName != "gramudyog-cli" {
		t.Errorf("CommonName = %q", cert.Subject.CommonName)
	}
	if len(cert.ExtKeyUsage) != 1 || cert.ExtKeyUsage[0] != x509.ExtKeyUsageClientAuth {
		t.Errorf("ExtKeyUsage = %v; want client auth only", cert.ExtKeyUsage)
	}
	if err := cert.CheckSignatureFrom(ca.Cert); err != nil {
		t.Errorf("certificate not signed by CA: %v", err)
	}

	block, _ := pem.Decode(p.Key)
	if block == nil || block.Type != "EC PRIVATE KEY" {
		t.Fatalf("key PEM invalid")
	}
}

func TestWrite_KeyPermissions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "certs")
	if err := (PEM{Cert: []byte("c"), Key: []byte("k")}).Write(dir, "server"); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	info, err := os.Stat(filepath.Join(dir, "server.key"))
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("key perm = %o; want 600", perm)
	}
	if _, err := os.Stat(filepath.Join(dir, "server.crt")); err != nil {
		t.Errorf("cert not written: %v", err)
	}
}
