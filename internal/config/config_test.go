package config

import (
	"os"
	"strings"
	"testing"
)

func clearCommitmsgEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"COMMITMSG_ROOTS", "COMMITMSG_TRANSPORT", "PORT", "COMMITMSG_AUTH_SECRET"} {
		os.Unsetenv(key)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearCommitmsgEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.Roots) != 1 || cfg.Roots[0] != "." {
		t.Errorf("Roots = %v, want [.]", cfg.Roots)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("Transport = %q, want %q", cfg.Transport, TransportStdio)
	}
	if cfg.Port != 8490 {
		t.Errorf("Port = %d, want 8490", cfg.Port)
	}
	if cfg.AuthSecret != "" {
		t.Errorf("AuthSecret = %q, want empty", cfg.AuthSecret)
	}
}

func TestLoad_MultipleRoots(t *testing.T) {
	clearCommitmsgEnv(t)
	roots := strings.Join([]string{"/work/app", "/work/lib", ""}, string(os.PathListSeparator))
	t.Setenv("COMMITMSG_ROOTS", roots)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(cfg.Roots) != 2 || cfg.Roots[0] != "/work/app" || cfg.Roots[1] != "/work/lib" {
		t.Errorf("Roots = %v, want the two non-empty segments in order", cfg.Roots)
	}
}

func TestLoad_HTTPTransport(t *testing.T) {
	clearCommitmsgEnv(t)
	t.Setenv("COMMITMSG_TRANSPORT", "http")
	t.Setenv("PORT", "9000")
	t.Setenv("COMMITMSG_AUTH_SECRET", "shh")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Transport != TransportHTTP || cfg.Port != 9000 || cfg.AuthSecret != "shh" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_InvalidTransport(t *testing.T) {
	clearCommitmsgEnv(t)
	t.Setenv("COMMITMSG_TRANSPORT", "grpc")

	if _, err := Load(); err == nil {
		t.Error("Load() = nil error, want failure for unsupported transport")
	}
}

func TestLoad_InvalidPortForHTTP(t *testing.T) {
	clearCommitmsgEnv(t)
	t.Setenv("COMMITMSG_TRANSPORT", "http")
	t.Setenv("PORT", "-1")

	if _, err := Load(); err == nil {
		t.Error("Load() = nil error, want failure for invalid port")
	}
}

func TestGetEnvInt_IgnoresGarbage(t *testing.T) {
	clearCommitmsgEnv(t)
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Port != 8490 {
		t.Errorf("Port = %d, want default when unparsable", cfg.Port)
	}
}
