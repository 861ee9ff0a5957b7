package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		old, ok := os.LookupEnv(k)
		os.Unsetenv(k)
		if ok {
			k, old := k, old
			t.Cleanup(func() { os.Setenv(k, old) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.BaseURL != "https://www.okx.com" {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if cfg.DemoTrading {
		t.Errorf("demo trading should default to false")
	}
	if cfg.CallTimeout() != 10*time.Second {
		t.Errorf("call timeout = %v", cfg.CallTimeout())
	}
	if cfg.HttpMaxHostIdleConns() != 5 || cfg.HttpIdleConn() != 90*time.Second {
		t.Errorf("unexpected http defaults: %+v", cfg)
	}
	if cfg.Credentials.Complete() {
		t.Errorf("no credentials expected")
	}
}

func TestLoadEnvFileAndOverride(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := "OKX_API_KEY=file-key\nOKX_SECRET_KEY=file-secret\nOKX_PASSPHRASE=file-pass\nOKX_DEMO_TRADING=true\nOKX_BASE_URL=https://aws.okx.com/\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("OKX_API_KEY", "env-key")
	t.Setenv("OKX_CALL_TIMEOUT", "3")

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("environment should override .env, got %q", cfg.APIKey)
	}
	if cfg.SecretKey != "file-secret" || cfg.Passphrase != "file-pass" {
		t.Errorf("unexpected credentials: %+v", cfg.Credentials)
	}
	if !cfg.DemoTrading {
		t.Errorf("demo trading not read")
	}
	if cfg.BaseURL != "https://aws.okx.com" {
		t.Errorf("base url = %q", cfg.BaseURL)
	}
	if cfg.CallTimeout() != 3*time.Second {
		t.Errorf("call timeout = %v", cfg.CallTimeout())
	}
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_IDLE_CONN", "ninety")
	if _, err := LoadFrom(t.TempDir()); err == nil {
		t.Fatalf("expected error for non-numeric HTTP_IDLE_CONN")
	}
}

func TestNewHTTPClient(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	c, err := NewHTTPClient(cfg)
	if err != nil {
		t.Fatalf("NewHTTPClient: %v", err)
	}
	if c.Timeout != 10*time.Second {
		t.Errorf("timeout = %v", c.Timeout)
	}
	if c.Transport == nil {
		t.Errorf("transport not set")
	}
}
