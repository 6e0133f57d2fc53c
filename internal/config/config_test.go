package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	prefs, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prefs.RecvTimeout != DefaultRecvTimeout || prefs.MonitorTimeout != DefaultMonitorTimeout {
		t.Fatalf("expected defaults, got %+v", prefs)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "json = true\npretty = true\nrecv_timeout = \"10s\"\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	prefs, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !prefs.JSON || !prefs.Pretty {
		t.Fatalf("expected json+pretty true: %+v", prefs)
	}
	if prefs.RecvTimeout != 10*time.Second {
		t.Fatalf("expected overridden recv_timeout, got %v", prefs.RecvTimeout)
	}
	if prefs.MonitorTimeout != DefaultMonitorTimeout {
		t.Fatalf("expected default monitor_timeout unchanged, got %v", prefs.MonitorTimeout)
	}
}

func TestValidateRejectsNegativeTimeouts(t *testing.T) {
	if err := Validate(Preferences{RecvTimeout: -1}); err == nil {
		t.Fatalf("expected error for negative recv_timeout")
	}
}
