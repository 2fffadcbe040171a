package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveConfigDirPrecedence(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ResolveConfigDir("/flag/config")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if got != "/flag/config" {
		t.Errorf("flag should win, got %s", got)
	}

	got, err = ResolveConfigDir("")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	if got != "/env/config" {
		t.Errorf("env should win over default, got %s", got)
	}
}

func TestResolveConfigDirDefault(t *testing.T) {
	t.Setenv(EnvConfigDir, "")

	got, err := ResolveConfigDir("")
	if err != nil {
		t.Fatalf("ResolveConfigDir failed: %v", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(cwd, DefaultConfigDirName)
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestResolveDataDirPrecedence(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	got, err := ResolveDataDir("/flag/data", "/config/data")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if got != "/flag/data" {
		t.Errorf("flag should win, got %s", got)
	}

	got, err = ResolveDataDir("", "/config/data")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if got != "/config/data" {
		t.Errorf("config value should win over env, got %s", got)
	}

	got, err = ResolveDataDir("", "")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	if got != "/env/data" {
		t.Errorf("env should win over default, got %s", got)
	}
}

func TestResolveDataDirDefault(t *testing.T) {
	t.Setenv(EnvDataDir, "")

	got, err := ResolveDataDir("", "")
	if err != nil {
		t.Fatalf("ResolveDataDir failed: %v", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(cwd, DefaultDataDirName)
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
