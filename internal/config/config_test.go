package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv makes every key absent for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDataDir, EnvMemory, EnvSound, EnvAutosave} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// chdir changes the working directory for the duration of the test
// (testing.T.Chdir needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	t.Cleanup(func() { os.Chdir(old) })
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in       string
		want, ok bool
	}{
		{"1", true, true},
		{"TRUE", true, true},
		{" yes ", true, true},
		{"on", true, true},
		{"0", false, true},
		{"off", false, true},
		{"No", false, true},
		{"", false, false},
		{"maybe", false, false},
	}

	for _, tc := range tests {
		got, ok := ParseBool(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Errorf("ParseBool(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := Load("test", nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want %+v", cfg, Default())
	}
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)

	envFile := filepath.Join(t.TempDir(), "test.env")
	content := EnvDataDir + "=/from/file\n" + EnvSound + "=off\n" + EnvMemory + "=yes\n"
	if err := os.WriteFile(envFile, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write env file: %v", err)
	}
	t.Setenv(EnvDataDir, "/from/env")

	cfg, err := Load("test", []string{"-autosave=false", "-resume"}, envFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "/from/env" {
		t.Errorf("DataDir = %q, want the environment to win over the file", cfg.DataDir)
	}
	if cfg.Sound {
		t.Error("Sound should be off from the env file")
	}
	if !cfg.Memory {
		t.Error("Memory should be on from the env file")
	}
	if cfg.Autosave || !cfg.Resume {
		t.Errorf("flags not applied: %+v", cfg)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSound, "0")
	t.Setenv(EnvDataDir, "/env")
	chdir(t, t.TempDir())

	cfg, err := Load("test", []string{"-sound", "-data", "/flag", "-nostore"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !cfg.Sound || cfg.DataDir != "/flag" || !cfg.NoStore {
		t.Errorf("got %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load("test", nil, filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected an error for a missing explicit env file")
	}
	if _, err := Load("test", []string{"-bogus"}, os.DevNull); err == nil {
		t.Error("expected an error for an unknown flag")
	}
}
