package config

import (
	"os"
	"path/filepath"
	"testing"
)

func noEnv(string) string { return "" }

func TestLoadDefaults(t *testing.T) {
	cfg, err := load("", noEnv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Library != "otparts" {
		t.Errorf("library = %q, want otparts", cfg.Library)
	}
	if !cfg.Overwrite {
		t.Errorf("overwrite default = false, want true")
	}
	if cfg.OutputDir == "" {
		t.Errorf("output dir empty")
	}
}

func TestLoadMissingFileIsFine(t *testing.T) {
	if _, err := load(filepath.Join(t.TempDir(), "absent.yaml"), noEnv); err != nil {
		t.Fatalf("load with absent file: %v", err)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "output: /tmp/kicad\nlibrary: mylib\noverwrite: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := load(path, noEnv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.OutputDir != "/tmp/kicad" || cfg.Library != "mylib" || cfg.Overwrite {
		t.Errorf("cfg = %+v, want yaml values", cfg)
	}
}

func TestLoadEnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("library: fromfile\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	env := map[string]string{
		EnvLibrary:   "fromenv",
		EnvOverwrite: "false",
	}
	cfg, err := load(path, func(k string) string { return env[k] })
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Library != "fromenv" {
		t.Errorf("library = %q, want env value", cfg.Library)
	}
	if cfg.Overwrite {
		t.Errorf("overwrite = true, want env value false")
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("library: [unterminated\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := load(path, noEnv); err == nil {
		t.Fatalf("expected error for malformed yaml")
	}
}

func TestLoadBadOverwriteValue(t *testing.T) {
	env := map[string]string{EnvOverwrite: "maybe"}
	if _, err := load("", func(k string) string { return env[k] }); err == nil {
		t.Fatalf("expected error for unparsable overwrite value")
	}
}
