package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg := DefaultConfig()
	cfg.DefaultFormat = "xml"
	cfg.Bundles = []Bundle{
		{Alias: "AcmeBlog", Namespace: `Acme\BlogBundle`, Dir: "src/Acme/BlogBundle"},
	}

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.DefaultFormat != "xml" {
		t.Errorf("DefaultFormat = %q, want xml", loaded.DefaultFormat)
	}
	if len(loaded.Bundles) != 1 || loaded.Bundles[0].Alias != "AcmeBlog" {
		t.Errorf("Bundles = %v", loaded.Bundles)
	}
	if loaded.Bundles[0].Namespace != `Acme\BlogBundle` {
		t.Errorf("Namespace = %q (backslashes must survive the json roundtrip)", loaded.Bundles[0].Namespace)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	if _, err := LoadConfig(t.TempDir()); err == nil {
		t.Error("LoadConfig on empty dir should fail")
	}
}

func TestLoadConfigDefaultFormatFallback(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".entforge"), 0755); err != nil {
		t.Fatal(err)
	}
	raw := `{"version":"1"}`
	if err := os.WriteFile(filepath.Join(dir, ".entforge", "config.json"), []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DefaultFormat != "annotation" {
		t.Errorf("DefaultFormat = %q, want annotation fallback", cfg.DefaultFormat)
	}
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := t.TempDir()
	if err := SaveConfig(dir, DefaultConfig()); err != nil {
		t.Fatal(err)
	}

	t.Setenv("ENTFORGE_FORMAT", "yml")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.DefaultFormat != "yml" {
		t.Errorf("DefaultFormat = %q, want yml from environment", cfg.DefaultFormat)
	}
}
