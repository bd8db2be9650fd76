package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bake.toml")
	data := []byte(`
[log]
level = "debug"

[bake]
clip_name = "walk"
frame_rate = 0
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "debug" || cfg.Bake.ClipName != "walk" {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Bake.FrameRate != 60 {
		t.Errorf("FrameRate = %v, want default 60", cfg.Bake.FrameRate)
	}
	if cfg.Application.Name != "anima-bake" || cfg.Watch.QueueSize != 64 || cfg.Bake.WrapMode != "once" {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}

	path := filepath.Join(t.TempDir(), "broken.toml")
	os.WriteFile(path, []byte("[bake\nframe_rate = "), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("malformed file should fail")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := Default()
	cfg.Bake.FrameRate = 24
	cfg.Watch.Dir = "captures"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
