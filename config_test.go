package learngl_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-theft-auto/learngl"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "learngl.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := learngl.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != learngl.DefaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := writeConfig(t, `
width = 1024
title = "Camera"
wireframe = true
clear_color = [0.0, 0.0, 0.0, 1.0]
`)
	cfg, err := learngl.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 1024 || cfg.Title != "Camera" || !cfg.Wireframe {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Height != 600 || !cfg.VSync {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
	if cfg.ClearColor != [4]float32{0, 0, 0, 1} {
		t.Errorf("unexpected clear colour %v", cfg.ClearColor)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := learngl.LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}

	tests := []struct {
		name string
		body string
	}{
		{"syntax", "width = = 3"},
		{"bad size", "height = 0"},
		{"old context", "gl_major = 3\ngl_minor = 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := learngl.LoadConfig(writeConfig(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "learngl.yaml")
	body := "width: 640\ndepth_test: true\nclear_color: [1, 1, 1, 1]\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := learngl.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Width != 640 || !cfg.DepthTest || cfg.ClearColor != [4]float32{1, 1, 1, 1} {
		t.Errorf("file values not applied: %+v", cfg)
	}
	if cfg.Height != 600 || cfg.Title != "Hello OpenGL" {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}
