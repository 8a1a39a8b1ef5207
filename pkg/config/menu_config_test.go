package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseMenuConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *MenuConfig)
	}{
		{
			name: "valid config",
			yamlContent: `
window:
  width: 540
  height: 960
scaleRatio: 0.4
enableGesture: false
hintTextSize: 16
hintTextColor: "#333333"
pages:
  - title: Home
    color: "#F4511E"
    hint: home
  - title: Music
    color: "#3949AB"
`,
			validate: func(t *testing.T, cfg *MenuConfig) {
				if cfg.Window.Width != 540 || cfg.Window.Height != 960 {
					t.Errorf("window = %+v, 期望 540x960", cfg.Window)
				}
				if cfg.ScaleRatio != 0.4 {
					t.Errorf("scaleRatio = %v, 期望 0.4", cfg.ScaleRatio)
				}
				if cfg.EnableGesture {
					t.Error("enableGesture 应为 false")
				}
				if len(cfg.Pages) != 2 {
					t.Fatalf("pages = %d, 期望 2", len(cfg.Pages))
				}
				hints := cfg.Hints()
				if hints[0] != "home" || hints[1] != "" {
					t.Errorf("Hints() = %q", hints)
				}
			},
		},
		{
			name: "defaults applied",
			yamlContent: `
pages:
  - title: Only
    color: "#FFFFFF"
`,
			validate: func(t *testing.T, cfg *MenuConfig) {
				if cfg.ScaleRatio != DefaultScaleRatio {
					t.Errorf("scaleRatio = %v, 期望默认值 %v", cfg.ScaleRatio, DefaultScaleRatio)
				}
				if cfg.HintTextSize != DefaultHintTextSize {
					t.Errorf("hintTextSize = %v, 期望默认值", cfg.HintTextSize)
				}
				if !cfg.EnableGesture {
					t.Error("enableGesture 默认应为 true")
				}
			},
		},
		{
			name: "too many pages",
			yamlContent: `
pages:
  - {title: a, color: "#000000"}
  - {title: b, color: "#000000"}
  - {title: c, color: "#000000"}
  - {title: d, color: "#000000"}
  - {title: e, color: "#000000"}
  - {title: f, color: "#000000"}
  - {title: g, color: "#000000"}
  - {title: h, color: "#000000"}
  - {title: i, color: "#000000"}
`,
			wantErr:     true,
			errContains: "too many menu items",
		},
		{
			name:        "no pages",
			yamlContent: `scaleRatio: 0.3`,
			wantErr:     true,
			errContains: "at least one item",
		},
		{
			name: "invalid scale ratio",
			yamlContent: `
scaleRatio: 1.5
pages:
  - {title: a, color: "#000000"}
`,
			wantErr:     true,
			errContains: "scaleRatio",
		},
		{
			name: "invalid page color",
			yamlContent: `
pages:
  - {title: a, color: "red"}
`,
			wantErr:     true,
			errContains: "page 0 color",
		},
		{
			name:        "malformed yaml",
			yamlContent: "pages: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseMenuConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestParseMenuConfig_TooManyIsSentinel(t *testing.T) {
	cfg := DefaultMenuConfig()
	for i := 0; i <= MaxMenuItemCount; i++ {
		cfg.Pages = append(cfg.Pages, PageConfig{Title: "p", Color: "#000000"})
	}
	if err := cfg.Validate(); !errors.Is(err, ErrTooManyItems) {
		t.Errorf("Validate() = %v, 期望 ErrTooManyItems", err)
	}
}

func TestLoadMenuConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spin_menu.yaml")
	content := "pages:\n  - {title: a, color: \"#102030\"}\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadMenuConfig(path)
	if err != nil {
		t.Fatalf("LoadMenuConfig: %v", err)
	}
	if len(cfg.Pages) != 1 || cfg.Pages[0].Title != "a" {
		t.Errorf("pages = %+v", cfg.Pages)
	}

	if _, err := LoadMenuConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"#666666", color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}, false},
		{"#80FF0000", color.RGBA{R: 0xff, A: 0x80}, false},
		{"  #0000ff ", color.RGBA{B: 0xff, A: 0xff}, false},
		{"#fff", color.RGBA{}, true},
		{"#GGGGGG", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHexColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, 期望 %v", tt.input, got, tt.want)
			}
		})
	}
}
