package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/spinmenu/pkg/embedded"
)

const testMenuYAML = `
window:
  width: 360
  height: 640
pages:
  - title: One
    color: "#112233"
  - title: Two
    color: "#445566"
    hint: second
`

func TestLoadMenuConfig_Embedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultConfigPath: {Data: []byte(testMenuYAML)},
	})

	cfg, err := LoadMenuConfig("")
	if err != nil {
		t.Fatalf("LoadMenuConfig: %v", err)
	}
	if len(cfg.Pages) != 2 || cfg.Window.Width != 360 {
		t.Errorf("配置 = %+v", cfg)
	}
	if cfg.Hints()[1] != "second" {
		t.Errorf("Hints = %v", cfg.Hints())
	}
}

func TestLoadMenuConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.yaml")
	if err := os.WriteFile(path, []byte(testMenuYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMenuConfig(path)
	if err != nil {
		t.Fatalf("LoadMenuConfig: %v", err)
	}
	if cfg.Window.Height != 640 {
		t.Errorf("Window.Height = %d, 期望 640", cfg.Window.Height)
	}

	if _, err := LoadMenuConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("文件不存在时应返回错误")
	}
}

func TestLoadMenuConfig_InvalidEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultConfigPath: {Data: []byte("pages: []\n")},
	})

	if _, err := LoadMenuConfig(""); err == nil {
		t.Error("没有页面的配置应返回错误")
	}
}
