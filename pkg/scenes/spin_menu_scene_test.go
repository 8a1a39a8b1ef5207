package scenes

import (
	"testing"

	"github.com/decker502/spinmenu/pkg/config"
)

// 配置错误在创建任何图片之前返回
func TestNewSpinMenuScene_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *config.MenuConfig)
	}{
		{"页面颜色无效", func(cfg *config.MenuConfig) { cfg.Pages[0].Color = "red" }},
		{"提示文字颜色无效", func(cfg *config.MenuConfig) { cfg.HintTextColor = "#12" }},
		{"缩放比例无效", func(cfg *config.MenuConfig) { cfg.ScaleRatio = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultMenuConfig()
			cfg.Pages = []config.PageConfig{{Title: "A", Color: "#FF0000"}}
			tt.modify(cfg)

			if _, err := NewSpinMenuScene(cfg); err == nil {
				t.Error("期望返回错误")
			}
		})
	}
}
