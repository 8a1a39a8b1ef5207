package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MenuConfig 旋转菜单配置
//
// 描述演示程序中菜单的外观与页面列表，不包含任何运行时状态。
//
// 配置文件位置: data/spin_menu.yaml
type MenuConfig struct {
	// Window 窗口尺寸
	Window WindowConfig `yaml:"window"`

	// ScaleRatio 菜单展开时页面的缩放比例（0, 1)
	ScaleRatio float64 `yaml:"scaleRatio"`

	// EnableGesture 是否启用下滑打开菜单手势
	EnableGesture bool `yaml:"enableGesture"`

	// HintTextSize 提示文字字号
	HintTextSize float64 `yaml:"hintTextSize"`

	// HintTextColor 提示文字颜色（#RRGGBB 或 #AARRGGBB）
	HintTextColor string `yaml:"hintTextColor"`

	// Pages 有序页面列表，每个页面对应环上一个槽位
	Pages []PageConfig `yaml:"pages"`
}

// WindowConfig 窗口尺寸配置
type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PageConfig 单个页面配置
type PageConfig struct {
	// Title 页面标题（绘制在页面中央）
	Title string `yaml:"title"`

	// Color 页面背景色
	Color string `yaml:"color"`

	// Hint 槽位下方的提示文字（可选）
	Hint string `yaml:"hint"`
}

// DefaultMenuConfig 返回默认配置（不含页面）
func DefaultMenuConfig() *MenuConfig {
	return &MenuConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
		ScaleRatio:    DefaultScaleRatio,
		EnableGesture: true,
		HintTextSize:  DefaultHintTextSize,
		HintTextColor: DefaultHintTextColor,
	}
}

// LoadMenuConfig 从指定路径加载 YAML 格式的菜单配置
//
// 参数:
//   - path: 配置文件路径（如 "data/spin_menu.yaml"）
//
// 返回:
//   - *MenuConfig: 加载并验证通过的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadMenuConfig(path string) (*MenuConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu config: %w", err)
	}
	return ParseMenuConfig(data)
}

// ParseMenuConfig 解析 YAML 数据
//
// 未出现在 YAML 中的字段保留 DefaultMenuConfig 的默认值。
func ParseMenuConfig(data []byte) (*MenuConfig, error) {
	cfg := DefaultMenuConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse menu config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid menu config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
//
// 检查项：
//   - 窗口尺寸为正
//   - ScaleRatio 位于 (0, 1)
//   - 页面数量在 [1, MaxMenuItemCount] 内
//   - 所有颜色可解析
func (c *MenuConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.ScaleRatio <= 0 || c.ScaleRatio >= 1 {
		return fmt.Errorf("scaleRatio must be in (0, 1), got %.2f", c.ScaleRatio)
	}

	if c.HintTextSize <= 0 {
		return fmt.Errorf("hintTextSize must be positive, got %.1f", c.HintTextSize)
	}

	if _, err := ParseHexColor(c.HintTextColor); err != nil {
		return fmt.Errorf("hintTextColor: %w", err)
	}

	if _, err := NewRingConfig(len(c.Pages)); err != nil {
		return fmt.Errorf("pages: %w", err)
	}

	for i, page := range c.Pages {
		if _, err := ParseHexColor(page.Color); err != nil {
			return fmt.Errorf("page %d color: %w", i, err)
		}
	}

	return nil
}

// Hints 返回与页面平行的提示文字列表
func (c *MenuConfig) Hints() []string {
	hints := make([]string, len(c.Pages))
	for i, page := range c.Pages {
		hints[i] = page.Hint
	}
	return hints
}

// ParseHexColor 解析 #RRGGBB 或 #AARRGGBB 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	switch len(hex) {
	case 6:
		hex = "ff" + hex
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #AARRGGBB", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.RGBA{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}
