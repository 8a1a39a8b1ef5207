package entities

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/spinmenu/pkg/config"
	"github.com/decker502/spinmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	pageTitleSize  = 40.0
	pageFooterSize = 18.0
)

// PageProvider 演示用的页面内容提供者
// 每个页面是一张纯色背景 + 居中标题的图片，首次请求时生成
type PageProvider struct {
	pages  []config.PageConfig
	colors []color.RGBA

	width, height int
	images        []*ebiten.Image
	fontSource    *text.GoTextFaceSource

	active int
}

// NewPageProvider 根据页面配置创建内容提供者
//
// 参数：
//   - pages: 页面配置列表
//   - width, height: 页面尺寸（与窗口一致）
//
// 返回：
//   - 内容提供者
//   - 页面颜色无法解析或字体加载失败时返回错误
func NewPageProvider(pages []config.PageConfig, width, height int) (*PageProvider, error) {
	colors := make([]color.RGBA, len(pages))
	for i, page := range pages {
		c, err := config.ParseHexColor(page.Color)
		if err != nil {
			return nil, fmt.Errorf("page %d color: %w", i, err)
		}
		colors[i] = c
	}

	source, err := utils.DefaultFontSource()
	if err != nil {
		return nil, fmt.Errorf("failed to load page font: %w", err)
	}

	return &PageProvider{
		pages:      pages,
		colors:     colors,
		width:      width,
		height:     height,
		images:     make([]*ebiten.Image, len(pages)),
		fontSource: source,
		active:     -1,
	}, nil
}

// Count 页面数量
func (p *PageProvider) Count() int {
	return len(p.pages)
}

// Title 页面标题
func (p *PageProvider) Title(index int) string {
	if index < 0 || index >= len(p.pages) {
		return ""
	}
	return p.pages[index].Title
}

// Content 返回页面图片
func (p *PageProvider) Content(index int) any {
	if index < 0 || index >= len(p.pages) {
		return nil
	}
	if p.images[index] == nil {
		p.images[index] = p.renderPage(index)
	}
	return p.images[index]
}

// Activate 页面成为顶层详情视图
func (p *PageProvider) Activate(index int) {
	p.active = index
	log.Printf("[PageProvider] Page %d (%s) activated", index, p.Title(index))
}

// Deactivate 页面不再是顶层详情视图
func (p *PageProvider) Deactivate(index int) {
	if p.active == index {
		p.active = -1
	}
	log.Printf("[PageProvider] Page %d (%s) deactivated", index, p.Title(index))
}

// ActiveIndex 当前激活的页面，没有时为 -1
func (p *PageProvider) ActiveIndex() int {
	return p.active
}

func (p *PageProvider) renderPage(index int) *ebiten.Image {
	img := ebiten.NewImage(p.width, p.height)
	bg := p.colors[index]
	img.Fill(bg)

	fg := contrastColor(bg)

	titleOp := &text.DrawOptions{}
	titleOp.GeoM.Translate(float64(p.width)/2, float64(p.height)/2)
	titleOp.PrimaryAlign = text.AlignCenter
	titleOp.SecondaryAlign = text.AlignCenter
	titleOp.ColorScale.ScaleWithColor(fg)
	text.Draw(img, p.pages[index].Title, &text.GoTextFace{Source: p.fontSource, Size: pageTitleSize}, titleOp)

	footerOp := &text.DrawOptions{}
	footerOp.GeoM.Translate(float64(p.width)/2, float64(p.height)-pageFooterSize*3)
	footerOp.PrimaryAlign = text.AlignCenter
	footerOp.ColorScale.ScaleWithColor(fg)
	footer := fmt.Sprintf("%d / %d", index+1, len(p.pages))
	text.Draw(img, footer, &text.GoTextFace{Source: p.fontSource, Size: pageFooterSize}, footerOp)

	return img
}

// contrastColor 深色背景用白字，浅色背景用黑字
func contrastColor(bg color.RGBA) color.Color {
	luminance := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if luminance < 140 {
		return color.White
	}
	return color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
}
