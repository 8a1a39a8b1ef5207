package systems

import (
	"image/color"
	"log"
	"math"

	"github.com/decker502/spinmenu/pkg/components"
	"github.com/decker502/spinmenu/pkg/config"
	"github.com/decker502/spinmenu/pkg/ecs"
	"github.com/decker502/spinmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	placeholderColor = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	borderColor      = color.RGBA{R: 0xBB, G: 0xBB, B: 0xBB, A: 0xFF}
)

// SpinMenuRenderSystem 环形菜单渲染系统
//
// 绘制顺序：
//  1. 按索引绘制每个槽位的页面（内容图片或占位）与提示文字
//  2. 详情视图挂在槽位中时，紧随该槽位绘制
//  3. 详情视图在顶层表面时，最后绘制（覆盖整个环）
type SpinMenuRenderSystem struct {
	entityManager *ecs.EntityManager

	surfaceWidth  float64
	surfaceHeight float64
	scaleRatio    float64

	whiteImage *ebiten.Image // 纯色矩形，首次绘制时创建
}

// NewSpinMenuRenderSystem 创建渲染系统
func NewSpinMenuRenderSystem(em *ecs.EntityManager) *SpinMenuRenderSystem {
	return &SpinMenuRenderSystem{
		entityManager: em,
		surfaceWidth:  config.DefaultWindowWidth,
		surfaceHeight: config.DefaultWindowHeight,
		scaleRatio:    config.DefaultScaleRatio,
	}
}

// SetSurface 设置表面尺寸与缩放比例
func (s *SpinMenuRenderSystem) SetSurface(width, height, scaleRatio float64) {
	s.surfaceWidth = width
	s.surfaceHeight = height
	s.scaleRatio = scaleRatio
}

// Draw 绘制所有槽位与详情视图
func (s *SpinMenuRenderSystem) Draw(screen *ebiten.Image) {
	detail, contentOf := s.findDetail()

	slots := ecs.GetEntitiesWith2[*components.SlotComponent, *components.SlotTransformComponent](s.entityManager)
	for _, entityID := range slots {
		slot, _ := ecs.GetComponent[*components.SlotComponent](s.entityManager, entityID)
		transform, _ := ecs.GetComponent[*components.SlotTransformComponent](s.entityManager, entityID)
		geo := SlotGeoM(transform, slot.TranslationX)

		hasDetail := detail != nil && detail.SlotIndex == slot.Index
		if hasDetail && detail.Attached {
			s.drawDetail(screen, detail, contentOf, &geo)
		} else if hasDetail {
			s.drawPlaceholder(screen, geo)
		} else {
			s.drawPage(screen, slot.Content, geo)
		}

		if label, ok := ecs.GetComponent[*components.HintLabelComponent](s.entityManager, entityID); ok {
			s.drawHint(screen, label, transform, geo)
		}
	}

	if detail != nil && !detail.Attached {
		s.drawDetail(screen, detail, contentOf, nil)
	}
}

// findDetail 返回详情视图及其内容（取自对应槽位）
func (s *SpinMenuRenderSystem) findDetail() (*components.DetailViewComponent, any) {
	details := ecs.GetEntitiesWith1[*components.DetailViewComponent](s.entityManager)
	if len(details) == 0 {
		return nil, nil
	}
	detail, _ := ecs.GetComponent[*components.DetailViewComponent](s.entityManager, details[0])

	for _, entityID := range ecs.GetEntitiesWith1[*components.SlotComponent](s.entityManager) {
		slot, _ := ecs.GetComponent[*components.SlotComponent](s.entityManager, entityID)
		if slot.Index == detail.SlotIndex {
			return detail, slot.Content
		}
	}
	return detail, nil
}

// SlotGeoM 返回槽位局部坐标（左上角为原点）到屏幕坐标的变换
// 横向偏移在旋转之后施加，不随槽位倾斜
func SlotGeoM(transform *components.SlotTransformComponent, translationX float64) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Translate(-transform.Width/2, -transform.Height/2)
	geo.Rotate(transform.Rotation * math.Pi / 180)
	geo.Translate(transform.CenterX+translationX, transform.CenterY)
	return geo
}

// DetailGeoM 返回详情视图（表面大小）到父坐标的变换
// 缩放以视图中心为轴心，随后施加平移
func DetailGeoM(detail *components.DetailViewComponent, width, height float64) ebiten.GeoM {
	var geo ebiten.GeoM
	geo.Translate(-width/2, -height/2)
	geo.Scale(detail.ScaleX, detail.ScaleY)
	geo.Translate(width/2+detail.TranslationX, height/2+detail.TranslationY)
	return geo
}

func (s *SpinMenuRenderSystem) pageSize() (float64, float64) {
	return s.surfaceWidth * s.scaleRatio, s.surfaceHeight * s.scaleRatio
}

func (s *SpinMenuRenderSystem) drawPage(screen *ebiten.Image, content any, geo ebiten.GeoM) {
	w, h := s.pageSize()
	img, ok := content.(*ebiten.Image)
	if !ok || img == nil {
		s.drawPlaceholder(screen, geo)
		return
	}
	s.drawImageInRect(screen, img, w, h, geo)
	s.strokeRect(screen, w, h, geo)
}

func (s *SpinMenuRenderSystem) drawPlaceholder(screen *ebiten.Image, geo ebiten.GeoM) {
	w, h := s.pageSize()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Concat(geo)
	op.ColorScale.ScaleWithColor(placeholderColor)
	screen.DrawImage(s.white(), op)
	s.strokeRect(screen, w, h, geo)
}

// drawDetail parent 为 nil 时绘制在顶层表面
func (s *SpinMenuRenderSystem) drawDetail(screen *ebiten.Image, detail *components.DetailViewComponent, content any, parent *ebiten.GeoM) {
	geo := DetailGeoM(detail, s.surfaceWidth, s.surfaceHeight)
	if parent != nil {
		geo.Concat(*parent)
	}

	if img, ok := content.(*ebiten.Image); ok && img != nil {
		s.drawImageInRect(screen, img, s.surfaceWidth, s.surfaceHeight, geo)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(s.surfaceWidth, s.surfaceHeight)
	op.GeoM.Concat(geo)
	screen.DrawImage(s.white(), op)
}

func (s *SpinMenuRenderSystem) drawImageInRect(screen, img *ebiten.Image, w, h float64, geo ebiten.GeoM) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(bounds.Dx()), h/float64(bounds.Dy()))
	op.GeoM.Concat(geo)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// strokeRect 沿变换后的矩形四边描边
func (s *SpinMenuRenderSystem) strokeRect(screen *ebiten.Image, w, h float64, geo ebiten.GeoM) {
	corners := [4][2]float64{{0, 0}, {w, 0}, {w, h}, {0, h}}
	for i := range corners {
		x0, y0 := geo.Apply(corners[i][0], corners[i][1])
		next := corners[(i+1)%4]
		x1, y1 := geo.Apply(next[0], next[1])
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, borderColor, true)
	}
}

func (s *SpinMenuRenderSystem) drawHint(screen *ebiten.Image, label *components.HintLabelComponent, transform *components.SlotTransformComponent, geo ebiten.GeoM) {
	if label.Text == "" {
		return
	}
	face, err := utils.LoadFontFace(label.Size)
	if err != nil {
		log.Printf("[SpinMenuRenderSystem] Warning: failed to load hint font: %v", err)
		return
	}

	_, pageH := s.pageSize()
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.GeoM.Translate(transform.Width/2, pageH+config.HintTopMargin)
	op.GeoM.Concat(geo)
	op.ColorScale.ScaleWithColor(label.Color)
	text.Draw(screen, label.Text, face, op)
}

func (s *SpinMenuRenderSystem) white() *ebiten.Image {
	if s.whiteImage == nil {
		s.whiteImage = ebiten.NewImage(1, 1)
		s.whiteImage.Fill(color.White)
	}
	return s.whiteImage
}
