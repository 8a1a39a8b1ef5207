package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/spinmenu/pkg/config"
	"github.com/decker502/spinmenu/pkg/ecs"
	"github.com/decker502/spinmenu/pkg/entities"
	"github.com/decker502/spinmenu/pkg/game"
	"github.com/decker502/spinmenu/pkg/modules"
	"github.com/decker502/spinmenu/pkg/systems"
	"github.com/decker502/spinmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var _ game.Scene = (*SpinMenuScene)(nil)

const statusTextSize = 12.0

// SpinMenuScene 环形菜单演示场景
//
// 键盘操作：
//   - Space/Enter: 展开或收起菜单
//   - Esc: 收起菜单
//   - ←/→: 选中相邻槽位
type SpinMenuScene struct {
	entityManager *ecs.EntityManager
	menu          *modules.SpinMenuModule
	pages         *entities.PageProvider

	background color.Color

	statusFace *text.GoTextFace
	status     string
}

// NewSpinMenuScene 根据菜单配置创建场景
func NewSpinMenuScene(cfg *config.MenuConfig) (*SpinMenuScene, error) {
	pages, err := entities.NewPageProvider(cfg.Pages, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to create pages: %w", err)
	}

	hintColor, err := config.ParseHexColor(cfg.HintTextColor)
	if err != nil {
		return nil, fmt.Errorf("hint text color: %w", err)
	}

	scene := &SpinMenuScene{
		entityManager: ecs.NewEntityManager(),
		pages:         pages,
		background:    color.White,
	}

	scene.menu = modules.NewSpinMenuModule(scene.entityManager, cfg.Window.Width, cfg.Window.Height, modules.SpinMenuCallbacks{
		OnMenuOpened: func() {
			log.Printf("[SpinMenuScene] Menu opened")
		},
		OnMenuClosed: func() {
			log.Printf("[SpinMenuScene] Menu closed on page %q", pages.Title(pages.ActiveIndex()))
		},
		OnSpinSelected: func(index int) {
			log.Printf("[SpinMenuScene] Selected page %d (%s)", index, pages.Title(index))
		},
		OnStateChanged: func(from, to systems.MenuState) {
			scene.updateStatus()
		},
	})

	if err := scene.menu.SetScaleRatio(cfg.ScaleRatio); err != nil {
		return nil, err
	}
	if err := scene.menu.SetHintTextSize(cfg.HintTextSize); err != nil {
		return nil, err
	}
	scene.menu.SetHintTextColor(hintColor)
	scene.menu.SetHintTexts(cfg.Hints())
	scene.menu.SetEnableGesture(cfg.EnableGesture)

	if err := scene.menu.SetContentProvider(pages); err != nil {
		return nil, err
	}

	if face, err := utils.LoadFontFace(statusTextSize); err == nil {
		scene.statusFace = face
	}
	scene.updateStatus()

	log.Printf("[SpinMenuScene] Created with %d pages", pages.Count())
	return scene, nil
}

// Update 处理键盘快捷键并更新菜单
func (s *SpinMenuScene) Update(deltaTime float64) {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.toggleMenu()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		s.menu.CloseMenu()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		s.menu.StepSelection(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.menu.StepSelection(1)
	}

	s.menu.Update(deltaTime)
	s.updateStatus()
}

func (s *SpinMenuScene) toggleMenu() {
	switch s.menu.MenuState() {
	case systems.MenuCollapsed:
		s.menu.OpenMenu()
	case systems.MenuExpanded:
		s.menu.CloseMenu()
	}
}

func (s *SpinMenuScene) updateStatus() {
	s.status = fmt.Sprintf("%v  slot %d/%d  %.1f°",
		s.menu.MenuState(), s.menu.SelectedIndex()+1, s.menu.SlotCount(), s.menu.RingState().CurrentAngle)
}

// Draw 绘制背景、菜单与状态栏
func (s *SpinMenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.menu.Draw(screen)

	if s.statusFace == nil || s.menu.MenuState() == systems.MenuCollapsed {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF})
	text.Draw(screen, s.status, s.statusFace, op)
}

// Cleanup 释放菜单实体
func (s *SpinMenuScene) Cleanup() {
	s.menu.Cleanup()
	log.Printf("[SpinMenuScene] Cleaned up")
}
