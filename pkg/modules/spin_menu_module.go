package modules

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/decker502/spinmenu/pkg/components"
	"github.com/decker502/spinmenu/pkg/config"
	"github.com/decker502/spinmenu/pkg/ecs"
	"github.com/decker502/spinmenu/pkg/systems"
	"github.com/decker502/spinmenu/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrMenuBusy 当前状态不允许修改配置
var ErrMenuBusy = errors.New("spin menu is not collapsed")

// openSwipeDistance 下滑手势触发展开所需的最小纵向距离
const openSwipeDistance = config.GestureTouchSlop * 3

// SpinMenuCallbacks 环形菜单回调函数集合，均可为 nil
type SpinMenuCallbacks struct {
	OnMenuOpened   func()
	OnMenuClosed   func()
	OnSpinSelected func(index int)
	OnStateChanged func(from, to systems.MenuState)
}

// SpinMenuModule 环形菜单模块
// 组合旋转控制器、状态机与布局/输入/渲染系统，对外提供菜单的完整生命周期：
//   - 配置内容提供者与提示文字
//   - 分发指针事件（旋转、点击、下滑展开手势）
//   - 展开/收起菜单
//   - 每帧推进动画并渲染
//
// 槽位实体在每次 SetContentProvider 时整体销毁重建。
type SpinMenuModule struct {
	entityManager *ecs.EntityManager

	layoutSystem *systems.SlotLayoutSystem
	renderSystem *systems.SpinMenuRenderSystem
	inputSystem  *systems.SpinInputSystem

	// 在第一次配置内容后创建
	rotation     *systems.RotationController
	stateMachine *systems.MenuStateMachine

	provider      ContentProvider
	ring          config.RingConfig
	slotEntities  []ecs.EntityID
	detailEntity  ecs.EntityID
	activeContent int

	width, height float64
	scaleRatio    float64

	hintTexts     []string
	hintTextSize  float64
	hintTextColor color.Color
	enableGesture bool

	// 下滑展开手势
	gestureDownX, gestureDownY float64
	gestureTracking            bool

	callbacks SpinMenuCallbacks
}

// NewSpinMenuModule 创建环形菜单模块，使用 Ebitengine 指针输入
func NewSpinMenuModule(em *ecs.EntityManager, windowWidth, windowHeight int, callbacks SpinMenuCallbacks) *SpinMenuModule {
	m := newSpinMenuModule(em, windowWidth, windowHeight, callbacks)
	m.inputSystem = systems.NewSpinInputSystem(m)
	return m
}

// NewSpinMenuModuleWithInput 创建带自定义指针输入的环形菜单模块（用于测试）
func NewSpinMenuModuleWithInput(em *ecs.EntityManager, windowWidth, windowHeight int, callbacks SpinMenuCallbacks, input systems.PointerInput) *SpinMenuModule {
	m := newSpinMenuModule(em, windowWidth, windowHeight, callbacks)
	m.inputSystem = systems.NewSpinInputSystemWithInput(m, input)
	return m
}

func newSpinMenuModule(em *ecs.EntityManager, windowWidth, windowHeight int, callbacks SpinMenuCallbacks) *SpinMenuModule {
	m := &SpinMenuModule{
		entityManager: em,
		width:         float64(windowWidth),
		height:        float64(windowHeight),
		scaleRatio:    config.DefaultScaleRatio,
		hintTextSize:  config.DefaultHintTextSize,
		hintTextColor: color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xFF},
		activeContent: -1,
		callbacks:     callbacks,
	}

	m.layoutSystem = systems.NewSlotLayoutSystem(em, m.computeGeometry())
	m.renderSystem = systems.NewSpinMenuRenderSystem(em)
	m.renderSystem.SetSurface(m.width, m.height, m.scaleRatio)

	log.Printf("[SpinMenuModule] Initialized (%dx%d)", windowWidth, windowHeight)
	return m
}

// SetContentProvider 配置菜单内容
//
// 槽位数超过环容量或为 0 时返回错误，且不修改任何状态。
// 成功时中断进行中的过渡，回到 Collapsed，选中槽位 0。
func (m *SpinMenuModule) SetContentProvider(provider ContentProvider) error {
	count := 0
	if provider != nil {
		count = provider.Count()
	}
	ring, err := config.NewRingConfig(count)
	if err != nil {
		return fmt.Errorf("failed to configure spin menu: %w", err)
	}

	if m.stateMachine != nil {
		m.stateMachine.Reset()
	}
	if m.activeContent >= 0 {
		m.deactivateContent(m.activeContent)
	}
	m.destroySlots()

	m.provider = provider
	m.ring = ring
	m.createSlots()
	m.layoutSystem.SetGeometry(m.computeGeometry())

	if m.rotation == nil {
		m.rotation = systems.NewRotationController(ring, m.layoutSystem.Geometry())
		m.rotation.SetListener(systems.RotationListener{
			OnAngleChanged:    m.onAngleChanged,
			OnSpinSelected:    m.onSpinSelected,
			OnSelectedSlotTap: m.onSelectedSlotTap,
		})
		m.rotation.SetHitTester(m.hitTest)
		m.stateMachine = systems.NewMenuStateMachine(transitionHost{m: m}, m.rotation)
		m.stateMachine.SetListener(systems.MenuStateListener{
			OnMenuOpened:   m.onMenuOpened,
			OnMenuClosed:   m.onMenuClosed,
			OnStateChanged: m.onStateChanged,
		})
	} else {
		m.rotation.SetGeometry(m.layoutSystem.Geometry())
		m.rotation.Configure(ring)
	}

	m.activateContent(0)
	m.stateMachine.ApplyNeighborSkew(0)
	m.layoutSystem.Layout(m.rotation.State().CurrentAngle)

	log.Printf("[SpinMenuModule] Configured %d slots (cyclic=%v, %d entities)",
		ring.SlotCount, ring.Cyclic, m.entityManager.EntityCount())
	return nil
}

func (m *SpinMenuModule) createSlots() {
	m.slotEntities = make([]ecs.EntityID, 0, m.ring.SlotCount)
	for i := 0; i < m.ring.SlotCount; i++ {
		id := m.entityManager.CreateEntity()
		ecs.AddComponent(m.entityManager, id, &components.SlotComponent{
			Index:          i,
			Content:        m.provider.Content(i),
			PlacementAngle: utils.SlotAngle(i),
		})
		ecs.AddComponent(m.entityManager, id, &components.SlotTransformComponent{})
		ecs.AddComponent(m.entityManager, id, &components.HintLabelComponent{
			Text:  m.hintText(i),
			Size:  m.hintTextSize,
			Color: m.hintTextColor,
		})
		m.slotEntities = append(m.slotEntities, id)
	}

	m.detailEntity = m.entityManager.CreateEntity()
	ecs.AddComponent(m.entityManager, m.detailEntity, &components.DetailViewComponent{
		SlotIndex: 0,
		ScaleX:    1,
		ScaleY:    1,
	})
}

func (m *SpinMenuModule) destroySlots() {
	for _, id := range m.slotEntities {
		m.entityManager.DestroyEntity(id)
	}
	if m.detailEntity != 0 {
		m.entityManager.DestroyEntity(m.detailEntity)
		m.detailEntity = 0
	}
	m.entityManager.RemoveMarkedEntities()
	m.slotEntities = nil
}

// computeGeometry 槽位 = 缩小后的页面 + 上边距 + 一行提示文字
func (m *SpinMenuModule) computeGeometry() utils.RingGeometry {
	slotWidth := m.width * m.scaleRatio
	slotHeight := m.height*m.scaleRatio + config.HintTopMargin + m.hintTextSize*1.5
	return utils.NewRingGeometry(m.width, m.height, slotWidth, slotHeight)
}

func (m *SpinMenuModule) refreshGeometry() {
	m.layoutSystem.SetGeometry(m.computeGeometry())
	m.renderSystem.SetSurface(m.width, m.height, m.scaleRatio)
	if m.rotation != nil {
		m.rotation.SetGeometry(m.layoutSystem.Geometry())
		m.layoutSystem.Layout(m.rotation.State().CurrentAngle)
	}
}

func (m *SpinMenuModule) hintText(index int) string {
	if index < len(m.hintTexts) {
		return m.hintTexts[index]
	}
	return ""
}

func (m *SpinMenuModule) updateHintLabels() {
	for i, id := range m.slotEntities {
		if label, ok := ecs.GetComponent[*components.HintLabelComponent](m.entityManager, id); ok {
			label.Text = m.hintText(i)
			label.Size = m.hintTextSize
			label.Color = m.hintTextColor
		}
	}
}

// SetHintTexts 设置槽位提示文字（与菜单项一一对应，可以比菜单项少）
func (m *SpinMenuModule) SetHintTexts(texts []string) {
	m.hintTexts = append([]string(nil), texts...)
	m.updateHintLabels()
}

// SetHintTextSize 设置提示文字大小，槽位高度随之变化
func (m *SpinMenuModule) SetHintTextSize(size float64) error {
	if size <= 0 {
		return fmt.Errorf("invalid hint text size: %v", size)
	}
	m.hintTextSize = size
	m.updateHintLabels()
	m.refreshGeometry()
	return nil
}

// SetHintTextColor 设置提示文字颜色
func (m *SpinMenuModule) SetHintTextColor(c color.Color) {
	if c == nil {
		return
	}
	m.hintTextColor = c
	m.updateHintLabels()
}

// SetEnableGesture 开启/关闭下滑展开手势
func (m *SpinMenuModule) SetEnableGesture(enable bool) {
	m.enableGesture = enable
}

// SetScaleRatio 设置展开状态下页面的缩放比例
// 只能在 Collapsed 状态下修改
func (m *SpinMenuModule) SetScaleRatio(ratio float64) error {
	if ratio <= 0 || ratio >= 1 {
		return fmt.Errorf("invalid scale ratio: %v (must be in (0, 1))", ratio)
	}
	if state := m.MenuState(); state != systems.MenuCollapsed {
		return fmt.Errorf("%w: %v", ErrMenuBusy, state)
	}
	m.scaleRatio = ratio
	m.refreshGeometry()
	return nil
}

// OpenMenu 展开菜单，返回是否开始了过渡
func (m *SpinMenuModule) OpenMenu() bool {
	if m.stateMachine == nil {
		return false
	}
	return m.stateMachine.Open()
}

// CloseMenu 收起菜单到当前选中的槽位，返回是否开始了过渡
func (m *SpinMenuModule) CloseMenu() bool {
	if m.stateMachine == nil {
		return false
	}
	return m.stateMachine.Close(m.SelectedIndex())
}

// SelectSlot 旋转到指定槽位（键盘等非指针输入）
// 过渡期间或索引无效时返回 false
func (m *SpinMenuModule) SelectSlot(index int) bool {
	if m.rotation == nil || !m.rotation.Enabled() {
		return false
	}
	return m.rotation.ScrollToSlot(index)
}

// StepSelection 选中相邻槽位，step 为 +1/-1
// 循环环在首尾回绕，非循环环在边界处不动
func (m *SpinMenuModule) StepSelection(step int) bool {
	if m.rotation == nil {
		return false
	}
	n := m.ring.SlotCount
	target := m.SelectedIndex() + step
	if m.ring.Cyclic {
		target = ((target % n) + n) % n
	}
	if target < 0 || target >= n {
		return false
	}
	return m.SelectSlot(target)
}

// SlotScreenCenter 槽位当前在屏幕上的中心坐标（含横向偏移）
func (m *SpinMenuModule) SlotScreenCenter(index int) (x, y float64, ok bool) {
	slot := transitionHost{m: m}.Slot(index)
	if slot == nil || m.rotation == nil {
		return 0, 0, false
	}
	x, y, _ = m.layoutSystem.Geometry().SlotCenter(index, m.rotation.State().CurrentAngle)
	return x + slot.TranslationX, y, true
}

// SlotCount 当前槽位数
func (m *SpinMenuModule) SlotCount() int {
	return m.ring.SlotCount
}

// MenuState 当前展示状态
func (m *SpinMenuModule) MenuState() systems.MenuState {
	if m.stateMachine == nil {
		return systems.MenuCollapsed
	}
	return m.stateMachine.State()
}

// SelectedIndex 当前选中的槽位（滚动中以动画终点为准），未配置时为 -1
func (m *SpinMenuModule) SelectedIndex() int {
	if m.rotation == nil {
		return -1
	}
	return m.rotation.SelectedIndex()
}

// RingState 返回环状态快照
func (m *SpinMenuModule) RingState() systems.RingState {
	if m.rotation == nil {
		return systems.RingState{}
	}
	return m.rotation.State()
}

// OnPointerDown 指针按下，返回 false 表示事件被丢弃
func (m *SpinMenuModule) OnPointerDown(x, y float64) bool {
	if m.rotation == nil {
		return false
	}
	if !m.rotation.OnPointerDown(x, y) {
		log.Printf("[SpinMenuModule] Pointer down dropped in state %v", m.MenuState())
		return false
	}
	m.gestureTracking = m.enableGesture && m.MenuState() == systems.MenuCollapsed
	m.gestureDownX, m.gestureDownY = x, y
	return true
}

// OnPointerMove 指针移动
func (m *SpinMenuModule) OnPointerMove(x, y float64) {
	if m.rotation == nil {
		return
	}
	if m.gestureTracking && m.detectOpenSwipe(x, y) {
		return
	}
	m.rotation.OnPointerMove(x, y)
}

// detectOpenSwipe 收起状态下的纵向下滑触发展开
// 横向位移先超过阈值时视为旋转，本次手势不再检测
func (m *SpinMenuModule) detectOpenSwipe(x, y float64) bool {
	dx := math.Abs(x - m.gestureDownX)
	dy := y - m.gestureDownY

	if dx >= config.GestureTouchSlop {
		m.gestureTracking = false
		return false
	}
	if dy <= openSwipeDistance {
		return false
	}

	m.gestureTracking = false
	log.Printf("[SpinMenuModule] Open swipe detected (dy=%.1f)", dy)
	return m.OpenMenu()
}

// OnPointerUp 指针抬起
func (m *SpinMenuModule) OnPointerUp(x, y float64) {
	m.gestureTracking = false
	if m.rotation == nil {
		return
	}
	m.rotation.OnPointerUp(x, y)
	log.Printf("[SpinMenuModule] Pointer up, gesture swept %.1f°", m.rotation.AccumulatedAngle())
}

// GestureAngle 当前（或上一次）手势累计旋转的角度，未配置时为 0
func (m *SpinMenuModule) GestureAngle() float64 {
	if m.rotation == nil {
		return 0
	}
	return m.rotation.AccumulatedAngle()
}

// Update 更新输入、旋转动画与过渡动画
func (m *SpinMenuModule) Update(deltaTime float64) {
	if m.inputSystem != nil {
		m.inputSystem.Update(deltaTime)
	}
	if m.rotation == nil {
		return
	}
	m.rotation.Update(deltaTime)
	m.stateMachine.Update(deltaTime)
}

// Draw 渲染环形菜单
func (m *SpinMenuModule) Draw(screen *ebiten.Image) {
	m.renderSystem.Draw(screen)
}

// Cleanup 销毁所有实体并停用当前内容
func (m *SpinMenuModule) Cleanup() {
	if m.stateMachine != nil {
		m.stateMachine.Reset()
	}
	if m.activeContent >= 0 {
		m.deactivateContent(m.activeContent)
	}
	m.destroySlots()
}

func (m *SpinMenuModule) detailView() *components.DetailViewComponent {
	detail, _ := ecs.GetComponent[*components.DetailViewComponent](m.entityManager, m.detailEntity)
	return detail
}

func (m *SpinMenuModule) hitTest(x, y float64) (int, bool) {
	return m.layoutSystem.HitTest(x, y, m.rotation.State().CurrentAngle)
}

func (m *SpinMenuModule) activateContent(index int) {
	if m.provider == nil || index == m.activeContent {
		return
	}
	if m.activeContent >= 0 {
		m.provider.Deactivate(m.activeContent)
	}
	m.provider.Activate(index)
	m.activeContent = index
}

func (m *SpinMenuModule) deactivateContent(index int) {
	if m.provider == nil || index != m.activeContent {
		return
	}
	m.provider.Deactivate(index)
	m.activeContent = -1
}

func (m *SpinMenuModule) onAngleChanged(angle float64) {
	m.layoutSystem.Layout(angle)
}

// onSpinSelected 收起状态下详情视图切换到新选中的槽位
func (m *SpinMenuModule) onSpinSelected(index int) {
	if m.MenuState() == systems.MenuCollapsed {
		if detail := m.detailView(); detail != nil && detail.SlotIndex != index {
			m.activateContent(index)
			detail.SlotIndex = index
		}
		m.stateMachine.ApplyNeighborSkew(index)
	}

	if m.callbacks.OnSpinSelected != nil {
		m.callbacks.OnSpinSelected(index)
	}
}

func (m *SpinMenuModule) onSelectedSlotTap(index int) {
	switch m.MenuState() {
	case systems.MenuCollapsed:
		m.OpenMenu()
	case systems.MenuExpanded:
		m.stateMachine.Close(index)
	}
}

func (m *SpinMenuModule) onMenuOpened() {
	if m.callbacks.OnMenuOpened != nil {
		m.callbacks.OnMenuOpened()
	}
}

func (m *SpinMenuModule) onMenuClosed() {
	if m.callbacks.OnMenuClosed != nil {
		m.callbacks.OnMenuClosed()
	}
}

func (m *SpinMenuModule) onStateChanged(from, to systems.MenuState) {
	if m.callbacks.OnStateChanged != nil {
		m.callbacks.OnStateChanged(from, to)
	}
}
