package systems

import (
	"log"

	"github.com/decker502/spinmenu/pkg/animation"
	"github.com/decker502/spinmenu/pkg/components"
	"github.com/decker502/spinmenu/pkg/config"
	"github.com/decker502/spinmenu/pkg/utils"
)

// MenuState 菜单展示状态
//
// 状态只能按 Collapsed → Opening → Expanded → Closing → Collapsed 顺序流转。
type MenuState int

const (
	// MenuCollapsed 初始状态：详情视图铺满表面
	MenuCollapsed MenuState = iota
	// MenuOpening 展开动画进行中
	MenuOpening
	// MenuExpanded 所有页面缩小排列在环上
	MenuExpanded
	// MenuClosing 收起动画进行中
	MenuClosing
)

func (s MenuState) String() string {
	switch s {
	case MenuCollapsed:
		return "Collapsed"
	case MenuOpening:
		return "Opening"
	case MenuExpanded:
		return "Expanded"
	case MenuClosing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// Transitioning 是否处于过渡动画中
func (s MenuState) Transitioning() bool {
	return s == MenuOpening || s == MenuClosing
}

// RotationGate 旋转输入开关（由 RotationController 实现）
type RotationGate interface {
	SetEnabled(enabled bool)
}

// TransitionHost 状态机操作的展示模型
// 状态机只在过渡期间持有这些引用，不拥有它们
type TransitionHost interface {
	SelectedIndex() int
	NeighborIndices(index int) (left, right int)
	SlotCount() int
	Slot(index int) *components.SlotComponent
	DetailView() *components.DetailViewComponent

	// AnchorSlotTop 锚点槽位上边缘的 Y 坐标
	AnchorSlotTop() float64
	SurfaceSize() (width, height float64)
	ScaleRatio() float64

	ActivateContent(index int)
	DeactivateContent(index int)
}

// MenuStateListener 状态机回调，均可为 nil
type MenuStateListener struct {
	OnMenuOpened   func()
	OnMenuClosed   func()
	OnStateChanged func(from, to MenuState)
}

// MenuStateMachine 菜单展开/收起状态机
//
// Open/Close 同步切换到过渡状态并屏蔽旋转输入，
// 动画组结束时提交到 Expanded/Collapsed 并恢复输入。
// 非法状态下的调用被静默忽略。
type MenuStateMachine struct {
	state    MenuState
	host     TransitionHost
	gate     RotationGate
	listener MenuStateListener

	group *animation.Group
}

// NewMenuStateMachine 创建状态机，初始状态为 Collapsed
func NewMenuStateMachine(host TransitionHost, gate RotationGate) *MenuStateMachine {
	return &MenuStateMachine{
		state: MenuCollapsed,
		host:  host,
		gate:  gate,
	}
}

// SetListener 设置回调
func (m *MenuStateMachine) SetListener(listener MenuStateListener) {
	m.listener = listener
}

// State 当前状态
func (m *MenuStateMachine) State() MenuState {
	return m.state
}

// Open 展开菜单：详情视图缩小到选中槽位中
// 仅在 Collapsed 状态下有效，返回是否开始了过渡
func (m *MenuStateMachine) Open() bool {
	if m.state != MenuCollapsed {
		log.Printf("[MenuStateMachine] Open ignored in state %v", m.state)
		return false
	}

	selected := m.host.SelectedIndex()
	m.setState(MenuOpening)
	m.gate.SetEnabled(false)

	width, height := m.host.SurfaceSize()
	scale := m.host.ScaleRatio()
	diffTranY := m.diffTranslationY()

	detail := m.host.DetailView()
	detail.SlotIndex = selected

	group := animation.NewGroup(config.MenuTransitionDuration, utils.EaseOvershoot(config.OvershootTension))
	group.Add(detail.ScaleX, scale, func(v float64) { detail.ScaleX = v }).
		Add(detail.ScaleY, scale, func(v float64) { detail.ScaleY = v }).
		Add(detail.TranslationY, -diffTranY, func(v float64) { detail.TranslationY = v })

	left, right := m.host.NeighborIndices(selected)
	for _, index := range []int{left, right} {
		if slot := m.slot(index); slot != nil {
			group.Add(slot.TranslationX, 0, func(v float64) { slot.TranslationX = v })
		}
	}

	group.OnEnd(func() {
		// 挂到槽位容器：相对容器左上角对齐
		detail.Attached = true
		detail.SlotIndex = selected
		detail.TranslationX = -width * (1 - scale) / 2
		detail.TranslationY = -height * (1 - scale) / 2
		m.host.DeactivateContent(selected)

		m.group = nil
		m.setState(MenuExpanded)
		m.gate.SetEnabled(true)
		if m.listener.OnMenuOpened != nil {
			m.listener.OnMenuOpened()
		}
	})

	m.group = group
	group.Start()
	log.Printf("[MenuStateMachine] Opening at slot %d (scale %.2f)", selected, scale)
	return true
}

// Close 收起菜单：target 槽位的页面放大回铺满表面
// 仅在 Expanded 状态下有效，返回是否开始了过渡
func (m *MenuStateMachine) Close(target int) bool {
	if m.state != MenuExpanded {
		log.Printf("[MenuStateMachine] Close ignored in state %v", m.state)
		return false
	}
	if target < 0 || target >= m.host.SlotCount() {
		log.Printf("[MenuStateMachine] Close ignored: invalid slot %d", target)
		return false
	}

	m.setState(MenuClosing)
	m.gate.SetEnabled(false)

	scale := m.host.ScaleRatio()
	diffTranY := m.diffTranslationY()

	// 从槽位容器移回顶层表面，保持当前展开时的外观
	detail := m.host.DetailView()
	detail.SlotIndex = target
	detail.Attached = false
	detail.ScaleX, detail.ScaleY = scale, scale
	detail.TranslationX = 0
	detail.TranslationY = -diffTranY
	m.host.ActivateContent(target)

	group := animation.NewGroup(config.MenuTransitionDuration, utils.EaseOvershoot(config.OvershootTension))
	group.Add(scale, 1, func(v float64) { detail.ScaleX = v }).
		Add(scale, 1, func(v float64) { detail.ScaleY = v }).
		Add(-diffTranY, 0, func(v float64) { detail.TranslationY = v })

	left, right := m.host.NeighborIndices(target)
	if slot := m.slot(left); slot != nil {
		group.Add(slot.TranslationX, -config.SkewDistance, func(v float64) { slot.TranslationX = v })
	}
	if slot := m.slot(right); slot != nil {
		group.Add(slot.TranslationX, config.SkewDistance, func(v float64) { slot.TranslationX = v })
	}

	group.OnEnd(func() {
		m.group = nil
		m.setState(MenuCollapsed)
		m.gate.SetEnabled(true)
		if m.listener.OnMenuClosed != nil {
			m.listener.OnMenuClosed()
		}
	})

	m.group = group
	group.Start()
	log.Printf("[MenuStateMachine] Closing to slot %d", target)
	return true
}

// Update 推进过渡动画
func (m *MenuStateMachine) Update(deltaTime float64) {
	if m.group != nil {
		m.group.Update(deltaTime)
	}
}

// ApplyNeighborSkew 按当前状态设置所有槽位的横向偏移
//
// Collapsed：selected 左右相邻的槽位分别偏移 ∓SkewDistance，其余为 0；
// 其他状态全部为 0。过渡动画进行中不做修改。
func (m *MenuStateMachine) ApplyNeighborSkew(selected int) {
	if m.state.Transitioning() {
		return
	}

	for i := 0; i < m.host.SlotCount(); i++ {
		if slot := m.host.Slot(i); slot != nil {
			slot.TranslationX = 0
		}
	}
	if m.state != MenuCollapsed {
		return
	}

	left, right := m.host.NeighborIndices(selected)
	if slot := m.slot(left); slot != nil {
		slot.TranslationX = -config.SkewDistance
	}
	if slot := m.slot(right); slot != nil {
		slot.TranslationX = config.SkewDistance
	}
}

// Reset 中断过渡并回到 Collapsed（重新配置菜单项时调用）
// 不触发 OnMenuOpened/OnMenuClosed
func (m *MenuStateMachine) Reset() {
	if m.group != nil {
		m.group.Cancel()
		m.group = nil
	}
	if m.state != MenuCollapsed {
		m.setState(MenuCollapsed)
	}
	m.gate.SetEnabled(true)
}

// diffTranslationY 详情视图缩小后上边缘与锚点槽位上边缘的差值
func (m *MenuStateMachine) diffTranslationY() float64 {
	_, height := m.host.SurfaceSize()
	scale := m.host.ScaleRatio()
	return height*(1-scale)*0.5 - m.host.AnchorSlotTop()
}

func (m *MenuStateMachine) slot(index int) *components.SlotComponent {
	if index < 0 {
		return nil
	}
	return m.host.Slot(index)
}

func (m *MenuStateMachine) setState(to MenuState) {
	from := m.state
	m.state = to
	log.Printf("[MenuStateMachine] %v -> %v", from, to)
	if m.listener.OnStateChanged != nil {
		m.listener.OnStateChanged(from, to)
	}
}
