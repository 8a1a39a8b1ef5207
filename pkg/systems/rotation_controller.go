package systems

import (
	"log"
	"math"

	"github.com/decker502/spinmenu/pkg/animation"
	"github.com/decker502/spinmenu/pkg/config"
	"github.com/decker502/spinmenu/pkg/utils"
)

// RingState 环的可变状态，由 RotationController 独占
type RingState struct {
	// CurrentAngle 当前环角度（度）
	// 拖动过程中不做归一化，循环环在动画结束时归一化到 (-360, 360)
	CurrentAngle float64

	// AngularVelocity 抬起时的角速度（度/秒），仅在抬起后立即有效
	AngularVelocity float64

	// MinAngle / MaxAngle 可旋转范围，循环环为 [-Inf, +Inf]
	MinAngle float64
	MaxAngle float64

	// IsAnimating 是否正在惯性滚动或吸附
	IsAnimating bool
}

// GesturePhase 手势阶段
type GesturePhase int

const (
	GestureIdle GesturePhase = iota
	GestureDragging
	GestureFlinging
	GestureSnapping
)

func (p GesturePhase) String() string {
	switch p {
	case GestureIdle:
		return "Idle"
	case GestureDragging:
		return "Dragging"
	case GestureFlinging:
		return "Flinging"
	case GestureSnapping:
		return "Snapping"
	default:
		return "Unknown"
	}
}

// SlotHitTester 返回坐标处的槽位索引
type SlotHitTester func(x, y float64) (index int, ok bool)

// RotationListener 旋转控制器的回调集合，均可为 nil
type RotationListener struct {
	// OnAngleChanged 环角度变化（需要重新布局/重绘）
	OnAngleChanged func(angle float64)

	// OnSpinSelected 滚动动画停稳后的选中槽位
	OnSpinSelected func(index int)

	// OnSelectedSlotTap 点击了当前选中的槽位
	OnSelectedSlotTap func(index int)
}

// RotationController 环形菜单旋转控制器
//
// 职责：
//   - 将指针移动转换为环角度增量（越界时带橡皮筋阻尼）
//   - 抬起时根据角速度选择惯性滚动或吸附到最近槽位
//   - 区分点击与拖动，点击侧边槽位时旋转到该槽位
//   - 每帧推进滚动动画，停稳后通知选中结果
//
// 手势阶段：Idle → Dragging → (Flinging | Snapping) → Idle
//
// 输入开关（SetEnabled）用于菜单开关动画期间屏蔽输入；
// 屏蔽期间收到的按下事件被整体丢弃。
type RotationController struct {
	ring     config.RingConfig
	geometry utils.RingGeometry
	state    RingState
	phase    GesturePhase
	scroller *animation.Scroller

	enabled  bool
	tracking bool

	preX, preY       float64
	accumulatedAngle float64

	// 内部时钟（秒），由 Update 推进，用于计算抬起时的角速度
	clock     float64
	downClock float64

	hitTest  SlotHitTester
	listener RotationListener
}

// NewRotationController 创建旋转控制器
func NewRotationController(ring config.RingConfig, geometry utils.RingGeometry) *RotationController {
	c := &RotationController{
		geometry: geometry,
		scroller: animation.NewScroller(),
		enabled:  true,
	}
	c.Configure(ring)
	return c
}

// Configure 应用新的环形拓扑
// 重新计算角度边界，中断进行中的手势与动画，角度回到 0（第一个槽位选中）
func (c *RotationController) Configure(ring config.RingConfig) {
	c.ring = ring
	c.scroller.AbortAnimation()
	c.tracking = false
	c.phase = GestureIdle

	minAngle, maxAngle := ring.AngleBounds()
	c.state = RingState{
		MinAngle: minAngle,
		MaxAngle: maxAngle,
	}
	c.notifyAngleChanged()
}

// SetGeometry 更新几何参数（窗口尺寸或槽位尺寸变化时）
func (c *RotationController) SetGeometry(geometry utils.RingGeometry) {
	c.geometry = geometry
}

// SetListener 设置回调
func (c *RotationController) SetListener(listener RotationListener) {
	c.listener = listener
}

// SetHitTester 设置点击命中测试
func (c *RotationController) SetHitTester(hitTest SlotHitTester) {
	c.hitTest = hitTest
}

// SetEnabled 开启/屏蔽指针输入
//
// 在拖动过程中被屏蔽时，当前手势立即结束并吸附到最近槽位。
func (c *RotationController) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled && c.tracking {
		c.tracking = false
		c.startSnap()
	}
}

// Enabled 输入是否开启
func (c *RotationController) Enabled() bool {
	return c.enabled
}

// State 返回环状态快照
func (c *RotationController) State() RingState {
	return c.state
}

// Ring 返回环形拓扑
func (c *RotationController) Ring() config.RingConfig {
	return c.ring
}

// Phase 返回当前手势阶段
func (c *RotationController) Phase() GesturePhase {
	return c.phase
}

// SelectedIndex 返回选中槽位
// 动画进行中以动画终点为准
func (c *RotationController) SelectedIndex() int {
	return SelectedIndex(c.selectionAngle(), c.ring)
}

func (c *RotationController) selectionAngle() float64 {
	if c.state.IsAnimating {
		return c.scroller.FinalX()
	}
	return c.state.CurrentAngle
}

// OnPointerDown 处理按下
// 返回 false 表示输入被屏蔽、事件被丢弃
func (c *RotationController) OnPointerDown(x, y float64) bool {
	if !c.enabled {
		return false
	}

	// 中断进行中的动画，角度停在最后一次计算的位置
	if !c.scroller.IsFinished() {
		c.scroller.AbortAnimation()
		c.state.IsAnimating = false
	}

	c.tracking = true
	c.phase = GestureDragging
	c.preX, c.preY = x, y
	c.downClock = c.clock
	c.accumulatedAngle = 0
	return true
}

// OnPointerMove 处理移动
func (c *RotationController) OnPointerMove(x, y float64) {
	if !c.tracking {
		return
	}

	diffX := x - c.preX
	start := c.geometry.TouchAngle(c.preX, c.preY)
	end := c.geometry.TouchAngle(x, y)

	var delta float64
	if diffX > 0 {
		delta = math.Abs(start - end)
	} else {
		delta = -math.Abs(end - start)
	}

	if !c.ring.Cyclic && c.outOfBounds(c.state.CurrentAngle) {
		delta /= config.OverscrollDamping
	}

	c.state.CurrentAngle += delta
	c.accumulatedAngle += delta
	c.preX, c.preY = x, y

	c.notifyAngleChanged()
}

// OnPointerUp 处理抬起
//
// 累计角度不超过 TouchSlopAngle 时视为点击：
//   - 点中侧边槽位：旋转到该槽位
//   - 点中选中槽位：吸附后通知 OnSelectedSlotTap
//
// 否则根据角速度惯性滚动或吸附。
func (c *RotationController) OnPointerUp(x, y float64) {
	if !c.tracking {
		return
	}
	c.tracking = false

	elapsedMillis := math.Max((c.clock-c.downClock)*1000, 1)
	c.state.AngularVelocity = c.accumulatedAngle * 1000 / elapsedMillis

	if math.Abs(c.accumulatedAngle) <= config.TouchSlopAngle && c.handleTap(x, y) {
		return
	}

	c.release(c.state.AngularVelocity)
}

// AccumulatedAngle 返回当前（或上一次）手势的累计角度
func (c *RotationController) AccumulatedAngle() float64 {
	return c.accumulatedAngle
}

func (c *RotationController) handleTap(x, y float64) bool {
	if c.hitTest == nil {
		return false
	}

	index, ok := c.hitTest(x, y)
	if !ok {
		return false
	}

	if index != c.SelectedIndex() {
		return c.ScrollToSlot(index)
	}

	// 已对齐时不产生动画，也不重复通知选中
	if c.clamp(SnapToNearestSlot(c.state.CurrentAngle, c.ring.AngleSpacing)) == c.state.CurrentAngle {
		c.phase = GestureIdle
	} else {
		c.startSnap()
	}
	if c.listener.OnSelectedSlotTap != nil {
		c.listener.OnSelectedSlotTap(index)
	}
	return true
}

// release 抬起后决定惯性滚动或吸附
func (c *RotationController) release(velocity float64) {
	startAngle := math.Round(c.state.CurrentAngle)
	if math.Abs(velocity) > config.MinFlingAngularVelocity &&
		startAngle >= c.state.MinAngle && startAngle <= c.state.MaxAngle {
		c.startFling(velocity)
		return
	}
	c.startSnap()
}

func (c *RotationController) startFling(velocity float64) {
	flingVelocity := velocity * config.FlingAccelerationRatio
	current := c.state.CurrentAngle

	c.scroller.Fling(current, flingVelocity, config.FlingDeceleration)
	target := c.clamp(SnapBeyond(c.scroller.FinalX(), c.ring.AngleSpacing, flingVelocity))

	if target == current {
		c.scroller.AbortAnimation()
		c.settle()
		return
	}

	c.scroller.SetFinalX(target)
	c.phase = GestureFlinging
	c.state.IsAnimating = true
	log.Printf("[RotationController] Fling: v=%.1f°/s %.1f° -> %.1f°", flingVelocity, current, target)
}

func (c *RotationController) startSnap() {
	current := c.state.CurrentAngle
	target := c.clamp(SnapToNearestSlot(current, c.ring.AngleSpacing))

	if target == current {
		// 没有转动过的手势静默结束，不重复通知选中
		if c.accumulatedAngle == 0 {
			c.phase = GestureIdle
			return
		}
		c.settle()
		return
	}

	c.scroller.StartScroll(current, target-current, config.SnapDuration, utils.EaseViscousFluid)
	c.phase = GestureSnapping
	c.state.IsAnimating = true
}

// ScrollToSlot 旋转到指定槽位（点击侧边槽位或外部选择）
// 返回 false 表示索引无效
func (c *RotationController) ScrollToSlot(index int) bool {
	if index < 0 || index >= c.ring.SlotCount {
		return false
	}
	if c.tracking {
		log.Printf("[RotationController] Scroll to slot %d ignored while dragging", index)
		return false
	}

	selected := c.SelectedIndex()
	var base float64
	if c.ring.Cyclic {
		base = SnapToNearestSlot(c.selectionAngle(), c.ring.AngleSpacing)
	} else {
		base = AngleForIndex(selected, c.ring)
	}
	target := c.clamp(base - RotationToSelect(index, selected, c.ring))

	current := c.state.CurrentAngle
	c.scroller.StartScroll(current, target-current, config.ClickScrollDuration, utils.EaseViscousFluid)
	c.phase = GestureSnapping
	c.state.IsAnimating = true
	log.Printf("[RotationController] Scroll to slot %d (from %d): %.1f° -> %.1f°", index, selected, current, target)
	return true
}

// Update 每帧推进滚动动画
func (c *RotationController) Update(deltaTime float64) {
	c.clock += deltaTime

	if !c.scroller.Update(deltaTime) {
		return
	}

	c.state.CurrentAngle = c.scroller.CurrX()
	c.notifyAngleChanged()

	if c.scroller.IsFinished() {
		c.settle()
	}
}

// settle 动画停稳：归一化角度并通知选中结果
func (c *RotationController) settle() {
	c.state.IsAnimating = false
	c.phase = GestureIdle

	// 所有动画终点都在槽位边界上，这里消除浮点累积误差
	c.state.CurrentAngle = c.clamp(SnapToNearestSlot(c.state.CurrentAngle, c.ring.AngleSpacing))
	if c.ring.Cyclic {
		c.state.CurrentAngle = math.Mod(c.state.CurrentAngle, 360)
	}
	c.notifyAngleChanged()

	index := c.SelectedIndex()
	log.Printf("[RotationController] Settled at %.1f°, selected slot %d", c.state.CurrentAngle, index)
	if c.listener.OnSpinSelected != nil {
		c.listener.OnSpinSelected(index)
	}
}

func (c *RotationController) outOfBounds(angle float64) bool {
	return angle < c.state.MinAngle || angle > c.state.MaxAngle
}

func (c *RotationController) clamp(angle float64) float64 {
	if c.ring.Cyclic {
		return angle
	}
	return math.Max(c.state.MinAngle, math.Min(c.state.MaxAngle, angle))
}

func (c *RotationController) notifyAngleChanged() {
	if c.listener.OnAngleChanged != nil {
		c.listener.OnAngleChanged(c.state.CurrentAngle)
	}
}
