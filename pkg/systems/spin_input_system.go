package systems

import (
	"github.com/decker502/spinmenu/pkg/utils"
)

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	PointerState() (pressed bool, x, y int)
}

// ebitenPointerInput Ebitengine 默认实现（鼠标左键或第一个触点）
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) PointerState() (bool, int, int) {
	return utils.GetPointerState()
}

// defaultPointerInput 默认指针输入实例
var defaultPointerInput PointerInput = &ebitenPointerInput{}

// PointerHandler 接收按下/移动/抬起事件
type PointerHandler interface {
	OnPointerDown(x, y float64) bool
	OnPointerMove(x, y float64)
	OnPointerUp(x, y float64)
}

// SpinInputSystem 指针输入系统
//
// 每帧轮询一次指针状态，转换为边沿事件：
//   - 未按下 → 按下：OnPointerDown
//   - 按下且位置变化：OnPointerMove
//   - 按下 → 未按下：OnPointerUp（使用最后一次位置）
//
// OnPointerDown 返回 false 时，本次按下到抬起之间的事件全部丢弃。
type SpinInputSystem struct {
	input   PointerInput
	handler PointerHandler

	pressed      bool
	tracking     bool
	lastX, lastY int
}

// NewSpinInputSystem 创建指针输入系统
func NewSpinInputSystem(handler PointerHandler) *SpinInputSystem {
	return NewSpinInputSystemWithInput(handler, defaultPointerInput)
}

// NewSpinInputSystemWithInput 创建带自定义输入的指针输入系统（用于测试）
func NewSpinInputSystemWithInput(handler PointerHandler, input PointerInput) *SpinInputSystem {
	return &SpinInputSystem{
		input:   input,
		handler: handler,
	}
}

// Update 轮询指针状态并分发事件
func (s *SpinInputSystem) Update(deltaTime float64) {
	pressed, x, y := s.input.PointerState()

	switch {
	case pressed && !s.pressed:
		s.tracking = s.handler.OnPointerDown(float64(x), float64(y))
	case pressed && s.pressed:
		if s.tracking && (x != s.lastX || y != s.lastY) {
			s.handler.OnPointerMove(float64(x), float64(y))
		}
	case !pressed && s.pressed:
		if s.tracking {
			s.handler.OnPointerUp(float64(x), float64(y))
		}
		s.tracking = false
	}

	s.pressed = pressed
	s.lastX, s.lastY = x, y
}
