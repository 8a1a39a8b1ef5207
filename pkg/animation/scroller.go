package animation

import (
	"math"

	"github.com/decker502/spinmenu/pkg/config"
	"github.com/decker502/spinmenu/pkg/utils"
)

type scrollMode int

const (
	scrollModeScroll scrollMode = iota
	scrollModeFling
)

// Scroller 一维滚动动画
//
// 两种模式：
//   - StartScroll: 固定时长从起点滚动到终点
//   - Fling: 以初速度匀减速滑行，终点由速度推算
//
// 中断（AbortAnimation）后当前值保持在最后一次计算的位置。
type Scroller struct {
	mode     scrollMode
	startX   float64
	finalX   float64
	currX    float64
	velocity float64

	duration float64
	elapsed  float64
	easing   utils.EasingFunc
	finished bool
}

// NewScroller 创建一个空闲的 Scroller
func NewScroller() *Scroller {
	return &Scroller{
		easing:   utils.EaseViscousFluid,
		finished: true,
	}
}

// StartScroll 从 start 滚动 delta，耗时 duration 秒
func (s *Scroller) StartScroll(start, delta, duration float64, easing utils.EasingFunc) {
	if easing == nil {
		easing = utils.EaseViscousFluid
	}
	s.mode = scrollModeScroll
	s.startX = start
	s.currX = start
	s.finalX = start + delta
	s.velocity = 0
	s.duration = duration
	s.elapsed = 0
	s.easing = easing
	s.finished = false
}

// Fling 以初速度 velocity（单位/秒）从 start 开始匀减速滑行
//
// 滑行距离 = v|v| / (2 * deceleration)，时长 = |v| / deceleration，
// 时长被限制在 [MinFlingDuration, MaxFlingDuration]。
func (s *Scroller) Fling(start, velocity, deceleration float64) {
	s.mode = scrollModeFling
	s.startX = start
	s.currX = start
	s.velocity = velocity
	s.elapsed = 0
	s.easing = utils.EaseOutQuad
	s.finished = false

	if velocity == 0 || deceleration <= 0 {
		s.finalX = start
		s.duration = config.MinFlingDuration
		return
	}

	s.finalX = start + velocity*math.Abs(velocity)/(2*deceleration)
	s.duration = clampDuration(math.Abs(velocity) / deceleration)
}

// SetFinalX 修改终点
//
// 惯性滑行模式下会从当前位置重新计时：保持初速度不变，
// 按新距离计算匀减速时长，使动画平滑减速到新终点而不是在边界处跳变。
func (s *Scroller) SetFinalX(finalX float64) {
	s.finalX = finalX
	if s.mode != scrollModeFling || s.finished {
		return
	}

	s.startX = s.currX
	s.elapsed = 0
	if s.velocity == 0 {
		s.duration = config.MinFlingDuration
		return
	}
	s.duration = clampDuration(2 * math.Abs(finalX-s.startX) / math.Abs(s.velocity))
}

func clampDuration(d float64) float64 {
	return math.Max(config.MinFlingDuration, math.Min(config.MaxFlingDuration, d))
}

// Update 推进动画
// 返回本次调用是否更新了 CurrX（动画已结束时返回 false）
func (s *Scroller) Update(dt float64) bool {
	if s.finished {
		return false
	}

	s.elapsed += dt
	if s.duration <= 0 || s.elapsed >= s.duration {
		s.currX = s.finalX
		s.finished = true
		return true
	}

	s.currX = utils.Lerp(s.startX, s.finalX, s.easing(s.elapsed/s.duration))
	return true
}

// AbortAnimation 立即停止，CurrX 保持在最后一次计算的值
func (s *Scroller) AbortAnimation() {
	s.finished = true
}

// CurrX 当前值
func (s *Scroller) CurrX() float64 {
	return s.currX
}

// FinalX 终点
func (s *Scroller) FinalX() float64 {
	return s.finalX
}

// Duration 当前动画时长（秒）
func (s *Scroller) Duration() float64 {
	return s.duration
}

// IsFinished 动画是否已结束
func (s *Scroller) IsFinished() bool {
	return s.finished
}
