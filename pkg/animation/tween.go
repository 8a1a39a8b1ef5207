// Package animation 提供按时间推进的数值动画原语
//
// 所有动画都由调用方每帧调用 Update(deltaTime) 推进（单位：秒），
// 不依赖系统时钟，因此在测试中可以精确复现。
package animation

import "github.com/decker502/spinmenu/pkg/utils"

// Tween 单个数值从 From 到 To 的补间动画
type Tween struct {
	From     float64
	To       float64
	Duration float64 // 秒
	Easing   utils.EasingFunc

	elapsed  float64
	value    float64
	finished bool
}

// NewTween 创建补间动画，easing 为 nil 时使用线性曲线
func NewTween(from, to, duration float64, easing utils.EasingFunc) *Tween {
	if easing == nil {
		easing = utils.EaseLinear
	}
	return &Tween{
		From:     from,
		To:       to,
		Duration: duration,
		Easing:   easing,
		value:    from,
	}
}

// Update 推进动画并返回当前值
// 完成后值精确等于 To，后续调用不再变化
func (t *Tween) Update(dt float64) float64 {
	if t.finished {
		return t.value
	}

	t.elapsed += dt
	if t.Duration <= 0 || t.elapsed >= t.Duration {
		t.value = t.To
		t.finished = true
		return t.value
	}

	t.value = utils.Lerp(t.From, t.To, t.Easing(t.elapsed/t.Duration))
	return t.value
}

// Value 返回当前值
func (t *Tween) Value() float64 {
	return t.value
}

// Finished 动画是否已完成
func (t *Tween) Finished() bool {
	return t.finished
}
