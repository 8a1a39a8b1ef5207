package animation

import "github.com/decker502/spinmenu/pkg/utils"

// Group 一组同步执行的属性动画
//
// 每条轨道是一个 Tween，所有轨道共享时长与缓动曲线，每帧通过各自的
// apply 回调写回属性；全部完成后只触发一次 onEnd。
type Group struct {
	duration float64
	easing   utils.EasingFunc
	tracks   []track
	onEnd    func()

	running bool
}

type track struct {
	tween *Tween
	apply func(v float64)
}

// NewGroup 创建动画组
func NewGroup(duration float64, easing utils.EasingFunc) *Group {
	if easing == nil {
		easing = utils.EaseLinear
	}
	return &Group{
		duration: duration,
		easing:   easing,
	}
}

// Add 添加一条属性轨道
func (g *Group) Add(from, to float64, apply func(v float64)) *Group {
	g.tracks = append(g.tracks, track{
		tween: NewTween(from, to, g.duration, g.easing),
		apply: apply,
	})
	return g
}

// OnEnd 设置完成回调
func (g *Group) OnEnd(fn func()) *Group {
	g.onEnd = fn
	return g
}

// Start 开始播放，立即把所有轨道设置为起始值
func (g *Group) Start() {
	g.running = true
	for i, tr := range g.tracks {
		g.tracks[i].tween = NewTween(tr.tween.From, tr.tween.To, g.duration, g.easing)
		tr.apply(g.tracks[i].tween.Value())
	}
}

// Update 推进动画
// 到达时长后所有轨道精确写入终值，随后触发 onEnd
func (g *Group) Update(dt float64) {
	if !g.running {
		return
	}

	finished := true
	for _, tr := range g.tracks {
		tr.apply(tr.tween.Update(dt))
		if !tr.tween.Finished() {
			finished = false
		}
	}
	if !finished {
		return
	}

	g.running = false
	if g.onEnd != nil {
		g.onEnd()
	}
}

// Cancel 停止播放，属性保持当前值，不触发 onEnd
func (g *Group) Cancel() {
	g.running = false
}
