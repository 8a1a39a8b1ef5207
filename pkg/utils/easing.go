package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值（f(0)=0, f(1)=1）。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数类型
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出
// 特点：匀减速运动，初速度为 2（以 距离/时长 为单位），结束时速度为 0
// 公式：f(t) = 1 - (1-t)²
//
// 惯性滚动使用该曲线：在时长 T 内匀减速走完距离 D 时初速度恰为 2D/T。
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// 粘滞流体曲线参数
const viscousFluidScale = 8.0

var (
	viscousFluidNormalize = 1.0 / viscousFluid(1.0)
	viscousFluidOffset    = 1.0 - viscousFluidNormalize*viscousFluid(1.0)
)

func viscousFluid(x float64) float64 {
	x *= viscousFluidScale
	if x < 1.0 {
		x -= 1.0 - math.Exp(-x)
	} else {
		start := 0.36787944117 // 1/e == exp(-1)
		x = 1.0 - math.Exp(1.0-x)
		x = start + x*(1.0-start)
	}
	return x
}

// EaseViscousFluid 粘滞流体缓动
// 特点：先加速后长时间减速，吸附动画使用
func EaseViscousFluid(t float64) float64 {
	interpolated := viscousFluidNormalize * viscousFluid(t)
	if interpolated > 0 {
		return interpolated + viscousFluidOffset
	}
	return interpolated
}

// EaseOvershoot 返回带回弹的缓出曲线
// 特点：冲过终点后回落，tension 越大冲得越远
// 公式：f(t) = (t-1)² * ((tension+1)(t-1) + tension) + 1
func EaseOvershoot(tension float64) EasingFunc {
	return func(t float64) float64 {
		t -= 1.0
		return t*t*((tension+1)*t+tension) + 1.0
	}
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
