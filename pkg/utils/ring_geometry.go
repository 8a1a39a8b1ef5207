package utils

import (
	"math"

	"github.com/decker502/spinmenu/pkg/config"
)

// RingGeometry 环形菜单的几何计算
//
// 圆心位于包围盒底边中点，槽位沿圆周排布：
// 绝对角度 0° 位于圆心正上方（锚点，即"当前选中"的位置），角度增大时顺时针移动。
//
// 所有方法都是纯函数，渲染和旋转控制器共用同一份计算。
type RingGeometry struct {
	CenterX, CenterY float64
	Radius           float64

	// SlotWidth / SlotHeight 单个槽位（页面容器 + 提示文字）的尺寸
	SlotWidth, SlotHeight float64
}

// NewRingGeometry 根据包围盒和槽位尺寸创建环形几何
//
// 半径 = 宽度/2 * RadiusHalfWidthRatio + 槽位高度/2
func NewRingGeometry(boundsWidth, boundsHeight, slotWidth, slotHeight float64) RingGeometry {
	return RingGeometry{
		CenterX:    boundsWidth / 2,
		CenterY:    boundsHeight,
		Radius:     boundsWidth/2*config.RadiusHalfWidthRatio + slotHeight/2,
		SlotWidth:  slotWidth,
		SlotHeight: slotHeight,
	}
}

// SlotAngle 返回槽位的放置角度 index * AngleSpace
func SlotAngle(index int) float64 {
	return float64(index) * config.AngleSpace
}

// SlotPosition 返回绝对角度处的槽位中心坐标
//
//	x = centerX + sin(rad) * radius
//	y = centerY - cos(rad) * radius
func SlotPosition(centerX, centerY, radius, absoluteAngle float64) (x, y float64) {
	rad := absoluteAngle * math.Pi / 180
	return centerX + math.Sin(rad)*radius, centerY - math.Cos(rad)*radius
}

// TouchAngle 返回触点相对圆心的角度大小（度，非负）
//
// 使用 asin(|Δy| / hypot(|Δx|, |Δy|))，调用方结合水平拖动方向得到有符号增量。
// 触点与圆心重合时返回 0。
func TouchAngle(px, py, centerX, centerY float64) float64 {
	dx := math.Abs(px - centerX)
	dy := math.Abs(centerY - py)
	h := math.Hypot(dx, dy)
	if h == 0 {
		return 0
	}
	return math.Asin(dy/h) * 180 / math.Pi
}

// TouchAngle 使用本几何的圆心计算触点角度
func (g RingGeometry) TouchAngle(px, py float64) float64 {
	return TouchAngle(px, py, g.CenterX, g.CenterY)
}

// SlotCenter 返回槽位在给定环角度下的中心坐标与旋转角（度）
func (g RingGeometry) SlotCenter(index int, ringAngle float64) (x, y, rotation float64) {
	rotation = ringAngle + SlotAngle(index)
	x, y = SlotPosition(g.CenterX, g.CenterY, g.Radius, rotation)
	return x, y, rotation
}

// AnchorSlotTop 返回锚点处（绝对角度 0）槽位的上边缘 Y 坐标
func (g RingGeometry) AnchorSlotTop() float64 {
	return g.CenterY - g.Radius - g.SlotHeight/2
}

// SlotContains 判断点是否落在旋转后的槽位矩形内
//
// 将点变换到槽位局部坐标系（绕槽位中心反向旋转）后做轴对齐判断。
// offsetX 是槽位的横向偏移（不随旋转）。
func (g RingGeometry) SlotContains(index int, ringAngle, offsetX, px, py float64) bool {
	cx, cy, rotation := g.SlotCenter(index, ringAngle)
	cx += offsetX

	rad := -rotation * math.Pi / 180
	dx, dy := px-cx, py-cy
	lx := dx*math.Cos(rad) - dy*math.Sin(rad)
	ly := dx*math.Sin(rad) + dy*math.Cos(rad)

	return math.Abs(lx) <= g.SlotWidth/2 && math.Abs(ly) <= g.SlotHeight/2
}
