package systems

import (
	"math"

	"github.com/decker502/spinmenu/pkg/config"
)

// 选中位置解析
//
// 纯函数：由环形拓扑（槽位数、是否循环）和环角度得到选中槽位，
// 以及把任意槽位转到锚点所需的最短旋转量。

// SelectedIndex 返回与锚点重合的槽位索引
//
//	angle > 0:  round((360 - angle mod 360) / spacing) mod n
//	angle <= 0: round(|angle| / spacing) mod n
func SelectedIndex(angle float64, ring config.RingConfig) int {
	if ring.SlotCount <= 0 || ring.AngleSpacing <= 0 {
		return 0
	}

	var steps float64
	if angle > 0 {
		steps = math.Round((360 - math.Mod(angle, 360)) / ring.AngleSpacing)
	} else {
		steps = math.Round(math.Abs(angle) / ring.AngleSpacing)
	}
	return int(steps) % ring.SlotCount
}

// RotationToSelect 返回把 target 转到锚点所需的有符号角度
//
// 正值表示选中位置向索引增大的方向移动（环角度相应减小）。
// 循环环在首尾交界处选择较短的方向，例如 8 槽位时从 7 到 0 返回 +45 而不是 -315。
func RotationToSelect(target, current int, ring config.RingConfig) float64 {
	d := target - current
	if ring.Cyclic && ring.SlotCount > 0 {
		n := ring.SlotCount
		d = ((d % n) + n) % n
		if d > n/2 {
			d -= n
		}
	}
	return float64(d) * ring.AngleSpacing
}

// AngleForIndex 返回使 index 位于锚点的规范环角度（非正）
func AngleForIndex(index int, ring config.RingConfig) float64 {
	return -float64(index) * ring.AngleSpacing
}

// NeighborIndices 返回选中槽位左右两侧的槽位索引，不存在时为 -1
//
// 左侧为 index-1，右侧为 index+1；循环环在首尾处回绕。
func NeighborIndices(index int, ring config.RingConfig) (left, right int) {
	left, right = -1, -1
	n := ring.SlotCount

	if index-1 >= 0 {
		left = index - 1
	} else if ring.Cyclic && index == 0 {
		left = n - 1
	}

	if index+1 < n {
		right = index + 1
	} else if ring.Cyclic && index+1 == n {
		right = 0
	}

	return left, right
}

// SnapToNearestSlot 返回距离 angle 最近的槽位边界角度
func SnapToNearestSlot(angle, spacing float64) float64 {
	return math.Round(angle/spacing) * spacing
}

// SnapBeyond 返回沿 direction 方向、位于 angle 处或更远处的槽位边界
// direction > 0 向上取整，否则向下取整
func SnapBeyond(angle, spacing, direction float64) float64 {
	if direction > 0 {
		return math.Ceil(angle/spacing) * spacing
	}
	return math.Floor(angle/spacing) * spacing
}
