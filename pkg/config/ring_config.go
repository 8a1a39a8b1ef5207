package config

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrTooManyItems 菜单项数量超过环的容量
	ErrTooManyItems = errors.New("too many menu items")

	// ErrNoItems 菜单项为空
	ErrNoItems = errors.New("menu requires at least one item")
)

// RingConfig 环形拓扑配置
//
// 每次重新配置菜单项时创建，创建后不可修改。
// 当槽位数恰好铺满一圈（SlotCount == MaxMenuItemCount）时，环是循环的：
// 最后一个槽位与第一个槽位相邻，旋转角度没有上下限。
type RingConfig struct {
	SlotCount    int
	AngleSpacing float64
	Cyclic       bool
}

// NewRingConfig 根据槽位数创建环形配置
//
// 返回:
//   - ErrNoItems: slotCount <= 0
//   - ErrTooManyItems: slotCount > MaxMenuItemCount
func NewRingConfig(slotCount int) (RingConfig, error) {
	if slotCount <= 0 {
		return RingConfig{}, ErrNoItems
	}
	if slotCount > MaxMenuItemCount {
		return RingConfig{}, fmt.Errorf("%w: %d (max %d)", ErrTooManyItems, slotCount, MaxMenuItemCount)
	}
	return RingConfig{
		SlotCount:    slotCount,
		AngleSpacing: AngleSpace,
		Cyclic:       slotCount == MaxMenuItemCount,
	}, nil
}

// MaxSlots 返回环的容量
func (c RingConfig) MaxSlots() int {
	return int(360 / c.AngleSpacing)
}

// AngleBounds 返回可旋转的角度范围
//
// 圆心位于底边中点，坐标系与直觉相反：向右旋转角度减小。
// 非循环环的范围为 [-(SlotCount-1)*AngleSpacing, 0]，循环环无界。
func (c RingConfig) AngleBounds() (minAngle, maxAngle float64) {
	if c.Cyclic {
		return math.Inf(-1), math.Inf(1)
	}
	return -float64(c.SlotCount-1) * c.AngleSpacing, 0
}
