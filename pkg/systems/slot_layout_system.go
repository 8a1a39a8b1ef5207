package systems

import (
	"github.com/decker502/spinmenu/pkg/components"
	"github.com/decker502/spinmenu/pkg/ecs"
	"github.com/decker502/spinmenu/pkg/utils"
)

// SlotLayoutSystem 槽位布局系统
// 环角度或几何参数变化时，把 RingGeometry 的结果写入每个槽位的 SlotTransformComponent
type SlotLayoutSystem struct {
	entityManager *ecs.EntityManager
	geometry      utils.RingGeometry
}

// NewSlotLayoutSystem 创建槽位布局系统
func NewSlotLayoutSystem(em *ecs.EntityManager, geometry utils.RingGeometry) *SlotLayoutSystem {
	return &SlotLayoutSystem{
		entityManager: em,
		geometry:      geometry,
	}
}

// SetGeometry 更新几何参数，下一次 Layout 生效
func (s *SlotLayoutSystem) SetGeometry(geometry utils.RingGeometry) {
	s.geometry = geometry
}

// Geometry 返回当前几何参数
func (s *SlotLayoutSystem) Geometry() utils.RingGeometry {
	return s.geometry
}

// Layout 按环角度重新计算所有槽位的位置与旋转
func (s *SlotLayoutSystem) Layout(ringAngle float64) {
	entities := ecs.GetEntitiesWith2[*components.SlotComponent, *components.SlotTransformComponent](s.entityManager)

	for _, entityID := range entities {
		slot, _ := ecs.GetComponent[*components.SlotComponent](s.entityManager, entityID)
		transform, _ := ecs.GetComponent[*components.SlotTransformComponent](s.entityManager, entityID)

		x, y, rotation := s.geometry.SlotCenter(slot.Index, ringAngle)
		transform.CenterX = x
		transform.CenterY = y
		transform.Rotation = rotation
		transform.Width = s.geometry.SlotWidth
		transform.Height = s.geometry.SlotHeight
	}
}

// HitTest 返回坐标处的槽位索引
// 多个槽位重叠时取索引最大的（最后绘制、位于最上层）
func (s *SlotLayoutSystem) HitTest(x, y, ringAngle float64) (int, bool) {
	entities := ecs.GetEntitiesWith1[*components.SlotComponent](s.entityManager)

	for i := len(entities) - 1; i >= 0; i-- {
		slot, _ := ecs.GetComponent[*components.SlotComponent](s.entityManager, entities[i])
		if s.geometry.SlotContains(slot.Index, ringAngle, slot.TranslationX, x, y) {
			return slot.Index, true
		}
	}
	return -1, false
}
