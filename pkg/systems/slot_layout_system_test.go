package systems

import (
	"math"
	"testing"

	"github.com/decker502/spinmenu/pkg/components"
	"github.com/decker502/spinmenu/pkg/ecs"
	"github.com/decker502/spinmenu/pkg/utils"
)

func createTestSlots(em *ecs.EntityManager, n int) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, n)
	for i := 0; i < n; i++ {
		id := em.CreateEntity()
		ecs.AddComponent(em, id, &components.SlotComponent{Index: i, PlacementAngle: utils.SlotAngle(i)})
		ecs.AddComponent(em, id, &components.SlotTransformComponent{})
		ids = append(ids, id)
	}
	return ids
}

func TestSlotLayoutSystem_Layout(t *testing.T) {
	em := ecs.NewEntityManager()
	ids := createTestSlots(em, 3)
	geometry := testGeometry()
	system := NewSlotLayoutSystem(em, geometry)

	system.Layout(-45)

	// 槽位 1 转到锚点：圆心正上方
	transform, _ := ecs.GetComponent[*components.SlotTransformComponent](em, ids[1])
	if math.Abs(transform.CenterX-geometry.CenterX) > 1e-9 {
		t.Errorf("槽位 1 CenterX = %v, 期望 %v", transform.CenterX, geometry.CenterX)
	}
	if math.Abs(transform.CenterY-(geometry.CenterY-geometry.Radius)) > 1e-9 {
		t.Errorf("槽位 1 CenterY = %v, 期望 %v", transform.CenterY, geometry.CenterY-geometry.Radius)
	}
	if transform.Rotation != 0 {
		t.Errorf("槽位 1 Rotation = %v, 期望 0", transform.Rotation)
	}
	if transform.Width != geometry.SlotWidth || transform.Height != geometry.SlotHeight {
		t.Errorf("槽位尺寸 = %vx%v", transform.Width, transform.Height)
	}

	// 槽位 0 在左侧，槽位 2 在右侧
	left, _ := ecs.GetComponent[*components.SlotTransformComponent](em, ids[0])
	right, _ := ecs.GetComponent[*components.SlotTransformComponent](em, ids[2])
	if left.CenterX >= geometry.CenterX || right.CenterX <= geometry.CenterX {
		t.Errorf("相邻槽位位置错误: left=%v right=%v", left.CenterX, right.CenterX)
	}
	if left.Rotation != -45 || right.Rotation != 45 {
		t.Errorf("相邻槽位旋转 = %v / %v, 期望 -45 / 45", left.Rotation, right.Rotation)
	}
}

func TestSlotLayoutSystem_HitTest(t *testing.T) {
	em := ecs.NewEntityManager()
	createTestSlots(em, 4)
	geometry := testGeometry()
	system := NewSlotLayoutSystem(em, geometry)

	anchorY := geometry.CenterY - geometry.Radius
	if index, ok := system.HitTest(geometry.CenterX, anchorY, 0); !ok || index != 0 {
		t.Errorf("锚点处命中 = (%d, %v), 期望 (0, true)", index, ok)
	}
	if index, ok := system.HitTest(geometry.CenterX, anchorY, -90); !ok || index != 2 {
		t.Errorf("旋转 -90° 后锚点处命中 = (%d, %v), 期望 (2, true)", index, ok)
	}
	if _, ok := system.HitTest(5, 5, 0); ok {
		t.Error("左上角不应命中任何槽位")
	}
}
