package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testSlotComponent struct {
	Index int
}

type testTransformComponent struct {
	X, Y     float64
	Rotation float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if em.EntityCount() != 2 {
		t.Errorf("Expected 2 entities, got %d", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testTransformComponent{X: 100, Y: 200, Rotation: 45})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testTransformComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testTransformComponent)
	if retrieved.X != 100 || retrieved.Y != 200 || retrieved.Rotation != 45 {
		t.Errorf("Component data mismatch, got %+v", retrieved)
	}
}

func TestGenericComponentHelpers(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testSlotComponent{Index: 3})

	slot, ok := GetComponent[*testSlotComponent](em, id)
	if !ok || slot.Index != 3 {
		t.Fatalf("GetComponent = (%v, %v), 期望 Index=3", slot, ok)
	}

	if !HasComponent[*testSlotComponent](em, id) {
		t.Error("HasComponent 应该返回 true")
	}
	if HasComponent[*testTransformComponent](em, id) {
		t.Error("未添加的组件不应存在")
	}

	RemoveComponent[*testSlotComponent](em, id)
	if _, ok := GetComponent[*testSlotComponent](em, id); ok {
		t.Error("移除后组件不应再被找到")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testSlotComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if em.EntityCount() != 1 || !em.HasComponent(id, reflect.TypeOf(&testSlotComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.EntityCount() != 0 || em.HasComponent(id, reflect.TypeOf(&testSlotComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	em.AddComponent(id1, &testSlotComponent{Index: 0})
	em.AddComponent(id1, &testTransformComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testSlotComponent{Index: 1})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testTransformComponent{})

	both := GetEntitiesWith2[*testSlotComponent, *testTransformComponent](em)
	if len(both) != 1 || both[0] != id1 {
		t.Errorf("Expected only id1, got %v", both)
	}

	slots := GetEntitiesWith1[*testSlotComponent](em)
	if len(slots) != 2 {
		t.Fatalf("Expected 2 slot entities, got %d", len(slots))
	}
	// 结果按ID升序
	if slots[0] != id1 || slots[1] != id2 {
		t.Errorf("Expected sorted [%d %d], got %v", id1, id2, slots)
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	ids := []EntityID{em.CreateEntity(), em.CreateEntity(), em.CreateEntity()}
	for i, id := range ids {
		em.AddComponent(id, &testSlotComponent{Index: i})
	}

	em.DestroyEntity(ids[0])
	em.DestroyEntity(ids[2])
	em.RemoveMarkedEntities()

	remaining := GetEntitiesWith1[*testSlotComponent](em)
	if len(remaining) != 1 || remaining[0] != ids[1] {
		t.Errorf("Expected only %d to remain, got %v", ids[1], remaining)
	}
}
