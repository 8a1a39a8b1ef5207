package modules

import (
	"github.com/decker502/spinmenu/pkg/components"
	"github.com/decker502/spinmenu/pkg/ecs"
	"github.com/decker502/spinmenu/pkg/systems"
)

// transitionHost 把模块的展示模型暴露给 MenuStateMachine
type transitionHost struct {
	m *SpinMenuModule
}

var _ systems.TransitionHost = transitionHost{}

func (h transitionHost) SelectedIndex() int {
	return h.m.SelectedIndex()
}

func (h transitionHost) NeighborIndices(index int) (int, int) {
	return systems.NeighborIndices(index, h.m.ring)
}

func (h transitionHost) SlotCount() int {
	return len(h.m.slotEntities)
}

func (h transitionHost) Slot(index int) *components.SlotComponent {
	if index < 0 || index >= len(h.m.slotEntities) {
		return nil
	}
	slot, _ := ecs.GetComponent[*components.SlotComponent](h.m.entityManager, h.m.slotEntities[index])
	return slot
}

func (h transitionHost) DetailView() *components.DetailViewComponent {
	return h.m.detailView()
}

func (h transitionHost) AnchorSlotTop() float64 {
	return h.m.layoutSystem.Geometry().AnchorSlotTop()
}

func (h transitionHost) SurfaceSize() (float64, float64) {
	return h.m.width, h.m.height
}

func (h transitionHost) ScaleRatio() float64 {
	return h.m.scaleRatio
}

func (h transitionHost) ActivateContent(index int) {
	h.m.activateContent(index)
}

func (h transitionHost) DeactivateContent(index int) {
	h.m.deactivateContent(index)
}
