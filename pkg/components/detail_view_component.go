package components

// DetailViewComponent 当前选中内容的详情视图
//
// 收起状态下详情视图铺满整个表面（Attached = false），
// 展开动画结束后挂到选中槽位的页面容器里（Attached = true），
// 此时 Scale/Translation 相对槽位容器。
type DetailViewComponent struct {
	// SlotIndex 详情视图对应的槽位
	SlotIndex int

	// Attached 是否挂在槽位容器中
	Attached bool

	ScaleX float64
	ScaleY float64

	TranslationX float64
	TranslationY float64
}
