package components

// SlotComponent 环形菜单槽位组件
// 每个菜单项对应一个槽位实体，按索引固定在环上
type SlotComponent struct {
	// Index 槽位索引（0..SlotCount-1）
	Index int

	// Content 内容提供者给出的页面内容（通常是 *ebiten.Image，nil 时绘制占位）
	Content any

	// PlacementAngle 放置角度 = Index * AngleSpace
	PlacementAngle float64

	// TranslationX 横向偏移（展开/收起时相邻槽位的避让）
	TranslationX float64
}
