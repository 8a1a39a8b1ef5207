package components

// SlotTransformComponent 槽位的布局结果
// 由 SlotLayoutSystem 每次环角度变化时写入，渲染和命中测试读取
type SlotTransformComponent struct {
	CenterX float64
	CenterY float64

	// Rotation 绕槽位中心的旋转角（度），等于环角度 + 放置角度
	Rotation float64

	Width  float64
	Height float64
}
