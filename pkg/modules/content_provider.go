package modules

// ContentProvider 为每个槽位提供页面内容
//
// Content 返回的值由渲染系统解释（*ebiten.Image 直接绘制，其余绘制占位）。
// Activate/Deactivate 在内容成为/不再是顶层详情视图时调用：
//   - 初始配置时激活槽位 0
//   - 展开动画结束、内容挂入槽位容器时停用
//   - 收起开始、内容回到顶层表面时激活
//   - 收起状态下旋转选中新槽位时，先停用旧槽位再激活新槽位
//   - 重新配置前停用当前激活的槽位
type ContentProvider interface {
	Count() int
	Content(index int) any
	Activate(index int)
	Deactivate(index int)
}
