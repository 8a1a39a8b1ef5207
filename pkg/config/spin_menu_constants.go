package config

// 旋转菜单的固定常量
//
// 这些值决定了环形菜单的手感（阻尼、惯性、点击阈值）和开关动画的节奏。
// 它们是调参项而非正确性约束，修改后无需调整任何算法。

const (
	// AngleSpace 相邻槽位之间的夹角（度）
	AngleSpace = 45.0

	// MaxMenuItemCount 环上最多可容纳的槽位数（360 / AngleSpace）
	MaxMenuItemCount = int(360 / AngleSpace)

	// MinFlingAngularVelocity 触发惯性滚动的最小角速度（度/秒）
	MinFlingAngularVelocity = AngleSpace

	// FlingAccelerationRatio 惯性滚动的速度放大系数
	FlingAccelerationRatio = 1.8

	// FlingDeceleration 惯性滚动的减速度（度/秒²）
	// 初速度 v 下的滚动距离 = v² / (2 * FlingDeceleration)
	FlingDeceleration = 4000.0

	// MinFlingDuration / MaxFlingDuration 惯性滚动时长范围（秒）
	MinFlingDuration = 0.3
	MaxFlingDuration = 2.5

	// RadiusHalfWidthRatio 半径相对于半宽的放大比例
	// 半径 = 宽度/2 * RadiusHalfWidthRatio + 槽位高度/2
	RadiusHalfWidthRatio = 1.2

	// OverscrollDamping 越界拖动时的角度衰减系数（橡皮筋效果）
	OverscrollDamping = 5.6

	// TouchSlopAngle 点击与拖动的判定阈值（度）
	// 一次按下到抬起的累计角度不超过该值时视为点击
	TouchSlopAngle = 2.0

	// SnapDuration 吸附到最近槽位的动画时长（秒）
	SnapDuration = 0.3

	// ClickScrollDuration 点击侧边槽位后旋转到选中位置的动画时长（秒）
	ClickScrollDuration = 0.3

	// MenuTransitionDuration 菜单打开/关闭动画时长（秒）
	MenuTransitionDuration = 0.3

	// OvershootTension 开关动画回弹曲线的张力
	OvershootTension = 2.0

	// SkewDistance 选中槽位左右相邻槽位的横向偏移量（像素）
	SkewDistance = 160.0

	// HintTopMargin 提示文字相对于页面底部的间距（像素）
	HintTopMargin = 15.0

	// DefaultScaleRatio 菜单展开时页面的默认缩放比例
	DefaultScaleRatio = 0.36

	// DefaultHintTextSize 提示文字默认字号
	DefaultHintTextSize = 14.0

	// DefaultHintTextColor 提示文字默认颜色
	DefaultHintTextColor = "#666666"

	// GestureTouchSlop 下滑打开菜单手势的判定阈值（像素）
	// 单次移动满足 |dx| < GestureTouchSlop 且 dy > GestureTouchSlop*3 时打开菜单
	GestureTouchSlop = 8.0
)

// 演示程序默认窗口尺寸
const (
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 800
)
