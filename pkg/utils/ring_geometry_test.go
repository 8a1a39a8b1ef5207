package utils

import (
	"math"
	"testing"
)

const geometryTolerance = 1e-9

func TestSlotAngle(t *testing.T) {
	for i, want := range []float64{0, 45, 90, 135, 180, 225, 270, 315} {
		if got := SlotAngle(i); got != want {
			t.Errorf("SlotAngle(%d) = %v, 期望 %v", i, got, want)
		}
	}
}

func TestSlotPosition(t *testing.T) {
	tests := []struct {
		name         string
		angle        float64
		wantX, wantY float64
	}{
		{"锚点（正上方）", 0, 200, 400},
		{"右侧 90°", 90, 300, 500},
		{"左侧 -90°", -90, 100, 500},
		{"正下方 180°", 180, 200, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := SlotPosition(200, 500, 100, tt.angle)
			if math.Abs(x-tt.wantX) > geometryTolerance || math.Abs(y-tt.wantY) > geometryTolerance {
				t.Errorf("SlotPosition(%v) = (%v, %v), 期望 (%v, %v)", tt.angle, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestTouchAngle(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   float64
	}{
		{"正上方", 200, 300, 90},
		{"水平方向", 300, 500, 0},
		{"45度", 300, 400, 45},
		{"左侧45度同样为正", 100, 400, 45},
		{"与圆心重合", 200, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TouchAngle(tt.px, tt.py, 200, 500)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("TouchAngle(%v, %v) = %v, 期望 %v", tt.px, tt.py, got, tt.want)
			}
			if got < 0 {
				t.Errorf("TouchAngle 不应为负: %v", got)
			}
		})
	}
}

func TestNewRingGeometry(t *testing.T) {
	g := NewRingGeometry(400, 800, 144, 320)

	if g.CenterX != 200 || g.CenterY != 800 {
		t.Errorf("圆心 = (%v, %v), 期望底边中点 (200, 800)", g.CenterX, g.CenterY)
	}
	// 200 * 1.2 + 160
	if math.Abs(g.Radius-400) > geometryTolerance {
		t.Errorf("Radius = %v, 期望 400", g.Radius)
	}
	if math.Abs(g.AnchorSlotTop()-240) > geometryTolerance {
		t.Errorf("AnchorSlotTop = %v, 期望 240", g.AnchorSlotTop())
	}
}

func TestRingGeometry_SlotCenter(t *testing.T) {
	g := NewRingGeometry(400, 800, 100, 100)

	// 环旋转 -45° 后，槽位 1 位于锚点
	x, y, rotation := g.SlotCenter(1, -45)
	if math.Abs(x-g.CenterX) > geometryTolerance || math.Abs(y-(g.CenterY-g.Radius)) > geometryTolerance {
		t.Errorf("SlotCenter(1, -45) = (%v, %v), 期望锚点", x, y)
	}
	if rotation != 0 {
		t.Errorf("rotation = %v, 期望 0", rotation)
	}
}

func TestRingGeometry_SlotContains(t *testing.T) {
	g := NewRingGeometry(400, 800, 100, 60)
	ax, ay, _ := g.SlotCenter(0, 0)

	tests := []struct {
		name    string
		index   int
		angle   float64
		offsetX float64
		px, py  float64
		want    bool
	}{
		{"锚点槽位中心", 0, 0, 0, ax, ay, true},
		{"锚点槽位边缘内", 0, 0, 0, ax + 49, ay + 29, true},
		{"锚点槽位外", 0, 0, 0, ax + 51, ay, false},
		{"横向偏移后原位置不再命中", 0, 0, 160, ax, ay, false},
		{"横向偏移后新位置命中", 0, 0, 160, ax + 160, ay, true},
		{"右侧槽位不包含锚点", 1, 0, 0, ax, ay, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.SlotContains(tt.index, tt.angle, tt.offsetX, tt.px, tt.py); got != tt.want {
				t.Errorf("SlotContains() = %v, 期望 %v", got, tt.want)
			}
		})
	}

	// 旋转 90° 的槽位：局部宽高互换
	rx, ry, _ := g.SlotCenter(0, 90)
	if !g.SlotContains(0, 90, 0, rx+29, ry+49) {
		t.Error("旋转90°后应按交换后的宽高命中")
	}
	if g.SlotContains(0, 90, 0, rx+49, ry) {
		t.Error("旋转90°后局部高度方向只有30像素")
	}
}
