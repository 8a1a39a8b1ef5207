package systems

import (
	"testing"

	"github.com/decker502/spinmenu/pkg/config"
)

func mustRing(t *testing.T, n int) config.RingConfig {
	t.Helper()
	ring, err := config.NewRingConfig(n)
	if err != nil {
		t.Fatalf("NewRingConfig(%d): %v", n, err)
	}
	return ring
}

func TestSelectedIndex(t *testing.T) {
	ring4 := mustRing(t, 4)
	ring8 := mustRing(t, 8)

	tests := []struct {
		name  string
		angle float64
		ring  config.RingConfig
		want  int
	}{
		{"初始角度", 0, ring4, 0},
		{"转到第二个", -45, ring4, 1},
		{"转到最后一个", -135, ring4, 3},
		{"接近边界时四舍五入", -60, ring4, 1},
		{"超过一半时进位", -70, ring4, 2},
		{"循环环正角度", 45, ring8, 7},
		{"循环环正角度 90", 90, ring8, 6},
		{"循环环整圈", 360, ring8, 0},
		{"循环环负整圈外", -405, ring8, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SelectedIndex(tt.angle, tt.ring); got != tt.want {
				t.Errorf("SelectedIndex(%v) = %d, 期望 %d", tt.angle, got, tt.want)
			}
		})
	}
}

// 循环环：任意整圈旋转不改变选中项
func TestSelectedIndex_InvariantUnderFullTurns(t *testing.T) {
	ring := mustRing(t, 8)
	for _, base := range []float64{0, 45, -45, 30, -100, 170, -315} {
		want := SelectedIndex(base, ring)
		for k := -3; k <= 3; k++ {
			angle := base + float64(k)*360
			if got := SelectedIndex(angle, ring); got != want {
				t.Errorf("SelectedIndex(%v) = %d, 期望与 %v 相同 (%d)", angle, got, base, want)
			}
		}
	}
}

// 每旋转一个间隔角，选中项恰好移动一位
func TestSelectedIndex_StepsPerSpacing(t *testing.T) {
	ring := mustRing(t, 8)
	for i := 0; i < 16; i++ {
		angle := -float64(i) * ring.AngleSpacing
		if got := SelectedIndex(angle, ring); got != i%8 {
			t.Errorf("SelectedIndex(%v) = %d, 期望 %d", angle, got, i%8)
		}
	}
}

func TestRotationToSelect(t *testing.T) {
	ring4 := mustRing(t, 4)
	ring8 := mustRing(t, 8)

	tests := []struct {
		name            string
		target, current int
		ring            config.RingConfig
		want            float64
	}{
		{"右侧相邻", 2, 1, ring4, 45},
		{"左侧相邻", 0, 1, ring4, -45},
		{"非循环不回绕", 3, 0, ring4, 135},
		{"循环首尾交界取短路径", 0, 7, ring8, 45},
		{"循环反向交界", 7, 0, ring8, -45},
		{"循环跨越多格", 1, 6, ring8, 135},
		{"循环正对面", 4, 0, ring8, 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RotationToSelect(tt.target, tt.current, tt.ring); got != tt.want {
				t.Errorf("RotationToSelect(%d, %d) = %v, 期望 %v", tt.target, tt.current, got, tt.want)
			}
		})
	}
}

func TestRotationToSelect_SameSlotIsZero(t *testing.T) {
	for n := 1; n <= config.MaxMenuItemCount; n++ {
		ring := mustRing(t, n)
		for i := 0; i < n; i++ {
			if got := RotationToSelect(i, i, ring); got != 0 {
				t.Errorf("n=%d RotationToSelect(%d, %d) = %v, 期望 0", n, i, i, got)
			}
		}
	}
}

func TestNeighborIndices(t *testing.T) {
	ring4 := mustRing(t, 4)
	ring8 := mustRing(t, 8)
	ring1 := mustRing(t, 1)

	tests := []struct {
		name      string
		index     int
		ring      config.RingConfig
		wantLeft  int
		wantRight int
	}{
		{"非循环首位", 0, ring4, -1, 1},
		{"非循环中间", 2, ring4, 1, 3},
		{"非循环末位", 3, ring4, 2, -1},
		{"循环首位回绕", 0, ring8, 7, 1},
		{"循环末位回绕", 7, ring8, 6, 0},
		{"单个槽位", 0, ring1, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, right := NeighborIndices(tt.index, tt.ring)
			if left != tt.wantLeft || right != tt.wantRight {
				t.Errorf("NeighborIndices(%d) = (%d, %d), 期望 (%d, %d)",
					tt.index, left, right, tt.wantLeft, tt.wantRight)
			}
		})
	}
}

func TestSnapHelpers(t *testing.T) {
	if got := SnapToNearestSlot(-200, 45); got != -180 {
		t.Errorf("SnapToNearestSlot(-200) = %v, 期望 -180", got)
	}
	if got := SnapToNearestSlot(30, 45); got != 45 {
		t.Errorf("SnapToNearestSlot(30) = %v, 期望 45", got)
	}
	if got := SnapBeyond(-100, 45, -1); got != -135 {
		t.Errorf("SnapBeyond(-100, ccw) = %v, 期望 -135", got)
	}
	if got := SnapBeyond(-100, 45, 1); got != -90 {
		t.Errorf("SnapBeyond(-100, cw) = %v, 期望 -90", got)
	}
	if got := SnapBeyond(90, 45, 1); got != 90 {
		t.Errorf("SnapBeyond 已对齐时应保持不变, got %v", got)
	}
}
