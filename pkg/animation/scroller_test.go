package animation

import (
	"math"
	"testing"

	"github.com/decker502/spinmenu/pkg/config"
	"github.com/decker502/spinmenu/pkg/utils"
)

// runUntilFinished 以 60fps 推进直到结束，返回经过的帧数
func runUntilFinished(s *Scroller, maxFrames int) int {
	frames := 0
	for !s.IsFinished() && frames < maxFrames {
		s.Update(1.0 / 60)
		frames++
	}
	return frames
}

func TestScroller_StartScroll(t *testing.T) {
	s := NewScroller()
	if !s.IsFinished() {
		t.Fatal("新建的 Scroller 应处于空闲状态")
	}
	if s.Update(1.0 / 60) {
		t.Error("空闲时 Update 应返回 false")
	}

	s.StartScroll(-30, -15, 0.3, utils.EaseViscousFluid)
	if s.FinalX() != -45 {
		t.Errorf("FinalX = %v, 期望 -45", s.FinalX())
	}

	frames := runUntilFinished(s, 100)
	if frames < 17 || frames > 19 {
		t.Errorf("0.3s 动画用了 %d 帧", frames)
	}
	if s.CurrX() != -45 {
		t.Errorf("结束后 CurrX = %v, 期望 -45", s.CurrX())
	}
}

func TestScroller_AbortKeepsCurrentValue(t *testing.T) {
	s := NewScroller()
	s.StartScroll(0, 90, 1.0, utils.EaseLinear)
	s.Update(0.5)

	mid := s.CurrX()
	s.AbortAnimation()

	if !s.IsFinished() {
		t.Error("中断后应为结束状态")
	}
	if s.CurrX() != mid || math.Abs(mid-45) > 1e-9 {
		t.Errorf("中断后 CurrX = %v, 期望保持 %v（而不是终点 90）", s.CurrX(), mid)
	}
}

func TestScroller_Fling(t *testing.T) {
	s := NewScroller()
	s.Fling(0, 800, 4000)

	// 800² / 8000 = 80
	if math.Abs(s.FinalX()-80) > 1e-9 {
		t.Errorf("FinalX = %v, 期望 80", s.FinalX())
	}
	if s.Duration() < config.MinFlingDuration || s.Duration() > config.MaxFlingDuration {
		t.Errorf("Duration = %v 超出范围", s.Duration())
	}

	// 反向滑行
	s.Fling(0, -800, 4000)
	if math.Abs(s.FinalX()+80) > 1e-9 {
		t.Errorf("反向 FinalX = %v, 期望 -80", s.FinalX())
	}
}

func TestScroller_SetFinalXDeceleratesSmoothly(t *testing.T) {
	s := NewScroller()
	s.Fling(-90, -1600, 4000) // 原始终点 -410
	s.SetFinalX(-135)         // 被边界截断

	prev := s.CurrX()
	prevStep := math.Inf(1)
	for !s.IsFinished() {
		s.Update(1.0 / 60)
		step := math.Abs(s.CurrX() - prev)
		// 匀减速：每帧步长不增加，且不会越过新终点
		if step > prevStep+1e-9 {
			t.Fatalf("步长增加: %v -> %v", prevStep, step)
		}
		if s.CurrX() < -135-1e-9 {
			t.Fatalf("越过终点: %v", s.CurrX())
		}
		prev, prevStep = s.CurrX(), step
	}

	if s.CurrX() != -135 {
		t.Errorf("最终值 = %v, 期望 -135", s.CurrX())
	}
}
