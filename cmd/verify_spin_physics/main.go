package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/spinmenu/pkg/config"
	"github.com/decker502/spinmenu/pkg/ecs"
	"github.com/decker502/spinmenu/pkg/modules"
	"github.com/decker502/spinmenu/pkg/systems"
)

const frameTime = 1.0 / 60.0

var (
	// 命令行参数
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	slots   = flag.Int("slots", 4, "槽位数量（1-8，8 为循环环）")
	width   = flag.Int("width", config.DefaultWindowWidth, "表面宽度")
	height  = flag.Int("height", config.DefaultWindowHeight, "表面高度")
	script  = flag.String("script", "drag:-300:0.5,wait:1,tap:2,wait:1,open,wait:1,close,wait:1",
		"动作序列，逗号分隔：drag:<dx>:<秒> | flick:<dx> | tap:<槽位> | wait:<秒> | open | close")
	trace = flag.Int("trace", 0, "每 N 帧打印一次角度（0 关闭）")
)

// stubContent 无图片的内容提供者（渲染时绘制占位）
type stubContent struct {
	count int
}

func (s stubContent) Count() int { return s.count }
func (s stubContent) Content(index int) any { return nil }
func (s stubContent) Activate(index int) { fmt.Printf("  content %d activated\n", index) }
func (s stubContent) Deactivate(index int) { fmt.Printf("  content %d deactivated\n", index) }

// idleInput 无指针输入，所有事件由脚本直接注入
type idleInput struct{}

func (idleInput) PointerState() (bool, int, int) { return false, 0, 0 }

type simulator struct {
	menu  *modules.SpinMenuModule
	frame int
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	sim := &simulator{}
	sim.menu = modules.NewSpinMenuModuleWithInput(ecs.NewEntityManager(), *width, *height, modules.SpinMenuCallbacks{
		OnMenuOpened:   func() { fmt.Printf("[frame %4d] menu opened\n", sim.frame) },
		OnMenuClosed:   func() { fmt.Printf("[frame %4d] menu closed\n", sim.frame) },
		OnSpinSelected: func(index int) { fmt.Printf("[frame %4d] selected slot %d (angle %.2f°)\n", sim.frame, index, sim.angle()) },
		OnStateChanged: func(from, to systems.MenuState) {
			fmt.Printf("[frame %4d] state %v -> %v\n", sim.frame, from, to)
		},
	}, idleInput{})

	if err := sim.menu.SetContentProvider(stubContent{count: *slots}); err != nil {
		fmt.Fprintf(os.Stderr, "配置失败: %v\n", err)
		os.Exit(1)
	}

	state := sim.menu.RingState()
	fmt.Printf("ring: %d slots, bounds [%.0f°, %.0f°]\n", *slots, state.MinAngle, state.MaxAngle)

	for _, action := range strings.Split(*script, ",") {
		if err := sim.run(strings.TrimSpace(action)); err != nil {
			fmt.Fprintf(os.Stderr, "动作 %q 失败: %v\n", action, err)
			os.Exit(1)
		}
	}

	fmt.Printf("final: state=%v slot=%d angle=%.2f°\n", sim.menu.MenuState(), sim.menu.SelectedIndex(), sim.angle())
}

func (s *simulator) angle() float64 {
	return s.menu.RingState().CurrentAngle
}

func (s *simulator) step() {
	s.menu.Update(frameTime)
	s.frame++
	if *trace > 0 && s.frame%*trace == 0 {
		fmt.Printf("[frame %4d] angle %.2f°\n", s.frame, s.angle())
	}
}

func (s *simulator) wait(seconds float64) {
	for i := 0; i < int(seconds/frameTime); i++ {
		s.step()
	}
}

func (s *simulator) run(action string) error {
	parts := strings.Split(action, ":")
	args := make([]float64, 0, len(parts)-1)
	for _, p := range parts[1:] {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return fmt.Errorf("invalid argument %q: %w", p, err)
		}
		args = append(args, v)
	}

	fmt.Printf("[frame %4d] > %s\n", s.frame, action)
	switch parts[0] {
	case "drag":
		if len(args) != 2 {
			return fmt.Errorf("usage: drag:<dx>:<seconds>")
		}
		s.drag(args[0], args[1])
	case "flick":
		if len(args) != 1 {
			return fmt.Errorf("usage: flick:<dx>")
		}
		s.drag(args[0], 0.1)
	case "tap":
		if len(args) != 1 {
			return fmt.Errorf("usage: tap:<slot>")
		}
		s.tap(int(args[0]))
	case "wait":
		if len(args) != 1 {
			return fmt.Errorf("usage: wait:<seconds>")
		}
		s.wait(args[0])
	case "open":
		fmt.Printf("  OpenMenu() = %v\n", s.menu.OpenMenu())
	case "close":
		fmt.Printf("  CloseMenu() = %v\n", s.menu.CloseMenu())
	default:
		return fmt.Errorf("unknown action %q", parts[0])
	}
	return nil
}

// drag 在表面上方三分之一处水平拖动 dx 像素，耗时 seconds 秒
func (s *simulator) drag(dx, seconds float64) {
	x := float64(*width) / 2
	y := float64(*height) / 3
	frames := max(int(seconds/frameTime), 1)

	if !s.menu.OnPointerDown(x, y) {
		fmt.Printf("  pointer down dropped (state %v)\n", s.menu.MenuState())
		return
	}
	for i := 1; i <= frames; i++ {
		s.step()
		s.menu.OnPointerMove(x+dx*float64(i)/float64(frames), y)
	}
	s.menu.OnPointerUp(x+dx, y)
	fmt.Printf("  released at %.2f° (swept %.2f°)\n", s.angle(), s.menu.GestureAngle())
}

// tap 点击指定槽位当前的中心位置
func (s *simulator) tap(index int) {
	x, y, ok := s.menu.SlotScreenCenter(index)
	if !ok {
		fmt.Printf("  slot %d does not exist\n", index)
		return
	}
	if !s.menu.OnPointerDown(x, y) {
		fmt.Printf("  pointer down dropped (state %v)\n", s.menu.MenuState())
		return
	}
	s.menu.OnPointerUp(x, y)
}
