package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/spinmenu/pkg/app"
	"github.com/decker502/spinmenu/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// 命令行参数
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "菜单配置文件路径（默认使用内置 data/spin_menu.yaml）")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(dataFS)

	spinApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
	})
	if err != nil {
		// 日志可能已被静默，错误直接输出到 stderr
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	width, height := spinApp.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Spin Menu")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(spinApp); err != nil {
		log.Fatal(err)
	}
}
