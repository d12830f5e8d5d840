package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/fishtank/pkg/app"
	"github.com/gonewx/fishtank/pkg/embedded"
)

func main() {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose: true, // 输出命中日志
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	width, height := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(width/2, height/2)
	ebiten.SetWindowTitle("Fish Tank")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
