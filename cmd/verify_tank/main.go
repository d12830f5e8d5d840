package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/config"
	"github.com/gonewx/fishtank/pkg/ecs"
	"github.com/gonewx/fishtank/pkg/game"
	"github.com/gonewx/fishtank/pkg/scenes"
)

var (
	verbose  = flag.Bool("verbose", false, "显示详细调试信息")
	interval = flag.Float64("interval", 3.0, "自动投食间隔（秒）")
)

var errQuit = errors.New("quit")

// VerifyTankGame 鱼缸验证程序
// 每隔 interval 秒在鱼的正上方自动投食，验证接触、爱心标记和饵料下落
//
// 操作：
//   - 鼠标/触摸：手动投食
//   - R：重置场景
//   - Q：退出
type VerifyTankGame struct {
	cfg   *config.TankConfig
	rm    *game.ResourceManager
	scene *scenes.TankScene

	timer float64
	drops int
}

// NewVerifyTankGame 创建验证程序
func NewVerifyTankGame() (*VerifyTankGame, error) {
	cfg := config.DefaultTankConfig()
	rm := game.NewResourceManager(cfg)
	if err := rm.LoadAll(); err != nil {
		return nil, err
	}

	g := &VerifyTankGame{cfg: cfg, rm: rm}
	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *VerifyTankGame) reset() error {
	scene, err := scenes.NewTankScene(g.cfg, g.rm, scenes.TankSceneOptions{Debug: true})
	if err != nil {
		return fmt.Errorf("failed to create tank scene: %w", err)
	}
	g.scene = scene
	g.timer = 0
	log.Printf("[VerifyTank] Scene reset")
	return nil
}

// Update 推进场景并自动投食
func (g *VerifyTankGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			return err
		}
	}

	const dt = 1.0 / 60.0
	g.timer += dt
	if g.timer >= *interval {
		g.timer = 0
		g.dropAboveFish()
	}

	g.scene.Update(dt)
	return nil
}

// dropAboveFish 在鱼的正上方、投食区域顶部投放饵料
func (g *VerifyTankGame) dropAboveFish() {
	fishID, ok := g.scene.Fish()
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](g.scene.EntityManager(), fishID)
	if !ok {
		return
	}
	if g.scene.HandleTouch(pos.X, float64(g.cfg.Scene.Height)-1) != ecs.InvalidEntity {
		g.drops++
	}
}

// Draw 绘制场景和验证信息
func (g *VerifyTankGame) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Auto drops: %d  Hits: %d\n[R] reset  [Q] quit", g.drops, g.scene.HitCount()),
		4, g.cfg.Scene.Height-40)
}

// Layout 返回场景尺寸
func (g *VerifyTankGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Scene.Width, g.cfg.Scene.Height
}

func main() {
	flag.Parse()

	if *verbose {
		log.SetOutput(os.Stdout)
	} else {
		log.SetOutput(io.Discard)
	}

	verifyGame, err := NewVerifyTankGame()
	if err != nil {
		log.Fatalf("Failed to create verify game: %v", err)
	}

	ebiten.SetWindowTitle("鱼缸验证程序")
	ebiten.SetWindowSize(verifyGame.cfg.Scene.Width/2, verifyGame.cfg.Scene.Height/2)

	if err := ebiten.RunGame(verifyGame); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
