package systems

import (
	"log"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/gonewx/fishtank/pkg/components"
	"github.com/gonewx/fishtank/pkg/config"
	"github.com/gonewx/fishtank/pkg/ecs"
)

// WanderSystem 鱼的随机游动节拍
//
// 以场景动作的形式无限重复：选点并让鱼在 MoveDuration 秒内匀速移到
// 当前位置 + (dx, dy)，dx、dy 独立均匀分布在 [-Range, Range]，然后等待 Interval 秒。
// 不做边界限制，鱼可以游出水槽。鱼被移除后节拍继续但不再做任何事。
type WanderSystem struct {
	entityManager *ecs.EntityManager
	actionSystem  *ActionSystem
	fish          *FishSlot
	cfg           config.WanderConfig
	offset        distuv.Uniform

	started bool
	moves   int
}

// NewWanderSystem 创建游动系统
//
// 参数:
//   - em: 实体管理器
//   - as: 动作系统
//   - fish: 鱼槽位
//   - cfg: 游动配置
//   - src: 随机数来源；nil 时使用随机种子
func NewWanderSystem(em *ecs.EntityManager, as *ActionSystem, fish *FishSlot, cfg config.WanderConfig, src rand.Source) *WanderSystem {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &WanderSystem{
		entityManager: em,
		actionSystem:  as,
		fish:          fish,
		cfg:           cfg,
		offset:        distuv.Uniform{Min: -cfg.Range, Max: cfg.Range, Src: src},
	}
}

// Start 开始游动节拍，重复调用无效
func (s *WanderSystem) Start() {
	if s.started {
		return
	}
	s.started = true

	s.actionSystem.RunSceneAction(components.RepeatForever(components.Sequence(
		components.Run(s.moveFish),
		components.Wait(s.cfg.Interval),
	)))
}

// MoveCount 返回已下达的移动次数
func (s *WanderSystem) MoveCount() int {
	return s.moves
}

// moveFish 选取下一个目标点并让鱼移动过去
func (s *WanderSystem) moveFish() {
	id, ok := s.fish.Get()
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	if !ok {
		return
	}

	dx, dy := s.nextOffset(), s.nextOffset()
	s.actionSystem.RunAction(id, components.MoveTo(pos.X+dx, pos.Y+dy, s.cfg.MoveDuration))
	s.moves++

	log.Printf("[WanderSystem] Fish %d -> (%.1f, %.1f)", id, pos.X+dx, pos.Y+dy)
}

func (s *WanderSystem) nextOffset() float64 {
	if s.cfg.Range == 0 {
		return 0
	}
	return s.offset.Rand()
}
