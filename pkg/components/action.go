package components

// ActionKind 动作类型
type ActionKind int

const (
	// ActionMoveTo 在 Duration 秒内匀速移动到 (X, Y)
	ActionMoveTo ActionKind = iota
	// ActionFadeOut 在 Duration 秒内把 Alpha 降到 0
	ActionFadeOut
	// ActionWait 等待 Duration 秒
	ActionWait
	// ActionRun 立即调用 Func 一次
	ActionRun
	// ActionRemoveFromParent 把实体从场景中移除
	ActionRemoveFromParent
	// ActionSequence 依次执行 Children
	ActionSequence
	// ActionRepeatForever 无限重复 Children[0]
	ActionRepeatForever
)

// String 返回动作类型名称
func (k ActionKind) String() string {
	switch k {
	case ActionMoveTo:
		return "MoveTo"
	case ActionFadeOut:
		return "FadeOut"
	case ActionWait:
		return "Wait"
	case ActionRun:
		return "Run"
	case ActionRemoveFromParent:
		return "RemoveFromParent"
	case ActionSequence:
		return "Sequence"
	case ActionRepeatForever:
		return "RepeatForever"
	default:
		return "Unknown"
	}
}

// Action 声明式动作描述（只读，可在多个实体间复用）
//
// 示例:
//
//	components.Sequence(
//	    components.MoveTo(x, -halfHeight, duration),
//	    components.RemoveFromParent(),
//	)
type Action struct {
	Kind     ActionKind
	X, Y     float64
	Duration float64
	Func     func()
	Children []*Action
}

// MoveTo 创建移动动作
func MoveTo(x, y, duration float64) *Action {
	return &Action{Kind: ActionMoveTo, X: x, Y: y, Duration: duration}
}

// FadeOut 创建淡出动作
func FadeOut(duration float64) *Action {
	return &Action{Kind: ActionFadeOut, Duration: duration}
}

// Wait 创建等待动作
func Wait(duration float64) *Action {
	return &Action{Kind: ActionWait, Duration: duration}
}

// Run 创建回调动作
func Run(fn func()) *Action {
	return &Action{Kind: ActionRun, Func: fn}
}

// RemoveFromParent 创建移除动作
func RemoveFromParent() *Action {
	return &Action{Kind: ActionRemoveFromParent}
}

// Sequence 创建顺序动作
func Sequence(actions ...*Action) *Action {
	return &Action{Kind: ActionSequence, Children: actions}
}

// RepeatForever 创建无限重复动作
func RepeatForever(action *Action) *Action {
	return &Action{Kind: ActionRepeatForever, Children: []*Action{action}}
}

// ActionState 动作的运行时状态
// 每次动作开始执行时由 ActionSystem 创建，Action 本身保持不变
type ActionState struct {
	Action  *Action
	Started bool
	Elapsed float64

	// 动作开始时捕获的起始值
	FromX, FromY float64
	FromAlpha    float64

	// Sequence/RepeatForever 的当前子动作
	Index int
	Child *ActionState
}

// NewActionState 为动作创建初始运行状态
func NewActionState(action *Action) *ActionState {
	return &ActionState{Action: action}
}

// ActionComponent 实体当前正在执行的动作
// 一个实体同时只执行一个动作（根动作可以是 Sequence）
type ActionComponent struct {
	State *ActionState
}
