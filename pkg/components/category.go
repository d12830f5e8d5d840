package components

import "github.com/gonewx/fishtank/pkg/types"

// CategoryComponent 实体的语义分类（鱼、饵料）
// 创建后不可修改，是接触角色判定的唯一依据
type CategoryComponent struct {
	Category types.PhysicsCategory
}

// SceneNodeComponent 场景节点名称，用于日志
type SceneNodeComponent struct {
	Name string
}
