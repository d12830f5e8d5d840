// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "strings"

// PhysicsCategory 物理分类位掩码
// 每个刚体只分配一个分类；位掩码形式便于设置"与哪些分类产生接触"
type PhysicsCategory uint32

const (
	// CategoryNone 无分类（不与任何对象接触）
	CategoryNone PhysicsCategory = 0
	// CategoryFish 鱼
	CategoryFish PhysicsCategory = 1 << 0
	// CategoryFood 饵料
	CategoryFood PhysicsCategory = 1 << 1
	// CategoryAll 所有分类
	CategoryAll PhysicsCategory = ^PhysicsCategory(0)
)

// Contains 检查分类是否包含 mask 中的任意一位
func (c PhysicsCategory) Contains(mask PhysicsCategory) bool {
	return c&mask != 0
}

// String 返回分类的字符串表示
func (c PhysicsCategory) String() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryAll:
		return "All"
	}

	var names []string
	if c.Contains(CategoryFish) {
		names = append(names, "Fish")
	}
	if c.Contains(CategoryFood) {
		names = append(names, "Food")
	}
	if rest := c &^ (CategoryFish | CategoryFood); rest != 0 {
		names = append(names, "Unknown")
	}
	return strings.Join(names, "|")
}

// OrderByCategory 按分类数值升序排列两个参与者
// 返回 swapped=true 表示原来的 b 排在前面
func OrderByCategory(a, b PhysicsCategory) (first, second PhysicsCategory, swapped bool) {
	if a < b {
		return a, b, false
	}
	return b, a, true
}

// MatchFishFood 判断一对接触是否为"鱼-饵料"
//
// 匹配与参数顺序无关：(Fish, Food) 与 (Food, Fish) 都返回 ok=true，
// fishIsA 指出哪一侧是鱼。两侧同时含有鱼和饵料位时无法确定角色，视为不匹配。
func MatchFishFood(a, b PhysicsCategory) (fishIsA bool, ok bool) {
	aFish, aFood := a.Contains(CategoryFish), a.Contains(CategoryFood)
	bFish, bFood := b.Contains(CategoryFish), b.Contains(CategoryFood)

	switch {
	case aFish && bFood && !(bFish && aFood):
		return true, true
	case bFish && aFood && !(aFish && bFood):
		return false, true
	default:
		return false, false
	}
}
