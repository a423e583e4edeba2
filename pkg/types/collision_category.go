package types

import "math/bits"

// CollisionCategory 碰撞类别位掩码
// 物理世界用它决定哪些实体对需要产生接触通知
type CollisionCategory uint32

const (
	// CategoryNone 空掩码
	CategoryNone CollisionCategory = 0
	// CategoryProjectile 投射物
	CategoryProjectile CollisionCategory = 1 << 0
	// CategoryTarget 靶子
	CategoryTarget CollisionCategory = 1 << 1
	// CategoryOther 其他（场景装饰等）
	CategoryOther CollisionCategory = 1 << 2
)

// Has 判断掩码是否包含指定类别的任意一位
func (c CollisionCategory) Has(other CollisionCategory) bool {
	return c&other != 0
}

// IsSingle 判断掩码是否恰好只有一位被置位
// 每个存活实体的 Category 都必须满足这一点
func (c CollisionCategory) IsSingle() bool {
	return bits.OnesCount32(uint32(c)) == 1
}

// String 返回类别名称
func (c CollisionCategory) String() string {
	switch c {
	case CategoryNone:
		return "None"
	case CategoryProjectile:
		return "Projectile"
	case CategoryTarget:
		return "Target"
	case CategoryOther:
		return "Other"
	default:
		return "Mixed"
	}
}
