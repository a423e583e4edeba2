// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

// EntityKind 定义可生成实体的种类
// 计分档位只由种类决定，与显示名称无关
type EntityKind int

const (
	// KindUnknown 未知种类（非法值）
	KindUnknown EntityKind = iota
	// KindTarget 普通靶子（浴缸）
	KindTarget
	// KindShark 高价值靶子（鲨鱼）
	KindShark
	// KindProjectile 玩家发射的投射物
	KindProjectile
)

// String 返回实体种类的字符串表示
func (k EntityKind) String() string {
	switch k {
	case KindTarget:
		return "Target"
	case KindShark:
		return "Shark"
	case KindProjectile:
		return "Projectile"
	default:
		return "Unknown"
	}
}

// IsTarget 判断是否为可被击中的靶子（普通或高价值）
func (k EntityKind) IsTarget() bool {
	return k == KindTarget || k == KindShark
}

// 计分常量
const (
	// ScoreBase 击中普通靶子得分
	ScoreBase = 1
	// ScoreHighValue 击中鲨鱼得分
	ScoreHighValue = 5
)

// ScoreFor 根据碰撞双方的种类计算得分
// 任意一方为鲨鱼得 5 分，否则得 1 分
func ScoreFor(a, b EntityKind) int {
	if a == KindShark || b == KindShark {
		return ScoreHighValue
	}
	return ScoreBase
}

// ProjectileKind 定义投射物变体
type ProjectileKind int

const (
	// ProjectileBanana 香蕉
	ProjectileBanana ProjectileKind = iota
	// ProjectileAxe 斧头
	ProjectileAxe
)

// String 返回投射物变体的字符串表示
func (p ProjectileKind) String() string {
	switch p {
	case ProjectileBanana:
		return "Banana"
	case ProjectileAxe:
		return "Axe"
	default:
		return "Unknown"
	}
}

// ParseProjectileKind 将配置中的名称解析为投射物变体
func ParseProjectileKind(name string) (ProjectileKind, bool) {
	switch name {
	case "banana", "Banana":
		return ProjectileBanana, true
	case "axe", "Axe":
		return ProjectileAxe, true
	default:
		return 0, false
	}
}
