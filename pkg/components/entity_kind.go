package components

import "github.com/gonewx/armadness/pkg/types"

// EntityKindComponent 实体种类标签
// 计分只看 Kind，不看 NameComponent
type EntityKindComponent struct {
	Kind       types.EntityKind
	Projectile types.ProjectileKind // 仅当 Kind == KindProjectile 时有效
}

// NameComponent 显示名称与模型资源ID（只用于日志和渲染）
type NameComponent struct {
	DisplayName string
	ModelID     string // 如 "MODEL_SHARK"
}
