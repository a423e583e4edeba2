package systems

import (
	"log"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/armadness/pkg/components"
	"github.com/gonewx/armadness/pkg/config"
	"github.com/gonewx/armadness/pkg/ecs"
	"github.com/gonewx/armadness/pkg/types"
	"github.com/gonewx/armadness/pkg/world"
)

// 靶子的显示名称与模型ID
const (
	targetDisplayName = "bath"
	sharkDisplayName  = "shark"
	targetModelID     = "MODEL_BATH"
	sharkModelID      = "MODEL_SHARK"
)

// WorldPopulator 在回合开始时布置靶子
type WorldPopulator struct {
	world  *world.World
	config config.TargetConfig
}

// NewWorldPopulator 创建靶子生成器
func NewWorldPopulator(w *world.World, cfg config.TargetConfig) *WorldPopulator {
	return &WorldPopulator{world: w, config: cfg}
}

// IsHighValueIndex 判断第 index 个（从 1 开始）靶子是否为鲨鱼
// 第 10, 20, ... 个是鲨鱼；前 9 个永远不是
func IsHighValueIndex(index, interval int) bool {
	if interval <= 0 {
		return false
	}
	return index > 9 && index%interval == 0
}

// Populate 生成 config.Count 个靶子，返回它们的实体ID
func (p *WorldPopulator) Populate() []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, p.config.Count)
	min, max := p.config.SpawnMin.Vec3(), p.config.SpawnMax.Vec3()

	for i := 1; i <= p.config.Count; i++ {
		kind := types.KindTarget
		if IsHighValueIndex(i, p.config.HighValueInterval) {
			kind = types.KindShark
		}
		ids = append(ids, p.spawnTarget(kind, p.world.RandomPoint(min, max)))
	}

	log.Printf("[WorldPopulator] Spawned %d targets", len(ids))
	return ids
}

func (p *WorldPopulator) spawnTarget(kind types.EntityKind, pos mgl64.Vec3) ecs.EntityID {
	em := p.world.Entities
	id := em.CreateEntity()

	scale, radius := p.config.BaseScale, p.config.BaseRadius
	name, model := targetDisplayName, targetModelID
	if kind == types.KindShark {
		scale, radius = p.config.HighValueScale, p.config.HighValueRadius
		name, model = sharkDisplayName, sharkModelID
	}

	em.AddComponent(id, &components.EntityKindComponent{Kind: kind})
	em.AddComponent(id, &components.NameComponent{DisplayName: name, ModelID: model})
	em.AddComponent(id, &components.TransformComponent{Position: pos, Scale: scale})
	em.AddComponent(id, &components.PhysicsBodyComponent{
		Category:        types.CategoryTarget,
		ContactTestMask: types.CategoryProjectile,
		Mass:            1,
		Radius:          radius,
	})
	em.AddComponent(id, &components.SpinComponent{RadiansPerSecond: p.config.SpinRadiansPerSecond})

	return id
}

// CountKinds 统计场景中尚未被删除的普通靶子与鲨鱼数量
func CountKinds(em *ecs.EntityManager) (targets, sharks int) {
	for _, id := range ecs.GetEntitiesWith1[*components.EntityKindComponent](em) {
		kind, _ := ecs.GetComponent[*components.EntityKindComponent](em, id)
		switch kind.Kind {
		case types.KindTarget:
			targets++
		case types.KindShark:
			sharks++
		}
	}
	return targets, sharks
}
