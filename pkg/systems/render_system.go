package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/armadness/pkg/components"
	"github.com/gonewx/armadness/pkg/config"
	"github.com/gonewx/armadness/pkg/ecs"
	"github.com/gonewx/armadness/pkg/tracking"
	"github.com/gonewx/armadness/pkg/types"
)

// Camera 透视投影相机
type Camera struct {
	View       mgl64.Mat4
	Projection mgl64.Mat4
	Width      float64
	Height     float64

	// 距离 1 米处，1 米对应的屏幕像素
	pixelsPerMeter float64
}

// NewCamera 根据位姿与屏幕尺寸创建相机
func NewCamera(pose tracking.Pose, width, height float64) Camera {
	fovY := mgl64.DegToRad(config.CameraFovYDegrees)
	return Camera{
		View:           pose.View(),
		Projection:     mgl64.Perspective(fovY, width/height, config.CameraNear, config.CameraFar),
		Width:          width,
		Height:         height,
		pixelsPerMeter: (height / 2) / math.Tan(fovY/2),
	}
}

// Project 把世界坐标投影到屏幕
// 返回屏幕坐标、到相机的深度；点在相机后方或超出远平面时 ok 为 false
func (c Camera) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	clip := c.Projection.Mul4(c.View).Mul4x1(p.Vec4(1))
	w := clip.W()
	if w < config.CameraNear || w > config.CameraFar {
		return 0, 0, 0, false
	}
	ndcX, ndcY := clip.X()/w, clip.Y()/w
	x = (ndcX + 1) / 2 * c.Width
	y = (1 - ndcY) / 2 * c.Height
	return x, y, w, true
}

// ScreenRadius 世界半径在给定深度下的屏幕半径
func (c Camera) ScreenRadius(radius, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	return radius * c.pixelsPerMeter / depth
}

var (
	colorTarget     = color.RGBA{R: 220, G: 230, B: 240, A: 255}
	colorShark      = color.RGBA{R: 90, G: 120, B: 150, A: 255}
	colorBanana     = color.RGBA{R: 250, G: 220, B: 60, A: 255}
	colorAxe        = color.RGBA{R: 150, G: 110, B: 80, A: 255}
	colorFin        = color.RGBA{R: 40, G: 60, B: 80, A: 255}
	colorCrosshair  = color.RGBA{R: 255, G: 255, B: 255, A: 200}
	colorBackground = color.RGBA{R: 24, G: 28, B: 40, A: 255}
)

// RenderSystem 以透视投影把实体画成圆点
// 没有网格渲染：靶子、鲨鱼、投射物用颜色和大小区分
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{entityManager: em}
}

type drawItem struct {
	x, y, r float64
	depth   float64
	clr     color.RGBA
	spin    float64 // 鲨鱼背鳍的朝向
	fin     bool
}

// Draw 绘制一帧；pose 不可用时只画背景和准星
func (s *RenderSystem) Draw(screen *ebiten.Image, pose tracking.Pose, poseOK bool) {
	screen.Fill(colorBackground)

	bounds := screen.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())

	if poseOK {
		cam := NewCamera(pose, width, height)
		items := s.collect(cam)

		// 远处先画
		sort.Slice(items, func(i, j int) bool { return items[i].depth > items[j].depth })
		for _, it := range items {
			vector.DrawFilledCircle(screen, float32(it.x), float32(it.y), float32(it.r), it.clr, true)
			if it.fin {
				fx := it.x + math.Cos(it.spin)*it.r*0.7
				fy := it.y - it.r*0.7
				vector.StrokeLine(screen, float32(it.x), float32(it.y), float32(fx), float32(fy), float32(math.Max(1, it.r/4)), colorFin, true)
			}
		}
	}

	drawCrosshair(screen, width/2, height/2)
}

func (s *RenderSystem) collect(cam Camera) []drawItem {
	em := s.entityManager
	var items []drawItem

	for _, id := range ecs.GetEntitiesWith2[*components.TransformComponent, *components.PhysicsBodyComponent](em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		body, _ := ecs.GetComponent[*components.PhysicsBodyComponent](em, id)

		x, y, depth, ok := cam.Project(tr.Position)
		if !ok {
			continue
		}

		it := drawItem{x: x, y: y, depth: depth, r: math.Max(1.5, cam.ScreenRadius(body.Radius, depth)), spin: tr.Yaw}
		kind, _ := ecs.GetComponent[*components.EntityKindComponent](em, id)
		switch {
		case kind == nil:
			it.clr = colorTarget
		case kind.Kind == types.KindShark:
			it.clr = colorShark
			it.fin = true
		case kind.Kind == types.KindProjectile && kind.Projectile == types.ProjectileAxe:
			it.clr = colorAxe
		case kind.Kind == types.KindProjectile:
			it.clr = colorBanana
		default:
			it.clr = colorTarget
		}
		items = append(items, it)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.TransformComponent, *components.ParticleComponent](em) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)

		x, y, depth, ok := cam.Project(tr.Position)
		if !ok {
			continue
		}
		clr := p.Color
		clr.A = uint8(255 * p.Alpha())
		items = append(items, drawItem{x: x, y: y, depth: depth, r: math.Max(1, p.Size/depth), clr: clr})
	}

	return items
}

func drawCrosshair(screen *ebiten.Image, cx, cy float64) {
	const size = 10
	vector.StrokeLine(screen, float32(cx-size), float32(cy), float32(cx+size), float32(cy), 2, colorCrosshair, true)
	vector.StrokeLine(screen, float32(cx), float32(cy-size), float32(cx), float32(cy+size), 2, colorCrosshair, true)
}
