// pkg/render/scene.go
package render

import (
	"fmt"
	"image/color"
	"math"

	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/entity"
	"go-naval-defense/internal/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SceneRenderer draws the battlefield with flat vector shapes. The static
// layers are rendered once into an offscreen image.
type SceneRenderer struct {
	world     config.World
	camera    Camera
	palette   Palette
	face      font.Face
	mapImage  *ebiten.Image
	enemyTint map[string]color.RGBA
}

func NewSceneRenderer(world config.World, camera Camera, palette Palette, face font.Face) *SceneRenderer {
	return &SceneRenderer{
		world:     world,
		camera:    camera,
		palette:   palette,
		face:      face,
		enemyTint: make(map[string]color.RGBA),
	}
}

func (r *SceneRenderer) Camera() Camera {
	return r.camera
}

// RenderMapImage pre-renders the background, placement grid and orbits.
func (r *SceneRenderer) RenderMapImage() {
	img := ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	img.Fill(r.palette.Background)

	w := r.world
	gx, gy := r.camera.WorldToScreen(w.GridX, w.GridY)
	cell := r.camera.Len(w.CellSize)
	cols := int(w.GridWidth / w.CellSize)
	rows := int(w.GridHeight / w.CellSize)
	for c := 0; c <= cols; c++ {
		x := gx + float32(c)*cell
		vector.StrokeLine(img, x, gy, x, gy+float32(rows)*cell, 1, r.palette.Grid, false)
	}
	for row := 0; row <= rows; row++ {
		y := gy + float32(row)*cell
		vector.StrokeLine(img, gx, y, gx+float32(cols)*cell, y, 1, r.palette.Grid, false)
	}

	r.strokeSquare(img, w.OrbitRadius, 2, r.palette.Orbit)
	r.strokeSquare(img, w.InnerOrbitRadius, 1.5, r.palette.InnerRing)
	r.mapImage = img
}

func (r *SceneRenderer) strokeSquare(dst *ebiten.Image, half float64, width float32, clr color.RGBA) {
	x, y := r.camera.WorldToScreen(r.world.CenterX-half, r.world.CenterY-half)
	side := r.camera.Len(2 * half)
	vector.StrokeRect(dst, x, y, side, side, width, clr, true)
}

// Draw renders the current simulation state.
func (r *SceneRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	if r.mapImage == nil {
		r.RenderMapImage()
	}
	screen.DrawImage(r.mapImage, nil)

	selected := make(map[types.EntityID]bool, len(ecs.Selection))
	for _, id := range ecs.Selection {
		selected[id] = true
	}
	for _, t := range ecs.Towers {
		r.drawTower(screen, t, selected[t.ID])
	}
	for _, e := range ecs.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, p := range ecs.Projectiles {
		x, y := r.camera.WorldToScreen(p.X, p.Y)
		vector.DrawFilledCircle(screen, x, y, max(1.5, r.camera.Len(p.Size/2)), r.palette.Projectile, true)
	}
	r.drawEffects(screen, ecs)
}

func (r *SceneRenderer) drawTower(screen *ebiten.Image, t *component.Tower, selected bool) {
	x, y := r.camera.WorldToScreen(t.X, t.Y)
	clr := r.palette.Text
	if int(t.Rarity) < len(r.palette.Rarity) {
		clr = r.palette.Rarity[t.Rarity]
	}
	size := r.camera.Len(math.Max(config.TowerMinSprite, t.SpriteSize) / 2)
	vector.DrawFilledCircle(screen, x, y, size, DarkenColor(clr), true)
	vector.StrokeCircle(screen, x, y, size, 1.5, clr, true)

	hx := x + float32(math.Cos(t.Heading))*size*1.4
	hy := y + float32(math.Sin(t.Heading))*size*1.4
	vector.StrokeLine(screen, x, y, hx, hy, 2, clr, true)

	for i := 0; i < t.FusionTier; i++ {
		px := x - size + float32(i)*5
		vector.DrawFilledRect(screen, px, y+size+2, 3, 3, clr, false)
	}
	if selected {
		vector.StrokeCircle(screen, x, y, r.camera.Len(t.SelectionRadius)+3, 1, r.palette.Selection, true)
		vector.StrokeCircle(screen, x, y, r.camera.Len(t.Range), 1, WithAlpha(r.palette.Selection, 0.25), true)
	}
}

func (r *SceneRenderer) drawEnemy(screen *ebiten.Image, e *component.Enemy) {
	x, y := r.camera.WorldToScreen(e.X, e.Y)
	clr := r.palette.Enemy
	if e.IsBoss() {
		clr = r.palette.Boss
	}
	if e.Color != "" {
		tint, ok := r.enemyTint[e.Color]
		if !ok {
			tint = HexOr(e.Color, clr)
			r.enemyTint[e.Color] = tint
		}
		clr = tint
	}
	size := r.camera.Len(e.Size)
	vector.DrawFilledCircle(screen, x, y, size, clr, true)

	if e.MaxHP > 0 && e.HP < e.MaxHP {
		w := size * 2
		frac := float32(math.Max(0, e.HP/e.MaxHP))
		vector.DrawFilledRect(screen, x-size, y-size-5, w, 3, DarkenColor(clr), false)
		vector.DrawFilledRect(screen, x-size, y-size-5, w*frac, 3, r.palette.Text, false)
	}
	if e.IsBoss() && r.face != nil {
		text.Draw(screen, e.Name, r.face, int(x-size), int(y-size-8), r.palette.Text)
	}
}

func (r *SceneRenderer) drawEffects(screen *ebiten.Image, ecs *entity.ECS) {
	for _, b := range ecs.HitBlips {
		x, y := r.camera.WorldToScreen(b.X, b.Y)
		k := b.Timer / b.Duration
		vector.StrokeCircle(screen, x, y, 3+float32(k)*8, 1, WithAlpha(r.palette.Projectile, 1-k), true)
	}
	if r.face == nil {
		return
	}
	for _, f := range ecs.Floaters {
		x, y := r.camera.WorldToScreen(f.X, f.Y)
		text.Draw(screen, fmt.Sprint(f.Amount), r.face, int(x), int(y), WithAlpha(r.palette.Text, 1-f.Progress()))
	}
}
