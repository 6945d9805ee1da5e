// internal/system/collision.go
package system

import (
	"go-naval-defense/internal/component"
	"go-naval-defense/internal/config"
	"go-naval-defense/internal/entity"
	"go-naval-defense/pkg/spatial"
)

// EnemyBuckets is the per-frame broad phase over living enemies.
type EnemyBuckets struct {
	ecs  *entity.ECS
	grid *spatial.Buckets[*component.Enemy]
}

func NewEnemyBuckets(ecs *entity.ECS) *EnemyBuckets {
	return &EnemyBuckets{ecs: ecs, grid: spatial.New[*component.Enemy](config.BucketCellSize)}
}

// Populate rebuilds the grid from living enemies.
func (b *EnemyBuckets) Populate() {
	b.grid.Clear()
	for _, e := range b.ecs.Enemies {
		if !e.Alive() {
			continue
		}
		size := e.Size
		if size <= 0 {
			size = config.DefaultEnemySize
		}
		b.grid.Insert(e, e.X, e.Y, size)
	}
}

// Query returns the enemies sharing a cell with the projectile's box. An empty
// grid is repopulated first.
func (b *EnemyBuckets) Query(p *component.Projectile) []*component.Enemy {
	if b.grid.Empty() {
		b.Populate()
	}
	r := p.Radius
	if r <= 0 {
		r = config.DefaultProjectileRadius
	}
	return b.grid.Query(p.X, p.Y, r)
}

// Invalidate drops the grid until the next populate.
func (b *EnemyBuckets) Invalidate() {
	b.grid.Clear()
}

// Populated reports whether the grid currently holds any enemy.
func (b *EnemyBuckets) Populated() bool {
	return !b.grid.Empty()
}
