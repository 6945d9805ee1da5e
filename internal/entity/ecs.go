// internal/entity/ecs.go
package entity

import (
	"go-naval-defense/internal/component"
	"go-naval-defense/internal/types"
	"go-naval-defense/internal/utils"
)

// ECS is the simulation context of one run: ordered entity collections with
// id indexes, the session scalars, the id generator and the run's PRNG.
// Independent ECS values never share state.
type ECS struct {
	GameTime float64
	NextID   types.EntityID
	Rng      *utils.PRNGService

	Towers      []*component.Tower
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile

	towerIndex map[types.EntityID]*component.Tower
	enemyIndex map[types.EntityID]*component.Enemy

	Wave     *component.Wave
	Session  *component.Session
	Summons  []*component.BossSummon
	Upgrades map[component.UpgradeKey]int

	Commands  []component.Command
	Selection []types.EntityID

	HitBlips []*component.HitBlip
	Floaters []*component.Floater
}

func NewECS(seed uint32) *ECS {
	return &ECS{
		NextID:     1,
		Rng:        utils.NewPRNGService(seed),
		towerIndex: make(map[types.EntityID]*component.Tower),
		enemyIndex: make(map[types.EntityID]*component.Enemy),
		Wave:       &component.Wave{},
		Session: &component.Session{
			Speed:           1,
			HPMul:           1,
			InterestEnabled: true,
		},
		Upgrades: make(map[component.UpgradeKey]int),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

func (ecs *ECS) AddTower(t *component.Tower) {
	ecs.Towers = append(ecs.Towers, t)
	ecs.towerIndex[t.ID] = t
}

func (ecs *ECS) Tower(id types.EntityID) (*component.Tower, bool) {
	t, ok := ecs.towerIndex[id]
	return t, ok
}

// RemoveTowers drops the given towers, keeping the order of the rest.
func (ecs *ECS) RemoveTowers(ids ...types.EntityID) {
	drop := make(map[types.EntityID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := ecs.towerIndex[id]; ok {
			drop[id] = struct{}{}
			delete(ecs.towerIndex, id)
		}
	}
	if len(drop) == 0 {
		return
	}
	kept := ecs.Towers[:0]
	for _, t := range ecs.Towers {
		if _, gone := drop[t.ID]; !gone {
			kept = append(kept, t)
		}
	}
	clearTail(ecs.Towers, len(kept))
	ecs.Towers = kept
	ecs.pruneSelection()
}

func (ecs *ECS) AddEnemy(e *component.Enemy) {
	ecs.Enemies = append(ecs.Enemies, e)
	ecs.enemyIndex[e.ID] = e
}

func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	return e, ok
}

// RemoveDeadEnemies drops every enemy with hp <= 0 and returns how many were removed.
func (ecs *ECS) RemoveDeadEnemies() int {
	kept := ecs.Enemies[:0]
	removed := 0
	for _, e := range ecs.Enemies {
		if e.Alive() {
			kept = append(kept, e)
			continue
		}
		delete(ecs.enemyIndex, e.ID)
		removed++
	}
	clearTail(ecs.Enemies, len(kept))
	ecs.Enemies = kept
	return removed
}

func (ecs *ECS) AddProjectile(p *component.Projectile) {
	ecs.Projectiles = append(ecs.Projectiles, p)
}

// RemoveExpiredProjectiles drops every projectile whose ttl ran out.
func (ecs *ECS) RemoveExpiredProjectiles() {
	kept := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if !p.Expired() {
			kept = append(kept, p)
		}
	}
	clearTail(ecs.Projectiles, len(kept))
	ecs.Projectiles = kept
}

// ClearCombat removes every enemy, projectile and pending command.
func (ecs *ECS) ClearCombat() {
	ecs.Enemies = nil
	ecs.enemyIndex = make(map[types.EntityID]*component.Enemy)
	ecs.Projectiles = nil
	ecs.Commands = nil
}

// UpgradeLevel reads the shared upgrade level of a key.
func (ecs *ECS) UpgradeLevel(key component.UpgradeKey) int {
	return ecs.Upgrades[key]
}

// SetUpgradeLevel writes a shared upgrade level and returns how many live
// towers read from that key.
func (ecs *ECS) SetUpgradeLevel(key component.UpgradeKey, level int) int {
	if level < 0 {
		level = 0
	}
	ecs.Upgrades[key] = level
	n := 0
	for _, t := range ecs.Towers {
		if t.UpgradeKey() == key {
			n++
		}
	}
	return n
}

// Summon returns the unlock table row of a boss key.
func (ecs *ECS) Summon(key string) (*component.BossSummon, bool) {
	for _, s := range ecs.Summons {
		if s.Key == key {
			return s, true
		}
	}
	return nil, false
}

// SelectedTowers resolves the selection to live towers.
func (ecs *ECS) SelectedTowers() []*component.Tower {
	var out []*component.Tower
	for _, id := range ecs.Selection {
		if t, ok := ecs.towerIndex[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

func (ecs *ECS) pruneSelection() {
	kept := ecs.Selection[:0]
	for _, id := range ecs.Selection {
		if _, ok := ecs.towerIndex[id]; ok {
			kept = append(kept, id)
		}
	}
	ecs.Selection = kept
}

func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
