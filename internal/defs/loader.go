// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/units.yaml
var unitsYAML []byte

//go:embed data/enemies.yaml
var enemiesYAML []byte

// Library is the static data of a run: units, enemy archetypes and bosses.
type Library struct {
	Units      []UnitDefinition
	Archetypes map[Era][]EnemyArchetype
	Bosses     []BossDefinition

	unitsByID map[string]UnitDefinition
	bossByKey map[string]BossDefinition
}

type enemyFile struct {
	Archetypes []EnemyArchetype `yaml:"archetypes"`
	Bosses     []BossDefinition `yaml:"bosses"`
}

// Load parses unit and enemy documents into a Library.
func Load(units, enemies []byte) (*Library, error) {
	var unitDefs []UnitDefinition
	if err := yaml.Unmarshal(units, &unitDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}
	var ef enemyFile
	if err := yaml.Unmarshal(enemies, &ef); err != nil {
		return nil, fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	lib := &Library{
		Units:      unitDefs,
		Archetypes: make(map[Era][]EnemyArchetype),
		Bosses:     ef.Bosses,
		unitsByID:  make(map[string]UnitDefinition, len(unitDefs)),
		bossByKey:  make(map[string]BossDefinition, len(ef.Bosses)),
	}
	for _, def := range unitDefs {
		if def.ID == "" {
			return nil, fmt.Errorf("unit definition %q has no id", def.Name)
		}
		if _, dup := lib.unitsByID[def.ID]; dup {
			return nil, fmt.Errorf("duplicate unit id %q", def.ID)
		}
		if def.FireRate <= 0 || def.Range <= 0 || def.ProjectileSpeed <= 0 {
			return nil, fmt.Errorf("unit %q: fire_rate, range and projectile_speed must be positive", def.ID)
		}
		lib.unitsByID[def.ID] = def
	}
	for _, a := range ef.Archetypes {
		lib.Archetypes[a.Era] = append(lib.Archetypes[a.Era], a)
	}
	for _, b := range ef.Bosses {
		lib.bossByKey[b.Key] = b
	}
	for _, era := range EraOrder {
		if lib.BossForEra(era).Key == "" {
			return nil, fmt.Errorf("no boss defined for era %s", era)
		}
	}
	return lib, nil
}

var (
	defaultOnce sync.Once
	defaultLib  *Library
	defaultErr  error
)

// Default returns the embedded library. It is parsed once and shared; callers
// must treat it as read-only.
func Default() (*Library, error) {
	defaultOnce.Do(func() {
		defaultLib, defaultErr = Load(unitsYAML, enemiesYAML)
	})
	return defaultLib, defaultErr
}

// MustDefault is Default for callers that cannot recover from broken embedded data.
func MustDefault() *Library {
	lib, err := Default()
	if err != nil {
		panic(err)
	}
	return lib
}

func (l *Library) Unit(id string) (UnitDefinition, bool) {
	def, ok := l.unitsByID[id]
	return def, ok
}

// UnitsFor returns every unit of an era and rarity in file order.
func (l *Library) UnitsFor(era Era, rarity Rarity) []UnitDefinition {
	var out []UnitDefinition
	for _, def := range l.Units {
		if def.Era == era && def.Rarity == rarity {
			out = append(out, def)
		}
	}
	return out
}

func (l *Library) ArchetypesFor(era Era) []EnemyArchetype {
	return l.Archetypes[era]
}

func (l *Library) Boss(key string) (BossDefinition, bool) {
	b, ok := l.bossByKey[key]
	return b, ok
}

// BossForEra returns the first boss declared for an era.
func (l *Library) BossForEra(era Era) BossDefinition {
	for _, b := range l.Bosses {
		if b.Era == era {
			return b
		}
	}
	return BossDefinition{}
}
