// internal/defs/types.go
package defs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Rarity is the ordered quality tier of a unit.
type Rarity int

const (
	Common Rarity = iota
	Rare
	Unique
	Legendary
	Mythic
	Primordial
)

// RarityOrder lists every rarity from lowest to highest.
var RarityOrder = []Rarity{Common, Rare, Unique, Legendary, Mythic, Primordial}

var rarityNames = []string{"common", "rare", "unique", "legendary", "mythic", "primordial"}

func (r Rarity) String() string {
	if r < Common || r > Primordial {
		return fmt.Sprintf("rarity(%d)", int(r))
	}
	return rarityNames[r]
}

// ParseRarity resolves a rarity by its lowercase name.
func ParseRarity(s string) (Rarity, error) {
	for i, name := range rarityNames {
		if name == s {
			return Rarity(i), nil
		}
	}
	return Common, fmt.Errorf("unknown rarity %q", s)
}

func (r *Rarity) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseRarity(node.Value)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Era gates which unit definitions can be drawn.
type Era int

const (
	EraAncient Era = iota
	EraJoseon
	EraIronclad
	EraModern
)

// EraOrder lists every era in progression order.
var EraOrder = []Era{EraAncient, EraJoseon, EraIronclad, EraModern}

var eraNames = []string{"ancient", "joseon", "ironclad", "modern"}

func (e Era) String() string {
	if e < EraAncient || e > EraModern {
		return fmt.Sprintf("era(%d)", int(e))
	}
	return eraNames[e]
}

// Last reports whether e is the final era.
func (e Era) Last() bool {
	return e == EraOrder[len(EraOrder)-1]
}

func ParseEra(s string) (Era, error) {
	for i, name := range eraNames {
		if name == s {
			return Era(i), nil
		}
	}
	return EraAncient, fmt.Errorf("unknown era %q", s)
}

func (e *Era) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := ParseEra(node.Value)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// WeaponType selects the projectile style, the fire cue and the fusion bonus.
type WeaponType string

const (
	WeaponNone     WeaponType = ""
	WeaponBow      WeaponType = "bow"
	WeaponBallista WeaponType = "ballista"
	WeaponArquebus WeaponType = "arquebus"
	WeaponCannon   WeaponType = "cannon"
	WeaponRifle    WeaponType = "rifle"
	WeaponNavalGun WeaponType = "naval_gun"
	WeaponMissile  WeaponType = "missile"
)

// ProjectileType selects which damage semantics a projectile applies on contact.
type ProjectileType int

const (
	ProjectileNormal ProjectileType = iota
	ProjectilePiercing
	ProjectileExplosive
)

func (p ProjectileType) String() string {
	switch p {
	case ProjectilePiercing:
		return "piercing"
	case ProjectileExplosive:
		return "explosive"
	default:
		return "normal"
	}
}

func (p *ProjectileType) UnmarshalYAML(node *yaml.Node) error {
	switch node.Value {
	case "normal", "":
		*p = ProjectileNormal
	case "piercing":
		*p = ProjectilePiercing
	case "explosive":
		*p = ProjectileExplosive
	default:
		return fmt.Errorf("unknown projectile type %q", node.Value)
	}
	return nil
}

// DefaultProjectileType is used when a unit definition does not name one.
func DefaultProjectileType(w WeaponType) ProjectileType {
	switch w {
	case WeaponMissile, WeaponNavalGun:
		return ProjectileExplosive
	default:
		return ProjectileNormal
	}
}

// FusedProjectileType is the projectile type forced on units of fusion tier 2
// and above.
func FusedProjectileType(w WeaponType) ProjectileType {
	switch w {
	case WeaponCannon, WeaponMissile, WeaponNavalGun:
		return ProjectileExplosive
	default:
		return ProjectilePiercing
	}
}
