// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// MaxDeltaTime bounds a single frame step so a backgrounded window does not
	// teleport every entity on resume.
	MaxDeltaTime = 0.2

	WorldWidth    = 2400.0
	WorldHeight   = 1200.0
	GridCols      = 8
	GridRows      = 5
	GridCellSize  = 120.0
	OrbitBaseMul  = 0.42
	OrbitMul      = 0.96
	InnerOrbitMul = 0.9

	BucketCellSize          = 96.0
	DefaultEnemySize        = 12.0
	DefaultProjectileRadius = 6.0

	InnerRingMargin  = 32.0
	TowerMoveSpeed   = 160.0
	TowerTurnRate    = 4.0
	TowerHP          = 100.0
	TowerSpriteSize  = 36.0
	TowerMinSprite   = 16.0
	ColliderFactor   = 0.25
	SelectionFactor  = 0.35
	MinTowerCooldown = 0.1
	RollJitterMin    = 18.0
	RollJitterMax    = 30.0

	ProjectileTTL         = 2.0
	ProjectileSpeedFactor = 1.5
	MaxLeadTime           = 1.8

	MaxFusionTier = 3

	DockyardCapacity = 8

	EnemyMinRadiusRatio  = 0.4
	RadialMinRadiusRatio = 0.6
	BossRadiusRatio      = 0.9
	BossSize             = 28.0
	BossInitialCooldown  = 3.0
	BossMinCooldown      = 1.5
	BossSummonOffset     = 40.0

	HitBlipDuration  = 0.25
	FloaterDuration  = 0.8
	MaxVisualEffects = 256

	StatusDefaultDuration = 2.0
)

var (
	BackgroundColor = color.RGBA{12, 24, 38, 255}
	OrbitColor      = color.RGBA{70, 100, 120, 220}
	InnerRingColor  = color.RGBA{40, 70, 90, 160}
	EnemyColor      = color.RGBA{210, 80, 70, 255}
	BossColor       = color.RGBA{240, 40, 60, 255}
	ProjectileColor = color.RGBA{250, 230, 150, 255}
	SelectionColor  = color.RGBA{255, 255, 255, 200}
	TextLightColor  = color.RGBA{235, 240, 245, 255}
	TextAlertColor  = color.RGBA{255, 120, 100, 255}
	UIColorBlue     = color.RGBA{80, 160, 255, 255}

	// RarityColors is indexed by defs.Rarity.
	RarityColors = []color.RGBA{
		{180, 180, 180, 255},
		{80, 160, 255, 255},
		{170, 90, 255, 255},
		{255, 180, 40, 255},
		{255, 80, 160, 255},
		{80, 255, 220, 255},
	}
)
