// internal/defs/enemies.go
package defs

// EnemyArchetype is a per-era enemy flavour applied on top of round-scaled stats.
type EnemyArchetype struct {
	ID        string  `yaml:"id"`
	Name      string  `yaml:"name"`
	Era       Era     `yaml:"era"`
	HPMul     float64 `yaml:"hp_mul"`
	SpeedMul  float64 `yaml:"speed_mul"`
	Defense   float64 `yaml:"defense"`
	Size      float64 `yaml:"size"`
	RewardMul float64 `yaml:"reward_mul"`
	Color     string  `yaml:"color"`
}

// BossDefinition names the wave boss of an era.
type BossDefinition struct {
	Key   string `yaml:"key"`
	Name  string `yaml:"name"`
	Era   Era    `yaml:"era"`
	Color string `yaml:"color"`
}
