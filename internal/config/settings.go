// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a run. Engine constants that never change
// between runs stay in config.go.
type Config struct {
	Wave       WaveConfig         `yaml:"wave"`
	Economy    EconomyConfig      `yaml:"economy"`
	Rarity     []RarityChance     `yaml:"rarity"`
	Difficulty []DifficultyPreset `yaml:"difficulty"`
}

type WaveConfig struct {
	MaxWaves          int     `yaml:"max_waves"`
	PrepDuration      float64 `yaml:"prep_duration"`
	WaveDuration      float64 `yaml:"wave_duration"`
	SpawnDuration     float64 `yaml:"spawn_duration"`
	SpawnCountBase    int     `yaml:"spawn_count_base"`
	SpawnCountGrowth  int     `yaml:"spawn_count_growth"`
	BossInterval      int     `yaml:"boss_interval"`
	BossSpawnDelay    float64 `yaml:"boss_spawn_delay"`
	BossGrace         float64 `yaml:"boss_grace"`
	SummonTimeout     float64 `yaml:"summon_timeout"`
	DefeatThreshold   int     `yaml:"defeat_threshold"`
	EnemyReward       int     `yaml:"enemy_reward"`
	BossReward        int     `yaml:"boss_reward"`
	BaseDefense       float64 `yaml:"base_defense"`
	DefenseGrowth     float64 `yaml:"defense_growth"`
	BossBaseDefense   float64 `yaml:"boss_base_defense"`
	BossDefenseGrowth float64 `yaml:"boss_defense_growth"`
	EarlyEaseRounds   int     `yaml:"early_ease_rounds"`
	EarlyEaseMin      float64 `yaml:"early_ease_min"`
	EarlyEaseStep     float64 `yaml:"early_ease_step"`
	SplashMaxRatio    float64 `yaml:"splash_max_ratio"`
	SplashMinRatio    float64 `yaml:"splash_min_ratio"`
}

type EconomyConfig struct {
	StartingGold      int            `yaml:"starting_gold"`
	RollBaseCost      int            `yaml:"roll_base_cost"`
	RollCostStep      int            `yaml:"roll_cost_step"`
	RollCostRounds    int            `yaml:"roll_cost_rounds"`
	EnhanceBaseCost   int            `yaml:"enhance_base_cost"`
	EnhanceCostStep   int            `yaml:"enhance_cost_step"`
	TierCosts         []int          `yaml:"tier_costs"`
	DockyardBaseCost  int            `yaml:"dockyard_base_cost"`
	DockyardCostStep  int            `yaml:"dockyard_cost_step"`
	InterestRate      float64        `yaml:"interest_rate"`
	InterestThreshold int            `yaml:"interest_threshold"`
	InterestMinimum   int            `yaml:"interest_minimum"`
	InterestCap       int            `yaml:"interest_cap"`
	SellValues        map[string]int `yaml:"sell_values"`
	PurchaseCosts     map[string]int `yaml:"purchase_costs"`
}

// RarityChance is one row of the roll table. Rows are evaluated in order.
type RarityChance struct {
	Rarity string  `yaml:"rarity"`
	Chance float64 `yaml:"chance"`
}

type DifficultyPreset struct {
	Key   string  `yaml:"key"`
	Label string  `yaml:"label"`
	HPMul float64 `yaml:"hp_mul"`
}

// Default returns the stock tuning.
func Default() *Config {
	return &Config{
		Wave: WaveConfig{
			MaxWaves:         50,
			PrepDuration:     15,
			WaveDuration:     90,
			SpawnDuration:    40,
			SpawnCountBase:   40,
			SpawnCountGrowth: 1,
			BossInterval:     10,
			BossSpawnDelay:   10,
			BossGrace:        15,
			SummonTimeout:    100,
			DefeatThreshold:  150,
			EnemyReward:      1,
			BossReward:       50,
			EarlyEaseRounds:  5,
			EarlyEaseMin:     0.6,
			EarlyEaseStep:    0.1,
			SplashMaxRatio:   0.8,
			SplashMinRatio:   0.4,
		},
		Economy: EconomyConfig{
			StartingGold:     50,
			RollBaseCost:     10,
			RollCostStep:     5,
			RollCostRounds:   5,
			EnhanceBaseCost:  3,
			EnhanceCostStep:  2,
			TierCosts:        []int{5, 5, 5, 5, 5},
			DockyardBaseCost: 2,
			DockyardCostStep: 8,
			InterestRate:     0.05,
			InterestCap:      50,
			SellValues:       map[string]int{"common": 3, "rare": 6, "unique": 20},
			PurchaseCosts:    map[string]int{"unique": 1, "legendary": 2, "mythic": 4, "primordial": 8},
		},
		Rarity: []RarityChance{
			{Rarity: "primordial", Chance: 0.0001},
			{Rarity: "mythic", Chance: 0.001},
			{Rarity: "legendary", Chance: 0.01},
			{Rarity: "unique", Chance: 0.10},
			{Rarity: "rare", Chance: 0.40},
			{Rarity: "common", Chance: 0.4889},
		},
		Difficulty: []DifficultyPreset{
			{Key: "normal", Label: "Normal", HPMul: 1},
			{Key: "hard", Label: "Hard", HPMul: 2},
			{Key: "extreme", Label: "Extreme", HPMul: 3},
		},
	}
}

// Load reads a YAML file and overlays it on Default. Keys absent from the file
// keep their default value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse overlays YAML bytes on Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects tunings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Wave.MaxWaves <= 0 {
		errs = append(errs, errors.New("wave.max_waves must be positive"))
	}
	if c.Wave.SpawnDuration <= 0 {
		errs = append(errs, errors.New("wave.spawn_duration must be positive"))
	}
	if c.Wave.BossInterval <= 0 {
		errs = append(errs, errors.New("wave.boss_interval must be positive"))
	}
	if c.Wave.DefeatThreshold <= 0 {
		errs = append(errs, errors.New("wave.defeat_threshold must be positive"))
	}
	if c.Wave.SplashMinRatio > c.Wave.SplashMaxRatio {
		errs = append(errs, errors.New("wave.splash_min_ratio exceeds splash_max_ratio"))
	}
	if len(c.Economy.TierCosts) == 0 {
		errs = append(errs, errors.New("economy.tier_costs must not be empty"))
	}
	if len(c.Rarity) == 0 {
		errs = append(errs, errors.New("rarity table must not be empty"))
	}
	if len(c.Difficulty) == 0 {
		errs = append(errs, errors.New("difficulty presets must not be empty"))
	}
	return errors.Join(errs...)
}

// DifficultyByKey returns the preset with the given key, falling back to the
// first preset.
func (c *Config) DifficultyByKey(key string) DifficultyPreset {
	for _, d := range c.Difficulty {
		if d.Key == key {
			return d
		}
	}
	return c.Difficulty[0]
}

// TierCost returns the era upgrade price for a tier index. Indices past the
// table reuse the last entry.
func (e EconomyConfig) TierCost(tierIndex int) int {
	if tierIndex < 0 {
		tierIndex = 0
	}
	if tierIndex >= len(e.TierCosts) {
		tierIndex = len(e.TierCosts) - 1
	}
	return e.TierCosts[tierIndex]
}
