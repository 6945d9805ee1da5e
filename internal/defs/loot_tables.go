// internal/defs/loot_tables.go
package defs

// BossLoot is the bonus paid for a boss kill on top of its gold reward.
type BossLoot struct {
	MinLevel int
	Essence  int
	Gold     int
}

// BossLootTable is ordered from the highest level bucket down.
var BossLootTable = []BossLoot{
	{MinLevel: 40, Essence: 3},
	{MinLevel: 30, Essence: 2, Gold: 30},
	{MinLevel: 20, Essence: 2},
	{MinLevel: 10, Essence: 1, Gold: 20},
	{MinLevel: 0, Essence: 1},
}

// LootForLevel returns the bonus bucket for a boss level.
func LootForLevel(level int) BossLoot {
	for _, l := range BossLootTable {
		if level >= l.MinLevel {
			return l
		}
	}
	return BossLootTable[len(BossLootTable)-1]
}
