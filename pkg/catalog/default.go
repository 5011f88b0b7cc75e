package catalog

// DefaultCatalog returns a minimal but complete built-in catalog —
// enough tiles, monsters, a horde, a dungeon profile, and item-gen
// weights to run levelgen.Generate and a live session — for callers
// that don't want to ship a YAML data file (e.g. cmd/dungeoncore's
// no-config quick-start path). Grounded on
// pkg/levelgen/levelgen_test.go's testCatalog() helper, promoted from
// a test fixture to a production default with a broader tile/monster
// roster.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Tiles: map[string]*TileInfo{
			"floor":      {Name: "floor"},
			"wall":       {Name: "wall", Flags: TileObstructsPassability | TileObstructsDiagonal},
			"door":       {Name: "door", Flags: TileObstructsDiagonal},
			"secretDoor": {Name: "secretDoor", Flags: TileObstructsPassability | TileIsSecretDoor},
			"lever":      {Name: "lever", Flags: TilePromotesOnPlayerEntry | TileVanishesUponPromotion},
			"chasm":      {Name: "chasm", Flags: TileAutoDescent},
			"bog":        {Name: "bog"},
		},
		Monsters: map[string]*MonsterInfo{
			"rat":       {Name: "rat", Glyph: 'r', MaxHP: 6, Damage: DamageRange{Lower: 1, Upper: 2, ClumpFactor: 1}, Defense: 0, Accuracy: 60, Speed: 100},
			"kobold":    {Name: "kobold", Glyph: 'k', MaxHP: 9, Damage: DamageRange{Lower: 1, Upper: 3, ClumpFactor: 1}, Defense: 5, Accuracy: 70, Speed: 100},
			"jackal":    {Name: "jackal", Glyph: 'j', MaxHP: 8, Damage: DamageRange{Lower: 2, Upper: 4, ClumpFactor: 1}, Defense: 10, Accuracy: 70, Speed: 50},
			"goblin":    {Name: "goblin", Glyph: 'g', MaxHP: 15, Damage: DamageRange{Lower: 3, Upper: 7, ClumpFactor: 1}, Defense: 20, Accuracy: 70, Speed: 100},
			"eel":       {Name: "eel", Glyph: 'e', MaxHP: 18, Damage: DamageRange{Lower: 3, Upper: 12, ClumpFactor: 1}, Defense: 0, Accuracy: 70, Speed: 100},
			"pinkJelly": {Name: "pinkJelly", Glyph: 'j', MaxHP: 50, Damage: DamageRange{Lower: 1, Upper: 3, ClumpFactor: 1}, Defense: 0, Accuracy: 60, Speed: 100},
		},
		Hordes: []Horde{
			{Name: "rat pack", LeaderType: "rat", Frequency: 15, MinLevel: 1, MaxLevel: 6,
				Members: []HordeMember{{MemberType: "rat", Count: CountRange{Lower: 1, Upper: 3, ClumpFactor: 1}}}},
			{Name: "kobold patrol", LeaderType: "kobold", Frequency: 12, MinLevel: 1, MaxLevel: 8,
				Members: []HordeMember{{MemberType: "kobold", Count: CountRange{Lower: 1, Upper: 2, ClumpFactor: 1}}}},
			{Name: "jackal pack", LeaderType: "jackal", Frequency: 10, MinLevel: 2, MaxLevel: 9,
				Members: []HordeMember{{MemberType: "jackal", Count: CountRange{Lower: 2, Upper: 4, ClumpFactor: 2}}}},
			{Name: "goblin war party", LeaderType: "goblin", Frequency: 8, MinLevel: 4, MaxLevel: 14,
				Members: []HordeMember{{MemberType: "goblin", Count: CountRange{Lower: 1, Upper: 3, ClumpFactor: 1}}}},
			{Name: "lone jelly", LeaderType: "pinkJelly", Frequency: 5, MinLevel: 3, MaxLevel: 15,
				Members: []HordeMember{{MemberType: "pinkJelly", Count: CountRange{Lower: 1, Upper: 1, ClumpFactor: 1}}}},
		},
		Profiles: []DungeonProfile{
			{Name: "shallow", MinDepth: 1, MaxDepth: 8,
				RoomFrequency:  map[string]int{"small": 40, "circular": 20, "cross": 20, "chunky": 20},
				CorridorChance: 50},
			{Name: "mid", MinDepth: 9, MaxDepth: 18,
				RoomFrequency:  map[string]int{"small": 25, "circular": 25, "cross": 25, "chunky": 25},
				CorridorChance: 40},
			{Name: "deep", MinDepth: 19, MaxDepth: DeepestLevelBound,
				RoomFrequency:  map[string]int{"circular": 30, "cross": 30, "chunky": 40},
				CorridorChance: 30},
		},
		Items: map[string]map[string]*ItemDef{
			"weapon": {
				"dagger":    {Name: "dagger", Damage: DamageRange{Lower: 2, Upper: 4, ClumpFactor: 1}, StrengthReq: 10},
				"sword":     {Name: "sword", Damage: DamageRange{Lower: 7, Upper: 9, ClumpFactor: 1}, StrengthReq: 14},
				"broadsword": {Name: "broadsword", Damage: DamageRange{Lower: 9, Upper: 22, ClumpFactor: 2}, StrengthReq: 19},
			},
			"armor": {
				"leather": {Name: "leather", ArmorValue: 30, StrengthReq: 10},
				"banded":  {Name: "banded", ArmorValue: 70, StrengthReq: 15},
				"plate":   {Name: "plate", ArmorValue: 110, StrengthReq: 19},
			},
			"food": {
				"mango": {Name: "mango"},
				"ration": {Name: "ration"},
			},
		},
		ItemGenWeights: map[string]int{
			"food": 15, "weapon": 15, "armor": 15, "potion": 25, "scroll": 20, "wand": 5, "staff": 5,
		},
	}
	return c
}

// DeepestLevelBound mirrors model.DeepestLevel without importing
// package model, avoiding an import cycle (catalog is the lower-level
// package model itself depends on).
const DeepestLevelBound = 40
