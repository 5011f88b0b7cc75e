package catalog

// MonsterType indexes the monster catalog.
type MonsterType int

// DamageRange mirrors model.DamageRange; kept as its own type here so
// catalog has no dependency on package model (catalogs are loaded
// before any Level exists).
type DamageRange struct {
	Lower, Upper, ClumpFactor int
}

// MonsterInfo is the immutable per-MonsterType catalog entry.
type MonsterInfo struct {
	Name          string      `yaml:"name" json:"name"`
	Glyph         rune        `yaml:"glyph" json:"glyph"`
	MaxHP         int         `yaml:"maxHP" json:"maxHP"`
	Damage        DamageRange `yaml:"damage" json:"damage"`
	Defense       int         `yaml:"defense" json:"defense"`
	Accuracy      int         `yaml:"accuracy" json:"accuracy"`
	Speed         int         `yaml:"speed" json:"speed"`
	Regen         int         `yaml:"regen" json:"regen"`
	BehaviorFlags uint64      `yaml:"behaviorFlags" json:"behaviorFlags"`
	AbilityFlags  uint64      `yaml:"abilityFlags" json:"abilityFlags"`
	ClassName     string      `yaml:"class" json:"class"`
}

// MonsterClass groups monster types into families (dragon, goblinoid, ...).
type MonsterClass struct {
	Name    string   `yaml:"name" json:"name"`
	Members []string `yaml:"members" json:"members"`
}

// HordeFlag is a bit in a horde entry's flag word.
type HordeFlag uint32

const (
	HordeNoPeriodicSpawn HordeFlag = 1 << iota
	HordeLeaderCaptive
	HordeIsSummoned
	HordeAlliedWithPlayer
	HordeMachineKennel
	HordeMachineBoss
	HordeNeverOOD
	HordeMachineWaterMonster
	HordeMachineStatue
	HordeMachineTurret
	HordeMachineCaptive
	HordeMachineThief
	HordeSacrificeTarget
	HordeVampireFodder
	HordeMachineLegendaryAlly
	HordeMachineGoblinWarren
	HordeDiesOnLeaderDeath
	HordeSummonedAtDistance
	HordeMachineMud
)

// CountRange is a (lower, upper, clumpFactor) triple for horde member counts.
type CountRange struct {
	Lower, Upper, ClumpFactor int
}

// HordeMember is one member-type entry within a horde.
type HordeMember struct {
	MemberType string     `yaml:"memberType" json:"memberType"`
	Count      CountRange `yaml:"count" json:"count"`
}

// Horde is a spawn recipe: leader + members + constraints + frequency.
type Horde struct {
	Name       string        `yaml:"name" json:"name"`
	LeaderType string        `yaml:"leaderType" json:"leaderType"`
	Members    []HordeMember `yaml:"members" json:"members"`
	MinLevel   int           `yaml:"minLevel" json:"minLevel"`
	MaxLevel   int           `yaml:"maxLevel" json:"maxLevel"`
	Frequency  int           `yaml:"frequency" json:"frequency"`
	SpawnsIn   string        `yaml:"spawnsIn" json:"spawnsIn"`
	Machine    string        `yaml:"machine" json:"machine"`
	Flags      HordeFlag     `yaml:"flags" json:"flags"`
}

// TileFlag is a bit in a tile's passive flag word.
type TileFlag uint64

const (
	TileObstructsPassability TileFlag = 1 << iota
	TileObstructsDiagonal
	TileObstructsGas
	TileIsFire
	TileIsFlammable
	TileAutoDescent
	TileIsWired
	TileIsCircuitBreaker
	TilePromotesWithoutKey
	TileVanishesUponPromotion
	TileIsSecretDoor
	TilePromotesOnPlayerEntry
)

// TileInfo is the per-TileType catalog entry.
type TileInfo struct {
	Name            string   `yaml:"name" json:"name"`
	Flags           TileFlag `yaml:"flags" json:"flags"`
	MechFlags       uint64   `yaml:"mechFlags" json:"mechFlags"`
	DrawPriority    int      `yaml:"drawPriority" json:"drawPriority"`
	FireType        string   `yaml:"fireType" json:"fireType"`
	PromoteType     string   `yaml:"promoteType" json:"promoteType"`
	PromoteChance   int      `yaml:"promoteChance" json:"promoteChance"`
	ChanceToIgnite  int      `yaml:"chanceToIgnite" json:"chanceToIgnite"`
	GlowLight       string   `yaml:"glowLight" json:"glowLight"`
	Description     string   `yaml:"description" json:"description"`
	FlavorText      string   `yaml:"flavorText" json:"flavorText"`
}

// HasFlag reports whether f is set on this tile.
func (t TileInfo) HasFlag(f TileFlag) bool { return t.Flags&f != 0 }

// DungeonFeature is a terrain-placement pattern.
type DungeonFeature struct {
	Name            string  `yaml:"name" json:"name"`
	Layer           int     `yaml:"layer" json:"layer"`
	TileType        string  `yaml:"tileType" json:"tileType"`
	StartProbability int    `yaml:"startProbability" json:"startProbability"`
	Decrement       int     `yaml:"decrement" json:"decrement"`
}

// BlueprintFlag is a bit in a blueprint's flag word.
type BlueprintFlag uint32

const (
	BPRoom BlueprintFlag = 1 << iota
	BPVestibule
	BPReward
	BPAdoptItem
	BPPurgeInterior
	BPPurgeLiquids
	BPImpregnable
)

// FeatureFlag marks where a blueprint feature may be built.
type FeatureFlag uint32

const (
	MFBuildAtOrigin FeatureFlag = 1 << iota
	MFBuildInWalls
	MFNearOrigin
)

// BlueprintFeature is one ordered step of a machine's construction.
type BlueprintFeature struct {
	FeatureName string      `yaml:"featureName" json:"featureName"`
	TileType    string      `yaml:"tileType" json:"tileType"`
	Flags       FeatureFlag `yaml:"flags" json:"flags"`
	MinInstances int        `yaml:"minInstances" json:"minInstances"`
	MaxInstances int        `yaml:"maxInstances" json:"maxInstances"`
}

// Blueprint is the static definition of a machine.
type Blueprint struct {
	Name        string             `yaml:"name" json:"name"`
	MinDepth    int                `yaml:"minDepth" json:"minDepth"`
	MaxDepth    int                `yaml:"maxDepth" json:"maxDepth"`
	RoomSizeMin int                `yaml:"roomSizeMin" json:"roomSizeMin"`
	RoomSizeMax int                `yaml:"roomSizeMax" json:"roomSizeMax"`
	Frequency   int                `yaml:"frequency" json:"frequency"`
	Flags       BlueprintFlag      `yaml:"flags" json:"flags"`
	Features    []BlueprintFeature `yaml:"features" json:"features"`
}

// DungeonProfile is a depth band's room-frequency vector, the driver
// for designRandomRoom's weighted choice of room type.
type DungeonProfile struct {
	Name          string         `yaml:"name" json:"name"`
	MinDepth      int            `yaml:"minDepth" json:"minDepth"`
	MaxDepth      int            `yaml:"maxDepth" json:"maxDepth"`
	RoomFrequency map[string]int `yaml:"roomFrequency" json:"roomFrequency"`
	CorridorChance int           `yaml:"corridorChance" json:"corridorChance"`
}

// ItemDef is one entry in a per-category item catalog (food, weapon,
// armor, staff, ring, potion, scroll, wand, charm, key).
type ItemDef struct {
	Name        string      `yaml:"name" json:"name"`
	Damage      DamageRange `yaml:"damage" json:"damage"`
	ArmorValue  int         `yaml:"armorValue" json:"armorValue"`
	StrengthReq int         `yaml:"strengthReq" json:"strengthReq"`
	Flammable   bool        `yaml:"flammable" json:"flammable"`
}

// Mutation is a monster-modifying trait applied at spawn time.
type Mutation struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Flare is a one-shot light effect definition.
type Flare struct {
	Name     string `yaml:"name" json:"name"`
	ColorRef string `yaml:"color" json:"color"`
	RadiusFP int    `yaml:"radiusFP" json:"radiusFP"`
	LifeMS   int    `yaml:"lifeMS" json:"lifeMS"`
}

// ColorDef mirrors model.Color for YAML round-tripping.
type ColorDef struct {
	R             int `yaml:"r" json:"r"`
	G             int `yaml:"g" json:"g"`
	B             int `yaml:"b" json:"b"`
	RRand         int `yaml:"rRand" json:"rRand"`
	GRand         int `yaml:"gRand" json:"gRand"`
	BRand         int `yaml:"bRand" json:"bRand"`
	Rand          int  `yaml:"rand" json:"rand"`
	ColorDances   bool `yaml:"colorDances" json:"colorDances"`
}
