package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the full static data set loaded once at startup, mirroring
// the teacher's ThemePack but scoped to the whole Brogue-style data
// model rather than a single renderer theme.
type Catalog struct {
	Monsters        map[string]*MonsterInfo        `yaml:"monsters" json:"monsters"`
	MonsterClasses  map[string]*MonsterClass       `yaml:"monsterClasses" json:"monsterClasses"`
	Hordes          []Horde                        `yaml:"hordes" json:"hordes"`
	Tiles           map[string]*TileInfo           `yaml:"tiles" json:"tiles"`
	Features        map[string]*DungeonFeature     `yaml:"features" json:"features"`
	Blueprints      []Blueprint                    `yaml:"blueprints" json:"blueprints"`
	Profiles        []DungeonProfile               `yaml:"profiles" json:"profiles"`
	Mutations       map[string]*Mutation           `yaml:"mutations" json:"mutations"`
	Flares          map[string]*Flare              `yaml:"flares" json:"flares"`
	Colors          map[string]*ColorDef           `yaml:"colors" json:"colors"`
	Items           map[string]map[string]*ItemDef `yaml:"items" json:"items"` // category -> kind name -> def
	ItemGenWeights  map[string]int                 `yaml:"itemGenWeights" json:"itemGenWeights"`
	MeteredDefaults []MeteredItemDef                `yaml:"meteredItems" json:"meteredItems"`
}

// LoadFromFile loads a Catalog from a YAML file.
func LoadFromFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks cross-references a dangling reference would make
// fatal at startup (spec §7: content-catalog inconsistency is fatal
// during startup, recoverable at runtime by substitution).
func (c *Catalog) Validate() error {
	if len(c.Tiles) == 0 {
		return errors.New("catalog: at least one tile definition is required")
	}
	for _, h := range c.Hordes {
		if _, ok := c.Monsters[h.LeaderType]; h.LeaderType != "" && !ok {
			return fmt.Errorf("horde %q: leader type %q not found in monster catalog", h.Name, h.LeaderType)
		}
		for _, m := range h.Members {
			if _, ok := c.Monsters[m.MemberType]; !ok {
				return fmt.Errorf("horde %q: member type %q not found in monster catalog", h.Name, m.MemberType)
			}
		}
	}
	for _, bp := range c.Blueprints {
		for _, f := range bp.Features {
			if _, ok := c.Tiles[f.TileType]; f.TileType != "" && !ok {
				return fmt.Errorf("blueprint %q feature %q: tile type %q not found", bp.Name, f.FeatureName, f.TileType)
			}
		}
	}
	return nil
}

// ResolveMonster looks up a monster by name. An unknown name yields an
// "unknown" placeholder and ok=false rather than a failure (the
// recoverable half of spec §7's content-catalog inconsistency policy).
func (c *Catalog) ResolveMonster(name string) (*MonsterInfo, bool) {
	if info, ok := c.Monsters[name]; ok {
		return info, true
	}
	return &MonsterInfo{Name: "unknown", Glyph: '?'}, false
}

// ProfileForDepth returns the dungeon profile whose depth band covers
// depth, or the last profile if none matches (depths beyond the
// authored range reuse the deepest authored profile).
func (c *Catalog) ProfileForDepth(depth int) *DungeonProfile {
	for i := range c.Profiles {
		p := &c.Profiles[i]
		if depth >= p.MinDepth && depth <= p.MaxDepth {
			return p
		}
	}
	if len(c.Profiles) > 0 {
		return &c.Profiles[len(c.Profiles)-1]
	}
	return nil
}
