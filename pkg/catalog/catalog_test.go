package catalog

import "testing"

func TestValidateCatchesDanglingHordeMember(t *testing.T) {
	c := &Catalog{
		Tiles: map[string]*TileInfo{"floor": {Name: "floor"}},
		Monsters: map[string]*MonsterInfo{
			"rat": {Name: "rat"},
		},
		Hordes: []Horde{
			{Name: "rat pack", LeaderType: "rat", Members: []HordeMember{{MemberType: "ghost"}}},
		},
	}
	if err := c.Validate(); err == nil {
		t.Fatal("expected validation error for dangling monster reference")
	}
}

func TestValidatePassesConsistentCatalog(t *testing.T) {
	c := &Catalog{
		Tiles:    map[string]*TileInfo{"floor": {Name: "floor"}},
		Monsters: map[string]*MonsterInfo{"rat": {Name: "rat"}},
		Hordes: []Horde{
			{Name: "rat pack", LeaderType: "rat", Members: []HordeMember{{MemberType: "rat"}}},
		},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestResolveMonsterSubstitutesPlaceholder(t *testing.T) {
	c := &Catalog{Monsters: map[string]*MonsterInfo{}}
	info, ok := c.ResolveMonster("missing")
	if ok {
		t.Fatal("expected ok=false for missing monster")
	}
	if info == nil || info.Glyph != '?' {
		t.Fatal("expected placeholder monster info")
	}
}

func TestProfileForDepthFallsBackToDeepest(t *testing.T) {
	c := &Catalog{
		Profiles: []DungeonProfile{
			{Name: "shallow", MinDepth: 1, MaxDepth: 5},
			{Name: "deep", MinDepth: 6, MaxDepth: 10},
		},
	}
	if p := c.ProfileForDepth(3); p.Name != "shallow" {
		t.Fatalf("expected shallow profile, got %s", p.Name)
	}
	if p := c.ProfileForDepth(999); p.Name != "deep" {
		t.Fatalf("expected fallback to deepest profile, got %s", p.Name)
	}
}

func TestMeteredTableCloneIsIndependent(t *testing.T) {
	defs := []MeteredItemDef{{Category: "scroll", Kind: "enchant", LevelScaling: 2}}
	base := NewMeteredTable(defs)
	clone := base.Clone()

	clone.RecordSpawn("scroll", "enchant")

	if base.Entry("scroll", "enchant").NumberSpawned != 0 {
		t.Fatal("mutating a clone must not affect the source table")
	}
	if clone.Entry("scroll", "enchant").NumberSpawned != 1 {
		t.Fatal("clone's own entry should reflect the recorded spawn")
	}
}

func TestNeedsHardGuaranteeLevelGuarantee(t *testing.T) {
	e := &MeteredEntry{Def: MeteredItemDef{
		LevelGuarantee:      5,
		ItemNumberGuarantee: 1,
		GenMultiplier:       1,
	}}
	if e.NeedsHardGuarantee(5, 0) != true {
		t.Fatal("expected hard guarantee to trigger at the guaranteed level with zero spawns")
	}
	e.NumberSpawned = 1
	if e.NeedsHardGuarantee(5, 0) == true && e.Def.GenMultiplier*1+e.Def.GenIncrement >= 5*e.Def.LevelScaling {
		// once spawned, and the scaling check also fails to trigger, guarantee should not re-fire
		t.Fatal("guarantee should not re-trigger once itemNumberGuarantee is met")
	}
}
