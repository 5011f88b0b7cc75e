package catalog

import "sort"

// MeteredItemDef is the static per-variant definition of a metered
// item (spec 4.E): a scroll, potion, or food kind whose frequency is
// tracked across levels to smooth distribution.
type MeteredItemDef struct {
	Category              string `yaml:"category" json:"category"`
	Kind                   string `yaml:"kind" json:"kind"`
	LevelScaling           int    `yaml:"levelScaling" json:"levelScaling"`
	GenMultiplier          int    `yaml:"genMultiplier" json:"genMultiplier"`
	GenIncrement           int    `yaml:"genIncrement" json:"genIncrement"`
	IncrementFrequency     int    `yaml:"incrementFrequency" json:"incrementFrequency"`
	DecrementFrequency     int    `yaml:"decrementFrequency" json:"decrementFrequency"`
	LevelGuarantee         int    `yaml:"levelGuarantee" json:"levelGuarantee"`
	ItemNumberGuarantee    int    `yaml:"itemNumberGuarantee" json:"itemNumberGuarantee"`
}

// MeteredEntry is the mutable per-level bookkeeping for one metered
// item kind: its current frequency and how many have spawned so far
// this run.
type MeteredEntry struct {
	Def             MeteredItemDef
	CurrentFrequency int
	NumberSpawned    int
}

// MeteredTable is the per-level working copy of the metered-item
// tracker. Spec §9's Open Question resolves the source's parallel
// mutable globals (scrollTable, potionTable) into a copy-and-work-
// on-copy discipline: the shared Catalog.MeteredDefaults is never
// mutated; each level generation pass clones it into a MeteredTable,
// works on the clone, and the clone's ending NumberSpawned and
// CurrentFrequency values are carried forward into the next level's
// clone.
type MeteredTable struct {
	entries map[string]*MeteredEntry // key: category+"/"+kind
}

// NewMeteredTable builds a fresh table from the catalog's defaults,
// seeding every entry's initial frequency from LevelScaling.
func NewMeteredTable(defs []MeteredItemDef) *MeteredTable {
	t := &MeteredTable{entries: make(map[string]*MeteredEntry, len(defs))}
	for _, d := range defs {
		t.entries[meteredKey(d.Category, d.Kind)] = &MeteredEntry{
			Def:              d,
			CurrentFrequency: d.LevelScaling,
		}
	}
	return t
}

// Clone returns a deep copy of t, to be threaded into the next level's
// population pass while preserving NumberSpawned/CurrentFrequency
// across levels without sharing mutable state with the source table.
func (t *MeteredTable) Clone() *MeteredTable {
	out := &MeteredTable{entries: make(map[string]*MeteredEntry, len(t.entries))}
	for k, v := range t.entries {
		cp := *v
		out.entries[k] = &cp
	}
	return out
}

func meteredKey(category, kind string) string { return category + "/" + kind }

// Entry returns the mutable entry for (category, kind), or nil.
func (t *MeteredTable) Entry(category, kind string) *MeteredEntry {
	return t.entries[meteredKey(category, kind)]
}

// Entries returns all entries in a stable, deterministic order (sorted
// by key) so iteration during item population never depends on map
// iteration order.
func (t *MeteredTable) Entries() []*MeteredEntry {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*MeteredEntry, 0, len(keys))
	for _, k := range keys {
		out = append(out, t.entries[k])
	}
	return out
}

// AdvanceLevel increments every entry's frequency once per level
// boundary per IncrementFrequency, per spec 4.D's "current frequency
// ... increments each level" rule.
func (t *MeteredTable) AdvanceLevel() {
	for _, e := range t.entries {
		e.CurrentFrequency += e.Def.IncrementFrequency
	}
}

// RecordSpawn bumps an entry's spawn counter after an item of that
// kind is actually placed.
func (t *MeteredTable) RecordSpawn(category, kind string) {
	if e := t.Entry(category, kind); e != nil {
		e.NumberSpawned++
	}
}

// NeedsHardGuarantee reports whether the (category, kind) metered item
// must be force-placed before the next item, per spec 4.E's "hard
// guarantees" rule:
//
//	numberSpawned*genMultiplier + genIncrement < depth*levelScaling + randomOffset
//	OR (depth == levelGuarantee AND numberSpawned < itemNumberGuarantee)
func (e *MeteredEntry) NeedsHardGuarantee(depth, randomOffset int) bool {
	d := e.Def
	if e.NumberSpawned*d.GenMultiplier+d.GenIncrement < depth*d.LevelScaling+randomOffset {
		return true
	}
	if depth == d.LevelGuarantee && e.NumberSpawned < d.ItemNumberGuarantee {
		return true
	}
	return false
}
