// Package catalog loads the static data tables of spec 4.D: the
// monster, item, tile, horde, blueprint, dungeon-profile, mutation,
// and color catalogs. Catalogs are loaded once at startup from YAML
// and treated as immutable during play, except the scroll/potion
// metered tables, which level generation clones per level (spec §9's
// Open Question resolution: copy-and-work-on-copy, never mutate the
// shared catalog).
//
// Grounded on the teacher package's ThemePack/Loader
// (pkg/themes/types.go, pkg/themes/adapter.go): same YAML-load-once
// discipline, same WeightedEntry-shaped tables, generalized from
// renderer tilesets and encounter/loot tables to the full Brogue-style
// catalog set.
package catalog
