package pathing

import "github.com/hollowcrawl/dungeoncore/pkg/grid"

// TerrainQuery is the minimal view of a level's pmap that terrain-aware
// distance calculation needs. package model's *Level satisfies this
// without pathing importing model, avoiding an import cycle between
// the two packages.
type TerrainQuery interface {
	// BlocksPassability reports whether the tile at p obstructs
	// ordinary movement (walls, lava the traveler can't cross, etc).
	BlocksPassability(p grid.Pos) bool
	// ObstructsDiagonal reports whether the tile at p additionally
	// blocks diagonal cutting through it (full walls do; half-height
	// obstructions like a single chasm tile do not).
	ObstructsDiagonal(p grid.Pos) bool
	// IsSecretDoor reports whether p is a secret door tile.
	IsSecretDoor(p grid.Pos) bool
	// InvulnerableStationaryMonsterAt reports whether an invulnerable,
	// non-moving creature occupies p (always forbidden to path through).
	InvulnerableStationaryMonsterAt(p grid.Pos) bool
	// TravelerAvoids reports whether the given traveler (nil for "no
	// specific traveler") refuses to enter p (lava, fire, chasm unless
	// immune/levitating, per monsterAvoids in spec 4.H).
	TravelerAvoids(p grid.Pos, traveler TravelerInfo) bool
	// Flagged reports whether p carries any of blockingFlags as an
	// "always forbidden" terrain flag for this query.
	Flagged(p grid.Pos, blockingFlags uint64) bool
}

// TravelerInfo is the subset of creature state calculate_distances
// needs to evaluate terrain avoidance; nil is a valid, zero-value
// traveler representing "no creature-specific avoidance."
type TravelerInfo interface {
	CanPassSecretDoors() bool
}

// CalculateDistances derives a cost map from live game state and scans
// outward from dest, per spec 4.C's terrain-aware entry point:
//
//   - invulnerable stationary monsters -> FORBIDDEN
//   - secret doors, when traveler can pass them -> cost 1
//   - passability-obstructing tiles -> OBSTRUCTION or FORBIDDEN,
//     depending on whether they also block diagonal cutting
//   - traveler avoidance -> FORBIDDEN
//   - cells matching blockingTerrainFlags -> FORBIDDEN
//   - otherwise -> cost 1
//
// dest is set to distance 0 before the scan; every other cell starts
// at grid.PDSMaxDistance. The returned grid's values are the shortest
// distances; unreachable cells remain grid.PDSMaxDistance.
func CalculateDistances(tq TerrainQuery, dest grid.Pos, blockingTerrainFlags uint64, traveler TravelerInfo, canUseSecretDoors, eightWays bool) *grid.Grid {
	cost := grid.NewGrid(1)
	dist := grid.NewGrid(grid.PDSMaxDistance)

	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			if grid.IsBorder(p) {
				cost.Set(p, grid.PDSObstruction)
				continue
			}
			if tq.InvulnerableStationaryMonsterAt(p) {
				cost.Set(p, grid.PDSForbidden)
				continue
			}
			if tq.IsSecretDoor(p) {
				if canUseSecretDoors {
					cost.Set(p, 1)
				} else {
					cost.Set(p, grid.PDSForbidden)
				}
				continue
			}
			if tq.Flagged(p, blockingTerrainFlags) {
				cost.Set(p, grid.PDSForbidden)
				continue
			}
			if tq.TravelerAvoids(p, traveler) {
				cost.Set(p, grid.PDSForbidden)
				continue
			}
			if tq.BlocksPassability(p) {
				if tq.ObstructsDiagonal(p) {
					cost.Set(p, grid.PDSObstruction)
				} else {
					cost.Set(p, grid.PDSForbidden)
				}
				continue
			}
			cost.Set(p, 1)
		}
	}

	dist.Set(dest, 0)
	DijkstraScan(dist, cost, eightWays)
	return dist
}
