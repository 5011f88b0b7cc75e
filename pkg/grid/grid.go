package grid

// DCOLS and DROWS are the playfield dimensions.
const (
	DCOLS = 80
	DROWS = 29
)

// Pos is an integer grid coordinate.
type Pos struct {
	X, Y int
}

// Add returns the position offset by a direction delta.
func (p Pos) Add(d Pos) Pos {
	return Pos{p.X + d.X, p.Y + d.Y}
}

// NbDirs is the canonical eight-direction table. Indices 0..3 are
// cardinal, 4..7 diagonal. Replayability depends on this exact
// ordering: any code that iterates directions for a randomized choice
// must do so in this order so the same seed produces the same draws.
var NbDirs = [8]Pos{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// InBounds reports whether p lies within the DCOLS×DROWS playfield.
func InBounds(p Pos) bool {
	return p.X >= 0 && p.X < DCOLS && p.Y >= 0 && p.Y < DROWS
}

// IsBorder reports whether p lies on the playfield border, which is
// always impassable (see pathing.DijkstraScan).
func IsBorder(p Pos) bool {
	return p.X == 0 || p.X == DCOLS-1 || p.Y == 0 || p.Y == DROWS-1
}

// Grid is a DCOLS×DROWS array of signed 32-bit integers, row-major.
type Grid struct {
	cells [DROWS][DCOLS]int32
}

// NewGrid allocates a grid with every cell set to fill.
func NewGrid(fill int32) *Grid {
	g := &Grid{}
	g.Fill(fill)
	return g
}

// Fill sets every cell to v.
func (g *Grid) Fill(v int32) {
	for y := range g.cells {
		row := &g.cells[y]
		for x := range row {
			row[x] = v
		}
	}
}

// Get returns the value at p. Out-of-bounds reads return 0.
func (g *Grid) Get(p Pos) int32 {
	if !InBounds(p) {
		return 0
	}
	return g.cells[p.Y][p.X]
}

// Set writes v at p. Out-of-bounds writes are no-ops.
func (g *Grid) Set(p Pos, v int32) {
	if !InBounds(p) {
		return
	}
	g.cells[p.Y][p.X] = v
}

// Copy returns a deep copy of g.
func (g *Grid) Copy() *Grid {
	out := &Grid{}
	out.cells = g.cells
	return out
}

// CopyFrom overwrites g's contents with src's.
func (g *Grid) CopyFrom(src *Grid) {
	g.cells = src.cells
}

// FindAndReplace overwrites every cell equal to from with to, returning
// the number of cells changed.
func (g *Grid) FindAndReplace(from, to int32) int {
	count := 0
	for y := range g.cells {
		row := &g.cells[y]
		for x := range row {
			if row[x] == from {
				row[x] = to
				count++
			}
		}
	}
	return count
}

// Sum returns the sum of all cell values, used to maintain the
// heat-map conservation invariant (sum(heatMap) == totalHeat).
func (g *Grid) Sum() int64 {
	var total int64
	for y := range g.cells {
		row := &g.cells[y]
		for x := range row {
			total += int64(row[x])
		}
	}
	return total
}

// FloodFill flood-fills starting at seed, visiting every 4-connected
// neighbor for which eligible returns true, writing fillValue to each
// visited cell. Returns the count of cells filled.
func FloodFill(g *Grid, seed Pos, eligible func(p Pos) bool, fillValue int32) int {
	if !InBounds(seed) || !eligible(seed) {
		return 0
	}
	visited := make(map[Pos]bool)
	stack := []Pos{seed}
	visited[seed] = true
	count := 0
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		g.Set(p, fillValue)
		count++
		for _, d := range NbDirs[:4] {
			n := p.Add(d)
			if !InBounds(n) || visited[n] || !eligible(n) {
				continue
			}
			visited[n] = true
			stack = append(stack, n)
		}
	}
	return count
}

// GetCellCostMap builds a cost grid from a predicate over positions:
// border cells and cells for which blocked returns true are
// PDSObstruction, all others cost 1. This is the grid-only half of 4.C's calculate_distances;
// terrain-aware cost derivation lives in package pathing.
func GetCellCostMap(blocked func(p Pos) bool) *Grid {
	g := NewGrid(1)
	for y := 0; y < DROWS; y++ {
		for x := 0; x < DCOLS; x++ {
			p := Pos{x, y}
			if IsBorder(p) || blocked(p) {
				g.Set(p, PDSObstruction)
			}
		}
	}
	return g
}

// Cost sentinels used by the Dijkstra engine (package pathing).
const (
	PDSForbidden   int32 = -1
	PDSObstruction int32 = -2
	// PDSMaxDistance is the "infinity" distance: unreachable.
	PDSMaxDistance int32 = 30000
)
