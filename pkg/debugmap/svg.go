package debugmap

import (
	"bytes"
	"fmt"
	"os"

	svg "github.com/ajstarks/svgo"

	"github.com/hollowcrawl/dungeoncore/pkg/catalog"
	"github.com/hollowcrawl/dungeoncore/pkg/grid"
	"github.com/hollowcrawl/dungeoncore/pkg/model"
)

// Options configures the rendered cell size and which overlays are
// drawn. Zero-value Options is filled in with sensible defaults by
// Render, matching pkg/export/svg.go's ExportSVG discipline.
type Options struct {
	CellSize    int  // pixels per cell, default 10
	ShowFlags   bool // chokepoint/loop/machine-number markers
	ShowMonsters bool
	ShowItems    bool

	// Overlay, when non-nil, is a scalar grid (a scent map or a
	// pathing.CalculateDistances result) drawn as a translucent
	// heat-colored layer on top of the terrain. Values >=
	// grid.PDSMaxDistance are treated as unreached and left
	// untinted.
	Overlay *grid.Grid
}

// DefaultOptions returns the zero-value-filled defaults Render uses
// when passed an Options with CellSize <= 0.
func DefaultOptions() Options {
	return Options{CellSize: 10, ShowFlags: true, ShowMonsters: true, ShowItems: true}
}

// Render draws lvl's pmap (terrain, chokepoints/loops, machine
// numbers, monsters, items) to an SVG document.
func Render(lvl *model.Level, opts Options) []byte {
	if opts.CellSize <= 0 {
		overlay := opts.Overlay
		opts = DefaultOptions()
		opts.Overlay = overlay
	}
	cs := opts.CellSize
	width := grid.DCOLS * cs
	height := grid.DROWS * cs

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#0b0b12")

	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			drawCell(canvas, lvl, p, cs, opts)
		}
	}

	if opts.Overlay != nil {
		drawOverlay(canvas, opts.Overlay, cs)
	}
	if opts.ShowMonsters {
		drawMonsters(canvas, lvl, cs)
	}
	if opts.ShowItems {
		drawItems(canvas, lvl, cs)
	}

	canvas.End()
	return buf.Bytes()
}

// SaveToFile renders lvl and writes the SVG to path with 0644
// permissions.
func SaveToFile(lvl *model.Level, path string, opts Options) error {
	return os.WriteFile(path, Render(lvl, opts), 0644)
}

func drawCell(canvas *svg.SVG, lvl *model.Level, p grid.Pos, cs int, opts Options) {
	cell := lvl.Cell(p)
	if cell == nil {
		return
	}
	px, py := p.X*cs, p.Y*cs

	fill := terrainColor(lvl, p)
	canvas.Rect(px, py, cs, cs, fmt.Sprintf("fill:%s", fill))

	if !opts.ShowFlags {
		return
	}
	if cell.HasFlag(model.IsChokepoint) {
		canvas.Rect(px, py, cs, cs, "fill:none;stroke:#f6e05e;stroke-width:1")
	}
	if cell.HasFlag(model.IsInLoop) {
		canvas.Rect(px+1, py+1, cs-2, cs-2, "fill:none;stroke:#63b3ed;stroke-width:1")
	}
	if cell.MachineNumber > 0 {
		canvas.Text(px+cs/2, py+cs/2+3, fmt.Sprintf("%d", cell.MachineNumber%10),
			"text-anchor:middle;font-size:8px;fill:#fff;font-family:monospace")
	}
	if cell.HasFlag(model.HasStairs) {
		canvas.Text(px+cs/2, py+cs/2+3, ">",
			"text-anchor:middle;font-size:10px;font-weight:bold;fill:#ffd700")
	}
}

// terrainColor picks a fill by tile flag: obstructing terrain is dark
// stone, fire-bearing surface terrain is colored hot, liquid is blue,
// everything else is bare floor.
func terrainColor(lvl *model.Level, p grid.Pos) string {
	if info := lvl.TileInfoAt(p, model.LayerDungeon); info != nil {
		switch {
		case info.HasFlag(catalog.TileObstructsPassability):
			return "#2d3748"
		case info.HasFlag(catalog.TileIsSecretDoor):
			return "#744210"
		case info.HasFlag(catalog.TileAutoDescent):
			return "#1a202c"
		}
	}
	if liquid := lvl.TileInfoAt(p, model.LayerLiquid); liquid != nil {
		return "#2b6cb0"
	}
	if surface := lvl.TileInfoAt(p, model.LayerSurface); surface != nil && surface.HasFlag(catalog.TileIsFire) {
		return "#dd6b20"
	}
	return "#4a5568"
}

// drawOverlay tints each cell by its overlay value, hottest at the
// lowest finite distance (nearest the source), matching the
// heat-map-biased item placement pass's notion of "hot" terrain (spec
// 4.E).
func drawOverlay(canvas *svg.SVG, g *grid.Grid, cs int) {
	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			v := g.Get(p)
			if v < 0 || v >= grid.PDSMaxDistance {
				continue
			}
			alpha := 0.5
			if v > 40 {
				alpha = 0.1
			} else {
				alpha = 0.5 - float64(v)/80
			}
			canvas.Rect(x*cs, y*cs, cs, cs, fmt.Sprintf("fill:#f56565;opacity:%.2f", alpha))
		}
	}
}

func drawMonsters(canvas *svg.SVG, lvl *model.Level, cs int) {
	for _, c := range lvl.Monsters {
		if !c.IsAlive() {
			continue
		}
		px, py := c.Loc.X*cs+cs/2, c.Loc.Y*cs+cs/2
		color := "#e53e3e"
		if c.State == model.StateAlly {
			color = "#38a169"
		} else if c.State == model.StateSleeping {
			color = "#718096"
		}
		canvas.Circle(px, py, cs/2-1, fmt.Sprintf("fill:%s;stroke:#fff;stroke-width:1", color))
	}
}

func drawItems(canvas *svg.SVG, lvl *model.Level, cs int) {
	for _, it := range lvl.FloorItems {
		if !it.OnMap {
			continue
		}
		px, py := it.Location.X*cs, it.Location.Y*cs
		canvas.Rect(px+cs/4, py+cs/4, cs/2, cs/2, "fill:#ecc94b;stroke:#000;stroke-width:1")
	}
}
