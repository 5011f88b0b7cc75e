// Package debugmap renders a model.Level's pmap as an SVG for offline
// inspection: terrain by layer, chokepoints and loop membership,
// machine numbers, and an optional scalar overlay (a scent map or a
// Dijkstra distance field) as a heat-colored layer on top.
//
// Grounded on pkg/export/svg.go's svg "github.com/ajstarks/svgo" usage
// (canvas.Start/Rect/Circle/Text/End, a sorted-iteration-for-
// determinism discipline, an Options struct with zero-value defaults
// filled in by the entry point), adapted from rendering a graph.Graph
// of abstract rooms/connectors to rendering a concrete DCOLS x DROWS
// cell grid.
package debugmap
