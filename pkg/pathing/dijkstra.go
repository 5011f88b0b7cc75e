package pathing

import (
	"container/heap"

	"github.com/hollowcrawl/dungeoncore/pkg/grid"
)

// DijkstraScan relaxes distanceMap outward from every cell whose
// initial distance is below grid.PDSMaxDistance (the sources), using
// costMap as per-cell traversal cost. costMap entries of
// grid.PDSForbidden are impassable; grid.PDSObstruction blocks both
// passage and diagonal cutting through the cell. Border cells are
// scanned like any other cell, using their costMap entry; it is
// CalculateDistances that sets them to grid.PDSObstruction.
// distanceMap is both input and output.
func DijkstraScan(distanceMap, costMap *grid.Grid, useDiagonals bool) {
	pq := &priorityQueue{}
	heap.Init(pq)
	seq := 0

	for y := 0; y < grid.DROWS; y++ {
		for x := 0; x < grid.DCOLS; x++ {
			p := grid.Pos{X: x, Y: y}
			if distanceMap.Get(p) < grid.PDSMaxDistance {
				heap.Push(pq, &pqItem{pos: p, dist: distanceMap.Get(p), seq: seq})
				seq++
			}
		}
	}

	dirs := grid.NbDirs[:4]
	if useDiagonals {
		dirs = grid.NbDirs[:]
	}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		cur := item.pos
		// Stale entry: a shorter distance was already relaxed in.
		if item.dist > distanceMap.Get(cur) {
			continue
		}
		curCost := costMap.Get(cur)
		if curCost == grid.PDSForbidden || curCost == grid.PDSObstruction {
			continue
		}

		for i, d := range dirs {
			next := cur.Add(d)
			if !grid.InBounds(next) {
				continue
			}
			nextCost := costMap.Get(next)
			if nextCost == grid.PDSForbidden {
				continue
			}
			if i >= 4 && isDiagonalBlocked(cur, d, costMap) {
				continue
			}
			if nextCost == grid.PDSObstruction {
				continue
			}
			candidate := item.dist + nextCost
			if candidate < distanceMap.Get(next) {
				distanceMap.Set(next, candidate)
				heap.Push(pq, &pqItem{pos: next, dist: candidate, seq: seq})
				seq++
			}
		}
	}
}

// isDiagonalBlocked reports whether moving from a diagonally by delta
// d is blocked because both intermediate cardinal cells obstruct.
func isDiagonalBlocked(a grid.Pos, d grid.Pos, costMap *grid.Grid) bool {
	c1 := grid.Pos{X: a.X + d.X, Y: a.Y}
	c2 := grid.Pos{X: a.X, Y: a.Y + d.Y}
	return costMap.Get(c1) == grid.PDSObstruction && costMap.Get(c2) == grid.PDSObstruction
}

// pqItem is one entry in the distance-ordered priority queue.
type pqItem struct {
	pos  grid.Pos
	dist int32
	seq  int
}

// priorityQueue orders items by (distance, insertion sequence), giving
// a stable, deterministic tie-break that replays identically across
// platforms without depending on map iteration order.
type priorityQueue []*pqItem

func (pq priorityQueue) Len() int { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}
func (pq priorityQueue) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(*pqItem))
}
func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
