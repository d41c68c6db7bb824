package pathfind

import "github.com/katalvlaran/gridpath/grid"

// walker encapsulates mutable BFS state on top of the shared scratch arrays.
type walker struct {
	*search
	queue []int
	head  int
}

// runBFS explores cells in FIFO order. A cell is marked visited when it is
// enqueued and never enqueued twice, so the first time the goal is dequeued
// its predecessor chain is a shortest path by step count. Cell costs are
// ignored.
//
// One step is emitted per dequeued cell.
// Complexity: O(W×H) time and memory.
func runBFS(s *search) {
	w := &walker{
		search: s,
		queue:  make([]int, 0, s.g.CellCount()),
	}
	w.enqueue(s.startIdx, -1)
	w.loop()
}

// enqueue marks idx visited, records its parent and appends it to the queue.
func (w *walker) enqueue(idx, parent int) {
	w.mark(idx)
	w.prev[idx] = parent
	w.queue = append(w.queue, idx)
}

// dequeue pops the first queued index.
func (w *walker) dequeue() int {
	idx := w.queue[w.head]
	w.head++
	return idx
}

// loop processes the queue until the goal is reached or the queue is empty.
func (w *walker) loop() {
	for w.head < len(w.queue) {
		cur := w.dequeue()
		pos := w.g.PosAt(cur)
		if !w.step(pos) {
			return
		}
		if cur == w.goalIdx {
			w.finish(pos, true, true)
			return
		}
		w.enqueueNeighbors(cur, pos)
	}
	w.exhausted()
}

// enqueueNeighbors enqueues every unseen walkable neighbour of pos.
func (w *walker) enqueueNeighbors(cur int, pos grid.Pos) {
	for nb := range w.g.Neighbors(pos) {
		ni := w.g.Index(nb)
		if w.visited[ni] {
			continue
		}
		w.enqueue(ni, cur)
	}
}
