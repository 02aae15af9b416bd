package detour

import "github.com/matzehuels/wallcable/pkg/grid"

// queue is a growable ring buffer FIFO of cells.
type queue struct {
	buf  []grid.Cell
	head int
	n    int
}

func newQueue(capacity int) *queue {
	return &queue{buf: make([]grid.Cell, max(capacity, 1))}
}

func (q *queue) len() int { return q.n }

func (q *queue) push(c grid.Cell) {
	if q.n == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.n)%len(q.buf)] = c
	q.n++
}

func (q *queue) pop() grid.Cell {
	c := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.n--
	return c
}

func (q *queue) grow() {
	buf := make([]grid.Cell, 2*len(q.buf))
	for i := 0; i < q.n; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
}
