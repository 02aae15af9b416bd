package grid

// Entry returns the first cell of line i.
func (l Lines) Entry(i int) (Cell, bool) {
	cells := l[i]
	if len(cells) == 0 {
		return Cell{}, false
	}
	return cells[0], true
}

// Exit returns the last cell of line i.
func (l Lines) Exit(i int) (Cell, bool) {
	cells := l[i]
	if len(cells) == 0 {
		return Cell{}, false
	}
	return cells[len(cells)-1], true
}

// Endpoints projects lines onto their entry and exit cells. Lines without
// cells appear in neither map.
func Endpoints(l Lines) (entry, exit map[int]Cell) {
	entry = make(map[int]Cell, len(l))
	exit = make(map[int]Cell, len(l))
	for i := range l {
		if c, ok := l.Entry(i); ok {
			entry[i] = c
			exit[i], _ = l.Exit(i)
		}
	}
	return entry, exit
}
