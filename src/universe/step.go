package universe

import (
	"golang.org/x/sync/errgroup"
)

/*
	Tick computes the next generation into a freshly allocated buffer, reading only the current one,
	and swaps the buffers after the whole pass. With Workers > 1 the rows are split into bands,
	each band is computed by its own goroutine and Tick waits for all of them before the swap.
*/

//minRowsPerWorker is the minimum rows for one band
const minRowsPerWorker = 3

//Tick advances the universe by one generation if it is running, otherwise does nothing
//changed reports whether any cell differs from the previous generation, it is false when not running
func (u *Universe) Tick() (changed bool) {
	if !u.running {
		return false
	}
	u.cells, changed = u.nextGeneration()
	u.generation++
	return changed
}

//nextGeneration returns the next generation buffer, the current one is not modified
func (u *Universe) nextGeneration() (next []Cell, changed bool) {
	next = make([]Cell, len(u.cells))
	bands := u.bands()
	if len(bands) <= 1 {
		return next, u.calcRows(next, 0, u.options.Height)
	}
	var eg errgroup.Group
	bandChanged := make([]bool, len(bands))
	for i, b := range bands {
		i, b := i, b
		eg.Go(func() error {
			bandChanged[i] = u.calcRows(next, b[0], b[1])
			return nil
		})
	}
	_ = eg.Wait()
	for _, c := range bandChanged {
		changed = changed || c
	}
	return next, changed
}

//bands splits the rows into [start, end) ranges, one per worker
func (u *Universe) bands() [][2]uint32 {
	height := u.options.Height
	workers := uint32(1)
	if u.options.Workers > 1 {
		workers = uint32(u.options.Workers)
	}
	rows := (height + workers - 1) / workers
	if rows < minRowsPerWorker {
		rows = minRowsPerWorker
	}
	var bands [][2]uint32
	for start := uint32(0); start < height; start += rows {
		end := start + rows
		if end > height {
			end = height
		}
		bands = append(bands, [2]uint32{start, end})
	}
	return bands
}

//calcRows writes the next state of rows [startRow, endRow) into next
//and reports whether any of these cells changed
func (u *Universe) calcRows(next []Cell, startRow uint32, endRow uint32) (changed bool) {
	w, h := u.options.Width, u.options.Height
	for r := startRow; r < endRow; r++ {
		for c := uint32(0); c < w; c++ {
			idx := u.Index(r, c)
			next[idx] = nextState(u.cells[idx], liveNeighborCount(u.cells, w, h, r, c))
			changed = changed || next[idx] != u.cells[idx]
		}
	}
	return
}

//nextState applies the Game of Life transition rule to one cell
func nextState(cell Cell, liveNeighbors uint8) Cell {
	switch {
	case cell == Alive && liveNeighbors < 2:
		return Dead
	case cell == Alive && liveNeighbors <= 3:
		return Alive
	case cell == Alive && liveNeighbors > 3:
		return Dead
	case cell == Dead && liveNeighbors == 3:
		return Alive
	default:
		return cell
	}
}
