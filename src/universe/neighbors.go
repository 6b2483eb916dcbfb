package universe

//LiveNeighborCount sums the 8 toroidally adjacent cells of row, column
//the coordinates must be in range, the result is in [0, 8]
func (u *Universe) LiveNeighborCount(row uint32, column uint32) uint8 {
	return liveNeighborCount(u.cells, u.options.Width, u.options.Height, row, column)
}

//liveNeighborCount reads from cells only, so it can be used against a snapshot of the previous generation
//adding height-1 (or width-1) modulo the dimension steps one back without going negative
func liveNeighborCount(cells []Cell, width uint32, height uint32, row uint32, column uint32) uint8 {
	var count uint8
	for _, dr := range [3]uint32{height - 1, 0, 1} {
		for _, dc := range [3]uint32{width - 1, 0, 1} {
			//skip my position
			if dr == 0 && dc == 0 {
				continue
			}
			r := (row + dr) % height
			c := (column + dc) % width
			count += uint8(cells[int(r)*int(width)+int(c)])
		}
	}
	return count
}
