package grids

type Box struct {
	X      int
	Y      int
	Width  int
	Height int
}

// BoundingBox returns the smallest box covering the frames at all
// cells. The zero Box means no cells.
func (p Profile) BoundingBox(cells []Cell) Box {
	if len(cells) == 0 {
		return Box{}
	}

	first := p.CellOrigin(cells[0])
	minX, minY := first.X, first.Y
	maxX, maxY := first.X, first.Y
	for _, cell := range cells[1:] {
		origin := p.CellOrigin(cell)
		minX = min(minX, origin.X)
		minY = min(minY, origin.Y)
		maxX = max(maxX, origin.X)
		maxY = max(maxY, origin.Y)
	}

	return Box{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + p.FrameWidth(),
		Height: maxY - minY + p.FrameHeight(),
	}
}
