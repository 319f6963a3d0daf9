package grids

type Point struct {
	X int
	Y int
}

type Edge uint8

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// CellOrigin returns the top-left corner of the frame at cell.
func (p Profile) CellOrigin(cell Cell) Point {
	return Point{
		X: cell.Column * p.StepX(),
		Y: cell.Row * p.StepY(),
	}
}

// CellCenter returns the center of the frame at cell.
func (p Profile) CellCenter(cell Cell) Point {
	origin := p.CellOrigin(cell)
	return Point{
		X: origin.X + p.FrameWidth()/2,
		Y: origin.Y + p.FrameHeight()/2,
	}
}

// EdgeAnchor returns the midpoint of one side of the frame at cell,
// for attaching connector lines.
func (p Profile) EdgeAnchor(cell Cell, edge Edge) Point {
	origin := p.CellOrigin(cell)
	switch edge {
	case EdgeLeft:
		return Point{
			X: origin.X,
			Y: origin.Y + p.FrameHeight()/2,
		}
	case EdgeRight:
		return Point{
			X: origin.X + p.FrameWidth(),
			Y: origin.Y + p.FrameHeight()/2,
		}
	case EdgeTop:
		return Point{
			X: origin.X + p.FrameWidth()/2,
			Y: origin.Y,
		}
	case EdgeBottom:
		return Point{
			X: origin.X + p.FrameWidth()/2,
			Y: origin.Y + p.FrameHeight(),
		}
	}
	return origin
}
