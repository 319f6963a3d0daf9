package grids

// Profile holds the pixel dimensions used to place screen frames on the
// canvas. All values are device pixels.
type Profile struct {
	ScreenWidth   int
	ScreenHeight  int
	HorizontalGap int
	VerticalGap   int
	FrameMargin   int
}

var Compact = Profile{
	ScreenWidth:   390,
	ScreenHeight:  844,
	HorizontalGap: 120,
	VerticalGap:   80,
	FrameMargin:   24,
}

var Wide = Profile{
	ScreenWidth:   1440,
	ScreenHeight:  900,
	HorizontalGap: 160,
	VerticalGap:   120,
	FrameMargin:   32,
}

var Profiles = map[string]Profile{
	"compact": Compact,
	"wide":    Wide,
}

// FrameWidth is the screen width plus the margin on both sides.
func (p Profile) FrameWidth() int {
	return p.ScreenWidth + 2*p.FrameMargin
}

func (p Profile) FrameHeight() int {
	return p.ScreenHeight + 2*p.FrameMargin
}

// StepX is the horizontal distance between the origins of two frames in
// adjacent grid columns.
func (p Profile) StepX() int {
	return p.FrameWidth() + p.HorizontalGap
}

func (p Profile) StepY() int {
	return p.FrameHeight() + p.VerticalGap
}
