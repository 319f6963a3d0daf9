package grids

import (
	"reflect"
	"testing"
)

func TestCellOrigin(t *testing.T) {
	profile := Compact

	if origin := profile.CellOrigin(Cell{Column: 0, Row: 0}); origin != (Point{}) {
		t.Fatalf("got %+v", origin)
	}

	// step: 390 + 2*24 + 120 = 558
	if origin := profile.CellOrigin(Cell{Column: 1, Row: 0}); origin != (Point{X: 558, Y: 0}) {
		t.Fatalf("got %+v", origin)
	}

	if origin := profile.CellOrigin(Cell{Column: 0, Row: 1}); origin != (Point{X: 0, Y: 972}) {
		t.Fatalf("got %+v", origin)
	}

	if origin := profile.CellOrigin(Cell{Column: 2, Row: 3}); origin != (Point{X: 1116, Y: 2916}) {
		t.Fatalf("got %+v", origin)
	}
}

func TestCellOriginNegative(t *testing.T) {
	profile := Compact
	if origin := profile.CellOrigin(Cell{Column: -1, Row: -2}); origin != (Point{X: -558, Y: -1944}) {
		t.Fatalf("got %+v", origin)
	}
}

func TestCellCenter(t *testing.T) {
	profile := Compact
	// frame: 438 x 892
	if center := profile.CellCenter(Cell{}); center != (Point{X: 219, Y: 446}) {
		t.Fatalf("got %+v", center)
	}
	if center := profile.CellCenter(Cell{Column: 1, Row: 1}); center != (Point{X: 558 + 219, Y: 972 + 446}) {
		t.Fatalf("got %+v", center)
	}
}

func TestEdgeAnchor(t *testing.T) {
	profile := Compact
	cell := Cell{Column: 1, Row: 0}

	cases := []struct {
		edge Edge
		want Point
	}{
		{EdgeLeft, Point{X: 558, Y: 446}},
		{EdgeRight, Point{X: 558 + 438, Y: 446}},
		{EdgeTop, Point{X: 558 + 219, Y: 0}},
		{EdgeBottom, Point{X: 558 + 219, Y: 892}},
	}
	for _, c := range cases {
		if got := profile.EdgeAnchor(cell, c.edge); got != c.want {
			t.Fatalf("edge %v: got %+v, want %+v", c.edge, got, c.want)
		}
	}
}

func TestBoundingBox(t *testing.T) {
	profile := Compact

	t.Run("empty", func(t *testing.T) {
		if box := profile.BoundingBox(nil); box != (Box{}) {
			t.Fatalf("got %+v", box)
		}
	})

	t.Run("single cell", func(t *testing.T) {
		box := profile.BoundingBox([]Cell{{Column: 0, Row: 0}})
		want := Box{X: 0, Y: 0, Width: 438, Height: 892}
		if box != want {
			t.Fatalf("got %+v, want %+v", box, want)
		}
	})

	t.Run("two columns", func(t *testing.T) {
		box := profile.BoundingBox([]Cell{
			{Column: 0, Row: 0},
			{Column: 1, Row: 0},
		})
		want := Box{X: 0, Y: 0, Width: 558 + 438, Height: 892}
		if box != want {
			t.Fatalf("got %+v, want %+v", box, want)
		}
	})

	t.Run("negative cells", func(t *testing.T) {
		box := profile.BoundingBox([]Cell{
			{Column: -1, Row: 0},
			{Column: 1, Row: 1},
		})
		want := Box{
			X:      -558,
			Y:      0,
			Width:  558*2 + 438,
			Height: 972 + 892,
		}
		if box != want {
			t.Fatalf("got %+v, want %+v", box, want)
		}
	})
}

func TestProfiles(t *testing.T) {
	if !reflect.DeepEqual(Profiles["compact"], Compact) {
		t.Fatal()
	}
	if !reflect.DeepEqual(Profiles["wide"], Wide) {
		t.Fatal()
	}

	// wide step: 1440 + 2*32 + 160 = 1664
	if Wide.StepX() != 1664 {
		t.Fatalf("got %d", Wide.StepX())
	}
}
