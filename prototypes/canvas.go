package prototypes

import (
	"bytes"
	"text/template"

	"github.com/reusee/pane/grids"
	"github.com/reusee/pane/screens"
)

type canvasData struct {
	Title        string
	Width        int
	Height       int
	ScreenWidth  int
	ScreenHeight int
	Margin       int
	Frames       []canvasFrame
	Lines        []canvasLine
}

type canvasFrame struct {
	ID     string
	Name   string
	X      int
	Y      int
	Root   bool
	Markup string
}

type canvasLine struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// Canvas renders the whole project as one zoomed-out page: every
// screen framed at its grid position, with connector arrows for every
// navigation edge between placed screens.
func Canvas(list []*screens.Screen, profile grids.Profile, project string) string {
	if project == "" {
		project = "Untitled"
	}

	cells := make([]grids.Cell, 0, len(list))
	byID := make(map[string]grids.Cell)
	for _, screen := range list {
		cell := grids.Cell{
			Column: screen.GridColumn,
			Row:    screen.GridRow,
		}
		cells = append(cells, cell)
		byID[screen.ID] = cell
	}
	box := profile.BoundingBox(cells)

	// normalize negative origins into view, with gap-sized padding
	offsetX := profile.HorizontalGap - box.X
	offsetY := profile.VerticalGap - box.Y

	data := canvasData{
		Title:        project,
		Width:        box.Width + 2*profile.HorizontalGap,
		Height:       box.Height + 2*profile.VerticalGap,
		ScreenWidth:  profile.ScreenWidth,
		ScreenHeight: profile.ScreenHeight,
		Margin:       profile.FrameMargin,
	}

	for _, screen := range list {
		origin := profile.CellOrigin(byID[screen.ID])
		data.Frames = append(data.Frames, canvasFrame{
			ID:     screen.ID,
			Name:   screen.Name,
			X:      origin.X + offsetX,
			Y:      origin.Y + offsetY,
			Root:   screen.Root,
			Markup: screen.Markup,
		})
	}

	for _, edge := range NavigationEdges(list) {
		if edge.From == edge.To {
			continue
		}
		to, ok := byID[edge.To]
		if !ok {
			// dangling target, nothing to draw
			continue
		}
		from := byID[edge.From]
		fromEdge, toEdge := connectorAnchors(from, to)
		p1 := profile.EdgeAnchor(from, fromEdge)
		p2 := profile.EdgeAnchor(to, toEdge)
		data.Lines = append(data.Lines, canvasLine{
			X1: p1.X + offsetX,
			Y1: p1.Y + offsetY,
			X2: p2.X + offsetX,
			Y2: p2.Y + offsetY,
		})
	}

	var buf bytes.Buffer
	_ = canvasTmpl.Execute(&buf, data)
	return buf.String()
}

// connectorAnchors picks the frame sides a connector leaves from and
// arrives at, based on relative grid placement.
func connectorAnchors(from, to grids.Cell) (grids.Edge, grids.Edge) {
	switch {
	case to.Column > from.Column:
		return grids.EdgeRight, grids.EdgeLeft
	case to.Column < from.Column:
		return grids.EdgeLeft, grids.EdgeRight
	case to.Row > from.Row:
		return grids.EdgeBottom, grids.EdgeTop
	case to.Row < from.Row:
		return grids.EdgeTop, grids.EdgeBottom
	}
	return grids.EdgeRight, grids.EdgeLeft
}

var canvasTmpl = template.Must(template.New("canvas").Parse(canvasTemplate))

const canvasTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ .Title | html }} overview</title>
<style>
body { margin: 0; background: #f3f4f6; font-family: system-ui, sans-serif; }
.canvas { position: relative; width: {{ .Width }}px; height: {{ .Height }}px; }
.frame { position: absolute; width: {{ .ScreenWidth }}px; height: {{ .ScreenHeight }}px; padding: {{ .Margin }}px; background: #ffffff; border: 1px solid #d1d5db; border-radius: 8px; box-sizing: content-box; }
.frame.root { border-color: #2563eb; }
.frame .label { position: absolute; top: -28px; left: 0; font-size: 14px; color: #374151; white-space: nowrap; }
.frame .body { width: {{ .ScreenWidth }}px; height: {{ .ScreenHeight }}px; overflow: hidden; }
.wires { position: absolute; inset: 0; width: {{ .Width }}px; height: {{ .Height }}px; pointer-events: none; }
.empty { color: #6b7280; padding: 24px; }
</style>
</head>
<body>
<div class="canvas">
<svg class="wires" xmlns="http://www.w3.org/2000/svg">
<defs>
<marker id="arrow" markerWidth="10" markerHeight="8" refX="9" refY="4" orient="auto">
<path d="M0,0 L10,4 L0,8 z" fill="#2563eb"></path>
</marker>
</defs>
{{ range .Lines }}<line x1="{{ .X1 }}" y1="{{ .Y1 }}" x2="{{ .X2 }}" y2="{{ .Y2 }}" stroke="#2563eb" stroke-width="2" marker-end="url(#arrow)"></line>
{{ end }}</svg>
{{ if not .Frames }}<p class="empty">No screens yet.</p>
{{ end }}{{ range .Frames }}<div class="frame{{ if .Root }} root{{ end }}" style="left: {{ .X }}px; top: {{ .Y }}px;">
<div class="label">{{ .Name | html }}</div>
<div class="body" id="{{ .ID }}">{{ .Markup }}</div>
</div>
{{ end }}</div>
</body>
</html>
`
