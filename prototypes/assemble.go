package prototypes

import (
	"bytes"
	"text/template"

	"github.com/reusee/pane/grids"
	"github.com/reusee/pane/screens"
)

const Theory = `
# One File, No Server

The assembled prototype is a single HTML document: screens as hidden containers, navigation as an embedded script, nothing fetched. A file that opens from disk can be mailed, archived, and diffed. Byte-determinism is part of the contract, two exports of the same session are comparable with plain diff, so the assembler uses no timestamps, no randomness, and no map iteration.

Screen markup is embedded verbatim. The producer and the consumer of a prototype are the same person, so there is no trust boundary to defend, and rewriting the markup would break the screens in ways a preview cannot explain.
`

type documentData struct {
	Title   string
	Width   int
	Height  int
	Screens []documentScreen
}

type documentScreen struct {
	ID     string
	Name   string
	Markup string
	Active bool
}

// Assemble renders the screen list into one self-contained clickable
// document. Exactly one screen is active at load: the root-flagged
// one, else the first created.
func Assemble(list []*screens.Screen, profile grids.Profile, project string) string {
	if project == "" {
		project = "Untitled"
	}
	if len(list) == 0 {
		var buf bytes.Buffer
		_ = placeholderTmpl.Execute(&buf, documentData{
			Title: project,
			Width: profile.ScreenWidth,
		})
		return buf.String()
	}

	active := 0
	for i, screen := range list {
		if screen.Root {
			active = i
			break
		}
	}

	data := documentData{
		Title:  project,
		Width:  profile.ScreenWidth,
		Height: profile.ScreenHeight,
	}
	for i, screen := range list {
		data.Screens = append(data.Screens, documentScreen{
			ID:     screen.ID,
			Name:   screen.Name,
			Markup: screen.Markup,
			Active: i == active,
		})
	}

	var buf bytes.Buffer
	_ = documentTmpl.Execute(&buf, data)
	return buf.String()
}

var documentTmpl = template.Must(template.New("document").Parse(documentTemplate))

var placeholderTmpl = template.Must(template.New("placeholder").Parse(placeholderTemplate))

// text/template, not html/template: screen markup goes in verbatim.
const documentTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width={{ .Width }}, initial-scale=1">
<title>{{ .Title | html }}</title>
<style>
html, body { margin: 0; padding: 0; }
body { width: {{ .Width }}px; }
.screen { display: none; width: {{ .Width }}px; min-height: {{ .Height }}px; overflow-x: hidden; }
.screen.active { display: block; }
body.show-hotspots [trigger-target],
body.show-hotspots a[href^="#"] { outline: 2px dashed #2563eb; outline-offset: 2px; }
</style>
</head>
<body>
{{ range .Screens }}<section class="screen{{ if .Active }} active{{ end }}" id="{{ .ID }}" data-name="{{ .Name | html }}">{{ .Markup }}</section>
{{ end }}<script>
(function () {
	function activate(id) {
		var target = document.getElementById(id);
		if (!target || !target.classList.contains("screen")) {
			return;
		}
		var all = document.querySelectorAll(".screen");
		for (var i = 0; i < all.length; i++) {
			all[i].classList.remove("active");
		}
		target.classList.add("active");
		target.scrollTop = 0;
		window.scrollTo(0, 0);
	}
	document.addEventListener("click", function (event) {
		var trigger = event.target.closest("[trigger-target]");
		if (trigger) {
			event.preventDefault();
			activate(trigger.getAttribute("trigger-target"));
			return;
		}
		var anchor = event.target.closest("a[href^=\"#\"]");
		if (!anchor) {
			return;
		}
		var id = anchor.getAttribute("href").slice(1);
		var target = document.getElementById(id);
		if (target && target.classList.contains("screen")) {
			event.preventDefault();
			activate(id);
		}
	});
	window.addEventListener("message", function (event) {
		var data = event.data;
		if (data && data.type === "pane:hotspots") {
			document.body.classList.toggle("show-hotspots", !!data.enabled);
		}
	});
})();
</script>
</body>
</html>
`

const placeholderTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width={{ .Width }}, initial-scale=1">
<title>{{ .Title | html }}</title>
<style>
body { margin: 0; font-family: system-ui, sans-serif; color: #6b7280; display: flex; align-items: center; justify-content: center; min-height: 100vh; }
</style>
</head>
<body>
<p>No screens yet.</p>
</body>
</html>
`
