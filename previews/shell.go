package previews

import "text/template"

var shellTmpl = template.Must(template.New("shell").Parse(shellTemplate))

// The shell wraps the prototype in an iframe and polls /state. A
// revision change reloads the frame; everything else updates in place.
const shellTemplate = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ .Title | html }}</title>
<style>
html, body { margin: 0; height: 100%; font-family: system-ui, sans-serif; }
body { display: flex; flex-direction: column; background: #f3f4f6; }
header { display: flex; align-items: center; gap: 16px; padding: 8px 12px; font-size: 13px; color: #374151; background: #fff; border-bottom: 1px solid #e5e7eb; }
header nav { margin-left: auto; display: flex; gap: 12px; }
header a { color: #2563eb; text-decoration: none; }
#status { white-space: pre; }
label { display: flex; align-items: center; gap: 4px; }
iframe { flex: 1; width: 100%; border: 0; background: #fff; }
</style>
</head>
<body>
<header>
<span id="status">connecting</span>
<label><input type="checkbox" id="hotspots"> hotspots</label>
<nav>
<a href="/canvas" target="_blank">canvas</a>
<a href="/screens.json" target="_blank">screens</a>
<a href="/anomalies" target="_blank">anomalies</a>
</nav>
</header>
<iframe id="frame" src="/prototype"></iframe>
<script>
(function () {
	var frame = document.getElementById("frame");
	var hotspots = document.getElementById("hotspots");
	var status = document.getElementById("status");
	var revision = null;

	function pushHotspots() {
		if (frame.contentWindow) {
			frame.contentWindow.postMessage({
				type: "pane:hotspots",
				enabled: hotspots.checked,
			}, "*");
		}
	}
	frame.addEventListener("load", pushHotspots);

	hotspots.addEventListener("change", function () {
		fetch("/hotspots", {
			method: "POST",
			headers: { "Content-Type": "application/json" },
			body: JSON.stringify({ enabled: hotspots.checked }),
		});
		pushHotspots();
	});

	function tick() {
		fetch("/state").then(function (resp) {
			return resp.json();
		}).then(function (state) {
			document.title = state.project || "pane";
			status.textContent = (state.project || "untitled") +
				"  " + state.screens + " screens" +
				(state.anomalies ? "  " + state.anomalies + " anomalies" : "") +
				(state.generating ? "  generating" : "");
			if (hotspots.checked !== state.hotspots) {
				hotspots.checked = state.hotspots;
				pushHotspots();
			}
			if (state.revision !== revision) {
				revision = state.revision;
				frame.src = "/prototype?r=" + revision;
			}
		}).catch(function () {
			status.textContent = "disconnected";
		});
	}
	tick();
	setInterval(tick, 500);
})();
</script>
</body>
</html>
`
