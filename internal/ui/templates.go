package ui

import (
	"fmt"
	"html/template"
	"io"
	"path/filepath"
	"strings"
	"time"
)

// Template functions available in all templates.
var templateFuncs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format("15:04:05")
	},
	"add": func(a, b int) int {
		return a + b
	},
	"fixed": func(prec int, f float64) string {
		return fmt.Sprintf("%.*f", prec, f)
	},
	"noticeColor": func(level string) string {
		switch strings.ToLower(level) {
		case "success":
			return "bg-green-50 text-green-800"
		case "warning":
			return "bg-yellow-50 text-yellow-800"
		case "error":
			return "bg-red-50 text-red-800"
		default:
			return "bg-blue-50 text-blue-800"
		}
	},
}

// renderTemplate renders a template with the given data.
func renderTemplate(w io.Writer, name string, data map[string]any) error {
	// Get the template content.
	content, ok := templates[name]
	if !ok {
		return fmt.Errorf("template not found: %s", name)
	}

	// Get the layout template.
	layout, ok := templates["layout"]
	if !ok {
		return fmt.Errorf("layout template not found")
	}

	// Parse templates.
	tmpl, err := template.New("layout").Funcs(templateFuncs).Parse(layout)
	if err != nil {
		return fmt.Errorf("parse layout: %w", err)
	}

	_, err = tmpl.New("content").Parse(content)
	if err != nil {
		return fmt.Errorf("parse content: %w", err)
	}

	// Add shared components.
	for compName, compContent := range templates {
		if strings.HasPrefix(compName, "components/") {
			_, err = tmpl.New(filepath.Base(compName)).Parse(compContent)
			if err != nil {
				return fmt.Errorf("parse component %s: %w", compName, err)
			}
		}
	}

	return tmpl.Execute(w, data)
}

// templates holds all template content.
var templates = map[string]string{
	"layout": `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <script src="https://cdn.tailwindcss.com"></script>
    <style>
        .track-bar { position: relative; height: 2.5rem; }
        .track-marker { position: absolute; top: 0.5rem; transform: translateX(-50%); }
        .head-marker { position: absolute; top: 0; bottom: 0; width: 3px; transform: translateX(-50%); transition: left 0.5s ease-in-out; }
    </style>
</head>
<body class="bg-gray-50 min-h-screen">
    <nav class="bg-white shadow-sm border-b">
        <div class="max-w-5xl mx-auto px-4 sm:px-6 lg:px-8">
            <div class="flex h-16">
                <a href="/" class="flex items-center px-2 py-2 text-xl font-bold text-indigo-600">
                    disksched
                </a>
                <div class="hidden sm:ml-6 sm:flex sm:space-x-8">
                    <a href="/" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">
                        Workspace
                    </a>
                    <a href="/algorithms" class="border-transparent text-gray-500 hover:border-gray-300 hover:text-gray-700 inline-flex items-center px-1 pt-1 border-b-2 text-sm font-medium">
                        Algorithms
                    </a>
                </div>
            </div>
        </div>
    </nav>

    <main class="max-w-5xl mx-auto py-6 sm:px-6 lg:px-8">
        {{template "content" .}}
    </main>
</body>
</html>`,

	"components/track_bar": `{{define "track_bar"}}
<div class="bg-white shadow rounded-lg p-4 mb-6">
    <div class="track-bar bg-gray-100 rounded">
        {{range .Markers}}
        <span class="track-marker text-xs font-mono bg-indigo-100 text-indigo-800 px-1 rounded" style="left: {{fixed 2 .Percent}}%">{{.Track}}</span>
        {{end}}
        <div id="head-marker" class="head-marker bg-red-500" style="left: {{fixed 2 .HeadPercent}}%" title="Head at {{.State.Head}}"></div>
    </div>
    <div class="flex justify-between text-xs text-gray-500 mt-1">
        <span>0</span>
        <span>Head: {{.State.Head}}</span>
        <span>{{add .State.TotalTracks -1}}</span>
    </div>
</div>
{{end}}`,

	"workspace": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <div class="mb-6">
        <h1 class="text-2xl font-semibold text-gray-900">Disk Scheduling Simulator</h1>
        <p class="mt-1 text-sm text-gray-500">{{.State.Description}}</p>
    </div>

    {{if .Error}}
    <div class="rounded-md bg-red-50 p-4 mb-4">
        <div class="text-sm text-red-700">{{.Error}}</div>
    </div>
    {{end}}

    {{template "track_bar" .}}

    <div class="grid grid-cols-1 gap-6 lg:grid-cols-2 mb-6">
        <div class="bg-white shadow rounded-lg p-4 space-y-4">
            <form action="/ui/requests" method="POST" class="flex gap-2">
                <input name="track" type="text" placeholder="Track (0-{{add .State.TotalTracks -1}})" {{if .State.Simulating}}disabled{{end}}
                       class="flex-1 px-3 py-2 border border-gray-300 rounded-md text-sm">
                <button type="submit" {{if .State.Simulating}}disabled{{end}} class="px-4 py-2 text-sm font-medium rounded-md text-white bg-indigo-600 hover:bg-indigo-700 disabled:opacity-50">Add Request</button>
            </form>
            <form action="/ui/head" method="POST" class="flex gap-2">
                <input name="head" type="text" value="{{.State.Head}}" {{if .State.Simulating}}disabled{{end}}
                       class="flex-1 px-3 py-2 border border-gray-300 rounded-md text-sm">
                <button type="submit" {{if .State.Simulating}}disabled{{end}} class="px-4 py-2 text-sm font-medium rounded-md border border-gray-300 hover:bg-gray-50 disabled:opacity-50">Set Head</button>
            </form>
            <form action="/ui/algorithm" method="POST" class="flex gap-2">
                <select name="algorithm" {{if .State.Simulating}}disabled{{end}} class="flex-1 px-3 py-2 border border-gray-300 rounded-md text-sm">
                    {{range .Algorithms}}
                    <option value="{{.}}" {{if eq . $.State.Algorithm}}selected{{end}}>{{.Label}}</option>
                    {{end}}
                </select>
                <button type="submit" {{if .State.Simulating}}disabled{{end}} class="px-4 py-2 text-sm font-medium rounded-md border border-gray-300 hover:bg-gray-50 disabled:opacity-50">Select</button>
            </form>
            {{if eq .State.Algorithm "scan"}}
            <form action="/ui/direction" method="POST" class="flex gap-2">
                <select name="direction" {{if .State.Simulating}}disabled{{end}} class="flex-1 px-3 py-2 border border-gray-300 rounded-md text-sm">
                    <option value="left" {{if eq .State.Direction "left"}}selected{{end}}>Left</option>
                    <option value="right" {{if eq .State.Direction "right"}}selected{{end}}>Right</option>
                </select>
                <button type="submit" {{if .State.Simulating}}disabled{{end}} class="px-4 py-2 text-sm font-medium rounded-md border border-gray-300 hover:bg-gray-50 disabled:opacity-50">Direction</button>
            </form>
            {{end}}
            <div class="flex gap-2">
                {{if .State.Simulating}}
                <form action="/ui/stop" method="POST"><button type="submit" class="px-4 py-2 text-sm font-medium rounded-md text-white bg-red-600 hover:bg-red-700">Stop</button></form>
                {{else}}
                <form action="/ui/start" method="POST"><button type="submit" class="px-4 py-2 text-sm font-medium rounded-md text-white bg-green-600 hover:bg-green-700">Start Simulation</button></form>
                <form action="/ui/clear" method="POST"><button type="submit" class="px-4 py-2 text-sm font-medium rounded-md border border-gray-300 hover:bg-gray-50">Clear All</button></form>
                {{end}}
            </div>
        </div>

        <div class="bg-white shadow rounded-lg p-4">
            <h2 class="text-lg font-medium text-gray-900 mb-3">Metrics</h2>
            <dl class="grid grid-cols-2 gap-4 text-sm">
                <div><dt class="text-gray-500">Total Seek Time</dt><dd id="total-seek" class="text-xl font-semibold">{{.State.Metrics.TotalSeekTime}}</dd></div>
                <div><dt class="text-gray-500">Average Seek Time</dt><dd id="avg-seek" class="text-xl font-semibold">{{fixed 2 .State.Metrics.AverageSeekTime}}</dd></div>
                <div><dt class="text-gray-500">Throughput (req per 1000 tracks)</dt><dd class="text-xl font-semibold">{{fixed 2 .State.Metrics.Throughput}}</dd></div>
                <div><dt class="text-gray-500">Steps</dt><dd class="text-xl font-semibold">{{.State.Applied}} / {{len .State.Sequence}}</dd></div>
            </dl>
        </div>
    </div>

    <div class="bg-white shadow rounded-lg p-4 mb-6">
        <h2 class="text-lg font-medium text-gray-900 mb-3">Request Queue</h2>
        {{if .State.Requests}}
        <ul class="flex flex-wrap gap-2">
            {{range .State.Requests}}
            <li class="inline-flex items-center gap-1 px-2 py-1 rounded bg-gray-100 font-mono text-sm">
                {{.}}
                {{if not $.State.Simulating}}
                <form action="/ui/requests/{{.}}/delete" method="POST" class="inline"><button type="submit" class="text-gray-400 hover:text-red-600" title="Remove">&times;</button></form>
                {{end}}
            </li>
            {{end}}
        </ul>
        {{else}}
        <p class="text-sm text-gray-500">No pending requests.</p>
        {{end}}
    </div>

    {{if .State.Sequence}}
    <div class="bg-white shadow rounded-lg p-4 mb-6">
        <h2 class="text-lg font-medium text-gray-900 mb-3">Service Sequence</h2>
        <ol class="flex flex-wrap gap-2">
            {{range $i, $t := .State.Sequence}}
            <li class="px-2 py-1 rounded font-mono text-sm {{if lt $i $.State.Applied}}bg-green-100 text-green-800{{else}}bg-gray-100 text-gray-600{{end}}">{{$t}}</li>
            {{end}}
        </ol>
    </div>
    {{end}}

    {{if .Notices}}
    <div class="space-y-2">
        {{range .Notices}}
        <div class="rounded-md px-4 py-2 text-sm {{noticeColor (printf "%s" .Level)}}">
            <span class="text-xs opacity-75 mr-2">{{formatTime .Time}}</span>{{.Message}}
        </div>
        {{end}}
    </div>
    {{end}}
</div>
{{if .State.Simulating}}
<script>
    const events = new EventSource("/api/v1/sse/workspace");
    events.addEventListener("update", () => window.location.reload());
    events.addEventListener("complete", () => { events.close(); window.location.reload(); });
</script>
{{end}}
{{end}}`,

	"algorithms": `{{define "content"}}
<div class="px-4 py-6 sm:px-0">
    <h1 class="text-2xl font-semibold text-gray-900 mb-6">Algorithms</h1>
    <div class="space-y-4">
        {{range .Algorithms}}
        <div class="bg-white shadow rounded-lg p-4">
            <h2 class="text-lg font-medium text-gray-900">{{.Label}}</h2>
            <p class="mt-1 text-sm text-gray-600">{{.Description}}</p>
        </div>
        {{end}}
    </div>
</div>
{{end}}`,
}
