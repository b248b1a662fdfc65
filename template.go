package revealdown

import (
	"html/template"
	"strings"
)

// DefaultHeader is the page scaffold written before the slides when
// Config.AddHeaderFooter is set.
const DefaultHeader = `<!doctype html>
<html lang="en">

	<head>
		<meta charset="utf-8">

		<title>Slides</title>

		<link rel="stylesheet" href="reveal.js/css/reveal.min.css">
		<link rel="stylesheet" href="reveal.js/css/theme/default.css" id="theme">
	</head>

	<body>
`

// DefaultFooter closes the page opened by DefaultHeader and boots reveal.js.
const DefaultFooter = `		<script src="reveal.js/lib/js/head.min.js"></script>
		<script src="reveal.js/js/reveal.min.js"></script>

		<script>

			Reveal.initialize();

		</script>

	</body>
</html>`

const DefaultSlidesOpen = `		<div class="reveal">
			<div class="slides">
`

const DefaultSlidesClose = `			</div>
		</div>
`

var headerTmpl = `<!doctype html>
<html lang="en">

	<head>
		<meta charset="utf-8">

		<title>[[ .Title ]]</title>

		<link rel="stylesheet" href="reveal.js/css/reveal.min.css">
		<link rel="stylesheet" href="reveal.js/css/theme/[[ .Theme ]].css" id="theme">
	</head>

	<body>
`

// HeaderData fills the header template. Empty fields fall back to the
// values used by DefaultHeader.
type HeaderData struct {
	Title string
	Theme string
}

// RenderHeader renders a page header for the given title and reveal.js
// theme.
func RenderHeader(data HeaderData) (string, error) {
	if data.Title == "" {
		data.Title = "Slides"
	}
	if data.Theme == "" {
		data.Theme = "default"
	}
	tmpl, err := template.New("header").Delims("[[", "]]").Parse(headerTmpl)
	if err != nil {
		return "", err
	}
	buf := &strings.Builder{}
	if err := tmpl.Execute(buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
