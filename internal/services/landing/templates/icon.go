package templates

import (
	"strconv"
	"strings"

	"github.com/aceleraclinicas/landing/internal/platform/icons"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders a Lucide outline icon as inline SVG.
func Icon(name string, size int, strokeWidth string, class string) g.Node {
	if size <= 0 {
		size = 24
	}
	if strokeWidth == "" {
		strokeWidth = "2"
	}
	name = strings.TrimSpace(name)
	if !icons.Known(name) {
		name = icons.Default
	}
	classes := "icon lucide lucide-" + name
	if class = strings.TrimSpace(class); class != "" {
		classes += " " + class
	}
	dim := strconv.Itoa(size)
	return g.El("svg",
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("width", dim),
		g.Attr("height", dim),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", strokeWidth),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		Class(classes),
		Aria("hidden", "true"),
		g.Raw(icons.BodyOrDefault(name)),
	)
}
