package ui

import (
	"kozytweaks/internal/domain/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Stroke paths on a 24x24 grid, lucide style.
var iconPaths = map[string][]string{
	content.IconZap:    {"M13 2 3 14h9l-1 8 10-12h-9l1-8z"},
	content.IconShield: {"M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10z"},
	content.IconCPU: {
		"M6 4h12a2 2 0 0 1 2 2v12a2 2 0 0 1-2 2H6a2 2 0 0 1-2-2V6a2 2 0 0 1 2-2z",
		"M9 9h6v6H9z",
		"M9 1v3M15 1v3M9 20v3M15 20v3M20 9h3M20 14h3M1 9h3M1 14h3",
	},
	content.IconCheck: {"M20 6 9 17l-5-5"},
	content.IconStar:  {"M12 2l3.09 6.26L22 9.27l-5 4.87 1.18 6.88L12 17.77l-6.18 3.25L7 14.14 2 9.27l6.91-1.01L12 2z"},
}

// icon renders an inline SVG. Unknown names render nothing.
func icon(name, class string) g.Node {
	paths, ok := iconPaths[name]
	if !ok {
		return nil
	}

	children := []g.Node{
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Attr("stroke-linejoin", "round"),
		g.Attr("aria-hidden", "true"),
		g.Attr("data-icon", name),
		Class(class),
	}
	for _, d := range paths {
		children = append(children, g.El("path", g.Attr("d", d)))
	}
	return g.El("svg", children...)
}
