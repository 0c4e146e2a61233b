// Package ui renders the site's HTML documents with gomponents.
package ui

import (
	"time"

	"kozytweaks/internal/domain/content"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

// page wraps body nodes in the shared HTML5 document: SEO metadata in the
// head, the gradient background, and the footer.
func page(ct *content.Content, title string, now time.Time, body ...g.Node) g.Node {
	og := ct.Metadata.OpenGraph
	if og.Title == "" {
		og.Title = title
	}
	if og.Description == "" {
		og.Description = ct.Metadata.Description
	}

	return c.HTML5(c.HTML5Props{
		Title:       title,
		Description: ct.Metadata.Description,
		Language:    "en",
		Head: []g.Node{
			Meta(g.Attr("property", "og:title"), Content(og.Title)),
			Meta(g.Attr("property", "og:description"), Content(og.Description)),
			Meta(g.Attr("property", "og:type"), Content("website")),
			Script(Src(tailwindCDN)),
		},
		Body: []g.Node{
			Class("min-h-screen bg-gradient-to-b from-black via-red-950 to-black text-white"),
			Main(body...),
			footer(ct, now),
		},
	})
}

func footer(ct *content.Content, now time.Time) g.Node {
	links := make([]g.Node, 0, len(content.RequiredLegal))
	for _, slug := range content.RequiredLegal {
		lp, ok := ct.FindLegal(slug)
		if !ok {
			continue
		}
		links = append(links, A(Href(lp.Path()), Class("mx-2 hover:text-red-500"), g.Text(lp.Title)))
	}

	return Footer(
		Class("border-t border-red-900 py-10 text-center text-zinc-500"),
		Nav(links...),
		Div(Class("mt-2"), ID("copyright"), g.Textf("© %d %s", now.Year(), ct.Brand.Name)),
	)
}
