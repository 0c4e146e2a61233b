package ui

import (
	"fmt"
	"net/http"
	"time"

	"kozytweaks/internal/domain/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// LegalPage renders one of the terms/privacy/refund documents.
func LegalPage(ct *content.Content, lp content.LegalPage, now time.Time) g.Node {
	clauses := make([]g.Node, 0, len(lp.Clauses))
	for i, cl := range lp.Clauses {
		clauses = append(clauses, P(
			Class("mb-3"),
			g.Textf("%d. ", i+1),
			Strong(g.Text(cl.Heading)),
			g.Text(" – "+cl.Body),
		))
	}

	return page(ct, fmt.Sprintf("%s – %s", lp.Title, ct.Brand.Name), now,
		Article(
			ID(lp.Slug),
			Class("max-w-3xl mx-auto p-6 text-white"),
			H1(Class("text-3xl font-bold mb-6"), g.Text(lp.Title)),
			g.Group(clauses),
		),
	)
}

// NotFound renders the 404 document.
func NotFound(ct *content.Content, now time.Time) g.Node {
	return page(ct, fmt.Sprintf("Page not found – %s", ct.Brand.Name), now,
		Section(
			ID("not-found"),
			Class("max-w-3xl mx-auto px-6 py-24 text-center"),
			H1(Class("text-4xl font-bold mb-6"), g.Textf("%d", http.StatusNotFound)),
			P(Class("text-zinc-300 mb-8"), g.Text("This page does not exist.")),
			A(Href("/"), Class("text-red-500 hover:underline"), g.Textf("Back to %s", ct.Brand.Name)),
		),
	)
}
