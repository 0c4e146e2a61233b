package ui

import (
	"time"

	"kozytweaks/internal/domain/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Landing renders the home page: hero, features, pricing, optional
// testimonials, footer. Output depends only on ct and now.
func Landing(ct *content.Content, now time.Time) g.Node {
	return page(ct, ct.Metadata.Title, now,
		hero(ct.Hero),
		features(ct.Features),
		pricing(ct),
		g.If(ct.ShowTestimonials && len(ct.Testimonials) > 0, testimonials(ct.Testimonials)),
	)
}

func hero(h content.Hero) g.Node {
	actions := make([]g.Node, 0, len(h.Actions))
	for _, a := range h.Actions {
		actions = append(actions, Button(
			Type("button"),
			Class(actionClass(a.Style)),
			g.Attr("data-style", a.Style),
			g.Text(a.Label),
		))
	}

	return Section(
		ID("hero"),
		Class("max-w-7xl mx-auto px-6 py-24 text-center"),
		H1(Class("text-6xl font-bold"), g.Text(h.Title)),
		P(Class("mt-6 text-zinc-300 max-w-2xl mx-auto text-lg"), g.Text(h.Subtitle)),
		Div(append([]g.Node{Class("mt-10 flex justify-center gap-4")}, actions...)...),
	)
}

func features(fs []content.Feature) g.Node {
	return Section(
		ID("features"),
		Class("max-w-7xl mx-auto px-6 py-20 grid md:grid-cols-3 gap-6"),
		g.Map(fs, func(f content.Feature) g.Node {
			return Div(
				Class("feature-card transition-transform hover:-translate-y-1.5 "+cardBase),
				Div(
					Class("p-8"),
					icon(f.Icon, "w-10 h-10 mb-4 text-red-500"),
					H3(Class("text-xl font-semibold mb-2"), g.Text(f.Title)),
					P(Class("text-zinc-300"), g.Text(f.Description)),
				),
			)
		}),
	)
}

func pricing(ct *content.Content) g.Node {
	return Section(
		ID("pricing"),
		Class("max-w-7xl mx-auto px-6 py-24 text-center"),
		H2(Class("text-4xl font-bold mb-12"), g.Text("Pricing")),
		Div(
			Class("grid md:grid-cols-3 gap-6"),
			g.Map(ct.Plans, func(p content.Plan) g.Node {
				return planCard(p, ct.CheckoutURL(p))
			}),
		),
	)
}

func planCard(p content.Plan, checkoutURL string) g.Node {
	variant := content.VariantOf(p)

	return Div(
		ID("plan-"+content.Slug(p.Name)),
		Class("plan-card transition-transform hover:-translate-y-2 "+planCardClass(variant)),
		g.Attr("data-variant", string(variant)),
		Div(
			Class("p-8"),
			H3(Class("text-2xl font-semibold mb-2"), g.Text(p.Name)),
			P(Class("text-4xl font-bold mb-6"), g.Text(p.Price)),
			Ul(
				Class("space-y-3 mb-6 text-zinc-300"),
				g.Map(p.Perks, func(perk string) g.Node {
					return Li(
						Class("flex items-center gap-2"),
						icon(content.IconCheck, "w-4 h-4 text-red-500"),
						g.Text(perk),
					)
				}),
			),
			// Purchase opens the external checkout in a new browsing context.
			A(
				Class("buy block w-full bg-red-600 rounded-xl py-2 font-medium"),
				Href(checkoutURL),
				Target("_blank"),
				Rel("noopener noreferrer"),
				g.Textf("Buy %s", p.Name),
			),
		),
	)
}

func testimonials(ts []content.Testimonial) g.Node {
	return Section(
		ID("testimonials"),
		Class("max-w-7xl mx-auto px-6 py-20 grid md:grid-cols-3 gap-6"),
		g.Map(ts, func(t content.Testimonial) g.Node {
			return Figure(
				Class("testimonial p-8 "+cardBase),
				Div(
					Class("flex gap-1 mb-4 text-red-500"),
					icon(content.IconStar, "w-4 h-4"),
					icon(content.IconStar, "w-4 h-4"),
					icon(content.IconStar, "w-4 h-4"),
					icon(content.IconStar, "w-4 h-4"),
					icon(content.IconStar, "w-4 h-4"),
				),
				BlockQuote(Class("text-zinc-300"), g.Textf("“%s”", t.Quote)),
				FigCaption(Class("mt-4 font-semibold"), g.Text(t.Author)),
			)
		}),
	)
}
