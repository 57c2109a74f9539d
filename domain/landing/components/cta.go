package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type benefit struct {
	Symbol string
	Title  string
	Text   string
}

func CTA() g.Node {
	benefits := []benefit{
		{"$", "No setup fees", "Get started immediately with zero upfront costs"},
		{"%", "Pay as you grow", "Only pay for what you use as your affiliate program grows"},
	}

	return Section(
		Class("cta"),
		ID("pricing"),
		Div(
			Class("cta-inner container"),
			Div(
				H2(g.Text("Ready to boost your revenue?")),
				P(Class("muted"), g.Text("Join the creators getting ready to monetize their platforms with affiliate marketing built for them.")),
				Div(
					Class("cta-actions"),
					A(Href("#waitlist"), Class("btn btn-light"), g.Text("Join Waitlist")),
					A(Href("mailto:hello@amsoft.dev"), Class("btn btn-outline"), g.Text("Contact Sales")),
				),
			),
			Dl(
				Class("benefits"),
				g.Group(g.Map(benefits, func(b benefit) g.Node {
					return Div(
						Class("benefit"),
						Div(Class("benefit-symbol"), g.Text(b.Symbol)),
						Dt(g.Text(b.Title)),
						Dd(g.Text(b.Text)),
					)
				})),
			),
		),
	)
}
