package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Name string
	Href string
}

var navigation = []navItem{
	{"Features", "#features"},
	{"Pricing", "#pricing"},
	{"About", "#about"},
	{"Contact", "#contact"},
}

func AnnouncementBar(text string) g.Node {
	if text == "" {
		return nil
	}
	return Div(
		Class("announcement"),
		Span(g.Text(text)),
		Icon("lucide--arrow-right size-4", ""),
	)
}

func Navbar() g.Node {
	return Header(
		Class("navbar"),
		Nav(
			Class("navbar-inner container"),
			g.Attr("aria-label", "Global"),

			A(Href("/"), Class("logo-badge"), g.Attr("aria-label", "Home"), Logo(32)),

			Input(ID("nav-toggle"), Type("checkbox"), Class("nav-toggle")),
			Label(
				g.Attr("for", "nav-toggle"),
				Class("nav-burger"),
				Span(Class("sr-only"), g.Text("Open main menu")),
				Icon("lucide--menu size-6", ""),
			),

			Ul(
				Class("nav-links"),
				g.Group(g.Map(navigation, func(item navItem) g.Node {
					return Li(A(Href(item.Href), g.Text(item.Name)))
				})),
			),

			A(Href("#waitlist"), Class("btn btn-gradient"), g.Text("Join Waitlist")),
		),
	)
}
