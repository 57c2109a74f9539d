package components

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(siteTitle string, year int) g.Node {
	return Footer(
		Class("footer"),
		ID("contact"),
		Div(
			Class("footer-inner container"),
			Div(
				Class("footer-brand"),
				Logo(28),
				Span(g.Text(siteTitle)),
			),
			Div(
				Class("footer-social"),
				A(Href("#"), g.Attr("target", "_blank"), g.Attr("rel", "noopener"), Icon("lucide--github", "GitHub")),
				A(Href("#"), g.Attr("target", "_blank"), g.Attr("rel", "noopener"), Icon("lucide--twitter", "Twitter")),
				A(Href("#"), g.Attr("target", "_blank"), g.Attr("rel", "noopener"), Icon("lucide--linkedin", "LinkedIn")),
			),
			P(Class("muted"), g.Text(fmt.Sprintf("© %d %s. All rights reserved.", year, siteTitle))),
		),
	)
}
