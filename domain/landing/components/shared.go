package components

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Logo is the brand mark: an open ring with an arrow and a center circle.
func Logo(size int) g.Node {
	s := strconv.Itoa(size)
	stroke := g.Attr("stroke", "url(#logoGradient)")
	return g.El("svg",
		g.Attr("width", s),
		g.Attr("height", s),
		g.Attr("viewBox", "0 0 40 40"),
		g.Attr("fill", "none"),
		g.Attr("xmlns", "http://www.w3.org/2000/svg"),
		g.Attr("aria-hidden", "true"),
		g.El("defs",
			g.El("linearGradient",
				ID("logoGradient"),
				g.Attr("x1", "0%"), g.Attr("y1", "0%"), g.Attr("x2", "100%"), g.Attr("y2", "100%"),
				g.El("stop", g.Attr("offset", "0%"), g.Attr("stop-color", "#ec4899")),
				g.El("stop", g.Attr("offset", "100%"), g.Attr("stop-color", "#8b5cf6")),
			),
		),
		g.El("path",
			g.Attr("d", "M20 4C11.164 4 4 11.164 4 20C4 28.836 11.164 36 20 36C24.4183 36 28.4183 34.2091 31.3137 31.3137"),
			stroke, g.Attr("stroke-width", "3"), g.Attr("stroke-linecap", "round"),
		),
		g.El("path",
			g.Attr("d", "M28 12L32 16L28 20"),
			stroke, g.Attr("stroke-width", "2.5"), g.Attr("stroke-linecap", "round"), g.Attr("stroke-linejoin", "round"),
		),
		g.El("circle",
			g.Attr("cx", "20"), g.Attr("cy", "20"), g.Attr("r", "6"),
			stroke, g.Attr("stroke-width", "2.5"), g.Attr("fill", "none"),
		),
	)
}

// Icon renders an iconify icon. iconClass is "set--name [size classes]".
func Icon(iconClass, ariaLabel string) g.Node {
	parts := strings.Fields(iconClass)
	if len(parts) == 0 {
		return nil
	}
	classes := strings.Join(append([]string{"iconify", "icon"}, parts[1:]...), " ")
	name := strings.Replace(parts[0], "--", ":", 1)

	if ariaLabel != "" {
		return Span(Class(classes), g.Attr("data-icon", name), g.Attr("role", "img"), g.Attr("aria-label", ariaLabel))
	}
	return Span(Class(classes), g.Attr("data-icon", name), g.Attr("aria-hidden", "true"))
}

// GradientText wraps text in the pink-to-violet gradient.
func GradientText(text string) g.Node {
	return Span(Class("gradient-text"), g.Text(text))
}
