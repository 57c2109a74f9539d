package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type PageConfig struct {
	Title       string
	Description string
}

func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = "Creator Monetization System"
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				g.If(config.Description != "", Meta(Name("description"), Content(config.Description))),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				g.If(config.Description != "", Meta(g.Attr("property", "og:description"), Content(config.Description))),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("icon"), Type("image/svg+xml"), Href("/static/favicon.svg")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				g.Group(content),

				Script(Type("module"), Src("/static/js/countdown.js")),
				Script(Type("module"), Src("/static/js/waitlist.js")),
			),
		),
	})
}
