package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navLink struct {
	Label string
	Href  string
}

func Topbar() g.Node {
	links := []navLink{
		{"Features", "#features"},
		{"Pricing", "#pricing"},
		{"Contact", "#contact"},
	}

	return Header(
		Class("topbar container flex items-center justify-between py-4"),
		Logo(),
		Nav(
			Class("flex gap-6"),
			g.Group(g.Map(links, func(l navLink) g.Node {
				return A(Class("link link-hover"), Href(l.Href), g.Text(l.Label))
			})),
		),
	)
}

func Logo() g.Node {
	return A(
		Class("font-bold text-xl"),
		Href("/"),
		g.Text("Nimbus"),
	)
}
