package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Feature struct {
	Title       string
	Description string
}

var features = []Feature{
	{"Deploy in minutes", "Push to your repository and Nimbus builds, tests and rolls out every change with zero downtime."},
	{"Know your users", "Privacy-friendly analytics show what people use, where they drop off and what to build next."},
	{"Support built in", "A shared inbox for every message your customers send, wired to the same dashboard as your releases."},
}

func Features() g.Node {
	return Section(
		ID("features"),
		Class("features container py-16"),
		H2(Class("text-center font-semibold text-3xl"), g.Text("Everything a small team needs")),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-6 mt-12"),
			g.Group(g.Map(features, func(f Feature) g.Node {
				return Div(
					Class("card border border-base-300"),
					Div(
						Class("card-body"),
						H3(Class("font-semibold text-xl"), g.Text(f.Title)),
						P(Class("mt-2 text-sm text-base-content/80"), g.Text(f.Description)),
					),
				)
			})),
		),
	)
}
