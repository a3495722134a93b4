package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func Hero() g.Node {
	return Section(
		ID("hero"),
		Class("hero container text-center py-20"),
		H1(
			Class("text-4xl font-extrabold"),
			g.Text("Ship your product faster"),
		),
		P(
			Class("mt-5 text-base-content/80"),
			g.Text("Hosting, analytics and customer support in one place. Nimbus takes care of the plumbing so your team can take care of your users."),
		),
		Div(
			Class("mt-8 inline-flex gap-3"),
			A(Href("#pricing"), Class("btn btn-primary"), g.Text("See plans")),
			A(Href("#contact"), Class("btn btn-ghost"), g.Text("Talk to us")),
		),
	)
}
