package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Plan struct {
	Name        string
	Price       string
	Period      string
	Perks       []string
	Highlighted bool
}

var plans = []Plan{
	{Name: "Starter", Price: "$0", Period: "forever", Perks: []string{"1 project", "Community support", "Basic analytics"}},
	{Name: "Pro", Price: "$29", Period: "per month", Perks: []string{"10 projects", "Email support", "Full analytics", "Custom domains"}, Highlighted: true},
	{Name: "Business", Price: "$99", Period: "per month", Perks: []string{"Unlimited projects", "Priority support", "SSO", "Audit logs"}},
}

func Pricing() g.Node {
	return Section(
		ID("pricing"),
		Class("pricing container py-16"),
		H2(Class("text-center font-semibold text-3xl"), g.Text("Simple pricing")),
		P(Class("text-center mt-3 text-base-content/70"), g.Text("Start free, upgrade when you grow. Cancel any time.")),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-6 mt-12"),
			g.Group(g.Map(plans, planCard)),
		),
	)
}

func planCard(p Plan) g.Node {
	classes := "card border border-base-300"
	if p.Highlighted {
		classes = "card border-2 border-primary"
	}
	return Div(
		Class(classes),
		Div(
			Class("card-body"),
			H3(Class("font-semibold text-xl"), g.Text(p.Name)),
			P(
				Class("mt-2"),
				Span(Class("text-4xl font-bold"), g.Text(p.Price)),
				g.Text(" "+p.Period),
			),
			Ul(
				Class("mt-4 space-y-2"),
				g.Group(g.Map(p.Perks, func(perk string) g.Node {
					return Li(g.Text(perk))
				})),
			),
			A(Href("#contact"), Class("btn btn-primary mt-6"), g.Text("Get started")),
		),
	)
}
