package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"landing-site/internal/site/form"
)

// Contact renders the contact section from the form state. The form posts
// back to the site, which relays it to the contact API.
func Contact(st form.State) g.Node {
	buttonLabel := "Send Message"
	if st.Loading {
		buttonLabel = "Sending..."
	}

	return Section(
		ID("contact"),
		Class("contact container py-16"),
		H2(Class("text-center font-semibold text-3xl"), g.Text("Get in touch")),
		P(Class("text-center mt-3 text-base-content/70"), g.Text("Questions about plans or migrations? Send us a note and we will get back to you.")),
		Form(
			Class("contact-form mx-auto mt-8 max-w-xl space-y-4"),
			Method("post"),
			Action("/contact#contact"),
			Div(
				Label(For("email"), g.Text("Email")),
				Input(
					ID("email"),
					Name("email"),
					Type("email"),
					Class("input input-bordered w-full"),
					Placeholder("you@example.com"),
					Value(st.Email),
					Required(),
				),
			),
			Div(
				Label(For("message"), g.Text("Message")),
				Textarea(
					ID("message"),
					Name("message"),
					Class("textarea textarea-bordered w-full"),
					g.Attr("rows", "5"),
					Placeholder("How can we help?"),
					Required(),
					g.Text(st.Message),
				),
			),
			Button(
				Type("submit"),
				Class("btn btn-primary"),
				g.If(st.Loading, Disabled()),
				g.Text(buttonLabel),
			),
			g.If(st.Feedback != "", feedback(st)),
		),
	)
}

func feedback(st form.State) g.Node {
	classes := "feedback feedback-error"
	if st.Success {
		classes = "feedback feedback-success"
	}
	return P(
		Class(classes),
		g.Attr("role", "status"),
		g.Text(st.Feedback),
	)
}
