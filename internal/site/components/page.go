package components

import (
	g "maragu.dev/gomponents"

	"landing-site/internal/site/form"
)

// LandingPage composes every section of the page around the current form state.
func LandingPage(st form.State, year int) g.Node {
	return Layout(
		PageConfig{},
		Topbar(),
		Hero(),
		Features(),
		Pricing(),
		Contact(st),
		PageFooter(year),
	)
}
