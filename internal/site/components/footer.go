package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func PageFooter(year int) g.Node {
	return Footer(
		Class("footer container py-10 text-sm text-base-content/60"),
		P(g.Text("© "+strconv.Itoa(year)+" Nimbus Labs. All rights reserved.")),
	)
}
