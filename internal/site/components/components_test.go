package components

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"landing-site/internal/site/form"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestLandingPage_RendersAllSections(t *testing.T) {
	html := render(t, LandingPage(form.State{}, 2026))

	require.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	for _, id := range []string{`id="hero"`, `id="features"`, `id="pricing"`, `id="contact"`} {
		require.Contains(t, html, id)
	}
	require.Contains(t, html, "<title>"+defaultTitle+"</title>")
	require.Contains(t, html, "© 2026 Nimbus Labs")
	for _, p := range plans {
		require.Contains(t, html, p.Name)
	}
}

func TestContact_IdleForm(t *testing.T) {
	html := render(t, Contact(form.State{}))

	require.Contains(t, html, `method="post"`)
	require.Contains(t, html, `name="email"`)
	require.Contains(t, html, `name="message"`)
	require.Contains(t, html, "Send Message")
	require.NotContains(t, html, "disabled")
	require.NotContains(t, html, `role="status"`)
}

func TestContact_LoadingDisablesButton(t *testing.T) {
	html := render(t, Contact(form.State{Loading: true}))

	require.Contains(t, html, "Sending...")
	require.Contains(t, html, "disabled")
}

func TestContact_Feedback(t *testing.T) {
	html := render(t, Contact(form.State{Success: true, Feedback: "Your message has been sent successfully!"}))
	require.Contains(t, html, "feedback-success")
	require.Contains(t, html, "Your message has been sent successfully!")

	html = render(t, Contact(form.State{Email: "a@b.com", Message: "<hi>", Feedback: "Email and message are required."}))
	require.Contains(t, html, "feedback-error")
	require.Contains(t, html, `value="a@b.com"`)
	require.Contains(t, html, "&lt;hi&gt;")
}
