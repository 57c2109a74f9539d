package components

import (
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type HeroProps struct {
	Now time.Time

	// Launch is shown as a countdown when HasLaunch is set
	Launch    time.Time
	HasLaunch bool
}

func Hero(props HeroProps) g.Node {
	return Section(
		Class("hero"),
		ID("waitlist"),

		Div(Class("hero-backdrop")),

		Div(
			Class("hero-content"),

			Div(Class("logo-badge logo-badge-lg"), Logo(32)),

			P(Class("eyebrow"), g.Text("Launch your affiliate program")),

			g.If(props.HasLaunch, Countdown(props.Now, props.Launch)),

			H1(
				g.Text("Join the waitlist for "),
				GradientText("creator monetization"),
			),

			EarlyAccess(),

			WaitlistForm(),

			ThankYou(),
		),
	)
}

// EarlyAccess is the beta program note shown above the form.
func EarlyAccess() g.Node {
	return Div(
		Class("early-access"),
		Div(
			Class("early-access-title"),
			Span(Class("pulse-dot")),
			g.Text("Beta Testing Program"),
		),
		P(Class("early-access-note"), g.Text("Limited spots for early access testers. Join now to be first in line.")),
	)
}

func WaitlistForm() g.Node {
	return Form(
		ID("waitlist-form"),
		Class("waitlist-form"),
		g.Attr("action", "/api/submit"),
		g.Attr("method", "post"),
		g.Attr("novalidate", ""),

		Div(
			Class("field"),
			Label(g.Attr("for", "waitlist-name"), g.Text("Name")),
			Input(
				ID("waitlist-name"),
				Name("name"),
				Type("text"),
				g.Attr("placeholder", "Enter your name"),
				g.Attr("autocomplete", "name"),
				g.Attr("required", ""),
			),
		),
		Div(
			Class("field"),
			Label(g.Attr("for", "waitlist-email"), g.Text("Email")),
			Input(
				ID("waitlist-email"),
				Name("email"),
				Type("email"),
				g.Attr("placeholder", "Enter your email"),
				g.Attr("autocomplete", "email"),
				g.Attr("required", ""),
			),
		),

		Button(
			Type("submit"),
			Class("btn btn-gradient btn-block"),
			g.Attr("data-label", "Join Waitlist"),
			g.Attr("data-busy-label", "Submitting..."),
			g.Text("Join Waitlist"),
			Icon("lucide--arrow-right size-4", ""),
		),

		P(Class("form-status"), ID("waitlist-status"), g.Attr("role", "status"), g.Attr("aria-live", "polite")),
	)
}

// ThankYou is the confirmation dialog waitlist.js opens after a successful
// submission.
func ThankYou() g.Node {
	return g.El("dialog",
		ID("waitlist-thanks"),
		Class("thanks"),
		Div(
			Class("thanks-icon"),
			Icon("lucide--party-popper size-10", "Success"),
		),
		H2(g.Text("Welcome Aboard!")),
		P(g.Text("You're now part of our exclusive beta testing group.")),
		P(Class("muted"), g.Text("We'll keep you updated on our progress.")),
		Form(
			g.Attr("method", "dialog"),
			Button(Class("btn btn-ghost"), g.Text("Close")),
		),
	)
}
