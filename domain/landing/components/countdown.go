package components

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// TimeLeft is the remaining time until launch split into display units.
type TimeLeft struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Remaining returns the time from now until launch, zero once launch has
// passed.
func Remaining(now, launch time.Time) TimeLeft {
	d := launch.Sub(now)
	if d <= 0 {
		return TimeLeft{}
	}
	secs := int(d / time.Second)
	return TimeLeft{
		Days:    secs / 86400,
		Hours:   secs / 3600 % 24,
		Minutes: secs / 60 % 60,
		Seconds: secs % 60,
	}
}

// Countdown renders the server-side initial value; countdown.js keeps it
// ticking from data-launch.
func Countdown(now, launch time.Time) g.Node {
	left := Remaining(now, launch)
	units := []struct {
		key   string
		label string
		value int
	}{
		{"days", "Days", left.Days},
		{"hours", "Hours", left.Hours},
		{"minutes", "Mins", left.Minutes},
		{"seconds", "Secs", left.Seconds},
	}

	var cells []g.Node
	for i, u := range units {
		if i > 0 {
			cells = append(cells, Span(Class("countdown-sep"), g.Text(":")))
		}
		cells = append(cells, Div(
			Class("countdown-unit"),
			Span(Class("countdown-value gradient-text"), g.Attr("data-unit", u.key), g.Text(fmt.Sprintf("%02d", u.value))),
			Span(Class("countdown-label"), g.Text(u.label)),
		))
	}

	return Div(
		Class("countdown"),
		ID("countdown"),
		g.Attr("data-launch", launch.UTC().Format(time.RFC3339)),
		g.Attr("aria-label", "Time until launch"),
		g.Group(cells),
	)
}
