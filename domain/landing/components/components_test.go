package components

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestRemaining(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		launch time.Time
		want   TimeLeft
	}{
		{"past", now.Add(-time.Hour), TimeLeft{}},
		{"now", now, TimeLeft{}},
		{"mixed", now.Add(3*24*time.Hour + 4*time.Hour + 5*time.Minute + 6*time.Second + 900*time.Millisecond), TimeLeft{3, 4, 5, 6}},
		{"far", now.Add(120 * 24 * time.Hour), TimeLeft{Days: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Remaining(now, tt.launch))
		})
	}
}

func TestCountdown(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	html := render(t, Countdown(now, now.Add(2*24*time.Hour+30*time.Second)))

	assert.Contains(t, html, `data-launch="2026-10-20T12:00:30Z"`)
	assert.Contains(t, html, `data-unit="days">02<`)
	assert.Contains(t, html, `data-unit="seconds">30<`)
	assert.Contains(t, html, ">Mins<")
}

func TestHero(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	withLaunch := render(t, Hero(HeroProps{Now: now, Launch: now.Add(time.Hour), HasLaunch: true}))
	assert.Contains(t, withLaunch, `id="countdown"`)
	assert.Contains(t, withLaunch, `id="waitlist-form"`)
	assert.Contains(t, withLaunch, `name="name"`)
	assert.Contains(t, withLaunch, `name="email"`)
	assert.Contains(t, withLaunch, `action="/api/submit"`)
	assert.NotContains(t, withLaunch, "spots left")

	withoutLaunch := render(t, Hero(HeroProps{Now: now}))
	assert.NotContains(t, withoutLaunch, `id="countdown"`)
}

func TestCTA(t *testing.T) {
	html := render(t, CTA())
	assert.Contains(t, html, "No setup fees")
	assert.Contains(t, html, "Pay as you grow")
}

func TestIcon(t *testing.T) {
	assert.Equal(t,
		`<span class="iconify icon size-4" data-icon="lucide:arrow-right" aria-hidden="true"></span>`,
		render(t, Icon("lucide--arrow-right size-4", "")),
	)
	assert.Contains(t, render(t, Icon("lucide--github", "GitHub")), `aria-label="GitHub"`)
	assert.Nil(t, Icon("", ""))
}

func TestAnnouncementBar_Empty(t *testing.T) {
	assert.Nil(t, AnnouncementBar(""))
}
