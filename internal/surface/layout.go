package surface

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	barHeight   = 2 // track row + controls row
	volBarWidth = 8
	sideMargin  = 1
)

// regionID identifies an actionable area of the surface.
type regionID int

const (
	regionNone regionID = iota
	regionTrack
	regionPlay
	regionSkipBack
	regionSkipForward
	regionMute
	regionVolume
	regionSpeed
	regionQuality
	regionFullscreen
	regionPiP
	regionMenuItem
)

// region is a clickable cell range on one surface row.
type region struct {
	id     regionID
	x0, x1 int // [x0, x1)
	y      int
	index  int // menu item index for regionMenuItem
}

func (r region) contains(x, y int) bool {
	return y == r.y && x >= r.x0 && x < r.x1
}

// segment is one piece of the controls row. Rendering applies color only,
// never width, so the plain text is the layout source of truth.
type segment struct {
	id   regionID
	text string
}

// geometry is the computed cell layout of the surface for a given model
// state. The view and the mouse hit tests both derive from it so they
// can never disagree.
type geometry struct {
	width      int
	menuRows   int
	trackY     int
	controlsY  int
	trackX0    int
	trackX1    int // exclusive
	menuX0     int
	regions    []region
	leftSegs   []segment
	rightSegs  []segment
	menuLabels []string
}

// trackFraction converts a column to a clamped position fraction along
// the track.
func (g geometry) trackFraction(x int) float64 {
	span := g.trackX1 - g.trackX0 - 1
	if span <= 0 {
		return 0
	}
	frac := float64(x-g.trackX0) / float64(span)
	if frac < 0 {
		return 0
	}
	if frac > 1 {
		return 1
	}
	return frac
}

// hit returns the region under the pointer, if any. Coordinates are
// surface-local.
func (g geometry) hit(x, y int) (region, bool) {
	for _, r := range g.regions {
		if r.contains(x, y) {
			return r, true
		}
	}
	return region{}, false
}

// computeLayout derives the full geometry from the model state.
func computeLayout(m Model) geometry {
	g := geometry{width: m.width}

	g.menuLabels = m.menu.items()
	g.menuRows = len(g.menuLabels)
	g.trackY = g.menuRows
	g.controlsY = g.menuRows + 1

	g.trackX0 = sideMargin
	g.trackX1 = m.width - sideMargin
	if g.trackX1 < g.trackX0 {
		g.trackX1 = g.trackX0
	}
	g.regions = append(g.regions, region{id: regionTrack, x0: g.trackX0, x1: g.trackX1, y: g.trackY})

	g.leftSegs = leftSegments(m)
	g.rightSegs = rightSegments(m)

	x := sideMargin
	for _, s := range g.leftSegs {
		w := runewidth.StringWidth(s.text)
		if s.id != regionNone {
			g.regions = append(g.regions, region{id: s.id, x0: x, x1: x + w, y: g.controlsY})
		}
		x += w + 2
	}

	rightWidth := 0
	for i, s := range g.rightSegs {
		if i > 0 {
			rightWidth += 2
		}
		rightWidth += runewidth.StringWidth(s.text)
	}
	x = m.width - sideMargin - rightWidth
	for _, s := range g.rightSegs {
		w := runewidth.StringWidth(s.text)
		if s.id != regionNone {
			g.regions = append(g.regions, region{id: s.id, x0: x, x1: x + w, y: g.controlsY})
		}
		x += w + 2
	}

	if g.menuRows > 0 {
		boxWidth := 0
		for _, label := range g.menuLabels {
			if w := runewidth.StringWidth(label); w > boxWidth {
				boxWidth = w
			}
		}
		boxWidth += 3 // cursor marker + padding
		g.menuX0 = m.width - sideMargin - boxWidth
		if g.menuX0 < 0 {
			g.menuX0 = 0
		}
		for i := range g.menuLabels {
			g.regions = append(g.regions, region{
				id: regionMenuItem, x0: g.menuX0, x1: m.width - sideMargin, y: i, index: i,
			})
		}
	}

	return g
}

// leftSegments builds the transport controls and the time label.
func leftSegments(m Model) []segment {
	pos := m.displayPosition()

	playIcon := iconPause
	switch {
	case m.snap.Ended:
		playIcon = iconReplay
	case m.snap.Paused:
		playIcon = iconPlay
	}

	timeLabel := formatTime(pos) + " / " + formatTime(m.snap.Duration)
	if m.hoverSet {
		timeLabel += "  ~" + formatTime(m.hoverTime)
	}

	return []segment{
		{regionPlay, playIcon},
		{regionSkipBack, "«10"},
		{regionSkipForward, "10»"},
		{regionNone, timeLabel},
	}
}

// rightSegments builds volume, speed, quality and window controls.
func rightSegments(m Model) []segment {
	// Zero volume shows the muted icon without touching the muted flag.
	volIcon := iconVolume
	if m.snap.Muted || m.snap.Volume == 0 {
		volIcon = iconMuted
	}

	filled := int(m.snap.Volume*volBarWidth + 0.5)
	if filled > volBarWidth {
		filled = volBarWidth
	}
	volBar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, volBarWidth-filled)

	segs := []segment{
		{regionMute, volIcon},
		{regionVolume, volBar},
		{regionSpeed, formatRate(m.snap.Rate)},
		{regionQuality, m.quality},
		{regionFullscreen, iconFullscreen},
	}
	if m.eng != nil && m.eng.SupportsPiP() {
		segs = append(segs, segment{regionPiP, iconPiP})
	}
	return segs
}
