package surface

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tgrange/reel/internal/ui/styles"
)

// View renders the surface chrome. It returns an empty string while the
// controls are hidden.
func (m Model) View() string {
	if !m.vis.visible || m.width < 10 {
		return ""
	}

	g := computeLayout(m)

	var rows []string
	for i, label := range g.menuLabels {
		rows = append(rows, m.renderMenuRow(g, i, label))
	}
	rows = append(rows, m.renderTrack(g))
	rows = append(rows, m.renderControls(g))

	return strings.Join(rows, "\n")
}

// renderTrack draws the seek track with playhead, buffered extent and
// hover marker.
func (m Model) renderTrack(g geometry) string {
	span := g.trackX1 - g.trackX0
	if span < 3 {
		return ""
	}

	pos := m.displayPosition()
	knobIdx := cellIndex(pos, m.snap.Duration, span)
	bufIdx := cellIndex(m.snap.Buffered, m.snap.Duration, span)
	hoverIdx := -1
	if m.hoverSet {
		hoverIdx = cellIndex(m.hoverTime, m.snap.Duration, span)
	}

	var b strings.Builder
	if knobIdx > 0 {
		b.WriteString(styles.GradientTrack(
			trackFilled, knobIdx, styles.T().Primary, styles.T().Secondary))
	}
	b.WriteString(activeStyle.Render(trackKnob))
	for i := knobIdx + 1; i < span; i++ {
		switch {
		case i == hoverIdx:
			b.WriteString(hoverStyle.Render(trackHover))
		case i <= bufIdx:
			b.WriteString(bufferStyle.Render(trackBuffered))
		default:
			b.WriteString(emptyStyle.Render(trackEmpty))
		}
	}

	return strings.Repeat(" ", sideMargin) + b.String()
}

// renderControls draws the transport buttons, the time label and the
// right-hand indicator cluster.
func (m Model) renderControls(g geometry) string {
	var left []string
	for _, s := range g.leftSegs {
		left = append(left, m.styleSegment(s))
	}
	var right []string
	for _, s := range g.rightSegs {
		right = append(right, m.styleSegment(s))
	}

	leftStr := strings.Join(left, "  ")
	rightStr := strings.Join(right, "  ")

	padding := m.width - 2*sideMargin - lipgloss.Width(leftStr) - lipgloss.Width(rightStr)
	if padding < 1 {
		padding = 1
	}

	return strings.Repeat(" ", sideMargin) + leftStr + strings.Repeat(" ", padding) + rightStr
}

// styleSegment colors a segment without changing its width.
func (m Model) styleSegment(s segment) string {
	switch s.id {
	case regionNone:
		return timeStyle.Render(s.text)
	case regionFullscreen:
		if m.snap.Fullscreen {
			return activeStyle.Render(s.text)
		}
	case regionPiP:
		if m.snap.PiP {
			return activeStyle.Render(s.text)
		}
	case regionSpeed:
		if m.menu.open == MenuSpeed {
			return activeStyle.Render(s.text)
		}
	case regionQuality:
		if m.menu.open == MenuQuality {
			return activeStyle.Render(s.text)
		}
	}
	return controlStyle.Render(s.text)
}

// renderMenuRow draws one overlay row of the open menu, right-aligned
// above the indicator cluster.
func (m Model) renderMenuRow(g geometry, index int, label string) string {
	boxWidth := m.width - sideMargin - g.menuX0

	marker := "  "
	style := menuStyle
	if index == m.menu.cursor {
		marker = "▸ "
		style = menuCursorStyle
	}
	content := marker + label
	content += strings.Repeat(" ", maxInt(0, boxWidth-runewidth.StringWidth(content)))

	return strings.Repeat(" ", maxInt(0, g.menuX0)) + style.Render(content)
}

// cellIndex maps a time to a track cell, clamped to the span.
func cellIndex(t, duration time.Duration, span int) int {
	if duration <= 0 {
		return 0
	}
	frac := float64(t) / float64(duration)
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	return int(frac * float64(span-1))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
