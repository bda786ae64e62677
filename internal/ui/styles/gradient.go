package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// GradientTrack renders n copies of cell, colored along a horizontal
// ramp. The surface uses it for the filled portion of the seek track.
func GradientTrack(cell string, n int, from, to lipgloss.Color) string {
	if n <= 0 {
		return ""
	}
	var b strings.Builder
	for _, hex := range ramp(n, from, to) {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(cell))
	}
	return b.String()
}

// ApplyBoldGradient renders bold text with one ramp color per grapheme
// cluster, so combining marks and emoji stay intact.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	if len(clusters) == 0 {
		return ""
	}

	hexes := ramp(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(hexes[i])).
			Render(cluster))
	}
	return b.String()
}

// ramp returns n hex colors blended in HCL space, which keeps the
// transition perceptually even.
func ramp(n int, from, to lipgloss.Color) []string {
	c1 := parseHex(from)
	c2 := parseHex(to)

	out := make([]string, n)
	if n == 1 {
		out[0] = c1.Hex()
		return out
	}
	for i := range n {
		t := float64(i) / float64(n-1)
		out[i] = c1.BlendHcl(c2, t).Clamped().Hex()
	}
	return out
}

// parseHex converts a theme color to colorful. Theme colors are hex
// strings; anything else degrades to a neutral gray.
func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{R: 0.5, G: 0.5, B: 0.5}
	}
	return col
}
