package surface

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tgrange/reel/internal/ui/styles"
)

const (
	iconPlay       = "▶"
	iconPause      = "⏸"
	iconReplay     = "↻"
	iconVolume     = "🔊"
	iconMuted      = "🔇"
	iconFullscreen = "⛶"
	iconPiP        = "⧉"

	filledBlock = "▓"
	emptyBlock  = "░"

	trackFilled   = "━"
	trackBuffered = "─"
	trackEmpty    = "╌"
	trackKnob     = "●"
	trackHover    = "┃"
)

var (
	controlStyle = lipgloss.NewStyle().Foreground(styles.T().FgBase)
	timeStyle    = lipgloss.NewStyle().Foreground(styles.T().FgMuted)
	hoverStyle   = lipgloss.NewStyle().Foreground(styles.T().Secondary)
	activeStyle  = lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
	bufferStyle  = lipgloss.NewStyle().Foreground(styles.T().FgSubtle)
	emptyStyle   = lipgloss.NewStyle().Foreground(styles.T().FgSubtle)

	menuStyle       = lipgloss.NewStyle().Foreground(styles.T().FgBase).Background(styles.T().BgBase)
	menuCursorStyle = lipgloss.NewStyle().Foreground(styles.T().Primary).Background(styles.T().BgCursor).Bold(true)
)
