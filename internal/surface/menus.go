package surface

import (
	"fmt"

	"github.com/samber/lo"
)

// Menu identifies which settings menu is open. The two menus are
// mutually exclusive by construction: the tagged value can only hold one.
type Menu int

const (
	MenuNone Menu = iota
	MenuSpeed
	MenuQuality
)

// String returns the menu name.
func (m Menu) String() string {
	switch m {
	case MenuSpeed:
		return "speed"
	case MenuQuality:
		return "quality"
	default:
		return "none"
	}
}

// menuState tracks the open menu and its cursor.
type menuState struct {
	open   Menu
	cursor int
}

// toggle opens the given menu, closing whichever was open. Toggling the
// already-open menu closes it.
func (s *menuState) toggle(menu Menu, current int) {
	if s.open == menu {
		s.open = MenuNone
		return
	}
	s.open = menu
	s.cursor = current
}

// closeMenu closes any open menu. Used on outside interactions and on
// completed selections.
func (s *menuState) closeMenu() {
	s.open = MenuNone
}

// items returns the labels of the open menu, top to bottom.
func (s menuState) items() []string {
	switch s.open {
	case MenuSpeed:
		return lo.Map(Speeds, func(r float64, _ int) string { return formatRate(r) })
	case MenuQuality:
		return Qualities
	default:
		return nil
	}
}

// moveCursor moves the selection cursor, clamped to the item range.
func (s *menuState) moveCursor(delta int) {
	items := s.items()
	if len(items) == 0 {
		return
	}
	s.cursor = lo.Clamp(s.cursor+delta, 0, len(items)-1)
}

// formatRate renders a playback rate the way the speed menu shows it.
func formatRate(r float64) string {
	if r == float64(int(r)) {
		return fmt.Sprintf("%dx", int(r))
	}
	return fmt.Sprintf("%gx", r)
}
