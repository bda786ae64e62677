package keymap

// Binding describes a single key binding.
type Binding struct {
	Keys        []string
	Action      Action
	Description string
	Context     string // "global", "playback", "display"
}

// All contains every key binding, for dispatch and help generation.
var All = []Binding{
	// Global
	{[]string{"q", "ctrl+c"}, ActionQuit, "Quit", "global"},
	{[]string{"tab"}, ActionSwitchFocus, "Switch focus", "global"},
	{[]string{"?"}, ActionHelp, "Show help", "global"},

	// Playback
	{[]string{" ", "k"}, ActionPlayPause, "Play/pause", "playback"},
	{[]string{"left"}, ActionSeekBack, "Seek -5s", "playback"},
	{[]string{"right"}, ActionSeekForward, "Seek +5s", "playback"},
	{[]string{"j"}, ActionSkipBack, "Skip -10s", "playback"},
	{[]string{"l"}, ActionSkipForward, "Skip +10s", "playback"},
	{[]string{"up"}, ActionVolumeUp, "Volume +10%", "playback"},
	{[]string{"down"}, ActionVolumeDown, "Volume -10%", "playback"},
	{[]string{"m"}, ActionToggleMute, "Toggle mute", "playback"},

	// Display
	{[]string{"f"}, ActionToggleFullscreen, "Toggle fullscreen", "display"},
	{[]string{"i"}, ActionTogglePiP, "Toggle picture-in-picture", "display"},
	{[]string{"s"}, ActionSpeedMenu, "Playback speed menu", "display"},
	{[]string{"x"}, ActionQualityMenu, "Quality menu", "display"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}
