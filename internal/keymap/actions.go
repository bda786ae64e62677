// Package keymap defines key bindings and action dispatch for the
// playback surface. Keeping the table declarative makes the shortcut set
// exhaustively enumerable for help text and tests.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit        Action = "quit"
	ActionSwitchFocus Action = "switch_focus"
	ActionHelp        Action = "help"

	// Playback actions
	ActionPlayPause   Action = "play_pause"
	ActionSeekBack    Action = "seek_back"    // -5s
	ActionSeekForward Action = "seek_forward" // +5s
	ActionSkipBack    Action = "skip_back"    // -10s
	ActionSkipForward Action = "skip_forward" // +10s
	ActionVolumeUp    Action = "volume_up"
	ActionVolumeDown  Action = "volume_down"
	ActionToggleMute  Action = "toggle_mute"

	// Display actions
	ActionToggleFullscreen Action = "toggle_fullscreen"
	ActionTogglePiP        Action = "toggle_pip"
	ActionSpeedMenu        Action = "speed_menu"
	ActionQualityMenu      Action = "quality_menu"
)
