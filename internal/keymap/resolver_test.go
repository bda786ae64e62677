package keymap

import "testing"

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(All)

	tests := []struct {
		key  string
		want Action
	}{
		{" ", ActionPlayPause},
		{"k", ActionPlayPause},
		{"left", ActionSeekBack},
		{"j", ActionSkipBack},
		{"right", ActionSeekForward},
		{"l", ActionSkipForward},
		{"up", ActionVolumeUp},
		{"down", ActionVolumeDown},
		{"m", ActionToggleMute},
		{"f", ActionToggleFullscreen},
		{"z", ""}, // unbound
	}
	for _, tt := range tests {
		if got := r.Resolve(tt.key); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver(All)

	keys := r.KeysFor(ActionPlayPause)
	if len(keys) != 2 {
		t.Fatalf("KeysFor(play_pause) = %v, want 2 keys", keys)
	}
}

func TestAll_NoDuplicateKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range All {
		for _, key := range b.Keys {
			if prev, ok := seen[key]; ok {
				t.Errorf("key %q bound to both %q and %q", key, prev, b.Action)
			}
			seen[key] = b.Action
		}
	}
}

func TestByContext(t *testing.T) {
	playback := ByContext("playback")
	if len(playback) == 0 {
		t.Fatal("no playback bindings")
	}
	for _, b := range playback {
		if b.Context != "playback" {
			t.Errorf("binding %q has context %q", b.Action, b.Context)
		}
	}
}
