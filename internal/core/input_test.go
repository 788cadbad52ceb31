package core

import "testing"

func TestActionDirection(t *testing.T) {
	tests := []struct {
		action Action
		dir    Direction
		ok     bool
	}{
		{ActionUp, DirUp, true},
		{ActionDown, DirDown, true},
		{ActionLeft, DirLeft, true},
		{ActionRight, DirRight, true},
		{ActionPause, 0, false},
		{ActionNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			dir, ok := tt.action.Direction()
			if ok != tt.ok || (ok && dir != tt.dir) {
				t.Errorf("Direction() = %v, %v; expected %v, %v", dir, ok, tt.dir, tt.ok)
			}
		})
	}
}

func TestSeedOrNow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 42
	if cfg.SeedOrNow() != 42 {
		t.Error("explicit seed should be returned as-is")
	}

	cfg.Seed = 0
	if cfg.SeedOrNow() == 0 {
		t.Error("unset seed should fall back to the clock")
	}
}
