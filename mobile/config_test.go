package mobile

import (
	"testing"

	"github.com/decker502/mergeball/pkg/game"
)

func TestAppConfig(t *testing.T) {
	cfg := AppConfig()
	if !cfg.Verbose {
		t.Error("mobile builds should keep logging enabled")
	}
	if cfg.ConfigPath != game.DefaultGameConfigPath {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, game.DefaultGameConfigPath)
	}
	if cfg.Seed != 0 {
		t.Errorf("Seed = %d, want 0 (random per game)", cfg.Seed)
	}
}
