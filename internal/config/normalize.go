package config

import (
	"strings"

	"codequiz/internal/challenge"
	"codequiz/internal/store"
)

// Defaults applied during normalization.
const (
	defaultUser      = "local"
	defaultStorePath = ".codequiz/archive.duckdb"
	defaultUIMode    = "auto"
)

// Normalize trims fields and fills in defaults.
func Normalize(cfg *Config) {
	cfg.User = strings.TrimSpace(cfg.User)
	if cfg.User == "" {
		cfg.User = defaultUser
	}

	cfg.Store.Path = strings.TrimSpace(cfg.Store.Path)
	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath
	}

	cfg.Provider.Model = strings.TrimSpace(cfg.Provider.Model)
	cfg.Provider.BaseURL = strings.TrimSpace(cfg.Provider.BaseURL)

	cfg.Generation.Difficulty = strings.ToLower(strings.TrimSpace(cfg.Generation.Difficulty))
	if cfg.Generation.Difficulty == "" {
		cfg.Generation.Difficulty = challenge.DifficultyEasy
	}

	if cfg.Quota.DailyLimit == 0 {
		cfg.Quota.DailyLimit = store.DefaultDailyQuota
	}
	if cfg.Quota.ResetHours == 0 {
		cfg.Quota.ResetHours = int(store.DefaultResetWindow.Hours())
	}

	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = defaultUIMode
	}
}
