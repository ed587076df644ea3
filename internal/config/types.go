package config

// DefaultPath is where the CLI looks for its configuration.
const DefaultPath = ".codequiz.yml"

// Config is the application configuration schema.
type Config struct {
	Version    int              `yaml:"version"`
	User       string           `yaml:"user"`
	Store      StoreConfig      `yaml:"store"`
	Provider   ProviderConfig   `yaml:"provider"`
	Generation GenerationConfig `yaml:"generation"`
	Quota      QuotaConfig      `yaml:"quota"`
	UI         UIConfig         `yaml:"ui"`
}

// StoreConfig locates the challenge archive.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// ProviderConfig selects the completion provider for generation. The API key
// is read from LLM_API_KEY, never from this file.
type ProviderConfig struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
}

// GenerationConfig holds generation defaults.
type GenerationConfig struct {
	Difficulty string `yaml:"difficulty"`
}

// QuotaConfig overrides quota accounting.
type QuotaConfig struct {
	DailyLimit int `yaml:"daily_limit"`
	ResetHours int `yaml:"reset_hours"`
}

// UIConfig holds rendering defaults.
type UIConfig struct {
	ShowExplanation bool   `yaml:"show_explanation"`
	Mode            string `yaml:"mode"`
}
