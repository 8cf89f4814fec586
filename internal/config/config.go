package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"gifgrip/internal/domain"
	"gifgrip/internal/eventbus"
)

// APIKeyEnvVar overrides the configured API key when set
const APIKeyEnvVar = "GIPHY_API_KEY"

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	APIKey     string     `toml:"api_key"`
	BaseURL    string     `toml:"base_url"`
	Limit      int        `toml:"limit"`
	Rating     string     `toml:"rating"`
	Lang       string     `toml:"lang"`
	UISettings UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowDimensions bool `toml:"show_dimensions"`
	SaveRating     bool `toml:"save_rating"` // persist rating changes made in the UI
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	gifgripDir := filepath.Join(configDir, "gifgrip")
	os.MkdirAll(gifgripDir, 0755)

	return &configService{
		filePath: filepath.Join(gifgripDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from the default path
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		applyEnv(cfg)
		cs.publishLoaded(cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	cs.publishLoaded(cfg)
	return cfg, nil
}

// Save saves the configuration to the default path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(cfg)
	applyEnv(cfg)

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func (cs *configService) publishLoaded(cfg *Config) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Rating: domain.Rating(cfg.Rating),
			Lang:   cfg.Lang,
		})
	}
}

// applyEnv overlays environment values. The API key is a secret and must
// never be logged or rendered.
func applyEnv(cfg *Config) {
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		cfg.APIKey = key
	}
}

// normalize fills in zero values left by a partial config file
func normalize(cfg *Config) {
	def := DefaultConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.Limit <= 0 {
		cfg.Limit = def.Limit
	}
	if cfg.Lang == "" {
		cfg.Lang = def.Lang
	}
	cfg.Rating = string(domain.ParseRating(cfg.Rating))
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		BaseURL: "https://api.giphy.com",
		Limit:   24,
		Rating:  string(domain.RatingG),
		Lang:    "en",
		UISettings: UISettings{
			ShowDimensions: true,
			SaveRating:     true,
		},
	}
}
