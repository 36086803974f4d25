package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/multierr"

	"lifex/internal/eventbus"
)

// FileName is the config file looked up in the working directory
const FileName = ".lifex.toml"

// Config represents the application configuration
type Config struct {
	Version             int             `toml:"version"`
	Deck                string          `toml:"deck" comment:"full, compact or a path to a YAML deck"`
	AnimationDurationMs int             `toml:"animation_duration_ms"`
	Gallery             GallerySettings `toml:"gallery"`
	Logging             LoggingSettings `toml:"logging"`
}

// GallerySettings configures the image gallery section
type GallerySettings struct {
	BasePath            string   `toml:"base_path"`
	ImagesPerPage       int      `toml:"images_per_page"`
	Mode                string   `toml:"mode" comment:"full or simple"`
	SlideshowIntervalMs int      `toml:"slideshow_interval_ms"`
	Images              []string `toml:"images,omitempty" comment:"explicit image list, scanned from base_path when empty"`
}

// LoggingSettings configures the file logger
type LoggingSettings struct {
	Level       string `toml:"level" comment:"none, normal or debug"`
	Destination string `toml:"destination"`
}

// AnimationDuration returns the section crossfade duration
func (c *Config) AnimationDuration() time.Duration {
	return time.Duration(c.AnimationDurationMs) * time.Millisecond
}

// SlideshowInterval returns the slideshow advance period
func (c *Config) SlideshowInterval() time.Duration {
	return time.Duration(c.Gallery.SlideshowIntervalMs) * time.Millisecond
}

// Validate reports every invalid setting at once
func (c *Config) Validate() error {
	var err error
	if c.Version != 1 {
		err = multierr.Append(err, fmt.Errorf("unsupported config version %d", c.Version))
	}
	if c.Deck == "" {
		err = multierr.Append(err, errors.New("deck must not be empty"))
	}
	if c.AnimationDurationMs < 0 {
		err = multierr.Append(err, fmt.Errorf("animation_duration_ms must not be negative, got %d", c.AnimationDurationMs))
	}
	if c.Gallery.ImagesPerPage <= 0 {
		err = multierr.Append(err, fmt.Errorf("gallery.images_per_page must be positive, got %d", c.Gallery.ImagesPerPage))
	}
	switch c.Gallery.Mode {
	case "full", "simple":
	default:
		err = multierr.Append(err, fmt.Errorf("gallery.mode must be full or simple, got %q", c.Gallery.Mode))
	}
	if c.Gallery.SlideshowIntervalMs <= 0 {
		err = multierr.Append(err, fmt.Errorf("gallery.slideshow_interval_ms must be positive, got %d", c.Gallery.SlideshowIntervalMs))
	}
	switch c.Logging.Level {
	case "none", "normal", "debug":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level must be none, normal or debug, got %q", c.Logging.Level))
	}
	return err
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

// NewConfigService creates a config service reading FileName from dir
func NewConfigService(dir string) ConfigService {
	return &configService{filePath: filepath.Join(dir, FileName)}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(dir string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(dir).(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cs.publish(cfg, "")
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	cs.publish(cfg, cs.filePath)
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (cs *configService) publish(cfg *Config, path string) {
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Deck: cfg.Deck})
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:             1,
		Deck:                "full",
		AnimationDurationMs: 600,
		Gallery: GallerySettings{
			BasePath:            "resources/image/gaikan/",
			ImagesPerPage:       18,
			Mode:                "full",
			SlideshowIntervalMs: 3000,
		},
		Logging: LoggingSettings{
			Level:       "normal",
			Destination: "lifex.log",
		},
	}
}
