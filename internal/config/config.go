package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/yarayan327-hash/math-test-KSA-material/internal/conic"
	"gopkg.in/yaml.v3"
)

const (
	DefaultModel        = "gemini-2.5-flash"
	DefaultBaseURL      = "https://generativelanguage.googleapis.com"
	DefaultTutorTimeout = 30 * time.Second
	DefaultCanvasWidth  = 48
	DefaultCanvasHeight = 20
	DefaultCanvasScale  = 4.0
	DefaultAddr         = ":8080"
	DefaultTheme        = "starship"
)

type Config struct {
	Topic  conic.Topic  `yaml:"topic"`
	Theme  string       `yaml:"theme"`
	Params conic.Params `yaml:"params"`
	Canvas CanvasConfig `yaml:"canvas"`
	Tutor  TutorConfig  `yaml:"tutor"`
	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
	// Presets are merged over the built-in table, keyed by topic then name.
	Presets map[string]map[string]*Preset `yaml:"presets,omitempty"`
}

// CanvasConfig sizes the terminal lab in character cells; Scale is braille
// dots per plane unit.
type CanvasConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"`
}

type TutorConfig struct {
	Model   string        `yaml:"model"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type LogConfig struct {
	Mode string `yaml:"mode"`
	// File receives TUI logs; empty discards them.
	File string `yaml:"file"`
}

type ServerConfig struct {
	Addr         string   `yaml:"addr"`
	AllowOrigins []string `yaml:"allow_origins"`
}

func DefaultConfig() *Config {
	return &Config{
		Topic:  conic.TopicHome,
		Theme:  DefaultTheme,
		Params: conic.DefaultParams(),
		Canvas: CanvasConfig{
			Width:  DefaultCanvasWidth,
			Height: DefaultCanvasHeight,
			Scale:  DefaultCanvasScale,
		},
		Tutor: TutorConfig{
			Model:   DefaultModel,
			BaseURL: DefaultBaseURL,
			Timeout: DefaultTutorTimeout,
		},
		Log: LogConfig{Mode: "development"},
		Server: ServerConfig{
			Addr:         DefaultAddr,
			AllowOrigins: []string{"http://localhost:5173", "http://localhost:3000"},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the starting parameters against the slider ranges and the
// canvas geometry against what the renderer can draw.
func (c *Config) Validate() error {
	if !c.Topic.Valid() {
		return fmt.Errorf("config: %w", conic.ErrUnknownTopic)
	}
	if err := c.Params.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 || c.Canvas.Scale <= 0 {
		return fmt.Errorf("config: canvas %dx%d scale %.2f must be positive", c.Canvas.Width, c.Canvas.Height, c.Canvas.Scale)
	}
	if c.Tutor.Timeout < 0 {
		return fmt.Errorf("config: negative tutor timeout %s", c.Tutor.Timeout)
	}
	for topic, presets := range c.Presets {
		t, err := conic.ParseTopic(topic)
		if err != nil {
			return fmt.Errorf("config: presets: %w", err)
		}
		for name, p := range presets {
			if p == nil {
				return fmt.Errorf("config: preset %s/%s is empty", topic, name)
			}
			if _, err := p.Apply(t, c.Params); err != nil {
				return fmt.Errorf("config: preset %s/%s: %w", topic, name, err)
			}
		}
	}
	return nil
}

// ApplyEnv overrides fields from the environment. Blank variables are ignored.
func (c *Config) ApplyEnv() {
	c.Log.Mode = String("CONICS_LOG_MODE", c.Log.Mode)
	c.Log.File = String("CONICS_LOG_FILE", c.Log.File)
	c.Theme = String("CONICS_THEME", c.Theme)
	c.Tutor.Model = String("CONICS_MODEL", c.Tutor.Model)
	c.Tutor.BaseURL = String("GEMINI_BASE_URL", c.Tutor.BaseURL)
	c.Tutor.Timeout = Duration("CONICS_TUTOR_TIMEOUT", c.Tutor.Timeout)
	c.Server.Addr = String("CONICS_ADDR", c.Server.Addr)
}

func String(name, def string) string {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	return v
}

func Duration(name string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return def
	}
	return d
}
