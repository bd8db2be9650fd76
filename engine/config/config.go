package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type ApplicationConfig struct {
	Name string `toml:"name"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type BakeConfig struct {
	// FrameRate is stored on produced clips and used to space demo samples.
	FrameRate float32 `toml:"frame_rate"`
	// ClipName overrides the clip name. Empty means the object name.
	ClipName string `toml:"clip_name"`
	WrapMode string `toml:"wrap_mode"`
	// NodeName is the scene node clips are attached to when the sample file
	// does not name the object.
	NodeName string `toml:"node_name"`
}

type WatchConfig struct {
	Dir       string `toml:"dir"`
	QueueSize int    `toml:"queue_size"`
	// Workers writing baked clips to disk.
	Workers int `toml:"workers"`
}

type Config struct {
	Application ApplicationConfig `toml:"application"`
	Log         LogConfig         `toml:"log"`
	Bake        BakeConfig        `toml:"bake"`
	Watch       WatchConfig       `toml:"watch"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Application: ApplicationConfig{Name: "anima-bake"},
		Log:         LogConfig{Level: "info"},
		Bake: BakeConfig{
			FrameRate: 60,
			WrapMode:  "once",
			NodeName:  "baked",
		},
		Watch: WatchConfig{
			Dir:       ".",
			QueueSize: 64,
			Workers:   2,
		},
	}
}

// Load reads a TOML file on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "Can't read config %q", path)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "Can't parse config %q", path)
	}
	return cfg, nil
}

// Parse decodes data into cfg. Keys missing from data keep their value in cfg;
// zero or negative numbers fall back to the defaults.
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	def := Default()
	if cfg.Bake.FrameRate <= 0 {
		cfg.Bake.FrameRate = def.Bake.FrameRate
	}
	if cfg.Watch.QueueSize <= 0 {
		cfg.Watch.QueueSize = def.Watch.QueueSize
	}
	if cfg.Watch.Workers <= 0 {
		cfg.Watch.Workers = def.Watch.Workers
	}
	return nil
}

// Save writes cfg as TOML.
func Save(path string, cfg *Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "Can't encode config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "Can't write config %q", path)
}
