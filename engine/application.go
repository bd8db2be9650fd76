package engine

import (
	"github.com/spaghettifunk/anima-bake/engine/animation"
	"github.com/spaghettifunk/anima-bake/engine/config"
	"github.com/spaghettifunk/anima-bake/engine/core"
)

type ApplicationConfig struct {
	// The application name used in log output.
	Name     string
	LogLevel core.LogLevel
	// Frame rate stored on baked clips when the sample file has none.
	FrameRate float32
	// Clip name override. Empty means the object name.
	ClipName string
	WrapMode animation.WrapMode
	// Node used for objects that come without a name.
	NodeName string
	// Directory scanned for sample files in watch mode.
	WatchDir string
	// Capacity of the queue of sample files waiting to be baked.
	QueueSize int
	// Goroutines writing clips in watch mode.
	Workers int
}

// NewApplicationConfig validates cfg and converts it for the engine.
func NewApplicationConfig(cfg *config.Config) (*ApplicationConfig, error) {
	level, err := core.ParseLogLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	wrap, err := animation.ParseWrapMode(cfg.Bake.WrapMode)
	if err != nil {
		return nil, err
	}
	return &ApplicationConfig{
		Name:      cfg.Application.Name,
		LogLevel:  level,
		FrameRate: cfg.Bake.FrameRate,
		ClipName:  cfg.Bake.ClipName,
		WrapMode:  wrap,
		NodeName:  cfg.Bake.NodeName,
		WatchDir:  cfg.Watch.Dir,
		QueueSize: cfg.Watch.QueueSize,
		Workers:   cfg.Watch.Workers,
	}, nil
}

// Application plugs caller code into the engine. Every hook is optional.
type Application struct {
	ApplicationConfig *ApplicationConfig
	State             interface{}
	FnInitialize      Initialize
	FnOnClipBaked     OnClipBaked
	FnShutdown        Shutdown
}

type Initialize func() error
type OnClipBaked func(source string, clip *animation.Clip) error
type Shutdown func() error
