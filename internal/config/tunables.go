package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Tunables are the rendering and export knobs that operators may adjust
// without a rebuild. They load from speedybill.yml and hot-reload on change.
type Tunables struct {
	// PreviewPadding is subtracted from a host viewport before fitting.
	PreviewPadding float64 `mapstructure:"previewPadding"`
	// MinScale keeps a preview from shrinking into invisibility.
	MinScale float64 `mapstructure:"minScale"`
	// RasterScale is the minimum capture density multiplier.
	RasterScale float64 `mapstructure:"rasterScale"`
	// SampleStride: the blank-capture heuristic inspects every Nth pixel.
	SampleStride int `mapstructure:"sampleStride"`
	// WhiteThreshold: a sampled pixel with all RGB channels above this
	// counts as near-white.
	WhiteThreshold uint8 `mapstructure:"whiteThreshold"`
	// AlphaThreshold: a sampled pixel at or below this alpha counts as
	// transparent.
	AlphaThreshold uint8 `mapstructure:"alphaThreshold"`
}

func DefaultTunables() Tunables {
	return Tunables{
		PreviewPadding: 24,
		MinScale:       0.05,
		RasterScale:    2,
		SampleStride:   4,
		WhiteThreshold: 248,
		AlphaThreshold: 0,
	}
}

type TunablesHolder struct {
	current atomic.Value // holds Tunables
}

func NewTunablesHolder() (*TunablesHolder, error) {
	v := viper.New()

	v.SetConfigName("speedybill")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/speedybill")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SPEEDYBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultTunables()
	v.SetDefault("tuning.previewPadding", defaults.PreviewPadding)
	v.SetDefault("tuning.minScale", defaults.MinScale)
	v.SetDefault("tuning.rasterScale", defaults.RasterScale)
	v.SetDefault("tuning.sampleStride", defaults.SampleStride)
	v.SetDefault("tuning.whiteThreshold", defaults.WhiteThreshold)
	v.SetDefault("tuning.alphaThreshold", defaults.AlphaThreshold)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Tunables
	if err := v.UnmarshalKey("tuning", &cfg); err != nil {
		return nil, err
	}
	if err := validateTunables(cfg); err != nil {
		return nil, err
	}

	holder := &TunablesHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated Tunables
		if err := v.UnmarshalKey("tuning", &updated); err != nil {
			log.Printf("[tunables] reload failed: %v", err)
			return
		}
		if err := validateTunables(updated); err != nil {
			log.Printf("[tunables] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[tunables] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *TunablesHolder) Get() Tunables {
	return h.current.Load().(Tunables)
}

// NewStaticTunables wraps fixed values, for tests.
func NewStaticTunables(t Tunables) *TunablesHolder {
	holder := &TunablesHolder{}
	holder.current.Store(t)
	return holder
}

func validateTunables(cfg Tunables) error {
	if cfg.SampleStride <= 0 {
		return errors.New("tuning.sampleStride must be positive")
	}
	if cfg.MinScale <= 0 || cfg.MinScale > 1 {
		return errors.New("tuning.minScale must be in (0, 1]")
	}
	if cfg.RasterScale < 1 {
		return errors.New("tuning.rasterScale must be at least 1")
	}
	if cfg.PreviewPadding < 0 {
		return errors.New("tuning.previewPadding cannot be negative")
	}
	return nil
}
