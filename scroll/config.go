// SPDX-License-Identifier: Unlicense OR MIT

package scroll

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"pankit.org/unit"
)

// Config holds the physics and presentation tunables of a View.
// The zero value selects the defaults; out of range values are
// normalized, not rejected.
type Config struct {
	// DecelerationRate is the constant deceleration applied to a
	// released fling, in pixels per millisecond per second.
	DecelerationRate float32 `toml:"deceleration_rate"`
	// SlipFactor is the fraction (0-1) of out-of-bounds drag
	// distance that is actually applied, producing rubber-band
	// resistance past an edge.
	SlipFactor float32 `toml:"slip_factor"`
	// ScrollSlop is the centroid travel, in dp, before a drag
	// counts as a scroll.
	ScrollSlop unit.Dp `toml:"scroll_slop"`
	// ScaleSlop is the spread change, in dp, before a multi-touch
	// gesture counts as a pinch.
	ScaleSlop unit.Dp `toml:"scale_slop"`

	// Zoom enables pinch scaling. When disabled every scale write
	// stores 1.
	Zoom     bool    `toml:"zoom"`
	MinScale float32 `toml:"min_scale"`
	MaxScale float32 `toml:"max_scale"`

	// FadeOutDelay is the seconds a scroller stays visible after
	// the last activity on its axis.
	FadeOutDelay float32 `toml:"fade_out_delay"`
	// FadeInDuration is the seconds the scroller fade-in effect
	// takes; a pending fade-out never fires before it completes.
	FadeInDuration float32 `toml:"fade_in_duration"`

	// LineIncrement is the pixel distance of one line scroll.
	LineIncrement float32 `toml:"line_increment"`
	// PageFraction is the fraction of the container scrolled by a
	// page scroll.
	PageFraction float32 `toml:"page_fraction"`

	// CaptureDelay is the seconds descendant views keep a shared
	// gesture before this view reclaims it.
	CaptureDelay float32 `toml:"capture_delay"`
}

// DefaultConfig returns the default tunables.
func DefaultConfig() Config {
	return Config{
		DecelerationRate: 3,
		SlipFactor:       0.5,
		ScrollSlop:       5,
		ScaleSlop:        3,
		MinScale:         0.5,
		MaxScale:         2,
		FadeOutDelay:     1,
		FadeInDuration:   0.25,
		LineIncrement:    40,
		PageFraction:     1,
		CaptureDelay:     0.15,
	}
}

// LoadConfig reads tunables from a TOML file. Unset keys keep their
// defaults and out of range values are normalized.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scroll: read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("scroll: parse config: %w", err)
	}
	return cfg.withDefaults(), nil
}

// withDefaults fills zero fields and normalizes invalid values.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.DecelerationRate <= 0 {
		c.DecelerationRate = def.DecelerationRate
	}
	if c.SlipFactor <= 0 || c.SlipFactor > 1 {
		c.SlipFactor = def.SlipFactor
	}
	if c.ScrollSlop <= 0 {
		c.ScrollSlop = def.ScrollSlop
	}
	if c.ScaleSlop <= 0 {
		c.ScaleSlop = def.ScaleSlop
	}
	if c.MinScale <= 0 {
		c.MinScale = def.MinScale
	}
	if c.MaxScale <= 0 {
		c.MaxScale = def.MaxScale
	}
	if c.MaxScale < c.MinScale {
		c.MaxScale = c.MinScale
	}
	if c.FadeOutDelay <= 0 {
		c.FadeOutDelay = def.FadeOutDelay
	}
	if c.FadeInDuration <= 0 {
		c.FadeInDuration = def.FadeInDuration
	}
	if c.LineIncrement <= 0 {
		c.LineIncrement = def.LineIncrement
	}
	if c.PageFraction <= 0 || c.PageFraction > 1 {
		c.PageFraction = def.PageFraction
	}
	if c.CaptureDelay <= 0 {
		c.CaptureDelay = def.CaptureDelay
	}
	return c
}

func (c Config) captureDelay() time.Duration {
	return seconds(c.CaptureDelay)
}

// fadeOutDelay is the scheduled delay before a scroller fades out:
// never less than 100ms and never shorter than the fade-in effect.
func (c Config) fadeOutDelay() time.Duration {
	d := c.FadeOutDelay
	if d < 0.1 {
		d = 0.1
	}
	if c.FadeInDuration > d {
		d = c.FadeInDuration
	}
	return seconds(d)
}

func seconds(s float32) time.Duration {
	if s < 0 {
		return 0
	}
	return time.Duration(float64(s) * float64(time.Second))
}
