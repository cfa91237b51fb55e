package compositor

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// MaxRasterThreads bounds Settings.NumRasterThreads.
const MaxRasterThreads = 64

// Errors returned by Settings.Validate.
var (
	ErrNegativeDuration = errors.New("compositor: negative duration")
	ErrRasterThreads    = errors.New("compositor: raster thread count out of range")
	ErrTileSize         = errors.New("compositor: tile size must be positive")
)

// Duration is a time.Duration that reads and writes as a Go duration
// string ("300ms") in settings files.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Settings holds layer tree configuration shared by the assembler, the
// scrollbar fade controller and the renderer.
type Settings struct {
	// ScrollbarFadeoutDelay is how long a scrollbar stays fully visible
	// after scroll activity.
	ScrollbarFadeoutDelay Duration `toml:"scrollbar_fadeout_delay"`

	// ScrollbarFadeoutLength is the duration of the opacity ramp to zero.
	ScrollbarFadeoutLength Duration `toml:"scrollbar_fadeout_length"`

	// NumRasterThreads is the number of workers used to visit layers.
	// 1 assembles frames sequentially.
	NumRasterThreads int `toml:"num_raster_threads"`

	// ShowDebugBorders appends a border quad for every drawn layer.
	ShowDebugBorders bool `toml:"show_debug_borders"`

	// ShowOverdraw records overdraw metrics while culling.
	ShowOverdraw bool `toml:"show_overdraw"`

	// BackgroundColor clears the root pass.
	BackgroundColor Color `toml:"background_color"`

	// DefaultTileSize is the edge length of tiles in pixels.
	DefaultTileSize int `toml:"default_tile_size"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		ScrollbarFadeoutDelay:  Duration(300 * time.Millisecond),
		ScrollbarFadeoutLength: Duration(300 * time.Millisecond),
		NumRasterThreads:       1,
		BackgroundColor:        White,
		DefaultTileSize:        256,
	}
}

// FadeoutDelay returns ScrollbarFadeoutDelay as a time.Duration.
func (s Settings) FadeoutDelay() time.Duration { return time.Duration(s.ScrollbarFadeoutDelay) }

// FadeoutLength returns ScrollbarFadeoutLength as a time.Duration.
func (s Settings) FadeoutLength() time.Duration { return time.Duration(s.ScrollbarFadeoutLength) }

// Validate reports the first invalid field.
func (s Settings) Validate() error {
	if s.ScrollbarFadeoutDelay < 0 {
		return fmt.Errorf("%w: scrollbar_fadeout_delay=%v", ErrNegativeDuration, s.FadeoutDelay())
	}
	if s.ScrollbarFadeoutLength < 0 {
		return fmt.Errorf("%w: scrollbar_fadeout_length=%v", ErrNegativeDuration, s.FadeoutLength())
	}
	if s.NumRasterThreads < 1 || s.NumRasterThreads > MaxRasterThreads {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrRasterThreads, s.NumRasterThreads, MaxRasterThreads)
	}
	if s.DefaultTileSize <= 0 {
		return fmt.Errorf("%w: %d", ErrTileSize, s.DefaultTileSize)
	}
	return nil
}

// ParseSettings decodes TOML settings on top of DefaultSettings.
// Keys absent from data keep their default; unknown keys are rejected.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Settings{}, fmt.Errorf("compositor: parse settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// LoadSettings reads and parses a TOML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("compositor: load settings: %w", err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, err
	}
	Logger().Info("settings loaded", "path", path, "raster_threads", s.NumRasterThreads)
	return s, nil
}

// Marshal encodes s as TOML.
func (s Settings) Marshal() ([]byte, error) {
	data, err := toml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("compositor: marshal settings: %w", err)
	}
	return data, nil
}
