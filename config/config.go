package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/elf-bizniz/core"
	"github.com/lixenwraith/elf-bizniz/geom"
	"github.com/lixenwraith/elf-bizniz/level"
	"github.com/lixenwraith/elf-bizniz/parameter"
	"github.com/lixenwraith/elf-bizniz/physics"
	"github.com/lixenwraith/elf-bizniz/viewport"
	"github.com/lixenwraith/elf-bizniz/world"
)

// ErrInvalid is returned for out-of-range or undecodable configuration
var ErrInvalid = errors.New("invalid configuration")

// EnvPrefix prefixes every environment override
const EnvPrefix = "ELF_BIZNIZ_"

type Screen struct {
	Width       int    `toml:"width"`
	Height      int    `toml:"height"`
	Title       string `toml:"title"`
	FrameMillis int    `toml:"frame_ms"`
}

type Physics struct {
	Gravity       float64 `toml:"gravity"`
	MoveSpeed     float64 `toml:"move_speed"`
	JumpSpeed     float64 `toml:"jump_speed"`
	MaxFallSpeed  float64 `toml:"max_fall_speed"`
	MaxIterations int     `toml:"max_resolve_iterations"`
	CellSize      int     `toml:"cell_size"`
}

type Viewport struct {
	Left   float64 `toml:"left_margin"`
	Right  float64 `toml:"right_margin"`
	Top    float64 `toml:"top_margin"`
	Bottom float64 `toml:"bottom_margin"`
	Clamp  bool    `toml:"clamp"`
}

type Scoring struct {
	PointsPerItem int `toml:"points_per_item"`
}

type Audio struct {
	Enabled       bool               `toml:"enabled"`
	MasterVolume  float64            `toml:"master_volume"`
	SampleRate    int                `toml:"sample_rate"`
	EffectVolumes map[string]float64 `toml:"effect_volumes"`
}

type Level struct {
	Path             string  `toml:"path"` // Empty selects the procedural level
	Seed             int64   `toml:"seed"`
	Coins            int     `toml:"coins"`
	TileScaling      float64 `toml:"tile_scaling"`
	CoinScaling      float64 `toml:"coin_scaling"`
	CharacterScaling float64 `toml:"character_scaling"`
}

type Input struct {
	Keymap string `toml:"keymap"`
}

// Config is the full runtime configuration
type Config struct {
	Screen   Screen   `toml:"screen"`
	Physics  Physics  `toml:"physics"`
	Viewport Viewport `toml:"viewport"`
	Scoring  Scoring  `toml:"scoring"`
	Audio    Audio    `toml:"audio"`
	Level    Level    `toml:"level"`
	Input    Input    `toml:"input"`
}

// Default returns the reference tuning from parameter
func Default() *Config {
	return &Config{
		Screen: Screen{
			Width:       parameter.ScreenWidth,
			Height:      parameter.ScreenHeight,
			Title:       parameter.ScreenTitle,
			FrameMillis: int(parameter.FrameUpdateInterval / time.Millisecond),
		},
		Physics: Physics{
			Gravity:       parameter.GravityConstant,
			MoveSpeed:     parameter.PlayerMovementSpeed,
			JumpSpeed:     parameter.PlayerJumpSpeed,
			MaxFallSpeed:  parameter.MaxFallSpeed,
			MaxIterations: parameter.MaxResolveIterations,
			CellSize:      parameter.SpatialCellSize,
		},
		Viewport: Viewport{
			Left:   parameter.LeftViewportMargin,
			Right:  parameter.RightViewportMargin,
			Top:    parameter.TopViewportMargin,
			Bottom: parameter.BottomViewportMargin,
			Clamp:  true,
		},
		Scoring: Scoring{PointsPerItem: parameter.PointsPerPickup},
		Audio: Audio{
			Enabled:       true,
			MasterVolume:  parameter.AudioMasterVolume,
			SampleRate:    parameter.AudioSampleRate,
			EffectVolumes: map[string]float64{},
		},
		Level: Level{
			Seed:             1,
			Coins:            parameter.ProceduralCoinCount,
			TileScaling:      parameter.TileScaling,
			CoinScaling:      parameter.CoinScaling,
			CharacterScaling: parameter.CharacterScaling,
		},
	}
}

// Load decodes path over the defaults, applies environment overrides and validates
// Keys not defined by Config are rejected
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := cfg.Decode(string(data)); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML text onto cfg
func (c *Config) Decode(data string) error {
	md, err := toml.Decode(data, c)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overlays ELF_BIZNIZ_* environment variables, malformed values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvPrefix + "AUDIO_ENABLED"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume is 0-100
	if v := os.Getenv(EnvPrefix + "MASTER_VOLUME"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.Audio.MasterVolume = geom.Clamp(float64(val)/100.0, 0, 1)
		}
	}

	// Effect volumes as JSON, {"coin":0.8,"jump":0.2}
	if v := os.Getenv(EnvPrefix + "SFX_VOLUMES"); v != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(v), &volumes); err == nil {
			if c.Audio.EffectVolumes == nil {
				c.Audio.EffectVolumes = make(map[string]float64, len(volumes))
			}
			for name, vol := range volumes {
				if _, ok := core.ParseSoundType(name); ok {
					c.Audio.EffectVolumes[name] = vol
				}
			}
		}
	}

	if v := os.Getenv(EnvPrefix + "SAMPLE_RATE"); v != "" {
		if val, err := strconv.Atoi(v); err == nil && val > 0 {
			c.Audio.SampleRate = val
		}
	}

	if v := os.Getenv(EnvPrefix + "LEVEL"); v != "" {
		c.Level.Path = v
	}

	if v := os.Getenv(EnvPrefix + "SEED"); v != "" {
		if val, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Level.Seed = val
		}
	}

	if v := os.Getenv(EnvPrefix + "KEYMAP"); v != "" {
		c.Input.Keymap = v
	}
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen %dx%d", c.Screen.Width, c.Screen.Height)
	check(c.Screen.FrameMillis > 0, "screen.frame_ms %d", c.Screen.FrameMillis)

	p := c.Physics
	check(geom.Finite(p.Gravity, p.MoveSpeed, p.JumpSpeed, p.MaxFallSpeed), "physics values must be finite")
	// grounding depends on gravity pulling actors onto floors
	check(p.Gravity > 0, "physics.gravity %v", p.Gravity)
	check(p.MoveSpeed >= 0 && p.JumpSpeed >= 0 && p.MaxFallSpeed >= 0, "physics speeds must be non-negative")
	check(p.MaxIterations > 0, "physics.max_resolve_iterations %d", p.MaxIterations)
	check(p.CellSize > 0, "physics.cell_size %d", p.CellSize)

	v := c.Viewport
	check(v.Left >= 0 && v.Right >= 0 && v.Top >= 0 && v.Bottom >= 0, "viewport margins must be non-negative")
	check(v.Left+v.Right < float64(c.Screen.Width), "viewport horizontal margins %v+%v exceed width", v.Left, v.Right)
	check(v.Top+v.Bottom < float64(c.Screen.Height), "viewport vertical margins %v+%v exceed height", v.Top, v.Bottom)

	check(c.Scoring.PointsPerItem >= 0, "scoring.points_per_item %d", c.Scoring.PointsPerItem)

	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "audio.master_volume %v", c.Audio.MasterVolume)
	check(c.Audio.SampleRate > 0, "audio.sample_rate %d", c.Audio.SampleRate)
	for name, vol := range c.Audio.EffectVolumes {
		_, ok := core.ParseSoundType(name)
		check(ok, "audio.effect_volumes unknown sound %q", name)
		check(vol >= 0, "audio.effect_volumes.%s %v", name, vol)
	}

	l := c.Level
	check(l.Coins >= 0, "level.coins %d", l.Coins)
	check(l.TileScaling > 0 && l.CoinScaling > 0 && l.CharacterScaling > 0, "level scaling must be positive")

	return errors.Join(errs...)
}

// FrameInterval returns the fixed frame step
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Screen.FrameMillis) * time.Millisecond
}

// PhysicsConfig converts to the physics engine tuning
func (c *Config) PhysicsConfig() physics.Config {
	return physics.Config{
		Gravity:      c.Physics.Gravity,
		MaxRunSpeed:  c.Physics.MoveSpeed,
		MaxJumpSpeed: c.Physics.JumpSpeed,
		MaxFallSpeed: c.Physics.MaxFallSpeed,
	}
}

// LevelConfig converts to the level loader settings
func (c *Config) LevelConfig() level.Config {
	lc := level.DefaultConfig()
	lc.TileScaling = c.Level.TileScaling
	lc.CoinScaling = c.Level.CoinScaling
	lc.CharacterScaling = c.Level.CharacterScaling
	lc.MinWidth = float64(c.Screen.Width)
	lc.MinHeight = float64(c.Screen.Height)
	lc.World = world.Config{
		CellSize:      c.Physics.CellSize,
		MaxIterations: c.Physics.MaxIterations,
	}
	return lc
}

// Margins converts to viewport margins
func (c *Config) Margins() viewport.Margins {
	return viewport.Margins{
		Left:   c.Viewport.Left,
		Right:  c.Viewport.Right,
		Top:    c.Viewport.Top,
		Bottom: c.Viewport.Bottom,
	}
}

// Source returns the configured level source
func (c *Config) Source() (level.Source, error) {
	if c.Level.Path == "" {
		p := level.NewProcedural(c.Level.Seed)
		p.Width = float64(c.Screen.Width)
		p.Height = float64(c.Screen.Height)
		p.Coins = c.Level.Coins
		p.TileScaling = c.Level.TileScaling
		p.CoinScaling = c.Level.CoinScaling
		return p, nil
	}
	src, err := level.ReadFile(c.Level.Path)
	if err != nil {
		return nil, err
	}
	return src, nil
}
