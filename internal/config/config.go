package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/retrogo/internal/mobj"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "RETROGO_CONFIG"

// DefaultPath is used when neither a flag nor EnvPath names a config file.
const DefaultPath = "config/retrogo.yaml"

// Placement sources.
const (
	SourceFile = "file"
	SourceDB   = "db"
)

var ErrInvalidConfig = errors.New("invalid config")

// Engine holds all configuration for the engine binary.
type Engine struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"` // empty logs to stdout, which a terminal display would garble
	Debug    bool   `yaml:"debug"`    // verbose simulation logging

	// Level selection
	Map             string `yaml:"map"`
	LevelDir        string `yaml:"level_dir"`
	PlacementSource string `yaml:"placement_source"` // file or db

	Database DatabaseConfig `yaml:"database"`
	Game     Game           `yaml:"game"`
	Video    Video          `yaml:"video"`
	Sound    Sound          `yaml:"sound"`
	Demo     Demo           `yaml:"demo"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Game holds gameplay switches. Demos record all of them and play back with
// the recorded values.
type Game struct {
	Skill           int    `yaml:"skill"` // 1 (baby) .. 5 (nightmare)
	RespawnMonsters bool   `yaml:"respawn_monsters"`
	RespawnItems    bool   `yaml:"respawn_items"`
	NoMonsters      bool   `yaml:"no_monsters"`
	Seed            uint64 `yaml:"seed"`

	BloodSplatsMax    int  `yaml:"blood_splats_max"`
	CorpsesSlide      bool `yaml:"corpses_slide"`
	CorpsesSmearBlood bool `yaml:"corpses_smear_blood"`
	CorpsesMoreBlood  bool `yaml:"corpses_more_blood"`
	CorpsesMirrored   bool `yaml:"corpses_mirrored"`
	FloatBob          bool `yaml:"float_bob"`
	LiquidBob         bool `yaml:"liquid_bob"`
	LiquidClip        bool `yaml:"liquid_clip"`
	RocketTrails      bool `yaml:"rocket_trails"`
}

// Options converts the switches to simulation options.
func (g Game) Options() mobj.Options {
	o := mobj.DefaultOptions()
	o.Skill = mobj.Skill(g.Skill - 1)
	o.RespawnMonsters = g.RespawnMonsters
	o.RespawnItems = g.RespawnItems
	o.NoMonsters = g.NoMonsters
	o.Seed = g.Seed
	o.BloodSplatsMax = g.BloodSplatsMax
	o.CorpsesSlide = g.CorpsesSlide
	o.CorpsesSmearBlood = g.CorpsesSmearBlood
	o.CorpsesMoreBlood = g.CorpsesMoreBlood
	o.CorpsesMirrored = g.CorpsesMirrored
	o.FloatBob = g.FloatBob
	o.LiquidBob = g.LiquidBob
	o.LiquidClip = g.LiquidClip
	o.RocketTrails = g.RocketTrails
	return o
}

// Video holds presentation settings.
type Video struct {
	Headless bool `yaml:"headless"` // no terminal, frames are discarded
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	Wipe     bool `yaml:"wipe"`
}

// Sound holds sound cue settings.
type Sound struct {
	Enabled    bool    `yaml:"enabled"`
	SampleRate int     `yaml:"sample_rate"`
	Volume     float64 `yaml:"volume"` // 0..1
}

// Demo holds recording and playback paths. Empty means off.
type Demo struct {
	Record       string        `yaml:"record"`
	Play         string        `yaml:"play"`
	PageDuration time.Duration `yaml:"page_duration"` // title page time in the attract loop
}

// DefaultEngine returns Engine config with sensible defaults.
func DefaultEngine() Engine {
	opts := mobj.DefaultOptions()
	return Engine{
		LogLevel:        "info",
		LogFile:         "retrogo.log",
		Map:             "E1M1",
		LevelDir:        "levels",
		PlacementSource: SourceFile,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "retrogo",
			Password: "retrogo",
			DBName:   "retrogo",
			SSLMode:  "disable",
		},
		Game: Game{
			Skill:             int(opts.Skill) + 1,
			BloodSplatsMax:    opts.BloodSplatsMax,
			CorpsesSlide:      opts.CorpsesSlide,
			CorpsesSmearBlood: opts.CorpsesSmearBlood,
			CorpsesMoreBlood:  opts.CorpsesMoreBlood,
			CorpsesMirrored:   opts.CorpsesMirrored,
			FloatBob:          opts.FloatBob,
			LiquidBob:         opts.LiquidBob,
			LiquidClip:        opts.LiquidClip,
			RocketTrails:      opts.RocketTrails,
		},
		Video: Video{
			Width:  320,
			Height: 200,
			Wipe:   true,
		},
		Sound: Sound{
			Enabled:    true,
			SampleRate: 44100,
			Volume:     0.5,
		},
		Demo: Demo{
			PageDuration: 5 * time.Second,
		},
	}
}

// Validate checks value ranges.
func (e Engine) Validate() error {
	if e.Game.Skill < 1 || e.Game.Skill > 5 {
		return fmt.Errorf("%w: skill %d out of range 1..5", ErrInvalidConfig, e.Game.Skill)
	}
	if e.PlacementSource != SourceFile && e.PlacementSource != SourceDB {
		return fmt.Errorf("%w: placement_source %q", ErrInvalidConfig, e.PlacementSource)
	}
	if e.Video.Width <= 0 || e.Video.Height <= 0 {
		return fmt.Errorf("%w: video size %dx%d", ErrInvalidConfig, e.Video.Width, e.Video.Height)
	}
	if e.Demo.Record != "" && e.Demo.Play != "" {
		return fmt.Errorf("%w: cannot record and play a demo at once", ErrInvalidConfig)
	}
	if e.Sound.Volume < 0 || e.Sound.Volume > 1 {
		return fmt.Errorf("%w: volume %v out of range 0..1", ErrInvalidConfig, e.Sound.Volume)
	}
	return nil
}

// Path returns the config path: flagValue if set, then EnvPath, then
// DefaultPath.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	return DefaultPath
}

// LoadEngine loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
