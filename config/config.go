package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

const (
	configName = "kalinsky"
	envPrefix  = "KALINSKY"
)

type Config struct {
	Port       int           `mapstructure:"port" toml:"port"`
	SourcesDir string        `mapstructure:"sources_dir" toml:"sources_dir"`
	MediaDir   string        `mapstructure:"media_dir" toml:"media_dir"`
	DataDir    string        `mapstructure:"data_dir" toml:"data_dir"`
	FFmpegBin  string        `mapstructure:"ffmpeg_bin" toml:"ffmpeg_bin"`
	FFprobeBin string        `mapstructure:"ffprobe_bin" toml:"ffprobe_bin"`
	Audio      AudioConfig   `mapstructure:"audio" toml:"audio"`
	Preview    PreviewConfig `mapstructure:"preview" toml:"preview"`
	Jobs       JobsConfig    `mapstructure:"jobs" toml:"jobs"`
	Catalog    CatalogConfig `mapstructure:"catalog" toml:"catalog"`
	Log        LogConfig     `mapstructure:"log" toml:"log"`
}

type AudioConfig struct {
	FadeMS  int    `mapstructure:"fade_ms" toml:"fade_ms"`
	Codec   string `mapstructure:"codec" toml:"codec"`
	Bitrate string `mapstructure:"bitrate" toml:"bitrate"`
}

type PreviewConfig struct {
	Height int    `mapstructure:"height" toml:"height"`
	CRF    int    `mapstructure:"crf" toml:"crf"`
	Preset string `mapstructure:"preset" toml:"preset"`
}

type JobsConfig struct {
	MaxConcurrent        int `mapstructure:"max_concurrent" toml:"max_concurrent"`
	CancelTimeoutSeconds int `mapstructure:"cancel_timeout_seconds" toml:"cancel_timeout_seconds"`
}

type CatalogConfig struct {
	// ReindexSchedule is a cron spec; empty disables scheduled reindexing.
	ReindexSchedule string `mapstructure:"reindex_schedule" toml:"reindex_schedule"`
	Watch           bool   `mapstructure:"watch" toml:"watch"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" toml:"level"`
	Format     string `mapstructure:"format" toml:"format"`
	Output     string `mapstructure:"output" toml:"output"`
	File       string `mapstructure:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days"`
	Compress   bool   `mapstructure:"compress" toml:"compress"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 7890)
	v.SetDefault("sources_dir", "./sources")
	v.SetDefault("media_dir", "./media")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("ffmpeg_bin", "ffmpeg")
	v.SetDefault("ffprobe_bin", "ffprobe")

	v.SetDefault("audio.fade_ms", 50)
	v.SetDefault("audio.codec", "aac")
	v.SetDefault("audio.bitrate", "128k")

	v.SetDefault("preview.height", 720)
	v.SetDefault("preview.crf", 28)
	v.SetDefault("preview.preset", "ultrafast")

	v.SetDefault("jobs.max_concurrent", 2)
	v.SetDefault("jobs.cancel_timeout_seconds", 10)

	v.SetDefault("catalog.reindex_schedule", "")
	v.SetDefault("catalog.watch", false)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file", "./data/logs/kalinsky.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("log.compress", true)
}

// Load reads defaults, then kalinsky.toml (from path when given, otherwise
// searched in . and ./data), then KALINSKY_* environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.AddConfigPath("./data")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be in 1..65535, got %d", c.Port))
	}
	if c.SourcesDir == "" || c.MediaDir == "" || c.DataDir == "" {
		errs = append(errs, errors.New("sources_dir, media_dir and data_dir must be set"))
	}
	if c.Audio.FadeMS <= 0 {
		errs = append(errs, fmt.Errorf("audio.fade_ms must be positive, got %d", c.Audio.FadeMS))
	}
	if c.Preview.Height <= 0 {
		errs = append(errs, fmt.Errorf("preview.height must be positive, got %d", c.Preview.Height))
	}
	if c.Jobs.MaxConcurrent <= 0 {
		errs = append(errs, fmt.Errorf("jobs.max_concurrent must be positive, got %d", c.Jobs.MaxConcurrent))
	}
	if c.Jobs.CancelTimeoutSeconds <= 0 {
		errs = append(errs, fmt.Errorf("jobs.cancel_timeout_seconds must be positive, got %d", c.Jobs.CancelTimeoutSeconds))
	}
	if c.Catalog.ReindexSchedule != "" {
		if _, err := cron.ParseStandard(c.Catalog.ReindexSchedule); err != nil {
			errs = append(errs, fmt.Errorf("catalog.reindex_schedule: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) CancelTimeout() time.Duration {
	return time.Duration(c.Jobs.CancelTimeoutSeconds) * time.Second
}

// TOML renders the effective configuration.
func (c *Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}
